package headers

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// makeHeaderChain builds count headers starting at startNum, linked by parent
// hash. The first header's parent is the zero hash.
func makeHeaderChain(startNum uint64, count int) []*types.Header {
	headers := make([]*types.Header, count)
	var parentHash common.Hash
	for i := range headers {
		headers[i] = nextHeader(startNum+uint64(i), parentHash)
		parentHash = headers[i].Hash()
	}
	return headers
}

// continueHeaderChain extends a chain with count headers on top of parent,
// returning the chain including parent at index 0.
func continueHeaderChain(parent *types.Header, count int) []*types.Header {
	headers := make([]*types.Header, count+1)
	headers[0] = parent
	parentHash := parent.Hash()
	number := parent.Number.Uint64()
	for i := 1; i < len(headers); i++ {
		headers[i] = nextHeader(number+uint64(i), parentHash)
		parentHash = headers[i].Hash()
	}
	return headers
}

func nextHeader(number uint64, parentHash common.Hash) *types.Header {
	return &types.Header{
		ParentHash:  parentHash,
		UncleHash:   types.EmptyUncleHash,
		Root:        types.EmptyRootHash,
		TxHash:      types.EmptyTxsHash,
		ReceiptHash: types.EmptyReceiptsHash,
		Difficulty:  big.NewInt(int64(131072 + number)),
		Number:      new(big.Int).SetUint64(number),
		GasLimit:    5000,
		GasUsed:     number % 5000,
		Time:        1438269988 + number,
	}
}
