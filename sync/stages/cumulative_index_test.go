package stages

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/stretchr/testify/require"

	akularawdb "github.com/tbcd/akula/core/rawdb"
)

// writeCanonicalChain persists count linked canonical headers starting at
// block 0 and returns them.
func writeCanonicalChain(t *testing.T, db ethdb.Database, count int) []*types.Header {
	t.Helper()
	headers := make([]*types.Header, count)
	var parentHash common.Hash
	for i := range headers {
		header := &types.Header{
			ParentHash: parentHash,
			UncleHash:  types.EmptyUncleHash,
			Root:       types.EmptyRootHash,
			Difficulty: big.NewInt(131072),
			Number:     big.NewInt(int64(i)),
			GasLimit:   8_000_000,
			GasUsed:    uint64(i) * 21000,
			Time:       uint64(i),
		}
		rawdb.WriteHeader(db, header)
		rawdb.WriteCanonicalHash(db, header.Hash(), header.Number.Uint64())
		headers[i] = header
		parentHash = header.Hash()
	}
	return headers
}

func TestPromoteCumulativeIndex(t *testing.T) {
	db := rawdb.NewMemoryDatabase()
	headers := writeCanonicalChain(t, db, 6)

	// Bodies exist for a prefix of the chain only; the rest count zero txs.
	akularawdb.WriteBodyForStorage(db, 1, headers[1].Hash(), &akularawdb.BodyForStorage{BaseTxID: 1, TxAmount: 3})
	akularawdb.WriteBodyForStorage(db, 2, headers[2].Hash(), &akularawdb.BodyForStorage{BaseTxID: 4, TxAmount: 2})

	akularawdb.WriteCumulativeIndex(db, 0, &akularawdb.CumulativeData{Gas: 0, TxNum: 0})
	require.NoError(t, PromoteCumulativeIndex(db, 0, 5))

	var prev akularawdb.CumulativeData
	for number := uint64(0); number <= 5; number++ {
		row := akularawdb.ReadCumulativeIndex(db, number)
		require.NotNil(t, row, "row %d", number)
		require.GreaterOrEqual(t, row.Gas, prev.Gas)
		require.GreaterOrEqual(t, row.TxNum, prev.TxNum)
		prev = *row
	}

	// Spot check the sums.
	row := akularawdb.ReadCumulativeIndex(db, 3)
	require.Equal(t, uint64(1+2+3)*21000, row.Gas)
	require.Equal(t, uint64(5), row.TxNum)
}

func TestPromoteCumulativeIndexMissingBase(t *testing.T) {
	db := rawdb.NewMemoryDatabase()
	writeCanonicalChain(t, db, 3)

	err := PromoteCumulativeIndex(db, 0, 2)
	require.ErrorContains(t, err, "no cumulative index for block 0")
}

func TestPromoteCumulativeIndexMissingHeader(t *testing.T) {
	db := rawdb.NewMemoryDatabase()
	writeCanonicalChain(t, db, 3)
	akularawdb.WriteCumulativeIndex(db, 0, &akularawdb.CumulativeData{})

	err := PromoteCumulativeIndex(db, 0, 5)
	require.ErrorContains(t, err, "no canonical hash for block 3")
}
