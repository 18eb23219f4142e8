package stages

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/ethdb"

	akularawdb "github.com/tbcd/akula/core/rawdb"
)

// PromoteCumulativeIndex extends the cumulative index over the canonical
// chain for blocks (from, to]. The row at from must already exist; each new
// row adds the block's gas and transaction count to its parent row. A block
// without a stored body contributes zero transactions.
func PromoteCumulativeIndex(db ethdb.Database, from, to uint64) error {
	parent := akularawdb.ReadCumulativeIndex(db, from)
	if parent == nil {
		return fmt.Errorf("no cumulative index for block %d", from)
	}

	batch := db.NewBatch()
	for number := from + 1; number <= to; number++ {
		hash := rawdb.ReadCanonicalHash(db, number)
		if hash == (common.Hash{}) {
			return fmt.Errorf("no canonical hash for block %d", number)
		}
		header := rawdb.ReadHeader(db, hash, number)
		if header == nil {
			return fmt.Errorf("no header for block %d", number)
		}
		var txNum uint64
		if body := akularawdb.ReadBodyForStorage(db, number, hash); body != nil {
			txNum = uint64(body.TxAmount)
		}
		row := &akularawdb.CumulativeData{
			Gas:   parent.Gas + header.GasUsed,
			TxNum: parent.TxNum + txNum,
		}
		akularawdb.WriteCumulativeIndex(batch, number, row)
		parent = row

		if batch.ValueSize() >= ethdb.IdealBatchSize {
			if err := batch.Write(); err != nil {
				return err
			}
			batch.Reset()
		}
	}
	return batch.Write()
}
