package stages

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethdb"

	akularawdb "github.com/tbcd/akula/core/rawdb"
)

// PromoteCleanState rebuilds the hashed-state table from scratch out of the
// plain-state staging table. Every account row is re-keyed by the keccak hash
// of its address.
func PromoteCleanState(db ethdb.Database) error {
	prefix := akularawdb.PlainAccountPrefix()
	it := db.NewIterator(prefix, nil)
	defer it.Release()

	batch := db.NewBatch()
	for it.Next() {
		address := common.BytesToAddress(it.Key()[len(prefix):])
		akularawdb.WriteHashedAccount(batch, crypto.Keccak256Hash(address.Bytes()), common.CopyBytes(it.Value()))
		if batch.ValueSize() >= ethdb.IdealBatchSize {
			if err := batch.Write(); err != nil {
				return err
			}
			batch.Reset()
		}
	}
	if err := it.Error(); err != nil {
		return err
	}
	return batch.Write()
}

// PromoteCleanCode rebuilds the contract-code table from the plain-code
// staging table, keying each blob by its code hash.
func PromoteCleanCode(db ethdb.Database) error {
	prefix := akularawdb.PlainCodePrefix()
	it := db.NewIterator(prefix, nil)
	defer it.Release()

	batch := db.NewBatch()
	for it.Next() {
		code := common.CopyBytes(it.Value())
		rawdb.WriteCode(batch, crypto.Keccak256Hash(code), code)
		if batch.ValueSize() >= ethdb.IdealBatchSize {
			if err := batch.Write(); err != nil {
				return err
			}
			batch.Reset()
		}
	}
	if err := it.Error(); err != nil {
		return err
	}
	return batch.Write()
}
