package rawdb

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/tbcd/akula/params"
)

// CumulativeData is the cumulative index row at a block number: the total gas
// used and transaction count over all canonical blocks from genesis to that
// block inclusive.
type CumulativeData struct {
	Gas   uint64
	TxNum uint64
}

// ReadCumulativeIndex retrieves the cumulative index row at a block number.
func ReadCumulativeIndex(db ethdb.KeyValueReader, number uint64) *CumulativeData {
	data, _ := db.Get(cumulativeIndexKey(number))
	if len(data) == 0 {
		return nil
	}
	row := new(CumulativeData)
	if err := rlp.DecodeBytes(data, row); err != nil {
		log.Error("Invalid cumulative index RLP", "number", number, "err", err)
		return nil
	}
	return row
}

// WriteCumulativeIndex stores the cumulative index row at a block number.
func WriteCumulativeIndex(db ethdb.KeyValueWriter, number uint64, row *CumulativeData) {
	data, err := rlp.EncodeToBytes(row)
	if err != nil {
		log.Crit("Failed to RLP encode cumulative index", "err", err)
	}
	if err := db.Put(cumulativeIndexKey(number), data); err != nil {
		log.Crit("Failed to store cumulative index", "err", err)
	}
}

// BodyForStorage is the storage form of a block body: the transaction count
// and the starting transaction id instead of the transactions themselves.
type BodyForStorage struct {
	BaseTxID uint64
	TxAmount uint32
	Uncles   []*types.Header
}

// ReadBodyForStorage retrieves the storage form of a block body.
func ReadBodyForStorage(db ethdb.KeyValueReader, number uint64, hash common.Hash) *BodyForStorage {
	data, _ := db.Get(bodyForStorageKey(number, hash))
	if len(data) == 0 {
		return nil
	}
	body := new(BodyForStorage)
	if err := rlp.DecodeBytes(data, body); err != nil {
		log.Error("Invalid block body RLP", "number", number, "hash", hash, "err", err)
		return nil
	}
	return body
}

// WriteBodyForStorage stores the storage form of a block body.
func WriteBodyForStorage(db ethdb.KeyValueWriter, number uint64, hash common.Hash, body *BodyForStorage) {
	data, err := rlp.EncodeToBytes(body)
	if err != nil {
		log.Crit("Failed to RLP encode body", "err", err)
	}
	if err := db.Put(bodyForStorageKey(number, hash), data); err != nil {
		log.Crit("Failed to store block body", "err", err)
	}
}

// ReadChainSpec retrieves the chain specification keyed by the genesis hash.
func ReadChainSpec(db ethdb.KeyValueReader, hash common.Hash) *params.ChainSpec {
	data, _ := db.Get(chainSpecKey(hash))
	if len(data) == 0 {
		return nil
	}
	spec := new(params.ChainSpec)
	if err := json.Unmarshal(data, spec); err != nil {
		log.Error("Invalid chain spec JSON", "hash", hash, "err", err)
		return nil
	}
	return spec
}

// WriteChainSpec writes the chain specification keyed by the genesis hash.
func WriteChainSpec(db ethdb.KeyValueWriter, hash common.Hash, spec *params.ChainSpec) {
	if spec == nil {
		return
	}
	data, err := json.Marshal(spec)
	if err != nil {
		log.Crit("Failed to JSON encode chain spec", "err", err)
	}
	if err := db.Put(chainSpecKey(hash), data); err != nil {
		log.Crit("Failed to store chain spec", "err", err)
	}
}
