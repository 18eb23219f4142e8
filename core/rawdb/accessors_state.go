package rawdb

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
)

// ReadPlainAccount retrieves an account from the plain-state staging table.
func ReadPlainAccount(db ethdb.KeyValueReader, address common.Address) *types.StateAccount {
	data, _ := db.Get(plainAccountKey(address))
	if len(data) == 0 {
		return nil
	}
	account := new(types.StateAccount)
	if err := rlp.DecodeBytes(data, account); err != nil {
		log.Error("Invalid account RLP", "address", address, "err", err)
		return nil
	}
	return account
}

// WritePlainAccount stores an account in the plain-state staging table.
func WritePlainAccount(db ethdb.KeyValueWriter, address common.Address, account *types.StateAccount) {
	data, err := rlp.EncodeToBytes(account)
	if err != nil {
		log.Crit("Failed to RLP encode account", "err", err)
	}
	if err := db.Put(plainAccountKey(address), data); err != nil {
		log.Crit("Failed to store account", "err", err)
	}
}

// DeletePlainAccount removes an account from the plain-state staging table.
func DeletePlainAccount(db ethdb.KeyValueWriter, address common.Address) {
	if err := db.Delete(plainAccountKey(address)); err != nil {
		log.Crit("Failed to delete account", "err", err)
	}
}

// WritePlainCode stores contract code in the plain-code staging table, keyed
// by the owning address.
func WritePlainCode(db ethdb.KeyValueWriter, address common.Address, code []byte) {
	if err := db.Put(plainCodeKey(address), code); err != nil {
		log.Crit("Failed to store contract code", "err", err)
	}
}

// ReadHashedAccount retrieves the encoded account stored under the keccak
// hash of its address, or nil.
func ReadHashedAccount(db ethdb.KeyValueReader, hash common.Hash) []byte {
	data, _ := db.Get(hashedAccountKey(hash))
	return data
}

// WriteHashedAccount stores an already-encoded account in the hashed-state
// table, keyed by the keccak hash of its address.
func WriteHashedAccount(db ethdb.KeyValueWriter, hash common.Hash, data []byte) {
	if err := db.Put(hashedAccountKey(hash), data); err != nil {
		log.Crit("Failed to store hashed account", "err", err)
	}
}
