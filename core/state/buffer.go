package state

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/tbcd/akula/core/rawdb"
)

// Buffer is a write-back staging area for state changes. Mutations accumulate
// in memory and flush to the plain-state tables in a single batch.
type Buffer struct {
	db       ethdb.Database
	blockNum uint64

	// priorRoot is the state root the staged changes build on; nil means the
	// empty state.
	priorRoot *common.Hash

	accounts map[common.Address]*types.StateAccount
	code     map[common.Address][]byte
}

// NewBuffer creates a staging buffer on top of db, positioned at blockNum.
func NewBuffer(db ethdb.Database, blockNum uint64, priorRoot *common.Hash) *Buffer {
	return &Buffer{
		db:        db,
		blockNum:  blockNum,
		priorRoot: priorRoot,
		accounts:  make(map[common.Address]*types.StateAccount),
		code:      make(map[common.Address][]byte),
	}
}

// BeginBlock positions the buffer at a block. Staged changes are not tracked
// per block: WriteToDB flushes everything staged so far.
func (b *Buffer) BeginBlock(blockNum uint64) {
	b.blockNum = blockNum
}

// UpdateAccount stages the transition of an account from its prior state to
// current. A nil prior means the account did not exist; a nil current stages a
// deletion.
func (b *Buffer) UpdateAccount(address common.Address, prior, current *types.StateAccount) {
	if current == nil {
		b.accounts[address] = nil
		delete(b.code, address)
		return
	}
	b.accounts[address] = current
}

// UpdateCode stages contract code for an account.
func (b *Buffer) UpdateCode(address common.Address, code []byte) {
	b.code[address] = code
}

// WriteToDB flushes the staged changes to the plain-state tables atomically.
func (b *Buffer) WriteToDB() error {
	batch := b.db.NewBatch()
	for address, account := range b.accounts {
		if account == nil {
			rawdb.DeletePlainAccount(batch, address)
			continue
		}
		rawdb.WritePlainAccount(batch, address, account)
	}
	for address, code := range b.code {
		rawdb.WritePlainCode(batch, address, code)
	}
	return batch.Write()
}
