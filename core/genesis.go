package core

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"

	akularawdb "github.com/tbcd/akula/core/rawdb"
	"github.com/tbcd/akula/core/state"
	"github.com/tbcd/akula/params"
	"github.com/tbcd/akula/sync/stages"
)

// InitializeGenesis bootstraps an empty chain database from the chain
// specification. It seeds the genesis state through the staging buffer,
// promotes it into the hashed-state tables, computes the state root and
// writes the genesis header together with the canonical-chain indices.
//
// Returns false without touching the database when the canonical header at
// the genesis number already exists.
func InitializeGenesis(db ethdb.Database, chainspec *params.ChainSpec) (bool, error) {
	genesis := chainspec.Genesis.Number
	if rawdb.ReadCanonicalHash(db, genesis) != (common.Hash{}) {
		return false, nil
	}

	stateBuffer := state.NewBuffer(db, genesis, nil)
	stateBuffer.BeginBlock(genesis)
	// Allocate accounts
	if balances, ok := chainspec.Balances[genesis]; ok {
		for address, account := range balances {
			stateBuffer.UpdateAccount(address, nil, &types.StateAccount{
				Nonce:    account.Nonce,
				Balance:  account.Balance,
				Root:     types.EmptyRootHash,
				CodeHash: types.EmptyCodeHash.Bytes(),
			})
			if len(account.Code) > 0 {
				stateBuffer.UpdateCode(address, account.Code)
			}
		}
	}
	if err := stateBuffer.WriteToDB(); err != nil {
		return false, err
	}

	if err := stages.PromoteCleanState(db); err != nil {
		return false, err
	}
	if err := stages.PromoteCleanCode(db); err != nil {
		return false, err
	}
	stateRoot, err := stages.GenerateInterhashes(db)
	if err != nil {
		return false, err
	}

	header := &types.Header{
		ParentHash:  common.Hash{},
		UncleHash:   types.EmptyUncleHash,
		Coinbase:    chainspec.Genesis.Author,
		Root:        stateRoot,
		TxHash:      types.EmptyTxsHash,
		ReceiptHash: types.EmptyReceiptsHash,
		Bloom:       types.Bloom{},
		Difficulty:  chainspec.Genesis.Seal.Difficulty,
		Number:      new(big.Int).SetUint64(genesis),
		GasLimit:    chainspec.Genesis.GasLimit,
		GasUsed:     0,
		Time:        chainspec.Genesis.Timestamp,
		Extra:       chainspec.Genesis.Seal.ExtraData,
		MixDigest:   chainspec.Genesis.Seal.MixHash,
		Nonce:       types.EncodeNonce(chainspec.Genesis.Seal.Nonce),
		BaseFee:     nil,
	}
	blockHash := header.Hash()

	// WriteHeader also stores the hash to number mapping.
	rawdb.WriteHeader(db, header)
	rawdb.WriteCanonicalHash(db, blockHash, genesis)
	rawdb.WriteTd(db, blockHash, genesis, header.Difficulty)

	akularawdb.WriteBodyForStorage(db, genesis, blockHash, &akularawdb.BodyForStorage{
		BaseTxID: 0,
		TxAmount: 0,
	})
	akularawdb.WriteCumulativeIndex(db, genesis, &akularawdb.CumulativeData{Gas: 0, TxNum: 0})

	rawdb.WriteHeadHeaderHash(db, blockHash)
	akularawdb.WriteChainSpec(db, blockHash, chainspec)

	log.Info("Wrote genesis block", "chain", chainspec.Name, "number", genesis, "hash", blockHash)
	return true, nil
}
