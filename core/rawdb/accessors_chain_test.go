package rawdb

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/rawdb"
	ethparams "github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"

	"github.com/tbcd/akula/params"
)

func TestCumulativeIndexStorage(t *testing.T) {
	db := rawdb.NewMemoryDatabase()

	require.Nil(t, ReadCumulativeIndex(db, 7))

	WriteCumulativeIndex(db, 7, &CumulativeData{Gas: 123456, TxNum: 42})
	row := ReadCumulativeIndex(db, 7)
	require.NotNil(t, row)
	require.Equal(t, uint64(123456), row.Gas)
	require.Equal(t, uint64(42), row.TxNum)

	// Neighbouring rows are unaffected.
	require.Nil(t, ReadCumulativeIndex(db, 6))
	require.Nil(t, ReadCumulativeIndex(db, 8))
}

func TestBodyForStorageStorage(t *testing.T) {
	db := rawdb.NewMemoryDatabase()
	hash := common.HexToHash("0x0a")

	require.Nil(t, ReadBodyForStorage(db, 1, hash))

	WriteBodyForStorage(db, 1, hash, &BodyForStorage{BaseTxID: 9, TxAmount: 3})
	body := ReadBodyForStorage(db, 1, hash)
	require.NotNil(t, body)
	require.Equal(t, uint64(9), body.BaseTxID)
	require.Equal(t, uint32(3), body.TxAmount)
	require.Empty(t, body.Uncles)

	// Same number, different hash misses.
	require.Nil(t, ReadBodyForStorage(db, 1, common.HexToHash("0x0b")))
}

func TestChainSpecStorage(t *testing.T) {
	db := rawdb.NewMemoryDatabase()
	hash := common.HexToHash("0xcc")

	require.Nil(t, ReadChainSpec(db, hash))

	addr := common.HexToAddress("0x0000000000000000000000000000000000000042")
	spec := &params.ChainSpec{
		Name:   "test",
		Config: ethparams.TestChainConfig,
		Genesis: params.GenesisSpec{
			Number:    0,
			GasLimit:  5000,
			Timestamp: 1438269973,
			Seal: params.SealSpec{
				Difficulty: big.NewInt(17179869184),
				Nonce:      0x42,
			},
		},
		Balances: map[uint64]core.GenesisAlloc{
			0: {addr: {Balance: big.NewInt(1000)}},
		},
	}
	WriteChainSpec(db, hash, spec)

	stored := ReadChainSpec(db, hash)
	require.NotNil(t, stored)
	require.Equal(t, spec.Name, stored.Name)
	require.Equal(t, spec.Genesis.GasLimit, stored.Genesis.GasLimit)
	require.Equal(t, spec.Genesis.Seal.Difficulty, stored.Genesis.Seal.Difficulty)
	require.Equal(t, spec.Genesis.Seal.Nonce, stored.Genesis.Seal.Nonce)
	require.Equal(t, big.NewInt(1000), stored.Balances[0][addr].Balance)
}
