package headers

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestPreverifiedHashAlignment(t *testing.T) {
	config := &PreverifiedHashesConfig{
		Name: "test",
		Hashes: []common.Hash{
			common.HexToHash("0x01"),
			common.HexToHash("0x02"),
			common.HexToHash("0x03"),
		},
	}

	for i, blockNum := range []uint64{0, HeaderSliceSize, 2 * HeaderSliceSize} {
		hash, ok := config.PreverifiedHash(blockNum)
		require.True(t, ok)
		require.Equal(t, config.Hashes[i], hash)
	}

	// Off-boundary queries return nothing, no matter whether the derived
	// index would be in range.
	for _, blockNum := range []uint64{1, 100, HeaderSliceSize - 1, HeaderSliceSize + 1, 2*HeaderSliceSize + 17} {
		_, ok := config.PreverifiedHash(blockNum)
		require.False(t, ok, "block %d", blockNum)
	}

	// Aligned but past the end of the table.
	_, ok := config.PreverifiedHash(3 * HeaderSliceSize)
	require.False(t, ok)
}

func TestMainnetPreverifiedHashes(t *testing.T) {
	config, err := NewPreverifiedHashesConfig("mainnet")
	require.NoError(t, err)
	require.NotEmpty(t, config.Hashes)

	hash, ok := config.PreverifiedHash(0)
	require.True(t, ok)
	require.Equal(t, common.HexToHash("0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"), hash)
}

func TestUnknownChainPreverifiedHashes(t *testing.T) {
	_, err := NewPreverifiedHashesConfig("no-such-chain")
	require.Error(t, err)
}
