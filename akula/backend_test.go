package akula

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tbcd/akula/params"
)

func TestServiceLifecycle(t *testing.T) {
	cfg := DefaultConfig

	backend, err := New(&cfg)
	require.NoError(t, err)
	require.Equal(t, params.MainnetChainName, backend.ChainSpec().Name)

	// The genesis bootstrap seeded the header chain.
	head := backend.HeaderChain().CurrentHeader()
	require.Zero(t, head.Number.Uint64())
	require.Equal(t, backend.HeaderChain().Genesis().Hash(), head.Hash())

	require.NoError(t, backend.Start())
	require.NoError(t, backend.Stop())
}

func TestServiceUnknownChain(t *testing.T) {
	cfg := DefaultConfig
	cfg.Chain = "no-such-chain"

	_, err := New(&cfg)
	require.Error(t, err)
}
