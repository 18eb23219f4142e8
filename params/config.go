package params

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core"
	ethparams "github.com/ethereum/go-ethereum/params"
)

var (
	// MainnetChainSpec is the chain specification to run a node on the main network.
	// The genesis allocation is sourced from the canonical go-ethereum genesis so
	// that the bootstrap reproduces the well-known mainnet genesis hash.
	MainnetChainSpec = func() *ChainSpec {
		g := core.DefaultGenesisBlock()
		return &ChainSpec{
			Name:   MainnetChainName,
			Config: g.Config,
			Genesis: GenesisSpec{
				Number:    0,
				Author:    g.Coinbase,
				GasLimit:  g.GasLimit,
				Timestamp: g.Timestamp,
				Seal: SealSpec{
					Difficulty: g.Difficulty,
					ExtraData:  g.ExtraData,
					MixHash:    g.Mixhash,
					Nonce:      g.Nonce,
				},
			},
			Balances: map[uint64]core.GenesisAlloc{0: g.Alloc},
		}
	}()
)

// ChainSpec describes a chain to sync: its genesis block and the balance
// allocations seeded into the genesis state. The serialized form is persisted
// in the Config table keyed by the genesis hash.
type ChainSpec struct {
	Name    string                 `json:"name"`
	Config  *ethparams.ChainConfig `json:"config"`
	Genesis GenesisSpec            `json:"genesis"`

	// Balances maps a block number to the accounts allocated at that block.
	// Only the genesis entry is consulted during bootstrap.
	Balances map[uint64]core.GenesisAlloc `json:"balances,omitempty"`
}

// GenesisSpec describes the genesis block of a chain.
type GenesisSpec struct {
	Number    uint64         `json:"number"`
	Author    common.Address `json:"author"`
	GasLimit  uint64         `json:"gasLimit"`
	Timestamp uint64         `json:"timestamp"`
	Seal      SealSpec       `json:"seal"`
}

// SealSpec holds the consensus seal fields of the genesis header.
type SealSpec struct {
	Difficulty *big.Int      `json:"difficulty"`
	ExtraData  hexutil.Bytes `json:"extraData"`
	MixHash    common.Hash   `json:"mixHash"`
	Nonce      uint64        `json:"nonce"`
}

// ChainSpecByName returns the builtin chain specification with the given name.
func ChainSpecByName(name string) (*ChainSpec, error) {
	switch name {
	case MainnetChainName:
		return MainnetChainSpec, nil
	default:
		return nil, fmt.Errorf("unknown chain %q", name)
	}
}

// Description returns a human-readable description of ChainSpec.
func (c *ChainSpec) Description() string {
	var banner string

	network := ethparams.NetworkNames[c.Config.ChainID.String()]
	if network == "" {
		network = "unknown"
	}
	banner += fmt.Sprintf("Chain ID:  %v (%s)\n", c.Config.ChainID, network)

	return banner
}
