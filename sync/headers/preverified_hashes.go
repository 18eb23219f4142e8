package headers

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/naoina/toml"
)

//go:embed preverified_hashes_mainnet.toml
var preverifiedHashesData embed.FS

// PreverifiedHashesConfig is the immutable list of trusted header hashes for
// a chain. Entry i is the hash of the header at block i*HeaderSliceSize. The
// list ships with the release and is part of the trust root, so its file
// format must stay stable.
type PreverifiedHashesConfig struct {
	Name   string
	Hashes []common.Hash
}

type preverifiedHashesFile struct {
	Hashes []string `toml:"hashes"`
}

// NewPreverifiedHashesConfig loads the embedded preverified hashes for the
// given chain name.
func NewPreverifiedHashesConfig(chainName string) (*PreverifiedHashesConfig, error) {
	data, err := preverifiedHashesData.ReadFile(fmt.Sprintf("preverified_hashes_%s.toml", chainName))
	if err != nil {
		return nil, fmt.Errorf("no preverified hashes for chain %q: %w", chainName, err)
	}
	return parsePreverifiedHashes(chainName, data)
}

// LoadPreverifiedHashes loads a preverified hashes file from disk.
func LoadPreverifiedHashes(chainName, path string) (*PreverifiedHashesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parsePreverifiedHashes(chainName, data)
}

func parsePreverifiedHashes(chainName string, data []byte) (*PreverifiedHashesConfig, error) {
	var file preverifiedHashesFile
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid preverified hashes for chain %q: %w", chainName, err)
	}
	config := &PreverifiedHashesConfig{
		Name:   chainName,
		Hashes: make([]common.Hash, len(file.Hashes)),
	}
	for i, hash := range file.Hashes {
		config.Hashes[i] = common.HexToHash(hash)
	}
	return config, nil
}

// PreverifiedHash returns the trusted hash anchored at the given block
// number. Only block numbers that are exact multiples of HeaderSliceSize have
// anchors; any other query returns false, as does a block past the end of the
// list.
func (c *PreverifiedHashesConfig) PreverifiedHash(blockNum uint64) (common.Hash, bool) {
	const step = uint64(HeaderSliceSize)
	if blockNum%step != 0 {
		return common.Hash{}, false
	}
	index := blockNum / step
	if index >= uint64(len(c.Hashes)) {
		return common.Hash{}, false
	}
	return c.Hashes[index], true
}
