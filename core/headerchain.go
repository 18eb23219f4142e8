package core

import (
	"errors"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/lru"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/tbcd/akula/params"
)

const (
	headerCacheLimit = 512
	numberCacheLimit = 2048
)

// ErrNoGenesis is returned when the chain database has no genesis block.
var ErrNoGenesis = errors.New("genesis not found in chain")

// HeaderChain is the read layer over the persisted header chain: header
// lookups by hash and number, the canonical number mapping and the current
// head marker, cached in front of the database.
//
// It is not thread safe with respect to head updates; the encapsulating
// structures should do the necessary mutex locking/unlocking.
type HeaderChain struct {
	spec    *params.ChainSpec
	chainDb ethdb.Database

	genesisHeader *types.Header
	currentHeader atomic.Value // Current head of the header chain

	headerCache *lru.Cache[common.Hash, *types.Header]
	numberCache *lru.Cache[common.Hash, uint64] // most recent block numbers
}

// NewHeaderChain creates a new HeaderChain structure. The database must hold
// an initialized genesis block.
func NewHeaderChain(chainDb ethdb.Database, spec *params.ChainSpec) (*HeaderChain, error) {
	hc := &HeaderChain{
		spec:        spec,
		chainDb:     chainDb,
		headerCache: lru.NewCache[common.Hash, *types.Header](headerCacheLimit),
		numberCache: lru.NewCache[common.Hash, uint64](numberCacheLimit),
	}
	hc.genesisHeader = hc.GetHeaderByNumber(spec.Genesis.Number)
	if hc.genesisHeader == nil {
		return nil, ErrNoGenesis
	}
	hc.currentHeader.Store(hc.genesisHeader)
	if head := rawdb.ReadHeadHeaderHash(chainDb); head != (common.Hash{}) {
		if chead := hc.GetHeaderByHash(head); chead != nil {
			hc.currentHeader.Store(chead)
		}
	}
	return hc, nil
}

// GetBlockNumber retrieves the block number belonging to the given hash
// from the cache or database.
func (hc *HeaderChain) GetBlockNumber(hash common.Hash) *uint64 {
	if cached, ok := hc.numberCache.Get(hash); ok {
		return &cached
	}
	number := rawdb.ReadHeaderNumber(hc.chainDb, hash)
	if number != nil {
		hc.numberCache.Add(hash, *number)
	}
	return number
}

// GetHeader retrieves a block header from the database by hash and number,
// caching it if found.
func (hc *HeaderChain) GetHeader(hash common.Hash, number uint64) *types.Header {
	if header, ok := hc.headerCache.Get(hash); ok {
		return header
	}
	header := rawdb.ReadHeader(hc.chainDb, hash, number)
	if header == nil {
		return nil
	}
	hc.headerCache.Add(hash, header)
	return header
}

// GetHeaderByHash retrieves a block header from the database by hash, caching
// it if found.
func (hc *HeaderChain) GetHeaderByHash(hash common.Hash) *types.Header {
	number := hc.GetBlockNumber(hash)
	if number == nil {
		return nil
	}
	return hc.GetHeader(hash, *number)
}

// GetHeaderByNumber retrieves a block header from the database by number,
// caching it (associated with its hash) if found.
func (hc *HeaderChain) GetHeaderByNumber(number uint64) *types.Header {
	hash := rawdb.ReadCanonicalHash(hc.chainDb, number)
	if hash == (common.Hash{}) {
		return nil
	}
	return hc.GetHeader(hash, number)
}

// GetCanonicalHash returns the canonical hash for a given block number.
func (hc *HeaderChain) GetCanonicalHash(number uint64) common.Hash {
	return rawdb.ReadCanonicalHash(hc.chainDb, number)
}

// HasHeader checks if a block header is present in the database or not.
func (hc *HeaderChain) HasHeader(hash common.Hash, number uint64) bool {
	if hc.numberCache.Contains(hash) || hc.headerCache.Contains(hash) {
		return true
	}
	return rawdb.HasHeader(hc.chainDb, hash, number)
}

// CurrentHeader retrieves the current head header of the canonical chain.
func (hc *HeaderChain) CurrentHeader() *types.Header {
	return hc.currentHeader.Load().(*types.Header)
}

// SetCurrentHeader sets the in-memory head header marker of the canonical
// chain.
func (hc *HeaderChain) SetCurrentHeader(head *types.Header) {
	hc.currentHeader.Store(head)
}

// Genesis retrieves the chain's genesis block header.
func (hc *HeaderChain) Genesis() *types.Header {
	return hc.genesisHeader
}

// Spec retrieves the header chain's chain specification.
func (hc *HeaderChain) Spec() *params.ChainSpec {
	return hc.spec
}
