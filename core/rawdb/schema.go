package rawdb

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// Database key prefixes for the tables maintained on top of the upstream
// go-ethereum chain schema. Upstream prefixes are single lowercase letters;
// these use two-letter prefixes to stay out of that namespace.
var (
	cumulativeIndexPrefix = []byte("ci") // cumulativeIndexPrefix + num (uint64 big endian) -> CumulativeData RLP
	bodyForStoragePrefix  = []byte("bs") // bodyForStoragePrefix + num (uint64 big endian) + hash -> BodyForStorage RLP

	plainAccountPrefix  = []byte("pa") // plainAccountPrefix + address -> account RLP
	plainCodePrefix     = []byte("pk") // plainCodePrefix + address -> contract code
	hashedAccountPrefix = []byte("ha") // hashedAccountPrefix + keccak(address) -> account RLP

	chainSpecPrefix = []byte("akula-config-") // chainSpecPrefix + genesis hash -> ChainSpec JSON
)

// encodeBlockNumber encodes a block number as big endian uint64.
func encodeBlockNumber(number uint64) []byte {
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, number)
	return enc
}

// cumulativeIndexKey = cumulativeIndexPrefix + num (uint64 big endian)
func cumulativeIndexKey(number uint64) []byte {
	return append(cumulativeIndexPrefix, encodeBlockNumber(number)...)
}

// bodyForStorageKey = bodyForStoragePrefix + num (uint64 big endian) + hash
func bodyForStorageKey(number uint64, hash common.Hash) []byte {
	return append(append(bodyForStoragePrefix, encodeBlockNumber(number)...), hash.Bytes()...)
}

// plainAccountKey = plainAccountPrefix + address
func plainAccountKey(address common.Address) []byte {
	return append(plainAccountPrefix, address.Bytes()...)
}

// plainCodeKey = plainCodePrefix + address
func plainCodeKey(address common.Address) []byte {
	return append(plainCodePrefix, address.Bytes()...)
}

// hashedAccountKey = hashedAccountPrefix + keccak(address)
func hashedAccountKey(hash common.Hash) []byte {
	return append(hashedAccountPrefix, hash.Bytes()...)
}

// chainSpecKey = chainSpecPrefix + genesis hash
func chainSpecKey(hash common.Hash) []byte {
	return append(chainSpecPrefix, hash.Bytes()...)
}

// PlainAccountPrefix exposes the plain-state table prefix for range scans.
func PlainAccountPrefix() []byte { return plainAccountPrefix }

// PlainCodePrefix exposes the plain-code table prefix for range scans.
func PlainCodePrefix() []byte { return plainCodePrefix }

// HashedAccountPrefix exposes the hashed-state table prefix for range scans.
func HashedAccountPrefix() []byte { return hashedAccountPrefix }
