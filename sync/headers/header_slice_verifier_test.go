package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifySliceIsLinkedByParentHash(t *testing.T) {
	chain := makeHeaderChain(0, 10)
	require.True(t, VerifySliceIsLinkedByParentHash(chain))

	// Perturbing any header that has a successor breaks the chain.
	chain[5].GasUsed++
	require.False(t, VerifySliceIsLinkedByParentHash(chain))
}

func TestVerifySliceIsLinkedTrivial(t *testing.T) {
	require.True(t, VerifySliceIsLinkedByParentHash(nil))
	require.True(t, VerifySliceIsLinkedByParentHash(makeHeaderChain(0, 1)))
}

func TestVerifySliceBrokenLink(t *testing.T) {
	chain := makeHeaderChain(0, 10)
	chain[7].ParentHash[0] ^= 0xff
	require.False(t, VerifySliceIsLinkedByParentHash(chain))
}
