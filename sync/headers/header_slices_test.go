package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHeaderSlices(t *testing.T) {
	slices := NewHeaderSlices(0, 4*HeaderSliceSize)

	var starts []uint64
	slices.ForEach(func(slice *HeaderSlice) {
		starts = append(starts, slice.StartBlockNum())
	})
	require.Equal(t, []uint64{0, HeaderSliceSize, 2 * HeaderSliceSize, 3 * HeaderSliceSize}, starts)
	require.Equal(t, 4, slices.StatusCounter(SliceEmpty))
	require.Equal(t, 0, slices.StatusCounter(SliceDownloaded))
}

func TestDeliverSlice(t *testing.T) {
	slices := NewHeaderSlices(0, 2*HeaderSliceSize)
	chain := makeHeaderChain(0, sliceWindow)

	// No slice starts at an off-stride block.
	require.False(t, slices.DeliverSlice(100, chain))

	require.True(t, slices.DeliverSlice(0, chain))
	require.Equal(t, SliceDownloaded, slices.Find(0).Status())
	require.Equal(t, 1, slices.StatusCounter(SliceDownloaded))
	require.Equal(t, 1, slices.StatusCounter(SliceEmpty))

	// A downloaded slice is not overwritten.
	require.False(t, slices.DeliverSlice(0, chain))
}

func TestDeliverSliceAfterInvalid(t *testing.T) {
	slices := NewHeaderSlices(0, HeaderSliceSize)
	chain := makeHeaderChain(0, sliceWindow)

	require.True(t, slices.DeliverSlice(0, chain))
	slice := slices.Find(0)
	slice.lock.Lock()
	slices.SetSliceStatus(slice, SliceInvalid)
	slice.lock.Unlock()

	// Invalid slices are re-requested and re-delivered.
	require.True(t, slices.DeliverSlice(0, chain))
	require.Equal(t, SliceDownloaded, slice.Status())
}
