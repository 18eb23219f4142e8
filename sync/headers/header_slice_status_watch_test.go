package headers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchLevelTriggered(t *testing.T) {
	slices := NewHeaderSlices(0, HeaderSliceSize)
	watch := NewHeaderSliceStatusWatch(SliceDownloaded, slices, "test")

	require.True(t, slices.DeliverSlice(0, makeHeaderChain(0, sliceWindow)))

	// The condition already holds, so Wait returns without a notification.
	require.NoError(t, watch.Wait(context.Background()))
	require.Equal(t, 1, watch.PendingCount())
}

func TestWatchEdgeTriggered(t *testing.T) {
	slices := NewHeaderSlices(0, 2*HeaderSliceSize)
	watch := NewHeaderSliceStatusWatch(SliceDownloaded, slices, "test")

	// First batch wakes the consumer once.
	require.True(t, slices.DeliverSlice(0, makeHeaderChain(0, sliceWindow)))
	require.NoError(t, watch.Wait(context.Background()))

	// Consume the batch.
	slice := slices.Find(0)
	slice.lock.Lock()
	slices.SetSliceStatus(slice, SliceVerified)
	slice.lock.Unlock()

	// No further producers: the same batch must not wake the consumer twice.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, watch.Wait(ctx), context.DeadlineExceeded)

	// A second batch wakes it again.
	require.True(t, slices.DeliverSlice(HeaderSliceSize, makeHeaderChain(HeaderSliceSize, sliceWindow)))
	require.NoError(t, watch.Wait(context.Background()))
}

func TestWatchCancellation(t *testing.T) {
	slices := NewHeaderSlices(0, HeaderSliceSize)
	watch := NewHeaderSliceStatusWatch(SliceDownloaded, slices, "test")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watch.Wait(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watch did not observe cancellation")
	}
	// Cancellation leaves the counters untouched.
	require.Equal(t, 0, watch.PendingCount())
	require.Equal(t, 1, slices.StatusCounter(SliceEmpty))
}
