package headers

import (
	"context"

	"github.com/ethereum/go-ethereum/log"
)

// HeaderSliceStatusWatch is a single-consumer rendezvous between a stage that
// produces slices in a given status and the stage that consumes them.
type HeaderSliceStatusWatch struct {
	status HeaderSliceStatus
	slices *HeaderSlices
	name   string
}

// NewHeaderSliceStatusWatch constructs a watch over the given status. The
// name labels log output of the owning stage.
func NewHeaderSliceStatusWatch(status HeaderSliceStatus, slices *HeaderSlices, name string) *HeaderSliceStatusWatch {
	return &HeaderSliceStatusWatch{
		status: status,
		slices: slices,
		name:   name,
	}
}

// PendingCount returns the number of slices currently in the watched status.
func (w *HeaderSliceStatusWatch) PendingCount() int {
	return w.slices.StatusCounter(w.status)
}

// Wait blocks until at least one slice is in the watched status. It returns
// immediately if the condition already holds; otherwise it parks on the
// status notification channel and re-checks on every signal; a burst of
// transitions coalesces into a single wake-up. The watch keeps no record of
// earlier calls: while slices remain in the watched status every call returns
// immediately, so a batch wakes the consumer once only if the consumer moves
// those slices out of the status. Cancellation of ctx surfaces as ctx.Err()
// and leaves the counters untouched.
func (w *HeaderSliceStatusWatch) Wait(ctx context.Context) error {
	for w.PendingCount() == 0 {
		log.Trace("HeaderSliceStatusWatch: waiting", "name", w.name, "status", w.status)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.slices.statusNotify(w.status):
		}
	}
	return nil
}
