package headers

import "context"

// Stage is a phase of the header download pipeline. Execute processes one
// batch of pending slices and returns; the pipeline driver re-invokes it in a
// loop. Execute blocks until work is available or ctx is cancelled.
type Stage interface {
	Execute(ctx context.Context) error
}
