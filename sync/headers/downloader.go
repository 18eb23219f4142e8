package headers

import (
	"context"

	"github.com/ethereum/go-ethereum/ethdb"
	"golang.org/x/sync/errgroup"
)

// Downloader drives the header pipeline stages. Each stage runs as a
// long-lived loop; a stage error or context cancellation tears down the
// whole group. The network side that fills slices with headers is external;
// it hands completed windows to the slice set via DeliverSlice.
type Downloader struct {
	headerSlices *HeaderSlices
	stages       []Stage
}

// NewDownloader assembles the verify and save stages over the given slices.
func NewDownloader(db ethdb.Database, headerSlices *HeaderSlices, preverifiedHashes *PreverifiedHashesConfig) *Downloader {
	return &Downloader{
		headerSlices: headerSlices,
		stages: []Stage{
			NewVerifyStagePreverified(headerSlices, preverifiedHashes),
			NewSaveStage(headerSlices, db),
		},
	}
}

// HeaderSlices returns the slice set the pipeline operates on.
func (d *Downloader) HeaderSlices() *HeaderSlices {
	return d.headerSlices
}

// Run executes the stages until ctx is cancelled or a stage fails.
func (d *Downloader) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, stage := range d.stages {
		stage := stage
		g.Go(func() error {
			for {
				if err := stage.Execute(ctx); err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}
