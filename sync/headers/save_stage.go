package headers

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
)

// SaveStage persists verified header slices to the database and sets the
// Saved status. Slices are saved strictly left to right so the total
// difficulty of each header can be chained from its parent row; a verified
// slice behind an unverified one waits for the next pass.
type SaveStage struct {
	headerSlices *HeaderSlices
	db           ethdb.Database
	pendingWatch *HeaderSliceStatusWatch
}

// NewSaveStage constructs the save stage writing to db.
func NewSaveStage(headerSlices *HeaderSlices, db ethdb.Database) *SaveStage {
	return &SaveStage{
		headerSlices: headerSlices,
		db:           db,
		pendingWatch: NewHeaderSliceStatusWatch(SliceVerified, headerSlices, "SaveStage"),
	}
}

// Execute waits until at least one slice is Verified, then saves the maximal
// contiguous run of verified slices.
func (s *SaveStage) Execute(ctx context.Context) error {
	log.Debug("SaveStage: start")
	if err := s.pendingWatch.Wait(ctx); err != nil {
		return err
	}

	log.Debug("SaveStage: saving slices", "count", s.pendingWatch.PendingCount())
	if err := s.savePending(); err != nil {
		return err
	}
	log.Debug("SaveStage: done")
	return nil
}

func (s *SaveStage) savePending() error {
	var stop bool
	var saveErr error
	s.headerSlices.ForEach(func(slice *HeaderSlice) {
		if stop || saveErr != nil {
			return
		}

		slice.lock.RLock()
		status := slice.status
		headers := slice.headers
		slice.lock.RUnlock()

		switch status {
		case SliceSaved:
			return
		case SliceVerified:
		default:
			// Saving past this point would break the total difficulty chain.
			stop = true
			return
		}

		if err := s.saveSlice(headers); err != nil {
			saveErr = err
			return
		}

		slice.lock.Lock()
		if slice.status == SliceVerified {
			s.headerSlices.SetSliceStatus(slice, SliceSaved)
		}
		slice.lock.Unlock()
	})
	return saveErr
}

// saveSlice writes the slice's headers, canonical hashes and total
// difficulties. The slice's first header is the anchor shared with the
// previous slice (or the genesis block) and must already be persisted; its
// total difficulty row seeds the chain for the rest of the window.
func (s *SaveStage) saveSlice(headers []*types.Header) error {
	if len(headers) == 0 {
		return fmt.Errorf("verified slice with no headers")
	}
	first := headers[0]
	td := rawdb.ReadTd(s.db, first.Hash(), first.Number.Uint64())
	if td == nil {
		return fmt.Errorf("no total difficulty for block %d", first.Number.Uint64())
	}

	batch := s.db.NewBatch()
	for _, header := range headers[1:] {
		number := header.Number.Uint64()
		td = new(big.Int).Add(td, header.Difficulty)
		rawdb.WriteHeader(batch, header)
		rawdb.WriteCanonicalHash(batch, header.Hash(), number)
		rawdb.WriteTd(batch, header.Hash(), number, td)
	}
	last := headers[len(headers)-1]
	rawdb.WriteHeadHeaderHash(batch, last.Hash())
	return batch.Write()
}
