package headers

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// VerifyStagePreverified checks that downloaded header slices match the
// expected preverified hashes and sets the Verified status.
type VerifyStagePreverified struct {
	headerSlices      *HeaderSlices
	pendingWatch      *HeaderSliceStatusWatch
	preverifiedHashes *PreverifiedHashesConfig
}

// NewVerifyStagePreverified constructs the verify stage over the given slice
// set and preverified hash table.
func NewVerifyStagePreverified(headerSlices *HeaderSlices, preverifiedHashes *PreverifiedHashesConfig) *VerifyStagePreverified {
	return &VerifyStagePreverified{
		headerSlices:      headerSlices,
		pendingWatch:      NewHeaderSliceStatusWatch(SliceDownloaded, headerSlices, "VerifyStagePreverified"),
		preverifiedHashes: preverifiedHashes,
	}
}

// Execute waits until at least one slice is Downloaded, then verifies all
// Downloaded slices and transitions each to Verified or Invalid.
func (s *VerifyStagePreverified) Execute(ctx context.Context) error {
	log.Debug("VerifyStagePreverified: start")
	if err := s.pendingWatch.Wait(ctx); err != nil {
		return err
	}

	log.Debug("VerifyStagePreverified: verifying slices", "count", s.pendingWatch.PendingCount())
	s.verifyPending()
	log.Debug("VerifyStagePreverified: done")
	return nil
}

func (s *VerifyStagePreverified) verifyPending() {
	s.headerSlices.ForEach(func(slice *HeaderSlice) {
		slice.lock.RLock()
		if slice.status != SliceDownloaded {
			slice.lock.RUnlock()
			return
		}
		isVerified := s.verifySlice(slice)
		slice.lock.RUnlock()

		slice.lock.Lock()
		// Re-check after reacquiring: another stage may have advanced the
		// slice while the hashes were computed.
		if slice.status == SliceDownloaded {
			if isVerified {
				s.headerSlices.SetSliceStatus(slice, SliceVerified)
			} else {
				s.headerSlices.SetSliceStatus(slice, SliceInvalid)
			}
		}
		slice.lock.Unlock()
	})
}

// verifySlice checks that the edges of the slice match the preverified
// hashes, and that all headers down to the root of the slice are connected by
// the parent hash field.
//
// For example, for a slice covering blocks 192 to 384 inclusive it verifies:
//
//	hash(slice[384]) == preverified hash(384)
//	hash(slice[383]) == slice[384].ParentHash
//	hash(slice[382]) == slice[383].ParentHash
//	...
//	hash(slice[192]) == slice[193].ParentHash
//	hash(slice[192]) == preverified hash(192)
//
// Thus verifying hashes of all the headers. The caller must hold at least the
// slice's read lock.
func (s *VerifyStagePreverified) verifySlice(slice *HeaderSlice) bool {
	if len(slice.headers) == 0 {
		return false
	}

	first := slice.headers[0]
	expectedFirstHash, ok := s.preverifiedHash(slice.startBlockNum)
	if !ok {
		return false
	}
	if first.Hash() != expectedFirstHash {
		return false
	}

	last := slice.headers[len(slice.headers)-1]
	expectedLastHash, ok := s.preverifiedHash(slice.startBlockNum + uint64(len(slice.headers)) - 1)
	if !ok {
		return false
	}
	if last.Hash() != expectedLastHash {
		return false
	}

	return VerifySliceIsLinkedByParentHash(slice.headers)
}

func (s *VerifyStagePreverified) preverifiedHash(blockNum uint64) (common.Hash, bool) {
	return s.preverifiedHashes.PreverifiedHash(blockNum)
}
