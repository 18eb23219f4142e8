package headers

import (
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/core/types"
)

// HeaderSliceSize is the block stride of a header slice. It equals the stride
// of the preverified hash table, so slice boundaries land on trusted anchors.
const HeaderSliceSize = 192

// HeaderSliceStatus is the lifecycle state of a header slice.
type HeaderSliceStatus uint8

const (
	// SliceEmpty: the slice hasn't been requested from the network yet.
	SliceEmpty HeaderSliceStatus = iota
	// SliceRequested: a request for the slice's headers is in flight.
	SliceRequested
	// SliceDownloaded: headers are present but not verified.
	SliceDownloaded
	// SliceVerified: the hash chain matches the preverified anchors.
	SliceVerified
	// SliceInvalid: verification failed; the slice must be re-requested.
	SliceInvalid
	// SliceSaved: the headers were persisted to the database.
	SliceSaved

	numSliceStatuses
)

func (s HeaderSliceStatus) String() string {
	switch s {
	case SliceEmpty:
		return "Empty"
	case SliceRequested:
		return "Requested"
	case SliceDownloaded:
		return "Downloaded"
	case SliceVerified:
		return "Verified"
	case SliceInvalid:
		return "Invalid"
	case SliceSaved:
		return "Saved"
	}
	return "Unknown"
}

// HeaderSlice is a window of headers covering the inclusive anchor-to-anchor
// block range [startBlockNum, startBlockNum+HeaderSliceSize], so both the
// first and last headers sit on preverified stride points. Adjacent slices
// share their boundary header.
//
// The fields are guarded by lock; stages take the read lock to inspect and
// the write lock to transition the status.
type HeaderSlice struct {
	lock sync.RWMutex

	startBlockNum uint64
	status        HeaderSliceStatus
	headers       []*types.Header
}

// StartBlockNum returns the first block number covered by the slice.
func (s *HeaderSlice) StartBlockNum() uint64 { return s.startBlockNum }

// Status returns the slice's current lifecycle state.
func (s *HeaderSlice) Status() HeaderSliceStatus {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.status
}

// HeaderSlices is the ordered set of header slices covering a contiguous
// block range. Each slice carries its own lock; iteration takes no
// collection-wide lock, so stages working on disjoint slices proceed in
// parallel. Per-status counters change atomically with the guarded status
// field, and transitions into a status signal its notification channel.
type HeaderSlices struct {
	slices []*HeaderSlice

	counters [numSliceStatuses]atomic.Int64
	notify   [numSliceStatuses]chan struct{}
}

// NewHeaderSlices creates slices covering [startBlockNum, finalBlockNum).
// startBlockNum must be a multiple of HeaderSliceSize.
func NewHeaderSlices(startBlockNum, finalBlockNum uint64) *HeaderSlices {
	hs := &HeaderSlices{}
	for i := range hs.notify {
		hs.notify[i] = make(chan struct{}, 1)
	}
	for start := startBlockNum; start < finalBlockNum; start += HeaderSliceSize {
		hs.slices = append(hs.slices, &HeaderSlice{startBlockNum: start, status: SliceEmpty})
	}
	hs.counters[SliceEmpty].Store(int64(len(hs.slices)))
	return hs
}

// ForEach visits the slices in ascending block order. The visitor is
// responsible for locking each slice.
func (hs *HeaderSlices) ForEach(visit func(slice *HeaderSlice)) {
	for _, slice := range hs.slices {
		visit(slice)
	}
}

// Find returns the slice starting at the given block number, or nil.
func (hs *HeaderSlices) Find(startBlockNum uint64) *HeaderSlice {
	for _, slice := range hs.slices {
		if slice.startBlockNum == startBlockNum {
			return slice
		}
	}
	return nil
}

// StatusCounter returns the number of slices currently in the given status.
func (hs *HeaderSlices) StatusCounter(status HeaderSliceStatus) int {
	return int(hs.counters[status].Load())
}

// SetSliceStatus transitions a slice's status and keeps the status counters
// consistent. The caller must hold the slice's write lock, so the status and
// counter change as one event to outside observers.
func (hs *HeaderSlices) SetSliceStatus(slice *HeaderSlice, status HeaderSliceStatus) {
	if slice.status == status {
		return
	}
	hs.counters[slice.status].Add(-1)
	hs.counters[status].Add(1)
	slice.status = status

	select {
	case hs.notify[status] <- struct{}{}:
	default:
	}
}

// DeliverSlice fills the slice starting at startBlockNum with downloaded
// headers and marks it Downloaded. Returns false if no such slice exists or
// it is already past the download phase.
func (hs *HeaderSlices) DeliverSlice(startBlockNum uint64, headers []*types.Header) bool {
	slice := hs.Find(startBlockNum)
	if slice == nil {
		return false
	}
	slice.lock.Lock()
	defer slice.lock.Unlock()
	if slice.status != SliceEmpty && slice.status != SliceRequested && slice.status != SliceInvalid {
		return false
	}
	slice.headers = headers
	hs.SetSliceStatus(slice, SliceDownloaded)
	return true
}

// statusNotify returns the channel signalled on transitions into status.
func (hs *HeaderSlices) statusNotify(status HeaderSliceStatus) <-chan struct{} {
	return hs.notify[status]
}
