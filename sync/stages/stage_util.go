package stages

import (
	"fmt"

	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/tbcd/akula/core/rawdb"
)

// ShouldDoCleanPromotion decides between a clean (full rebuild) and an
// incremental promotion of a derived index. A clean promotion is chosen right
// after bootstrap, or when the cumulative gas between the past progress and
// the sync target exceeds the threshold.
//
// Both cumulative index rows must exist; a missing row or a non-monotone gas
// reading indicates a corrupt index and aborts the stage.
func ShouldDoCleanPromotion(db ethdb.KeyValueReader, genesis, pastProgress, maxBlock, threshold uint64) (bool, error) {
	current := rawdb.ReadCumulativeIndex(db, pastProgress)
	if current == nil {
		return false, fmt.Errorf("no cumulative index for block %d", pastProgress)
	}
	max := rawdb.ReadCumulativeIndex(db, maxBlock)
	if max == nil {
		return false, fmt.Errorf("no cumulative index for block %d", maxBlock)
	}
	if max.Gas < current.Gas {
		return false, fmt.Errorf("faulty cumulative index: max gas less than current gas (%d < %d)", max.Gas, current.Gas)
	}
	return pastProgress == genesis || max.Gas-current.Gas > threshold, nil
}
