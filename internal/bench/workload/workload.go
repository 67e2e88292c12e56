// Package workload drives read and update passes over a counter table in
// seed-shuffled cell order.
//
// A pass visits every cell exactly once. The shuffle keeps a fleet of
// workers from marching over cell 0 in lockstep and, for a sharded table,
// spreads the fleet across shards. The pauses between calls are part of the
// workload shape, not incidental throttling.
package workload

import (
	"time"

	"github.com/go-faster/errors"

	"github.com/andrewstephens75/ThreadingTest/internal/bench/table"
)

// Store is the cell-access surface a pass drives. *table.Table satisfies it.
type Store interface {
	Read(cell int) (int64, error)
	Update(cell int, delta int64) error
}

// Pauses inserted after each call within a pass, including the last one.
const (
	readPause   = 1 * time.Millisecond
	updatePause = 10 * time.Millisecond
)

// ReadAll reads each of the table's cells once in the order shuffled by
// seed, pausing 1ms after every read. The first failed read aborts the pass.
func ReadAll(s Store, seed int64) error {
	for _, cell := range ShuffledIndices(table.Size, seed) {
		if _, err := s.Read(cell); err != nil {
			return errors.Wrapf(err, "read pass seed %d", seed)
		}
		time.Sleep(readPause)
	}
	return nil
}

// UpdateAll adds delta to each of the table's cells once in the order
// shuffled by seed, pausing 10ms after every update. The first failed update
// aborts the pass.
func UpdateAll(s Store, delta int64, seed int64) error {
	for _, cell := range ShuffledIndices(table.Size, seed) {
		if err := s.Update(cell, delta); err != nil {
			return errors.Wrapf(err, "update pass seed %d", seed)
		}
		time.Sleep(updatePause)
	}
	return nil
}
