package table

import "go.uber.org/atomic"

// Stats tracks operation counts and in-critical-section concurrency for one
// Table. All fields are updated with lock-free atomics between lock acquire
// and release, so the instrumentation never adds synchronization of its own
// beyond the variant under test.
type Stats struct {
	reads   atomic.Int64
	updates atomic.Int64

	active     atomic.Int64
	peakActive atomic.Int64

	readers     atomic.Int64
	peakReaders atomic.Int64
}

// Snapshot is a point-in-time copy of a table's statistics.
type Snapshot struct {
	// Reads is the number of read operations performed.
	Reads int64
	// Updates is the number of update operations performed.
	Updates int64
	// PeakConcurrent is the highest number of operations that were inside
	// their critical sections at the same moment.
	PeakConcurrent int64
	// PeakReaders is the highest number of simultaneous read operations.
	PeakReaders int64
}

func (s *Stats) enterRead() {
	raiseMax(&s.peakActive, s.active.Inc())
	raiseMax(&s.peakReaders, s.readers.Inc())
}

func (s *Stats) leaveRead() {
	s.readers.Dec()
	s.active.Dec()
	s.reads.Inc()
}

func (s *Stats) enterUpdate() {
	raiseMax(&s.peakActive, s.active.Inc())
}

func (s *Stats) leaveUpdate() {
	s.active.Dec()
	s.updates.Inc()
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		Reads:          s.reads.Load(),
		Updates:        s.updates.Load(),
		PeakConcurrent: s.peakActive.Load(),
		PeakReaders:    s.peakReaders.Load(),
	}
}

// raiseMax lifts peak to cur if cur is higher. Concurrent raisers may race
// on the CAS; the loop retries until cur is covered by the stored maximum.
func raiseMax(peak *atomic.Int64, cur int64) {
	for {
		prev := peak.Load()
		if cur <= prev || peak.CompareAndSwap(prev, cur) {
			return
		}
	}
}
