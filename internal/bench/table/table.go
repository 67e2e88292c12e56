package table

import (
	"time"

	"github.com/go-faster/errors"
)

const (
	// Size is the number of cells in every table.
	Size = 10
	// ShardCount is the number of locks in the Sharded variant; cell i is
	// owned by shard i mod ShardCount.
	ShardCount = Size / 2
)

// Artificial per-operation work. The sleeps widen the critical sections far
// enough that lock behavior is observable on human timescales; removing them
// changes what the benchmark measures.
const (
	readDelay   = 1 * time.Millisecond
	updateDelay = 5 * time.Millisecond
)

// Table is a fixed array of Size int64 cells guarded by the lock policy of
// its variant. The zero cells at construction plus the workload's net-zero
// update sequence give the zero-sum oracle checked by AllZero.
type Table struct {
	variant Variant
	policy  lockPolicy
	stats   Stats
	cells   [Size]int64
}

// New returns a zeroed table synchronized according to v.
func New(v Variant) *Table {
	return &Table{
		variant: v,
		policy:  policyFor(v),
	}
}

// Variant reports which locking strategy the table was built with.
func (t *Table) Variant() Variant {
	return t.variant
}

// Read returns the value of one cell after simulating 1ms of work under the
// variant's read-mode lock. An index outside [0, Size) fails with
// ErrOutOfBounds after the delay, with the lock released on the way out.
func (t *Table) Read(cell int) (int64, error) {
	l := t.policy.readLocker(cell)
	l.Lock()
	defer l.Unlock()

	t.stats.enterRead()
	defer t.stats.leaveRead()

	time.Sleep(readDelay)
	if cell < 0 || cell >= Size {
		return 0, errors.Wrapf(ErrOutOfBounds, "read cell %d", cell)
	}
	return t.cells[cell], nil
}

// Update adds delta to one cell after simulating 5ms of work under the
// variant's write-mode lock. An index outside [0, Size) fails with
// ErrOutOfBounds and leaves every cell unchanged.
func (t *Table) Update(cell int, delta int64) error {
	l := t.policy.writeLocker(cell)
	l.Lock()
	defer l.Unlock()

	t.stats.enterUpdate()
	defer t.stats.leaveUpdate()

	time.Sleep(updateDelay)
	if cell < 0 || cell >= Size {
		return errors.Wrapf(ErrOutOfBounds, "update cell %d", cell)
	}
	t.cells[cell] += delta
	return nil
}

// AllZero reports whether every cell equals zero. It takes no locks and is
// meaningful only after all workers have been joined.
func (t *Table) AllZero() bool {
	for _, c := range t.cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// Cells returns a copy of the table contents. Unsynchronized, post-join use
// only, like AllZero.
func (t *Table) Cells() [Size]int64 {
	return t.cells
}

// Stats returns a snapshot of the table's instrumentation counters.
func (t *Table) Stats() Snapshot {
	return t.stats.snapshot()
}
