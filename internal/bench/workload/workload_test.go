package workload

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewstephens75/ThreadingTest/internal/bench/table"
)

// recordingStore captures the call sequence of one pass and can be told to
// fail from the nth call on.
type recordingStore struct {
	reads   []int
	updates []int
	deltas  []int64

	calls  int
	failAt int // 1-based call index to start failing at; 0 never fails
	err    error
}

func (s *recordingStore) Read(cell int) (int64, error) {
	s.calls++
	if s.failAt != 0 && s.calls >= s.failAt {
		return 0, s.err
	}
	s.reads = append(s.reads, cell)
	return 0, nil
}

func (s *recordingStore) Update(cell int, delta int64) error {
	s.calls++
	if s.failAt != 0 && s.calls >= s.failAt {
		return s.err
	}
	s.updates = append(s.updates, cell)
	s.deltas = append(s.deltas, delta)
	return nil
}

func allCells() []int {
	cells := make([]int, table.Size)
	for i := range cells {
		cells[i] = i
	}
	return cells
}

func TestReadAllVisitsEveryCellOnce(t *testing.T) {
	s := &recordingStore{}
	require.NoError(t, ReadAll(s, 7))
	assert.ElementsMatch(t, allCells(), s.reads)
}

func TestReadAllFollowsShuffledOrder(t *testing.T) {
	s := &recordingStore{}
	require.NoError(t, ReadAll(s, 42))
	assert.Equal(t, ShuffledIndices(table.Size, 42), s.reads)
}

func TestUpdateAllAppliesDeltaOncePerCell(t *testing.T) {
	s := &recordingStore{}
	require.NoError(t, UpdateAll(s, -40, 3))
	assert.ElementsMatch(t, allCells(), s.updates)
	for _, d := range s.deltas {
		assert.Equal(t, int64(-40), d)
	}
}

func TestReadAllStopsOnFirstError(t *testing.T) {
	boom := errors.New("backing store went away")
	s := &recordingStore{failAt: 3, err: boom}

	err := ReadAll(s, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "read pass seed 1")
	assert.Len(t, s.reads, 2)
}

func TestUpdateAllStopsOnFirstError(t *testing.T) {
	boom := errors.New("backing store went away")
	s := &recordingStore{failAt: 5, err: boom}

	err := UpdateAll(s, 25, 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "update pass seed 9")
	assert.Len(t, s.updates, 4)
}

func TestUpdateAllPropagatesOutOfBounds(t *testing.T) {
	// A real table never sees bad indices from a pass; drive the table
	// directly through a store that widens the index instead.
	tbl := table.New(table.Sharded)
	err := UpdateAll(offsetStore{tbl}, 1, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrOutOfBounds)
	assert.True(t, tbl.AllZero())
}

// offsetStore shifts every index past the end of the table.
type offsetStore struct {
	tbl *table.Table
}

func (o offsetStore) Read(cell int) (int64, error) {
	return o.tbl.Read(cell + table.Size)
}

func (o offsetStore) Update(cell int, delta int64) error {
	return o.tbl.Update(cell+table.Size, delta)
}

func TestUpdatePassesNetToZeroOnTable(t *testing.T) {
	tbl := table.New(table.SingleMutex)
	for _, delta := range []int64{25, -40, 15} {
		require.NoError(t, UpdateAll(tbl, delta, 5))
	}
	assert.True(t, tbl.AllZero())
	assert.Equal(t, int64(3*table.Size), tbl.Stats().Updates)
}
