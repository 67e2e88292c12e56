package workload

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewstephens75/ThreadingTest/internal/bench/table"
)

func TestShuffledIndicesIsPermutation(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		order := ShuffledIndices(table.Size, seed)
		require.Len(t, order, table.Size, "seed %d", seed)

		seen := make([]bool, table.Size)
		for _, cell := range order {
			require.GreaterOrEqual(t, cell, 0, "seed %d", seed)
			require.Less(t, cell, table.Size, "seed %d", seed)
			require.False(t, seen[cell], "seed %d repeats cell %d", seed, cell)
			seen[cell] = true
		}
	}
}

func TestShuffledIndicesDeterministic(t *testing.T) {
	assert.Equal(t, ShuffledIndices(table.Size, 42), ShuffledIndices(table.Size, 42))

	for seed := int64(0); seed < 20; seed++ {
		assert.Equal(t,
			ShuffledIndices(table.Size, seed),
			ShuffledIndices(table.Size, seed),
			"seed %d", seed)
	}
}

func TestShuffledIndicesVariesAcrossSeeds(t *testing.T) {
	// Not every pair of seeds must differ, but a hundred seeds collapsing
	// onto one order would mean the seed is ignored.
	distinct := map[string]struct{}{}
	for seed := int64(0); seed < 100; seed++ {
		distinct[fmt.Sprint(ShuffledIndices(table.Size, seed))] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestShuffledIndicesSmallN(t *testing.T) {
	assert.Equal(t, []int{0}, ShuffledIndices(1, 7))
	assert.Empty(t, ShuffledIndices(0, 7))
}
