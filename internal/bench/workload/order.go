package workload

import "math/rand"

// ShuffledIndices returns the indices 0..n-1 in an order shuffled
// deterministically by seed. Every call builds a fresh generator, so equal
// seeds yield equal permutations for the lifetime of the process.
func ShuffledIndices(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}
