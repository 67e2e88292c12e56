// Package harness runs the benchmark workload against each locking variant
// and reports the outcome.
//
// # Fleet
//
// One run spawns the updater goroutines first, then the readers, all on a
// single errgroup. Every updater performs three full update passes with
// deltas +25, -40 and +15; the deltas sum to zero, so a correctly
// synchronized table ends the run with every cell back at zero. Every
// reader performs one read pass.
//
// # Seeds
//
// A worker's shuffle seed is the number of workers spawned before it:
// updaters take 0..Updaters-1 and readers continue from there. An updater
// keeps its one seed across all three passes. Seeding by spawn order makes
// the access orders deterministic for a given fleet shape, so every variant
// faces the same workload and the timings stay comparable.
//
// # Timing and Verdict
//
// The clock starts before the first spawn and stops after the join. The
// verdict line reports the zero-sum oracle: Pass when every cell is zero,
// FAILED!!! otherwise. The unlocked variant is expected to fail on most
// runs; that failure is the demonstration, not an error, so Run still
// returns a nil error for it.
package harness
