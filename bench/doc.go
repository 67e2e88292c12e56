// Package bench is the public surface of the ThreadingTest lock-strategy
// benchmark.
//
// The benchmark compares four ways of guarding one ten-cell counter table
// under a read-heavy concurrent workload: no locking at all, a single
// exclusive mutex, a reader-writer lock, and five shard mutexes. Every read
// simulates 1ms of work and every update 5ms, inside the critical section,
// so lock behavior is visible in wall time.
//
// # Quick Start
//
// Run the whole suite the way the threadingtest binary does:
//
//	err := bench.RunAll(os.Stdout, bench.DefaultOptions())
//
// Each variant prints a four-line report: label, elapsed milliseconds, the
// final cell contents, and a Pass/FAILED!!! zero-sum verdict. The unlocked
// variant is expected to fail the verdict on most runs; that is the data
// race it exists to demonstrate.
//
// # Single Runs
//
// Run one variant with a custom fleet and inspect the outcome directly:
//
//	res, err := bench.Run(bench.Sharded, bench.Options{Updaters: 10, Readers: 50})
//	if err != nil {
//		// a worker failed; the run is void
//	}
//	fmt.Println(res.AllZero, res.Elapsed, res.Stats.PeakConcurrent)
//
// The Stats snapshot exposes operation counts and the peak number of
// operations observed inside critical sections at once, which makes lock
// overlap (or its absence) directly measurable.
//
// # Workload Shape
//
// Updaters apply +25, -40 and +15 to every cell in seed-shuffled orders;
// readers read every cell once the same way. Deltas sum to zero, so any
// variant with real mutual exclusion must end at zero. Worker seeds follow
// spawn order and are deterministic within a process.
package bench
