// Package table implements the shared counter table and its four locking
// variants.
//
// A Table is a fixed array of ten int64 cells with exactly two mutating
// operations: Read of one cell and additive Update of one cell. Every
// operation carries an artificial delay (1ms on read, 5ms on update) inside
// the critical section; the delay is the simulated work the lock protects
// and is part of the benchmark contract.
//
// # Variants
//
// All four variants share one implementation body and differ only in the
// lock policy selected at construction:
//
//   - Unlocked: no synchronization at all. Concurrent updates lose writes;
//     this variant exists to demonstrate the data race.
//   - SingleMutex: one exclusive sync.Mutex over the whole table, held for
//     the full duration of every read and update.
//   - ReaderWriter: one sync.RWMutex; reads take the shared side, updates
//     the exclusive side.
//   - Sharded: five sync.Mutex shards; cell i is owned by shard i mod 5.
//     Operations on distinct shards proceed in parallel, operations on one
//     shard are serialized. No cross-shard consistency is provided.
//
// # Locking Discipline
//
// The policy returns a sync.Locker for a (cell, mode) pair before the cell
// index is validated, so even an out-of-range index acquires and releases
// its lock. Release happens via defer on every exit path, including the
// ErrOutOfBounds path.
//
// # Instrumentation
//
// Each Table counts operations and tracks peak in-critical-section
// concurrency with lock-free gauges (see Stats). The gauges are updated
// strictly between acquire and release, which gives deterministic bounds:
// a SingleMutex table can never observe PeakConcurrent above 1, while a
// Sharded table under cross-shard traffic and a ReaderWriter table under
// concurrent readers observe values of 2 or more.
//
// # Thread Safety
//
// Read and Update are safe for concurrent use on the synchronized variants
// exactly as described above, and deliberately unsafe on Unlocked. AllZero
// and Cells are unsynchronized and intended for use after all workers have
// been joined.
package table
