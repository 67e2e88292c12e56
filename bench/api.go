package bench

import (
	"io"

	internal "github.com/andrewstephens75/ThreadingTest/internal/bench/harness"
	"github.com/andrewstephens75/ThreadingTest/internal/bench/table"
)

// Variant identifies one of the four locking strategies. Its String method
// returns the report label.
type Variant = table.Variant

// The four variants, in benchmark order.
const (
	Unlocked     = table.Unlocked
	SingleMutex  = table.SingleMutex
	ReaderWriter = table.ReaderWriter
	Sharded      = table.Sharded
)

// Options sizes the worker fleet for a run.
type Options = internal.Options

// Result is the outcome of one run; see its Format and String methods for
// the report block.
type Result = internal.Result

// Snapshot carries a table's operation counts and peak-concurrency gauges.
type Snapshot = table.Snapshot

// ErrOutOfBounds is returned (wrapped) when an operation addresses a cell
// outside the table. The workload never does; it is reachable only through
// direct table use.
var ErrOutOfBounds = table.ErrOutOfBounds

// Variants returns the four variants in benchmark order.
func Variants() []Variant {
	return table.Variants()
}

// DefaultOptions returns the contractual fleet of 100 updaters and 1000
// readers.
func DefaultOptions() Options {
	return internal.DefaultOptions()
}

// Run benchmarks one variant and returns its result.
func Run(v Variant, opts Options) (*Result, error) {
	return internal.Run(v, opts)
}

// RunAll benchmarks all four variants in order, writing one report block per
// variant to w.
func RunAll(w io.Writer, opts Options) error {
	return internal.RunAll(w, opts)
}
