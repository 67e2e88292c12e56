package harness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andrewstephens75/ThreadingTest/internal/bench/table"
)

// Result holds the outcome of one benchmark run.
type Result struct {
	// Variant is the locking strategy that was benchmarked.
	Variant table.Variant
	// Elapsed is the wall time from first spawn to last join.
	Elapsed time.Duration
	// Cells is the table contents after the join.
	Cells [table.Size]int64
	// AllZero is the zero-sum verdict over Cells.
	AllZero bool
	// Stats is the table's instrumentation snapshot.
	Stats table.Snapshot
}

// Format writes the report block for one run:
//
//	Results for split mutex database:
//	  Elapsed Time:      1234 ms
//	  Database Contents: 0 0 0 0 0 0 0 0 0 0
//	  All Zero:          Pass
//
// Elapsed time is truncated to whole milliseconds and every cell is printed
// with a trailing space. The verdict is Pass or FAILED!!!.
func (r *Result) Format(w io.Writer) {
	fmt.Fprintf(w, "Results for %s:\n", r.Variant)
	fmt.Fprintf(w, "  Elapsed Time:      %d ms\n", r.Elapsed.Milliseconds())
	fmt.Fprintf(w, "  Database Contents: ")
	for _, cell := range r.Cells {
		fmt.Fprintf(w, "%d ", cell)
	}
	fmt.Fprintf(w, "\n")
	verdict := "Pass"
	if !r.AllZero {
		verdict = "FAILED!!!"
	}
	fmt.Fprintf(w, "  All Zero:          %s\n", verdict)
}

// String returns the formatted report block.
func (r *Result) String() string {
	var sb strings.Builder
	r.Format(&sb)
	return sb.String()
}
