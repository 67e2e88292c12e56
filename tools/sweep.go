//go:build ignore

// This tool sweeps reader fleet sizes across the three synchronized table
// variants and prints an elapsed-time table, useful for eyeballing how each
// lock scales with read pressure.
// Run with: go run tools/sweep.go
package main

import (
	"fmt"
	"os"

	"github.com/andrewstephens75/ThreadingTest/bench"
)

func main() {
	updaters := 10
	readerSteps := []int{25, 50, 100, 200}
	variants := []bench.Variant{bench.SingleMutex, bench.ReaderWriter, bench.Sharded}

	fmt.Printf("updaters fixed at %d; elapsed per variant in ms\n\n", updaters)
	fmt.Printf("%8s", "readers")
	for _, v := range variants {
		fmt.Printf("  %-24s", v)
	}
	fmt.Println()

	for _, readers := range readerSteps {
		fmt.Printf("%8d", readers)
		for _, v := range variants {
			res, err := bench.Run(v, bench.Options{Updaters: updaters, Readers: readers})
			if err != nil {
				fmt.Fprintln(os.Stderr, "run failed:", err)
				os.Exit(1)
			}
			verdict := ""
			if !res.AllZero {
				verdict = " (nonzero!)"
			}
			fmt.Printf("  %-24s", fmt.Sprintf("%d%s", res.Elapsed.Milliseconds(), verdict))
		}
		fmt.Println()
	}
}
