package harness

import (
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/andrewstephens75/ThreadingTest/internal/bench/table"
	"github.com/andrewstephens75/ThreadingTest/internal/bench/workload"
)

var logger = logrus.WithField("component", "bench.harness")

// Contractual fleet for one benchmark run.
const (
	DefaultUpdaters = 100
	DefaultReaders  = 1000
)

// updaterDeltas are the three update passes every updater performs, in
// order. They sum to zero per cell.
var updaterDeltas = [...]int64{25, -40, 15}

// Options sizes the worker fleet for one run. Reduced fleets keep the
// workload shape and the zero-sum oracle intact; only the timing changes.
type Options struct {
	Updaters int
	Readers  int
}

// DefaultOptions returns the contractual fleet of 100 updaters and 1000
// readers.
func DefaultOptions() Options {
	return Options{Updaters: DefaultUpdaters, Readers: DefaultReaders}
}

// Run benchmarks one variant: it builds a fresh table, releases the fleet,
// joins it, and collects timing, contents, verdict and instrumentation into
// a Result. A worker error (unreachable with well-formed passes) aborts the
// run.
func Run(v table.Variant, opts Options) (*Result, error) {
	tbl := table.New(v)

	logger.WithFields(logrus.Fields{
		"variant":  v.String(),
		"updaters": opts.Updaters,
		"readers":  opts.Readers,
	}).Debug("starting benchmark run")

	start := time.Now()

	var g errgroup.Group
	seed := int64(0)
	for i := 0; i < opts.Updaters; i++ {
		s := seed
		seed++
		g.Go(func() error {
			for _, delta := range updaterDeltas {
				if err := workload.UpdateAll(tbl, delta, s); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for i := 0; i < opts.Readers; i++ {
		s := seed
		seed++
		g.Go(func() error {
			return workload.ReadAll(tbl, s)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, v.String())
	}

	elapsed := time.Since(start)

	res := &Result{
		Variant: v,
		Elapsed: elapsed,
		Cells:   tbl.Cells(),
		AllZero: tbl.AllZero(),
		Stats:   tbl.Stats(),
	}

	logger.WithFields(logrus.Fields{
		"variant":         v.String(),
		"elapsed_ms":      elapsed.Milliseconds(),
		"all_zero":        res.AllZero,
		"peak_concurrent": res.Stats.PeakConcurrent,
		"peak_readers":    res.Stats.PeakReaders,
	}).Debug("benchmark run finished")

	return res, nil
}

// RunAll benchmarks every variant in the fixed order and writes one report
// per variant to w as it completes.
func RunAll(w io.Writer, opts Options) error {
	for _, v := range table.Variants() {
		res, err := Run(v, opts)
		if err != nil {
			return err
		}
		res.Format(w)
	}
	return nil
}
