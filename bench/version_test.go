package bench_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewstephens75/ThreadingTest/bench"
)

func TestGetInfoMatchesConstants(t *testing.T) {
	info := bench.GetInfo()

	assert.Equal(t, bench.Version, info.Version)
	assert.Equal(t,
		fmt.Sprintf("%d.%d.%d", bench.VersionMajor, bench.VersionMinor, bench.VersionPatch),
		info.Version)
	assert.Equal(t, len(bench.Variants()), info.Variants)

	opts := bench.DefaultOptions()
	assert.Equal(t, opts.Updaters, info.Updaters)
	assert.Equal(t, opts.Readers, info.Readers)
}
