package bench

// Version information for the ThreadingTest benchmark.
const (
	// Version is the current version of the benchmark suite.
	Version = "1.0.0"

	// VersionMajor is the major version number.
	VersionMajor = 1

	// VersionMinor is the minor version number.
	VersionMinor = 0

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides build and workload information about the benchmark suite.
type Info struct {
	// Version is the suite version string.
	Version string

	// Variants is the number of locking strategies compared.
	Variants int

	// Updaters and Readers are the contractual fleet sizes.
	Updaters int
	Readers  int
}

// GetInfo returns information about the benchmark suite.
//
// Example:
//
//	info := bench.GetInfo()
//	fmt.Printf("ThreadingTest %s (%d variants)\n", info.Version, info.Variants)
func GetInfo() Info {
	opts := DefaultOptions()
	return Info{
		Version:  Version,
		Variants: len(Variants()),
		Updaters: opts.Updaters,
		Readers:  opts.Readers,
	}
}
