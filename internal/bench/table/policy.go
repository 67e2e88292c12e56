package table

import "sync"

// Variant identifies one of the four locking strategies.
type Variant int

const (
	// Unlocked performs no synchronization; the data-race baseline.
	Unlocked Variant = iota
	// SingleMutex serializes every operation behind one exclusive lock.
	SingleMutex
	// ReaderWriter lets readers share the lock and gives writers exclusivity.
	ReaderWriter
	// Sharded spreads cells over five exclusive locks, one per shard.
	Sharded
)

// String returns the variant's report label.
func (v Variant) String() string {
	switch v {
	case Unlocked:
		return "non-threadsafe database"
	case SingleMutex:
		return "single mutex database"
	case ReaderWriter:
		return "shared mutex database"
	case Sharded:
		return "split mutex database"
	default:
		return "unknown database"
	}
}

// Variants returns the four variants in benchmark order.
func Variants() []Variant {
	return []Variant{Unlocked, SingleMutex, ReaderWriter, Sharded}
}

// lockPolicy selects the locker guarding a cell for one access mode. The
// selection must be total over all int indices: bounds are validated later,
// under the returned lock.
type lockPolicy interface {
	readLocker(cell int) sync.Locker
	writeLocker(cell int) sync.Locker
}

func policyFor(v Variant) lockPolicy {
	switch v {
	case SingleMutex:
		return &singleMutexPolicy{}
	case ReaderWriter:
		return &rwMutexPolicy{}
	case Sharded:
		return &shardedPolicy{}
	default:
		return unlockedPolicy{}
	}
}

// nopLocker satisfies sync.Locker without synchronizing anything.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

type unlockedPolicy struct{}

func (unlockedPolicy) readLocker(int) sync.Locker  { return nopLocker{} }
func (unlockedPolicy) writeLocker(int) sync.Locker { return nopLocker{} }

type singleMutexPolicy struct {
	mu sync.Mutex
}

func (p *singleMutexPolicy) readLocker(int) sync.Locker  { return &p.mu }
func (p *singleMutexPolicy) writeLocker(int) sync.Locker { return &p.mu }

type rwMutexPolicy struct {
	mu sync.RWMutex
}

func (p *rwMutexPolicy) readLocker(int) sync.Locker  { return p.mu.RLocker() }
func (p *rwMutexPolicy) writeLocker(int) sync.Locker { return &p.mu }

// shardedPolicy owns one mutex per shard. Reads and updates both take the
// shard exclusively; only cross-shard operations overlap.
type shardedPolicy struct {
	shards [ShardCount]sync.Mutex
}

func (p *shardedPolicy) readLocker(cell int) sync.Locker  { return &p.shards[shardOf(cell)] }
func (p *shardedPolicy) writeLocker(cell int) sync.Locker { return &p.shards[shardOf(cell)] }

// shardOf maps a cell index to its owning shard. Go's % keeps the sign of
// the dividend, so negative indices are folded back into [0, ShardCount).
func shardOf(cell int) int {
	s := cell % ShardCount
	if s < 0 {
		s += ShardCount
	}
	return s
}
