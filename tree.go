package appendmerkle

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"runtime"

	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/gordian-engine/appendmerkle/internal/amlevel"
)

// maxTreeBytes is the largest node allocation New attempts.
// Larger sizes fail in the runtime's allocator rather than returning an error.
const maxTreeBytes uint64 = 1 << 48

// Tree is a fixed-height, append-only binary Merkle tree.
//
// Every node digest lives in one contiguous allocation,
// level by level, with the leaves first and the root last.
// Every interior node always equals the node hash of its two children.
//
// Create a tree with [New], then append leaves with
// [*Tree.Insert] or [*Tree.InsertBatch].
type Tree struct {
	log *slog.Logger

	// Backing memory for all nodes.
	mem []byte

	// starts[L] is the node offset of level L,
	// and starts[height+1] is the total node count.
	starts []int

	hasher   amhash.Hasher
	hashSize int

	height  uint8
	nLeaves int

	// Index of the next unused leaf.
	// Every leaf before it holds inserted data,
	// and every leaf from it onward holds the default digest.
	next int

	workers           int
	parallelThreshold int
}

// New returns a tree of cfg.Height with every leaf set to the default digest
// and every interior node computed.
//
// New returns an [InvalidHeightError] if cfg.Height exceeds the configured
// maximum height, or if the tree's node count or memory size
// cannot be represented or allocated.
// It panics if cfg contains any other illegal settings.
func New(log *slog.Logger, cfg Config) (*Tree, error) {
	cfg.validate()

	defaults := cfg.Defaults
	hashSize := cfg.HashSize
	if defaults != nil {
		hashSize = defaults.hashSize
	}

	nNodes, ok := amlevel.NodeCount(cfg.Height)
	if !ok {
		return nil, InvalidHeightError{
			Height: cfg.Height,
			Reason: fmt.Sprintf("node count overflows (maximum height is %d)", amlevel.MaxHeight),
		}
	}
	if nNodes > math.MaxInt/hashSize || uint64(nNodes) > maxTreeBytes/uint64(hashSize) {
		return nil, InvalidHeightError{
			Height: cfg.Height,
			Reason: fmt.Sprintf(
				"%d nodes of %d bytes exceeds the %d byte allocation limit",
				nNodes, hashSize, maxTreeBytes,
			),
		}
	}

	maxHeight := cfg.MaxHeight
	if maxHeight == 0 {
		maxHeight = DefaultMaxHeight
	}
	if cfg.Height > maxHeight {
		return nil, InvalidHeightError{
			Height: cfg.Height,
			Reason: fmt.Sprintf("exceeds configured maximum height %d", maxHeight),
		}
	}

	if defaults == nil {
		defaults = defaultsFor(cfg.Hasher, cfg.HashSize, cfg.DefaultLeafValue, cfg.Height)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	threshold := cfg.ParallelThreshold
	if threshold == 0 {
		threshold = DefaultParallelThreshold
	}

	t := &Tree{
		log: log,

		// Allocated once at its final size; inserts never grow it.
		mem:    make([]byte, nNodes*hashSize),
		starts: amlevel.Starts(cfg.Height),

		hasher:   defaults.hasher,
		hashSize: hashSize,

		height:  cfg.Height,
		nLeaves: 1 << cfg.Height,

		workers:           workers,
		parallelThreshold: threshold,
	}

	t.fillDefaults(defaults)

	log.Debug(
		"Built tree",
		"height", t.height,
		"leaves", t.nLeaves,
		"hash_size", hashSize,
		"bytes", len(t.mem),
	)

	return t, nil
}

// fillDefaults writes the default digest for each level into every slot of that level.
// All leaves start out identical, so every node in a level is identical too,
// and one precomputed digest per level is enough.
func (t *Tree) fillDefaults(d *DefaultDigests) {
	for l := range int(t.height) + 1 {
		row := t.mem[t.starts[l]*t.hashSize : t.starts[l+1]*t.hashSize]

		// Seed the first slot, then double the filled prefix until the row is full.
		filled := copy(row, d.Level(uint8(l)))
		for filled < len(row) {
			filled += copy(row[filled:], row[:filled])
		}
	}
}

// node returns the backing slice for the node at the given level and index.
// The slice's capacity is exactly the hash size,
// so it can be passed directly as the dst argument of a Hasher method.
func (t *Tree) node(level uint8, idx int) []byte {
	start := (t.starts[level] + idx) * t.hashSize
	end := start + t.hashSize
	return t.mem[start:end:end]
}

// HeightForCapacity returns the smallest height
// whose tree holds at least n leaves.
// Capacities of zero and one both map to height zero, a single-leaf tree.
//
// It returns an [InvalidHeightError] if the resulting height
// would exceed the largest supported height.
func HeightForCapacity(n uint64) (uint8, error) {
	if n <= 1 {
		return 0, nil
	}

	h := bits.Len64(n - 1)
	if h > amlevel.MaxHeight {
		return 0, InvalidHeightError{
			Height: uint8(h),
			Reason: fmt.Sprintf("capacity %d exceeds maximum height %d", n, amlevel.MaxHeight),
		}
	}
	return uint8(h), nil
}
