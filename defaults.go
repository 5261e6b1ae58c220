package appendmerkle

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/gordian-engine/appendmerkle/internal/amlevel"
)

// DefaultLeafValue is the well-known raw value whose digest
// fills every unused leaf, when no other value is configured.
var DefaultLeafValue = []byte{
	110, 52, 11, 156, 255, 179, 122, 152, 156, 165, 68, 230, 187, 120, 10, 44,
	120, 144, 29, 63, 179, 55, 56, 118, 133, 17, 163, 6, 23, 175, 160, 29,
}

// DefaultDigests holds the digest of an all-default subtree
// for every level up to the largest supported height.
// Level 0 is the digest of the default leaf value,
// and every level above is the node hash of two copies of the level below.
//
// Computing DefaultDigests costs one hash per level.
// A single value may be shared by any number of trees,
// and it is safe for concurrent use since it is never modified.
type DefaultDigests struct {
	hasher   amhash.Hasher
	hashSize int

	// One backing allocation, sliced per level.
	digests [][]byte
}

// DefaultDigestsConfig is the configuration for [NewDefaultDigests].
type DefaultDigestsConfig struct {
	Hasher   amhash.Hasher
	HashSize int

	// Raw default leaf value.
	// If nil, DefaultLeafValue is used.
	Value []byte
}

// NewDefaultDigests hashes the configured default leaf value
// and every all-default interior level above it.
//
// It panics if the hasher is nil, the hash size is not positive,
// or the hasher does not produce exactly HashSize bytes.
func NewDefaultDigests(cfg DefaultDigestsConfig) *DefaultDigests {
	return newDefaultDigests(cfg, amlevel.MaxHeight)
}

// newDefaultDigests is like NewDefaultDigests,
// but only computes levels up to and including maxLevel.
func newDefaultDigests(cfg DefaultDigestsConfig, maxLevel uint8) *DefaultDigests {
	var panicErrs error
	if cfg.Hasher == nil {
		panicErrs = errors.Join(
			panicErrs,
			errors.New("DefaultDigestsConfig.Hasher may not be nil"),
		)
	}
	if cfg.HashSize <= 0 {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf("DefaultDigestsConfig.HashSize must be positive (got %d)", cfg.HashSize),
		)
	}
	if panicErrs != nil {
		panic(panicErrs)
	}

	value := cfg.Value
	if value == nil {
		value = DefaultLeafValue
	}

	h := cfg.Hasher
	sz := cfg.HashSize

	nLevels := int(maxLevel) + 1
	mem := make([]byte, nLevels*sz)
	digests := make([][]byte, nLevels)
	for i := range digests {
		start := i * sz
		end := start + sz
		digests[i] = mem[start:end:end]
	}

	h.Leaf(value, digests[0][:0])

	// Hash the leaf once more into a differently filled buffer.
	// A hasher with the wrong output size either leaves part of the fill
	// or reallocates away from it, so the two would disagree.
	check := bytes.Repeat([]byte{0xff}, sz)
	h.Leaf(value, check[:0:sz])
	if !bytes.Equal(check, digests[0]) {
		panic(fmt.Errorf(
			"BUG: hasher %T did not write exactly %d bytes", h, sz,
		))
	}

	for i := 1; i < nLevels; i++ {
		h.Node(digests[i-1], digests[i-1], digests[i][:0])
	}

	return &DefaultDigests{
		hasher:   h,
		hashSize: sz,
		digests:  digests,
	}
}

type defaultsKey struct {
	hasher   amhash.Hasher
	hashSize int
}

// sharedDefaults holds one *DefaultDigests per comparable hasher and hash size,
// for trees built with the package default leaf value.
var sharedDefaults sync.Map

// defaultsFor returns the default digests for a tree of the given height.
//
// With the package default leaf value and a comparable hasher,
// the digests are computed once for every level and reused by later calls.
// Otherwise only the levels the tree needs are computed.
func defaultsFor(h amhash.Hasher, hashSize int, value []byte, height uint8) *DefaultDigests {
	cfg := DefaultDigestsConfig{
		Hasher:   h,
		HashSize: hashSize,
		Value:    value,
	}

	// A comparable type can still hold a non-comparable value in an interface field,
	// so check the value itself before using it as a map key.
	if value != nil || !reflect.ValueOf(h).Comparable() {
		return newDefaultDigests(cfg, height)
	}

	key := defaultsKey{hasher: h, hashSize: hashSize}
	if d, ok := sharedDefaults.Load(key); ok {
		return d.(*DefaultDigests)
	}

	d, _ := sharedDefaults.LoadOrStore(key, NewDefaultDigests(cfg))
	return d.(*DefaultDigests)
}

// Level returns the digest of every node at the given level
// of a tree containing only default leaves.
// The caller must not modify the returned slice.
func (d *DefaultDigests) Level(level uint8) []byte {
	if int(level) >= len(d.digests) {
		panic(fmt.Errorf(
			"BUG: default digest requested for level %d; must be at most %d",
			level, len(d.digests)-1,
		))
	}
	return d.digests[level]
}

// Root returns the root digest of an all-default tree of the given height.
func (d *DefaultDigests) Root(height uint8) []byte {
	return d.Level(height)
}

// HashSize returns the digest size the defaults were computed with.
func (d *DefaultDigests) HashSize() int {
	return d.hashSize
}
