package amblake3

import (
	"sync"

	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/zeebo/blake3"
)

const HashSize = 32

var hasherPool = sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// Hasher is an [amhash.Hasher] backed by 256-bit BLAKE3 hashes.
//
// The zero value hashes a leaf as BLAKE3(in)
// and a node as BLAKE3(left || right).
type Hasher struct {
	// DomainSeparation prefixes leaf input with [amhash.LeafPrefix]
	// and node input with [amhash.NodePrefix].
	DomainSeparation bool
}

func (b Hasher) Leaf(in []byte, dst []byte) {
	h := hasherPool.Get().(*blake3.Hasher)
	defer hasherPool.Put(h)
	h.Reset()

	if b.DomainSeparation {
		_, _ = h.Write([]byte{amhash.LeafPrefix})
	}
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (b Hasher) Node(left, right []byte, dst []byte) {
	h := hasherPool.Get().(*blake3.Hasher)
	defer hasherPool.Put(h)
	h.Reset()

	if b.DomainSeparation {
		_, _ = h.Write([]byte{amhash.NodePrefix})
	}
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}
