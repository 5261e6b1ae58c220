package amsha256

import (
	"crypto/sha256"

	"github.com/gordian-engine/appendmerkle/amhash"
)

const HashSize = sha256.Size

// Hasher is an [amhash.Hasher] backed by SHA-256 hashes.
//
// The zero value hashes a leaf as SHA-256(in)
// and a node as SHA-256(left || right).
type Hasher struct {
	// DomainSeparation prefixes leaf input with [amhash.LeafPrefix]
	// and node input with [amhash.NodePrefix].
	DomainSeparation bool
}

func (s Hasher) Leaf(in []byte, dst []byte) {
	h := sha256.New()
	if s.DomainSeparation {
		_, _ = h.Write([]byte{amhash.LeafPrefix})
	}
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (s Hasher) Node(left, right []byte, dst []byte) {
	h := sha256.New()
	if s.DomainSeparation {
		_, _ = h.Write([]byte{amhash.NodePrefix})
	}
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}
