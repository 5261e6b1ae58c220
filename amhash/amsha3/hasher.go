package amsha3

import (
	"github.com/gordian-engine/appendmerkle/amhash"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

// Hasher is an [amhash.Hasher] backed by SHA3-256 hashes.
//
// The zero value hashes a leaf as SHA3-256(in)
// and a node as SHA3-256(left || right).
type Hasher struct {
	// DomainSeparation prefixes leaf input with [amhash.LeafPrefix]
	// and node input with [amhash.NodePrefix].
	DomainSeparation bool
}

func (s Hasher) Leaf(in []byte, dst []byte) {
	h := sha3.New256()
	if s.DomainSeparation {
		_, _ = h.Write([]byte{amhash.LeafPrefix})
	}
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (s Hasher) Node(left, right []byte, dst []byte) {
	h := sha3.New256()
	if s.DomainSeparation {
		_, _ = h.Write([]byte{amhash.NodePrefix})
	}
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}
