// Package amhash defines the hash collaborator used by an append-only Merkle tree.
//
// The tree only depends on the [Hasher] interface.
// Concrete implementations live in subpackages:
// amsha256, amblake3, and amsha3.
package amhash

// Hasher is the user-defined interface for hashing leaves and nodes.
// The tree passes raw leaf data to the Leaf method to create a leaf digest,
// and it passes pairs of digests to the Node method.
//
// To be allocation-efficient, the Hasher implementation
// must append its hash output to dst, instead of creating a new byte slice.
// The tree always passes a zero-length dst whose capacity is exactly
// the configured hash size, so an implementation whose output
// has a different size is a bug.
// Hasher must not retain references to any of the input slices.
//
// Furthermore, Hasher methods must be safe to call concurrently,
// and they must be deterministic.
type Hasher interface {
	Leaf(in []byte, dst []byte)
	Node(left, right []byte, dst []byte)
}

// Domain separation prefixes, written before leaf and node input
// by hashers that opt in to domain separation.
// Distinct prefixes keep an interior node from being presented as a leaf.
const (
	LeafPrefix byte = 0x00
	NodePrefix byte = 0x01
)
