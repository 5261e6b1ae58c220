package appendmerkle

import "github.com/gordian-engine/appendmerkle/internal/amlevel"

// The slices returned from these methods reference the tree's backing memory.
// Callers must not modify them, and a later insert may change their contents.

// Root returns the root digest.
func (t *Tree) Root() []byte {
	return t.node(t.height, 0)
}

// Node returns the digest at the given level and index.
// Level 0 is the leaf level, and the root is at level [*Tree.Height].
//
// Node returns an [OutOfRangeError] if the position is outside the tree.
func (t *Tree) Node(level uint8, idx int) ([]byte, error) {
	if level > t.height {
		return nil, OutOfRangeError{
			Level:  level,
			Index:  idx,
			Height: t.height,
		}
	}

	n := t.starts[level+1] - t.starts[level]
	if idx < 0 || idx >= n {
		return nil, OutOfRangeError{
			Level:       level,
			Index:       idx,
			Height:      t.height,
			LevelLength: n,
		}
	}

	return t.node(level, idx), nil
}

// Leaf returns the leaf digest at idx.
// Leaves at or beyond [*Tree.Len] hold the default digest.
func (t *Tree) Leaf(idx int) ([]byte, error) {
	return t.Node(0, idx)
}

// LevelLength returns the number of nodes at the given level,
// or zero for a level above the root.
func (t *Tree) LevelLength(level uint8) int {
	return amlevel.LevelLength(t.height, level)
}

// Len returns the number of inserted leaves,
// which is also the index of the next free leaf.
func (t *Tree) Len() int { return t.next }

// Cap returns the total leaf capacity, 2^height.
func (t *Tree) Cap() int { return t.nLeaves }

// Remaining returns the number of free leaves.
func (t *Tree) Remaining() int { return t.nLeaves - t.next }

// Full reports whether every leaf has been inserted.
func (t *Tree) Full() bool { return t.next == t.nLeaves }

// Height returns the number of levels above the leaves.
func (t *Tree) Height() uint8 { return t.height }

// HashSize returns the size in bytes of every digest in the tree.
func (t *Tree) HashSize() int { return t.hashSize }
