package appendmerkle_test

import (
	"bytes"
	"testing"

	"github.com/gordian-engine/appendmerkle"
	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/gordian-engine/appendmerkle/amhash/amsha256"
	"github.com/gordian-engine/appendmerkle/internal/amtest"
	"github.com/stretchr/testify/require"
)

// newSHA256Tree returns a serial SHA-256 tree of the given height.
func newSHA256Tree(t testing.TB, height uint8) *appendmerkle.Tree {
	t.Helper()

	tree, err := appendmerkle.New(amtest.NewLogger(t), appendmerkle.Config{
		Height:   height,
		Hasher:   amsha256.Hasher{},
		HashSize: amsha256.HashSize,
		Workers:  1,
	})
	require.NoError(t, err)
	return tree
}

// requireConsistent checks every interior node of tree
// against the node hash of its two children.
func requireConsistent(t *testing.T, tree *appendmerkle.Tree, h amhash.Hasher) {
	t.Helper()

	want := make([]byte, tree.HashSize())
	for level := uint8(1); level <= tree.Height(); level++ {
		for i := range tree.LevelLength(level) {
			l, err := tree.Node(level-1, 2*i)
			require.NoError(t, err)
			r, err := tree.Node(level-1, 2*i+1)
			require.NoError(t, err)

			h.Node(l, r, want[:0])

			got, err := tree.Node(level, i)
			require.NoError(t, err)

			// Checking with bytes.Equal first keeps full traversals of large trees fast.
			if !bytes.Equal(want, got) {
				require.Failf(t, "inconsistent node",
					"level %d index %d: want %x, got %x", level, i, want, got,
				)
			}
		}
	}
}

// requireSameNodes asserts that every node of a and b is equal.
func requireSameNodes(t *testing.T, a, b *appendmerkle.Tree) {
	t.Helper()

	require.Equal(t, a.Height(), b.Height())
	require.Equal(t, a.Len(), b.Len())

	for level := uint8(0); level <= a.Height(); level++ {
		for i := range a.LevelLength(level) {
			an, err := a.Node(level, i)
			require.NoError(t, err)
			bn, err := b.Node(level, i)
			require.NoError(t, err)

			if !bytes.Equal(an, bn) {
				require.Failf(t, "nodes differ",
					"level %d index %d: %x != %x", level, i, an, bn,
				)
			}
		}
	}
}

func sha256Leaf(in []byte) []byte {
	out := make([]byte, amsha256.HashSize)
	amsha256.Hasher{}.Leaf(in, out[:0])
	return out
}

func sha256Node(left, right []byte) []byte {
	out := make([]byte, amsha256.HashSize)
	amsha256.Hasher{}.Node(left, right, out[:0])
	return out
}
