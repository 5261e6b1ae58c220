package appendmerkle

import (
	"github.com/gordian-engine/appendmerkle/internal/amlevel"
	"golang.org/x/sync/errgroup"
)

// Insert hashes data into the next free leaf,
// recomputes the ancestors of that leaf up to the root,
// and returns the index of the leaf.
//
// If the tree is already full, Insert returns a [TreeFullError]
// and the tree is unchanged.
func (t *Tree) Insert(data []byte) (int, error) {
	if t.next == t.nLeaves {
		return 0, TreeFullError{
			Capacity:  t.nLeaves,
			Remaining: 0,
			Requested: 1,
		}
	}

	idx := t.next
	t.hasher.Leaf(data, t.node(0, idx)[:0])
	t.updatePath(idx)

	t.advance(1)
	return idx, nil
}

// updatePath recomputes the single ancestor per level
// whose subtree contains the leaf at idx.
func (t *Tree) updatePath(idx int) {
	for level := uint8(1); level <= t.height; level++ {
		cur := t.node(level-1, idx)
		sib := t.node(level-1, amlevel.SiblingIndex(idx))
		parent := amlevel.ParentIndex(idx)

		if amlevel.IsLeftChild(idx) {
			t.hasher.Node(cur, sib, t.node(level, parent)[:0])
		} else {
			t.hasher.Node(sib, cur, t.node(level, parent)[:0])
		}

		idx = parent
	}
}

// InsertBatch inserts every item, in order, into consecutive free leaves,
// and returns the leaf index assigned to each item.
// The resulting tree is identical to calling [*Tree.Insert] once per item.
//
// Leaf hashing is split across workers when the batch is large enough.
// Ancestors are recomputed only after every leaf in the batch is written,
// one level at a time from the leaves up,
// with each level finishing before the next one starts.
//
// If there are fewer free leaves than items,
// InsertBatch returns a [TreeFullError] and the tree is unchanged.
// An empty batch is a no-op.
func (t *Tree) InsertBatch(items [][]byte) ([]int, error) {
	k := len(items)
	if k == 0 {
		return []int{}, nil
	}

	if rem := t.nLeaves - t.next; k > rem {
		return nil, TreeFullError{
			Capacity:  t.nLeaves,
			Remaining: rem,
			Requested: k,
		}
	}

	first := t.next
	last := first + k - 1

	if t.parallel(k) {
		t.log.Debug(
			"Hashing batch in parallel",
			"leaves", k,
			"first_index", first,
			"workers", t.workers,
		)
	}

	// The leaves are independent of each other,
	// so they can be hashed in any order,
	// but item j always lands in slot first+j.
	t.fanOut(k, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			t.hasher.Leaf(items[j], t.node(0, first+j)[:0])
		}
	})

	t.recomputeRange(first, last)

	t.advance(k)

	indices := make([]int, k)
	for j := range indices {
		indices[j] = first + j
	}
	return indices, nil
}

// recomputeRange recomputes every ancestor of the leaves in [lo, hi].
// The changed nodes at each level form a contiguous range,
// which shrinks by half on every level up.
// A parent depends on both of its children being final,
// so each level completes before the level above begins.
func (t *Tree) recomputeRange(lo, hi int) {
	for level := uint8(1); level <= t.height; level++ {
		lo, hi = amlevel.ParentIndex(lo), amlevel.ParentIndex(hi)

		start := lo
		t.fanOut(hi-lo+1, func(a, b int) {
			for p := start + a; p < start+b; p++ {
				l, r := amlevel.ChildIndices(p)
				t.hasher.Node(
					t.node(level-1, l), t.node(level-1, r),
					t.node(level, p)[:0],
				)
			}
		})
	}
}

// parallel reports whether a stage of n hash operations
// is large enough to split across workers.
func (t *Tree) parallel(n int) bool {
	return t.workers > 1 && n >= t.parallelThreshold
}

// fanOut calls work over contiguous chunks covering [0, n),
// and returns once every chunk is done.
// Small stages run entirely on the calling goroutine.
//
// An errgroup is used for its SetLimit bound on concurrent goroutines;
// the work itself cannot fail, so every goroutine returns nil.
func (t *Tree) fanOut(n int, work func(lo, hi int)) {
	if !t.parallel(n) {
		work(0, n)
		return
	}

	nChunks := min(t.workers, n)
	chunkSize := (n + nChunks - 1) / nChunks

	var g errgroup.Group
	g.SetLimit(t.workers)
	for lo := 0; lo < n; lo += chunkSize {
		hi := min(lo+chunkSize, n)
		g.Go(func() error {
			work(lo, hi)
			return nil
		})
	}

	// Join point for this stage.
	_ = g.Wait()
}

// advance moves the free leaf cursor forward by n.
func (t *Tree) advance(n int) {
	t.next += n
	if t.next == t.nLeaves {
		t.log.Info("Tree is full", "capacity", t.nLeaves)
	}
}
