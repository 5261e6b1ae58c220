package appendmerkle_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/gordian-engine/appendmerkle"
	"github.com/gordian-engine/appendmerkle/amhash/amsha256"
	"github.com/gordian-engine/appendmerkle/internal/amtest"
)

// Filling a 1024-leaf tree, one insert at a time or in a single batch.
func BenchmarkTree_fill1024(b *testing.B) {
	const height = 10
	leaves := amtest.RandomLeavesForTest(b, 1<<height, 88)

	defaults := appendmerkle.NewDefaultDigests(appendmerkle.DefaultDigestsConfig{
		Hasher:   amsha256.Hasher{},
		HashSize: amsha256.HashSize,
	})

	// Info-level logging only, so the full-tree message does not flood output.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	newTree := func(b *testing.B, workers int) *appendmerkle.Tree {
		tree, err := appendmerkle.New(log, appendmerkle.Config{
			Height:   height,
			Defaults: defaults,
			Workers:  workers,
		})
		if err != nil {
			b.Fatal(err)
		}
		return tree
	}

	b.Run("insert", func(b *testing.B) {
		for range b.N {
			tree := newTree(b, 1)
			for _, leaf := range leaves {
				if _, err := tree.Insert(leaf); err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("batch workers=%d", workers), func(b *testing.B) {
			for range b.N {
				tree := newTree(b, workers)
				if _, err := tree.InsertBatch(leaves); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
