package appendmerkle_test

import (
	"fmt"
	"log/slog"

	"github.com/gordian-engine/appendmerkle"
	"github.com/gordian-engine/appendmerkle/amhash/amsha256"
)

func Example() {
	height, err := appendmerkle.HeightForCapacity(3)
	if err != nil {
		panic(err)
	}

	tree, err := appendmerkle.New(slog.Default(), appendmerkle.Config{
		Height:   height,
		Hasher:   amsha256.Hasher{},
		HashSize: amsha256.HashSize,
	})
	if err != nil {
		panic(err)
	}

	idx, err := tree.Insert([]byte("genesis"))
	if err != nil {
		panic(err)
	}
	fmt.Println("inserted at", idx)

	indices, err := tree.InsertBatch([][]byte{
		[]byte("alpha"), []byte("beta"), []byte("gamma"),
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("batch inserted at", indices)
	fmt.Printf("%d of %d leaves used\n", tree.Len(), tree.Cap())

	_, err = tree.Insert([]byte("overflow"))
	fmt.Println(err)

	// Output:
	// inserted at 0
	// batch inserted at [1 2 3]
	// 4 of 4 leaves used
	// tree full: requested 1 leaves but only 0 of 4 remain
}
