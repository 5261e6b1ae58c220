package amhashtest

import (
	"bytes"
	"sync"
	"testing"

	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h amhash.Hasher, hashSize int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("leaf respects input", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("hello"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("world"), dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("leaf writes exactly the hash size", func(t *testing.T) {
		t.Parallel()

		h, sz := f()
		requireExactWrite(t, sz, func(dst []byte) {
			h.Leaf([]byte("sized"), dst)
		})
	})

	t.Run("node is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()
		l, r := bytes.Repeat([]byte{1}, sz), bytes.Repeat([]byte{2}, sz)

		dst01 := make([]byte, sz)
		h.Node(l, r, dst01[:0])

		dst02 := make([]byte, sz)
		h.Node(l, r, dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("node respects position", func(t *testing.T) {
		t.Parallel()

		h, sz := f()
		l, r := bytes.Repeat([]byte{1}, sz), bytes.Repeat([]byte{2}, sz)

		dst01 := make([]byte, sz)
		h.Node(l, r, dst01[:0])

		dst02 := make([]byte, sz)
		h.Node(r, l, dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("node writes exactly the hash size", func(t *testing.T) {
		t.Parallel()

		h, sz := f()
		l, r := bytes.Repeat([]byte{3}, sz), bytes.Repeat([]byte{4}, sz)
		requireExactWrite(t, sz, func(dst []byte) {
			h.Node(l, r, dst)
		})
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		want := make([]byte, sz)
		h.Leaf([]byte("shared"), want[:0])

		const n = 16
		got := make([][]byte, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got[i] = make([]byte, sz)
				h.Leaf([]byte("shared"), got[i][:0])
			}()
		}
		wg.Wait()

		for i := range n {
			require.Equal(t, want, got[i])
		}
	})
}

// requireExactWrite calls write twice with a zero-length slice of capacity sz,
// first over a zero-filled buffer and then over a 0xff-filled buffer.
// An output shorter than sz leaves part of the fill visible,
// and a longer output reallocates and leaves the whole fill visible,
// so the two buffers only match when exactly sz bytes were written in place.
func requireExactWrite(t *testing.T, sz int, write func(dst []byte)) {
	t.Helper()

	var outs [2][]byte
	for i, fill := range []byte{0x00, 0xff} {
		buf := bytes.Repeat([]byte{fill}, sz)
		write(buf[:0:sz])
		outs[i] = buf
	}

	require.Equal(t, outs[0], outs[1])
}
