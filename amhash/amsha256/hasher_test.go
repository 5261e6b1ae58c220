package amsha256_test

import (
	"crypto/sha256"
	"testing"

	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/gordian-engine/appendmerkle/amhash/amhashtest"
	"github.com/gordian-engine/appendmerkle/amhash/amsha256"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	amhashtest.TestHasherCompliance(t, func() (amhash.Hasher, int) {
		return amsha256.Hasher{}, amsha256.HashSize
	})
}

func TestCompliance_domainSeparation(t *testing.T) {
	t.Parallel()

	amhashtest.TestHasherCompliance(t, func() (amhash.Hasher, int) {
		return amsha256.Hasher{DomainSeparation: true}, amsha256.HashSize
	})
}

func TestHasher_plainDigests(t *testing.T) {
	t.Parallel()

	var h amsha256.Hasher

	leaf := make([]byte, amsha256.HashSize)
	h.Leaf([]byte("hello"), leaf[:0])
	exp := sha256.Sum256([]byte("hello"))
	require.Equal(t, exp[:], leaf)

	node := make([]byte, amsha256.HashSize)
	h.Node([]byte("left"), []byte("right"), node[:0])
	exp = sha256.Sum256([]byte("leftright"))
	require.Equal(t, exp[:], node)
}

func TestHasher_prefixedDigests(t *testing.T) {
	t.Parallel()

	h := amsha256.Hasher{DomainSeparation: true}

	leaf := make([]byte, amsha256.HashSize)
	h.Leaf([]byte("hello"), leaf[:0])
	exp := sha256.Sum256([]byte("\x00hello"))
	require.Equal(t, exp[:], leaf)

	node := make([]byte, amsha256.HashSize)
	h.Node([]byte("left"), []byte("right"), node[:0])
	exp = sha256.Sum256([]byte("\x01leftright"))
	require.Equal(t, exp[:], node)
}
