package amsha3_test

import (
	"testing"

	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/gordian-engine/appendmerkle/amhash/amhashtest"
	"github.com/gordian-engine/appendmerkle/amhash/amsha3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	amhashtest.TestHasherCompliance(t, func() (amhash.Hasher, int) {
		return amsha3.Hasher{}, amsha3.HashSize
	})
}

func TestCompliance_domainSeparation(t *testing.T) {
	t.Parallel()

	amhashtest.TestHasherCompliance(t, func() (amhash.Hasher, int) {
		return amsha3.Hasher{DomainSeparation: true}, amsha3.HashSize
	})
}

func TestHasher_prefixedNode(t *testing.T) {
	t.Parallel()

	h := amsha3.Hasher{DomainSeparation: true}

	node := make([]byte, amsha3.HashSize)
	h.Node([]byte("left"), []byte("right"), node[:0])
	exp := sha3.Sum256([]byte("\x01leftright"))
	require.Equal(t, exp[:], node)
}
