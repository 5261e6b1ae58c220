package amtest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomDataForTest returns a byte slice of size sz
// containing pseudorandom data, derived from a seed based on the test name.
func RandomDataForTest(t testing.TB, sz int) []byte {
	// Sha256 happens to be the right size for the chacha8 seed,
	// and this fits well anyway since that means
	// we are not limited by the length of any particular test name.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([]byte, sz)

	if _, err := chacha.Read(out); err != nil {
		panic(err)
	}

	return out
}

// RandomLeavesForTest splits test-seeded pseudorandom data
// into n leaves of varying length between 1 and maxLen bytes.
func RandomLeavesForTest(t testing.TB, n, maxLen int) [][]byte {
	if n == 0 {
		return nil
	}

	raw := RandomDataForTest(t, n*maxLen)

	leaves := make([][]byte, n)
	for i := range leaves {
		chunk := raw[i*maxLen : (i+1)*maxLen]
		sz := 1 + int(chunk[0])%maxLen
		leaves[i] = chunk[:sz:sz]
	}
	return leaves
}
