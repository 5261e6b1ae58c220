package appendmerkle

import (
	"errors"
	"fmt"

	"github.com/gordian-engine/appendmerkle/amhash"
	"github.com/gordian-engine/appendmerkle/internal/amlevel"
)

// DefaultParallelThreshold is the number of hash operations in one stage
// of a batch insert below which the stage runs on the calling goroutine.
const DefaultParallelThreshold = 256

// DefaultMaxHeight is the largest height [New] accepts
// when Config.MaxHeight is zero.
const DefaultMaxHeight = 32

// Config is the configuration for [New].
type Config struct {
	// Number of levels above the leaves.
	// The tree holds 2^Height leaves.
	// Use [HeightForCapacity] to derive a height from a leaf count.
	Height uint8

	// Largest Height that New accepts; taller trees get an InvalidHeightError.
	// Zero means DefaultMaxHeight.
	// Raising it allows allocations of HashSize * 2^(Height+1) bytes,
	// which may exceed available memory.
	MaxHeight uint8

	// Hasher and HashSize describe the hash collaborator.
	// Both are required unless Defaults is set.
	// When Defaults is set, Hasher must be nil
	// and HashSize must be zero or match the defaults.
	Hasher   amhash.Hasher
	HashSize int

	// Raw value whose digest fills unused leaves.
	// If nil, DefaultLeafValue is used.
	// Must be nil when Defaults is set.
	DefaultLeafValue []byte

	// Precomputed default digests to share between trees.
	// If nil, New computes them from Hasher, HashSize, and DefaultLeafValue.
	Defaults *DefaultDigests

	// Maximum number of goroutines hashing in parallel during a batch insert.
	// Zero means runtime.GOMAXPROCS(0), and one disables parallel hashing.
	Workers int

	// Minimum number of hash operations in a single batch stage
	// before that stage is split across workers.
	// Zero means DefaultParallelThreshold.
	ParallelThreshold int
}

// validate panics if there are any illegal settings in the configuration.
// The height is checked separately,
// because an unrepresentable height is reported as an error.
func (c Config) validate() {
	// If there are multiple reasons we could panic,
	// collect them all in one go
	// so we can give a maximally helpful error.
	var panicErrs error

	if c.Defaults == nil {
		if c.Hasher == nil {
			panicErrs = errors.Join(
				panicErrs,
				errors.New("Config.Hasher may not be nil when Config.Defaults is nil"),
			)
		}
		if c.HashSize <= 0 {
			panicErrs = errors.Join(
				panicErrs,
				fmt.Errorf("Config.HashSize must be positive (got %d)", c.HashSize),
			)
		}
	} else {
		if c.Hasher != nil {
			panicErrs = errors.Join(
				panicErrs,
				errors.New("Config.Hasher must be nil when Config.Defaults is set; the hasher comes from Defaults"),
			)
		}
		if c.HashSize != 0 && c.HashSize != c.Defaults.hashSize {
			panicErrs = errors.Join(
				panicErrs,
				fmt.Errorf(
					"Config.HashSize (%d) conflicts with Config.Defaults hash size (%d)",
					c.HashSize, c.Defaults.hashSize,
				),
			)
		}
		if c.DefaultLeafValue != nil {
			panicErrs = errors.Join(
				panicErrs,
				errors.New("Config.DefaultLeafValue must be nil when Config.Defaults is set"),
			)
		}
	}

	if c.MaxHeight > amlevel.MaxHeight {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf("Config.MaxHeight must be at most %d (got %d)", amlevel.MaxHeight, c.MaxHeight),
		)
	}

	if c.Workers < 0 {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf("Config.Workers must not be negative (got %d)", c.Workers),
		)
	}

	if c.ParallelThreshold < 0 {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf("Config.ParallelThreshold must not be negative (got %d)", c.ParallelThreshold),
		)
	}

	if panicErrs != nil {
		panic(panicErrs)
	}
}
