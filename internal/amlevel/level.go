// Package amlevel contains the index arithmetic for a complete binary tree
// whose levels are stored back to back, leaves first and root last.
//
// Level 0 is the leaf level. The root is at level height.
// All arithmetic is integer-only.
package amlevel

import "math/bits"

// MaxHeight is the largest height whose total node count
// still fits in an int on the current platform.
const MaxHeight = bits.UintSize - 2

// NextLevelLength returns the number of parents needed
// for a level of n nodes, rounding up for odd n.
// A level of one node (the root) has no parent level, so it returns 0.
func NextLevelLength(n int) int {
	if n <= 1 {
		return 0
	}
	if n&1 == 0 {
		return n / 2
	}
	return (n + 1) / 2
}

// LevelLength returns the number of nodes at the given level
// of a tree with the given height.
// Levels above the root have length zero.
func LevelLength(height, level uint8) int {
	if height > MaxHeight || level > height {
		return 0
	}

	n := 1 << height
	for range level {
		n = NextLevelLength(n)
	}
	return n
}

// NodeCount returns the total number of nodes in a complete tree
// of the given height, that is 2^(height+1) - 1.
// The boolean result is false if the count does not fit in an int.
func NodeCount(height uint8) (int, bool) {
	if height > MaxHeight {
		return 0, false
	}

	// Shift as unsigned so that the maximum height does not
	// pass through a negative intermediate value.
	return int(uint(1)<<(height+1) - 1), true
}

// Starts returns the node offset of every level in the flat layout.
// The returned slice has height+2 entries:
// entry L is the offset of the first node at level L,
// and the final entry is the total node count.
//
// Starts panics if height exceeds [MaxHeight].
func Starts(height uint8) []int {
	if height > MaxHeight {
		panic("BUG: amlevel.Starts called with height beyond MaxHeight")
	}

	starts := make([]int, int(height)+2)
	n := 1 << height
	for l := range int(height) + 1 {
		starts[l+1] = starts[l] + n
		n = NextLevelLength(n)
	}
	return starts
}

// ParentIndex returns the index of the parent, within the next level up,
// of the node at index.
func ParentIndex(index int) int {
	return index >> 1
}

// ChildIndices returns the indices, within the next level down,
// of the two children of the node at index.
func ChildIndices(index int) (left, right int) {
	left = index << 1
	return left, left + 1
}

// SiblingIndex returns the index of the other child sharing a parent
// with the node at index.
// Every node below the root of a complete tree has exactly one sibling.
func SiblingIndex(index int) int {
	return index ^ 1
}

// IsLeftChild reports whether the node at index is the left child of its parent.
func IsLeftChild(index int) bool {
	return index&1 == 0
}
