// Package appendmerkle contains a fixed-depth, append-only binary Merkle tree.
//
// A [Tree] is built once for a fixed height,
// with every one of its 2^height leaves pre-filled with a default digest
// and every interior node already hashed.
// New leaves are appended in index order with [*Tree.Insert]
// or [*Tree.InsertBatch].
// The tree tracks the next free leaf slot explicitly,
// so an insert only costs the hashes along one path to the root.
//
// Batch inserts hash their leaves across worker goroutines,
// then recompute the affected ancestors one level at a time,
// waiting for a level to finish before starting the level above it.
// The resulting tree is identical to the one produced by
// inserting the same items one at a time.
//
// The hash function is supplied through the [amhash.Hasher] interface.
// The amhash subpackages provide SHA-256, BLAKE3, and SHA3-256 implementations.
//
// A Tree is not safe for concurrent use.
// Callers that share a Tree must serialize access to it.
package appendmerkle
