// Package merkle computes merkle roots over ordered sequences of 32-byte
// digests.
//
// Adjacent nodes are paired left-to-right and combined with
// SHA-256(left || right). A level with an odd node count duplicates its
// last node: the node is hashed with itself to form its parent, never
// promoted unchanged. A single leaf therefore roots to H(leaf || leaf),
// and the empty sequence roots to the all-zero sentinel.
package merkle

import (
	"github.com/wangbaolong/gotron/types"
)

// Root computes the merkle root of leaves in order. It is total: every
// finite sequence, including the empty one, has a root.
func Root(leaves []types.Hash) types.Hash {
	if len(leaves) == 0 {
		return types.ZeroHash
	}

	level := make([]types.Hash, len(leaves))
	copy(level, leaves)

	// Every input, a lone leaf included, goes through at least one
	// combining pass.
	for {
		next := make([]types.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, types.HashConcat(left, right))
		}
		if len(next) == 1 {
			return next[0]
		}
		level = next
	}
}
