package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangbaolong/gotron/types"
)

func leaf(s string) types.Hash {
	return types.Sum([]byte(s))
}

func TestRoot_Empty(t *testing.T) {
	assert.Equal(t, types.ZeroHash, Root(nil))
	assert.Equal(t, types.ZeroHash, Root([]types.Hash{}))
}

func TestRoot_SingleLeaf(t *testing.T) {
	// A lone leaf is hashed with itself, never passed through bare.
	l := leaf("only")
	want := types.HashConcat(l, l)
	got := Root([]types.Hash{l})
	require.Equal(t, want, got)
	assert.NotEqual(t, l, got)
}

func TestRoot_TwoLeaves(t *testing.T) {
	l0, l1 := leaf("a"), leaf("b")
	assert.Equal(t, types.HashConcat(l0, l1), Root([]types.Hash{l0, l1}))
}

func TestRoot_ThreeLeaves(t *testing.T) {
	// The odd last node is duplicated: parent of L2 is H(L2 || L2).
	l0, l1, l2 := leaf("a"), leaf("b"), leaf("c")
	want := types.HashConcat(
		types.HashConcat(l0, l1),
		types.HashConcat(l2, l2),
	)
	assert.Equal(t, want, Root([]types.Hash{l0, l1, l2}))
}

func TestRoot_FourLeaves(t *testing.T) {
	l0, l1, l2, l3 := leaf("a"), leaf("b"), leaf("c"), leaf("d")
	want := types.HashConcat(
		types.HashConcat(l0, l1),
		types.HashConcat(l2, l3),
	)
	assert.Equal(t, want, Root([]types.Hash{l0, l1, l2, l3}))
}

func TestRoot_FiveLeaves(t *testing.T) {
	// Duplication applies at every level, not just the leaves.
	ls := []types.Hash{leaf("a"), leaf("b"), leaf("c"), leaf("d"), leaf("e")}
	p01 := types.HashConcat(ls[0], ls[1])
	p23 := types.HashConcat(ls[2], ls[3])
	p44 := types.HashConcat(ls[4], ls[4])
	want := types.HashConcat(
		types.HashConcat(p01, p23),
		types.HashConcat(p44, p44),
	)
	assert.Equal(t, want, Root(ls))
}

func TestRoot_OrderSensitive(t *testing.T) {
	a := []types.Hash{leaf("a"), leaf("b"), leaf("c")}
	b := []types.Hash{leaf("b"), leaf("a"), leaf("c")}
	assert.NotEqual(t, Root(a), Root(b))
}

func TestRoot_DoesNotMutateInput(t *testing.T) {
	ls := []types.Hash{leaf("a"), leaf("b"), leaf("c")}
	orig := make([]types.Hash, len(ls))
	copy(orig, ls)

	Root(ls)
	assert.Equal(t, orig, ls)
}

func TestRoot_Deterministic(t *testing.T) {
	ls := []types.Hash{leaf("a"), leaf("b"), leaf("c"), leaf("d"), leaf("e")}
	assert.Equal(t, Root(ls), Root(ls))
}
