package digraph_test

import (
	"testing"

	"github.com/katalvlaran/ergmee/digraph"
	"github.com/stretchr/testify/require"
)

func TestGraph_SetBinAttr(t *testing.T) {
	g, err := digraph.NewGraph(3)
	require.NoError(t, err)
	require.False(t, g.HasBinAttr())

	require.ErrorIs(t, g.SetBinAttr([]int{1, 0}), digraph.ErrAttributeLengthMismatch)
	require.ErrorIs(t, g.SetBinAttr([]int{1, 2, 0}), digraph.ErrBadBinaryValue)

	require.NoError(t, g.SetBinAttr([]int{1, 0, 1}))
	require.True(t, g.HasBinAttr())
	require.Equal(t, []int{1, 0, 1}, g.BinAttr)
}

func TestGraph_SetCatAttr(t *testing.T) {
	g, err := digraph.NewGraph(4)
	require.NoError(t, err)
	require.False(t, g.HasCatAttr())

	require.ErrorIs(t, g.SetCatAttr([]int{0, 1}), digraph.ErrAttributeLengthMismatch)

	require.NoError(t, g.SetCatAttr([]int{0, 1, 1, 2}))
	require.True(t, g.HasCatAttr())
	require.Equal(t, []int{0, 1, 1, 2}, g.CatAttr)
}
