package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astrokit/chains/tree"
)

// fixture builds
//
//	    1
//	   / \
//	  2   3
//	 /
//	4
func fixture(t *testing.T) *tree.Tree[int] {
	t.Helper()

	tr, err := tree.New(tree.WithMaxChildren[int](2), tree.WithRoot(1))
	require.NoError(t, err)
	require.NoError(t, tr.AddTo(1, 2))
	require.NoError(t, tr.AddTo(1, 3))
	require.NoError(t, tr.AddTo(2, 4))

	return tr
}

func TestTree_Traversals(t *testing.T) {
	tr := fixture(t)

	require.Equal(t, []int{1, 2, 4, 3}, tr.PreOrder())
	require.Equal(t, []int{4, 2, 3, 1}, tr.PostOrder())
	require.Equal(t, []int{1, 2, 3, 4}, tr.LevelOrder())
	require.Equal(t, 2, tr.Height())
	require.Equal(t, 4, tr.Len())
	require.True(t, tr.IsBinary())
}

func TestTree_EmptyAndLeafHeight(t *testing.T) {
	tr, err := tree.New[int]()
	require.NoError(t, err)
	require.Equal(t, -1, tr.Height(), "empty tree")
	require.True(t, tr.IsEmpty())
	require.Empty(t, tr.PreOrder())

	require.NoError(t, tr.Add(7))
	require.Equal(t, 0, tr.Height(), "lone root")
	require.Equal(t, 1, tr.Len())
}

func TestTree_RootExists(t *testing.T) {
	tr, err := tree.New(tree.WithRoot("a"))
	require.NoError(t, err)
	require.ErrorIs(t, tr.Add("b"), tree.ErrRootExists)
}

func TestTree_BadArity(t *testing.T) {
	_, err := tree.New(tree.WithMaxChildren[int](0))
	require.ErrorIs(t, err, tree.ErrBadArity)
}

func TestTree_MaxChildren(t *testing.T) {
	tr := fixture(t)

	// Node 1 already has children 2 and 3; the binary cap is full.
	err := tr.AddTo(1, 5)
	require.ErrorIs(t, err, tree.ErrMaxChildren)
	require.Equal(t, 4, tr.Len(), "failed insert must not grow the tree")

	require.NoError(t, tr.AddTo(3, 5))
	require.Equal(t, []int{1, 2, 4, 3, 5}, tr.PreOrder())
}

func TestTree_ParentNotFound(t *testing.T) {
	tr := fixture(t)
	require.ErrorIs(t, tr.AddTo(99, 5), tree.ErrParentNotFound)
}

func TestTree_RemoveSubtree(t *testing.T) {
	tr := fixture(t)

	require.NoError(t, tr.Remove(2))
	require.Equal(t, []int{1, 3}, tr.PreOrder(), "removal takes the whole subtree")
	require.Equal(t, 2, tr.Len())
	require.False(t, tr.Contains(4))

	require.ErrorIs(t, tr.Remove(2), tree.ErrNotFound)
}

func TestTree_RemoveRootEmptiesTree(t *testing.T) {
	tr := fixture(t)

	require.NoError(t, tr.Remove(1))
	require.True(t, tr.IsEmpty())
	require.Equal(t, 0, tr.Len())
	require.Equal(t, -1, tr.Height())
}

func TestTree_FindDepth(t *testing.T) {
	tr := fixture(t)

	n := tr.Find(4)
	require.NotNil(t, n)
	require.Equal(t, 2, n.Depth())
	require.True(t, n.IsLeaf())
	require.Equal(t, 2, n.Parent().Value())

	require.Nil(t, tr.Find(99))
}

func TestNode_ChildAccess(t *testing.T) {
	tr := fixture(t)
	root := tr.Root()

	c, err := root.Child(1)
	require.NoError(t, err)
	require.Equal(t, 3, c.Value())

	_, err = root.Child(2)
	require.ErrorIs(t, err, tree.ErrChildIndex)
	_, err = root.Child(-1)
	require.ErrorIs(t, err, tree.ErrChildIndex)
}

func TestNode_PopChildDetachesBothWays(t *testing.T) {
	tr := fixture(t)
	root := tr.Root()

	detached, err := root.PopChild(0)
	require.NoError(t, err)
	require.Equal(t, 2, detached.Value())
	require.Nil(t, detached.Parent())
	require.Equal(t, 1, root.NumChildren())
}

func TestNode_RemoveChild(t *testing.T) {
	tr := fixture(t)
	root := tr.Root()

	require.NoError(t, root.RemoveChild(3))
	require.ErrorIs(t, root.RemoveChild(3), tree.ErrNotFound)
	require.ErrorIs(t, root.RemoveChild(4), tree.ErrNotFound, "grandchildren are not immediate children")
}

func TestTree_String(t *testing.T) {
	tr := fixture(t)
	require.Equal(t, "2[1: [2: [4], 3]]", tr.String())

	empty, err := tree.New[int]()
	require.NoError(t, err)
	require.Equal(t, "<empty tree>", empty.String())
}
