package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astrokit/chains/list"
	"github.com/astrokit/chains/sorting"
)

func TestSort_List(t *testing.T) {
	l := list.New(5, 3, 8, 1)
	require.NoError(t, list.Sort(l, sorting.Default))
	require.Equal(t, []int{1, 3, 5, 8}, l.Values())
}

func TestSort_EveryStrategy(t *testing.T) {
	for _, alg := range []sorting.Algorithm{
		sorting.Selection, sorting.Insertion, sorting.Bubble,
		sorting.Merge, sorting.Quick, sorting.Radix,
	} {
		l := list.New(5, 3, 8, 1, 3)
		require.NoError(t, list.Sort(l, alg), "alg=%s", alg)
		require.Equal(t, []int{1, 3, 3, 5, 8}, l.Values(), "alg=%s", alg)
	}
}

func TestSort_DList(t *testing.T) {
	l := list.NewD("pear", "apple", "fig")
	require.NoError(t, list.SortByName(l, "quick"))
	require.Equal(t, []string{"apple", "fig", "pear"}, l.Values())
}

func TestSortByName_Invalid(t *testing.T) {
	l := list.New(2, 1)
	err := list.SortByName(l, "bogosort")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	require.Equal(t, []int{2, 1}, l.Values(), "failed sort must not mutate")
}

func TestSort_RadixConstraint(t *testing.T) {
	l := list.New("b", "a")
	err := list.Sort(l, sorting.Radix)
	require.ErrorIs(t, err, sorting.ErrRadixInteger)
	require.Equal(t, []string{"b", "a"}, l.Values())

	neg := list.New(3, -1)
	err = list.Sort(neg, sorting.Radix)
	require.ErrorIs(t, err, sorting.ErrNegative)
	require.Equal(t, []int{3, -1}, neg.Values())
}
