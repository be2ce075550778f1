package content

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{ID: strconv.Itoa(i)}
	}
	return out
}

func TestSplitColumnsBalanced(t *testing.T) {
	cols := SplitColumns(items(5), 2)
	require.Len(t, cols, 2)
	require.Len(t, cols[0], 3)
	require.Len(t, cols[1], 2)
	require.Equal(t, "3", cols[1][0].ID)
}

func TestSplitColumnsEdges(t *testing.T) {
	require.Nil(t, SplitColumns(nil, 3))
	require.Len(t, SplitColumns(items(4), 0), 1)
	require.Len(t, SplitColumns(items(2), 5), 2)

	for n := 1; n <= 7; n++ {
		for cols := 1; cols <= 4; cols++ {
			total := 0
			for _, col := range SplitColumns(items(n), cols) {
				require.NotEmpty(t, col)
				total += len(col)
			}
			require.Equal(t, n, total)
		}
	}
}
