package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsOf(t *testing.T) {
	var empty Bounds
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Width())
	assert.False(t, empty.Contains(Origin))

	b := BoundsOf(Point{-2, 3}, Point{4, -1}, Point{0, 0})
	assert.Equal(t, Point{-2, -1}, b.Min)
	assert.Equal(t, Point{4, 3}, b.Max)
	assert.Equal(t, 7, b.Width())
	assert.Equal(t, 5, b.Height())
	assert.True(t, b.Contains(Point{4, 3}))
	assert.False(t, b.Contains(Point{5, 3}))
}

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.At(2, 1))
	assert.Equal(t, []int{4, 5, 6}, g.Row(1))
	assert.True(t, g.In(0, 0))
	assert.False(t, g.In(3, 0))
	assert.False(t, g.In(0, -1))

	g.Set(0, 0, 9)
	assert.Equal(t, 9, g.At(0, 0))
}

func TestGridFromRowsRagged(t *testing.T) {
	_, err := GridFromRows([][]int{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestNewGridFill(t *testing.T) {
	g := NewGrid(2, 2, '.')
	assert.Equal(t, []rune{'.', '.'}, g.Row(1))
}
