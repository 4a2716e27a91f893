package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	assert.Equal(t, 32, g.Columns())
	assert.Equal(t, 24, g.Rows())
	assert.Equal(t, 32*24, g.Cells())
	assert.Equal(t, Point{X: 320, Y: 240}, g.Center())
	assert.Equal(t, Point{X: 16 * GridSize, Y: 12 * GridSize}, g.Center())
}

func TestWrap(t *testing.T) {
	g := DefaultGrid()
	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{name: "right edge", from: Point{X: 620, Y: 100}, dir: Right, want: Point{X: 0, Y: 100}},
		{name: "left edge", from: Point{X: 0, Y: 100}, dir: Left, want: Point{X: 620, Y: 100}},
		{name: "top edge", from: Point{X: 100, Y: 0}, dir: Up, want: Point{X: 100, Y: 460}},
		{name: "bottom edge", from: Point{X: 100, Y: 460}, dir: Down, want: Point{X: 100, Y: 0}},
		{name: "interior", from: Point{X: 100, Y: 100}, dir: Right, want: Point{X: 120, Y: 100}},
		{name: "corner", from: Point{X: 0, Y: 0}, dir: Up, want: Point{X: 0, Y: 460}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Wrap(tt.from.Add(tt.dir, g.Unit))
			assert.Equal(t, tt.want, got)
			assert.True(t, g.Contains(got))
		})
	}
}

func TestContains(t *testing.T) {
	g := DefaultGrid()
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 620, Y: 460}))
	assert.False(t, g.Contains(Point{X: 640, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -20}))
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, opp := range pairs {
		assert.Equal(t, opp, d.Opposite(), d.String())
		sum := Point{X: d.ToPoint().X + opp.ToPoint().X, Y: d.ToPoint().Y + opp.ToPoint().Y}
		assert.Equal(t, Point{}, sum, d.String())
	}
	assert.Equal(t, None, None.Opposite())
	assert.Equal(t, Point{}, None.ToPoint())
}
