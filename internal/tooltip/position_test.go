package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	viewport := Size{W: 800, H: 600}
	box := Size{W: 200, H: 100}
	g := PixelGeometry

	tests := []struct {
		name    string
		pointer Point
		want    Point
	}{
		{"below right", Point{X: 100, Y: 100}, Point{X: 114, Y: 118}},
		{"flips left", Point{X: 700, Y: 100}, Point{X: 486, Y: 118}},
		{"flips up", Point{X: 100, Y: 550}, Point{X: 114, Y: 432}},
		{"clamped to padding", Point{X: 0, Y: 0}, Point{X: 14, Y: 18}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Place(tt.pointer, box, viewport))
		})
	}

	small := Size{W: 150, H: 80}
	assert.Equal(t, Point{X: 12, Y: 12}, g.Place(Point{X: 100, Y: 50}, box, small), "flipped off-screen then clamped")
}
