package slider

import (
	"math"
	"testing"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := Range{Min: 100, Max: 50}
	assert.Equal(t, 50.0, r.CalMin())
	assert.Equal(t, 100.0, r.CalMax())
	assert.True(t, r.Reversed())
	assert.Equal(t, 50.0, r.Size())
	assert.Equal(t, 100.0, r.Clamp(150))
	assert.Equal(t, 50.0, r.Clamp(-3))

	assert.False(t, Range{Min: 5, Max: 5}.Reversed())
	assert.Equal(t, 0.0, Range{Min: 5, Max: 5}.Size())
}

func TestPointerToNormalized(t *testing.T) {
	horizontal := Rect{Width: 300, Height: 20, PivotX: 0.5, PivotY: 0.5}
	vertical := Rect{Width: 20, Height: 240, PivotX: 0.5, PivotY: 0.5}
	origin := utils.Vec2{X: 250, Y: 170}

	tests := []struct {
		name    string
		rect    Rect
		o       components.Orientation
		rot     float64
		pointer utils.Vec2
		want    float64
	}{
		{"at zero edge", horizontal, components.Horizontal, 0, origin, 0},
		{"at far edge", horizontal, components.Horizontal, 0, utils.Vec2{X: 550, Y: 170}, 1},
		{"middle, off axis", horizontal, components.Horizontal, 0, utils.Vec2{X: 400, Y: 220}, 0.5},
		{"rounded to two decimals", horizontal, components.Horizontal, 0, utils.Vec2{X: 350, Y: 170}, 0.33},
		{"beyond far edge clamps", horizontal, components.Horizontal, 0, utils.Vec2{X: 900, Y: 170}, 1},
		{"behind zero edge clamps", horizontal, components.Horizontal, 0, utils.Vec2{X: 10, Y: 170}, 0},
		{"vertical quarter", vertical, components.Vertical, 0, utils.Vec2{X: 250, Y: 230}, 0.25},
		{"rotated horizontal", horizontal, components.Horizontal, math.Pi / 6,
			utils.Add(origin, utils.Rotate(utils.Vec2{X: 150, Y: 0}, math.Pi/6)), 0.5},
		{"rotated vertical", vertical, components.Vertical, -math.Pi / 4,
			utils.Add(origin, utils.Rotate(utils.Vec2{X: 0, Y: 180}, -math.Pi/4)), 0.75},
		{"zero extent", Rect{Width: 0, Height: 20}, components.Horizontal, 0, utils.Vec2{X: 400, Y: 170}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointerToNormalized(tt.pointer, origin, ComputeRatio(tt.rot, tt.o), tt.rect, tt.o)
			assert.InDelta(t, tt.want, got, eps)
		})
	}
}

func TestNormalizedValueMapping(t *testing.T) {
	tests := []struct {
		name       string
		rng        Range
		normalized float64
		value      float64
	}{
		{"unit range middle", Range{Min: 0, Max: 1}, 0.5, 0.5},
		{"unit range start", Range{Min: 0, Max: 1}, 0, 0},
		{"shifted range", Range{Min: 10, Max: 30}, 0.25, 15},
		{"reversed middle", Range{Min: 100, Max: 50}, 0.5, 75},
		{"reversed start", Range{Min: 100, Max: 50}, 0, 100},
		{"reversed end", Range{Min: 100, Max: 50}, 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.value, NormalizedToValue(tt.normalized, tt.rng), eps)
			assert.InDelta(t, tt.normalized, ValueToNormalized(tt.value, tt.rng), eps)
		})
	}
}

func TestValueToNormalizedEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, ValueToNormalized(5, Range{Min: 5, Max: 5}), "degenerate range")
	assert.Equal(t, 1.0, ValueToNormalized(2, Range{Min: 0, Max: 1}), "value above range")
	assert.Equal(t, 0.0, ValueToNormalized(-2, Range{Min: 0, Max: 1}), "value below range")
	assert.InDelta(t, 0.33, ValueToNormalized(1, Range{Min: 0, Max: 3}), eps)
}
