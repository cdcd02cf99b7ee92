package slider

import (
	"math"
	"testing"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/utils"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestComputeRatio(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		o        components.Orientation
		wantDir  utils.Vec2
	}{
		{"horizontal unrotated", 0, components.Horizontal, utils.Vec2{X: 1, Y: 0}},
		{"vertical unrotated", 0, components.Vertical, utils.Vec2{X: 0, Y: 1}},
		{"horizontal quarter turn", math.Pi / 2, components.Horizontal, utils.Vec2{X: 0, Y: 1}},
		{"vertical quarter turn", math.Pi / 2, components.Vertical, utils.Vec2{X: -1, Y: 0}},
		{"horizontal half turn", math.Pi, components.Horizontal, utils.Vec2{X: -1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeRatio(tt.rotation, tt.o)
			assert.InDelta(t, tt.wantDir.X, r.Dir.X, eps)
			assert.InDelta(t, tt.wantDir.Y, r.Dir.Y, eps)
			assert.InDelta(t, 1, utils.Length(r.Dir), eps)
			assert.InDelta(t, 1, utils.Length(r.Normal), eps)
		})
	}
}

// TestAnchorWorldOrigin 零点边缘就是轨道矩形在局部坐标 (-w*px, -h*py) 处的角点
func TestAnchorWorldOrigin(t *testing.T) {
	rects := []Rect{
		{Width: 300, Height: 20, PivotX: 0.5, PivotY: 0.5},
		{Width: 20, Height: 240, PivotX: 0, PivotY: 1},
		{Width: 120, Height: 60, PivotX: 0.25, PivotY: 0.75},
	}
	rotations := []float64{0, math.Pi / 6, -math.Pi / 3, math.Pi}
	wpos := utils.Vec2{X: 400, Y: 180}

	for _, o := range []components.Orientation{components.Horizontal, components.Vertical} {
		for _, rect := range rects {
			for _, rot := range rotations {
				corner := utils.Add(wpos, utils.Rotate(utils.Vec2{X: -rect.Width * rect.PivotX, Y: -rect.Height * rect.PivotY}, rot))
				got := AnchorWorldOrigin(wpos, rect, ComputeRatio(rot, o), o)
				assert.InDelta(t, corner.X, got.X, 1e-6, "%v rect=%+v rot=%v", o, rect, rot)
				assert.InDelta(t, corner.Y, got.Y, 1e-6, "%v rect=%+v rot=%v", o, rect, rot)
			}
		}
	}
}
