package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestRenderSystemDraw 测试各种图片模式都能正常绘制
func TestRenderSystemDraw(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tr *testTree)
	}{
		{"color only", func(tr *testTree) {
			tr.em.AddComponent(tr.panel, components.NewImageComponent(color.RGBA{R: 255, A: 255}))
		}},
		{"sprite", func(tr *testTree) {
			img := components.NewImageComponent(color.White)
			img.Sprite = ebiten.NewImage(8, 8)
			tr.em.AddComponent(tr.panel, img)
		}},
		{"filled sprite", func(tr *testTree) {
			img := components.NewImageComponent(color.White)
			img.Sprite = ebiten.NewImage(8, 8)
			img.Type = components.ImageFilled
			img.FilledStart = 0.4
			tr.em.AddComponent(tr.panel, img)
		}},
		{"filled vertical, empty", func(tr *testTree) {
			img := components.NewImageComponent(color.White)
			img.Type = components.ImageFilled
			img.FillVertical = true
			img.FilledStart = 0
			tr.em.AddComponent(tr.inner, img)
		}},
		{"rotated", func(tr *testTree) {
			tr.em.SetLocalRotation(tr.panel, math.Pi/6)
			tr.em.AddComponent(tr.inner, components.NewImageComponent(color.White))
		}},
		{"disabled subtree", func(tr *testTree) {
			tr.em.AddComponent(tr.inner, components.NewImageComponent(color.White))
			tr.em.SetEnabled(tr.panel, false)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTree(t)
			tt.setup(tr)
			rs := NewRenderSystem(tr.em, tr.widgets)
			screen := ebiten.NewImage(800, 600)

			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Draw panicked: %v", r)
				}
			}()
			rs.Draw(screen)
			rs.Draw(screen)
		})
	}
}

// TestRenderSystemSkipsWidgetsWithoutImage 没有 ImageComponent 的控件不绘制，也不影响子控件
func TestRenderSystemSkipsWidgetsWithoutImage(t *testing.T) {
	em := ecs.NewEntityManager()
	ws := NewWidgetSystem(em)
	root := em.CreateEntity()
	em.AddComponent(root, components.NewImageComponent(color.White))
	ws.AddScreen(root)

	rs := NewRenderSystem(em, ws)
	rs.Draw(ebiten.NewImage(16, 16))
	if rs.whitePixel == nil {
		t.Error("white pixel should be created on first Draw")
	}
}
