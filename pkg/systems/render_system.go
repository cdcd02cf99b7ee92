package systems

import (
	"image"
	"image/color"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 控件渲染系统
// 按场景图顺序（父先于子，先添加的先绘制）绘制带 ImageComponent 的控件
type RenderSystem struct {
	entityManager *ecs.EntityManager
	widgets       *WidgetSystem
	whitePixel    *ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, widgets *WidgetSystem) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		widgets:       widgets,
	}
}

// Draw 绘制所有屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.whitePixel == nil {
		s.whitePixel = ebiten.NewImage(1, 1)
		s.whitePixel.Fill(color.White)
	}
	for _, root := range s.widgets.Screens() {
		s.drawTree(screen, root)
	}
}

func (s *RenderSystem) drawTree(screen *ebiten.Image, id ecs.EntityID) {
	if !s.entityManager.IsEnabled(id) {
		return
	}
	s.drawEntity(screen, id)
	for _, child := range s.entityManager.Children(id) {
		s.drawTree(screen, child)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	w, ok := ecs.GetComponent[*components.WidgetComponent](s.entityManager, id)
	if !ok {
		return
	}
	img, ok := ecs.GetComponent[*components.ImageComponent](s.entityManager, id)
	if !ok {
		return
	}

	width, height := w.Rect.Width, w.Rect.Height
	if img.Type == components.ImageFilled {
		if img.FillVertical {
			height *= img.FilledStart
		} else {
			width *= img.FilledStart
		}
	}
	if width <= 0 || height <= 0 {
		return
	}

	src := s.whitePixel
	if img.Sprite != nil {
		src = img.Sprite
		// 填充模式下只取图片的对应比例
		if img.Type == components.ImageFilled {
			b := img.Sprite.Bounds()
			sub := image.Rect(b.Min.X, b.Min.Y, b.Min.X+int(float64(b.Dx())*width/w.Rect.Width), b.Min.Y+int(float64(b.Dy())*height/w.Rect.Height))
			if sub.Empty() {
				return
			}
			src = img.Sprite.SubImage(sub).(*ebiten.Image)
		}
	}

	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	op.GeoM.Translate(-w.PivotX*w.Rect.Width, -w.PivotY*w.Rect.Height)
	op.GeoM.Rotate(s.entityManager.WorldRotation(id))
	wx, wy := s.entityManager.WorldPosition(id)
	op.GeoM.Translate(wx, wy)
	if img.Color != nil {
		op.ColorScale.ScaleWithColor(img.Color)
	}
	screen.DrawImage(src, op)
}
