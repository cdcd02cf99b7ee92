package slider

import (
	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/ecs"
)

// HandleAnchor 滑块锚点：进度轴上宽度为 0、位于 n 处，另一轴铺满
func HandleAnchor(n float64, o components.Orientation) components.Anchor {
	a := components.FullAnchor
	if o == components.Vertical {
		a.MinY, a.MaxY = n, n
	} else {
		a.MinX, a.MaxX = n, n
	}
	return a
}

// FillAnchor 填充锚点
//
// filled 为 true 时填充图片自己按 FilledStart 裁剪，锚点保持铺满；
// 否则进度轴上覆盖 [0, n]，反向区间覆盖 [n, 1]。
func FillAnchor(n float64, o components.Orientation, reversed, filled bool) components.Anchor {
	a := components.FullAnchor
	if filled {
		return a
	}

	lo, hi := 0.0, n
	if reversed {
		lo, hi = n, 1
	}
	if o == components.Vertical {
		a.MinY, a.MaxY = lo, hi
	} else {
		a.MinX, a.MaxX = lo, hi
	}
	return a
}

// applyVisuals 按当前归一化值更新 handle 和 fill
// handle 或 fill 缺失（未设置或已销毁）时不做任何事
func (s *Slider) applyVisuals() {
	if s.handle == ecs.InvalidEntity || s.fill == ecs.InvalidEntity {
		return
	}
	handleWidget, ok := ecs.GetComponent[*components.WidgetComponent](s.em, s.handle)
	if !ok {
		return
	}
	fillWidget, ok := ecs.GetComponent[*components.WidgetComponent](s.em, s.fill)
	if !ok {
		return
	}

	handleWidget.Anchor = HandleAnchor(s.normalized, s.direction)

	filled := false
	if img, ok := ecs.GetComponent[*components.ImageComponent](s.em, s.fill); ok && img.Type == components.ImageFilled {
		filled = true
		img.FilledStart = s.normalized
		img.FillVertical = s.direction == components.Vertical
	}
	fillWidget.Anchor = FillAnchor(s.normalized, s.direction, s.rng.Reversed(), filled)
}
