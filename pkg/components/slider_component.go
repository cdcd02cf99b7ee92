package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Orientation 滑动条方向
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// TransitionMode 状态切换时背景的视觉过渡方式
type TransitionMode int

const (
	TransitionNone TransitionMode = iota
	TransitionColor
	TransitionSprite
	// TransitionAnimation 可配置但未实现，行为等同 TransitionNone 并输出警告
	TransitionAnimation
)

func (m TransitionMode) String() string {
	switch m {
	case TransitionNone:
		return "none"
	case TransitionColor:
		return "color"
	case TransitionSprite:
		return "sprite"
	case TransitionAnimation:
		return "animation"
	}
	return "unknown"
}

// TransitionColors 每个交互状态对应的背景颜色
type TransitionColors struct {
	Normal    color.Color
	Highlight color.Color
	Pressed   color.Color
}

// For 返回指定状态的颜色
func (c TransitionColors) For(s InteractionState) color.Color {
	switch s {
	case StateHighlighted:
		return c.Highlight
	case StatePressed:
		return c.Pressed
	}
	return c.Normal
}

// TransitionSprites 每个交互状态对应的背景图片
type TransitionSprites struct {
	Normal    *ebiten.Image
	Highlight *ebiten.Image
	Pressed   *ebiten.Image
}

// For 返回指定状态的图片
func (s TransitionSprites) For(state InteractionState) *ebiten.Image {
	switch state {
	case StateHighlighted:
		return s.Highlight
	case StatePressed:
		return s.Pressed
	}
	return s.Normal
}

// DefaultTransitionColors 默认过渡颜色（全部为不透明白色）
func DefaultTransitionColors() TransitionColors {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return TransitionColors{Normal: white, Highlight: white, Pressed: white}
}
