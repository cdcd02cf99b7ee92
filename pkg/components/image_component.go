package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageType 图片渲染模式
type ImageType int

const (
	// ImageSimple 普通模式：按控件矩形绘制整张图片
	ImageSimple ImageType = iota
	// ImageFilled 填充模式：只绘制 FilledStart 比例的区域
	ImageFilled
)

// ImageComponent 图片组件
// Sprite 为 nil 时用 Color 填充控件矩形
type ImageComponent struct {
	Color  color.Color
	Sprite *ebiten.Image

	Type ImageType
	// FilledStart 填充模式下的填充比例 [0,1]，沿 FillVertical 指定的轴
	FilledStart  float64
	FillVertical bool
}

// NewImageComponent 创建纯色图片组件
func NewImageComponent(c color.Color) *ImageComponent {
	return &ImageComponent{Color: c}
}
