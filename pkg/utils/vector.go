package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 二维向量（世界坐标系，y 轴向下）
type Vec2 struct {
	X, Y float64
}

// Add 返回 a + b
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub 返回 a - b
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale 返回 v * k
func Scale(v Vec2, k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Dot 点积
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Length 向量长度
func Length(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate 将向量按弧度旋转（与渲染使用同一套 GeoM 约定）
func Rotate(v Vec2, radians float64) Vec2 {
	var g ebiten.GeoM
	g.Rotate(radians)
	x, y := g.Apply(v.X, v.Y)
	return Vec2{X: x, Y: y}
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Round2 四舍五入到两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
