// Package slider 实现可拖拽滑动条控件
//
// 滑动条由一个轨道（handle 的父控件）、一个滑块 handle 和一个填充 fill 组成。
// 指针在世界坐标中的位置被投影到轨道方向上，换算为 [0,1] 的归一化值，
// 再映射到用户配置的 [minValue, maxValue] 区间（允许 min > max 的反向区间）。
//
// 所有计算都在事件回调中同步完成，不做并发保护。
package slider

import (
	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/utils"
)

// Rect 轨道矩形（宽高 + 轴心）
type Rect struct {
	Width  float64
	Height float64
	PivotX float64
	PivotY float64
}

// extent 返回进度方向上的轨道长度
func (r Rect) extent(o components.Orientation) float64 {
	if o == components.Vertical {
		return r.Height
	}
	return r.Width
}

// Ratio 轨道在世界坐标中的方向
//   - Dir: 进度方向（单位向量），拖拽偏移投影到这个方向上
//   - Normal: 规范"轴"向量旋转后的结果
type Ratio struct {
	Dir    utils.Vec2
	Normal utils.Vec2
}

// ComputeRatio 根据轨道的世界旋转和方向计算 Ratio
//
// 水平：轴 (0,1)，进度方向 (1,0)
// 垂直：轴 (-1,0)，进度方向 (0,1)
func ComputeRatio(rotation float64, o components.Orientation) Ratio {
	axis := utils.Vec2{X: 0, Y: 1}
	dir := utils.Vec2{X: 1, Y: 0}
	if o == components.Vertical {
		axis = utils.Vec2{X: -1, Y: 0}
		dir = utils.Vec2{X: 0, Y: 1}
	}
	return Ratio{
		Dir:    utils.Rotate(dir, rotation),
		Normal: utils.Rotate(axis, rotation),
	}
}

// AnchorWorldOrigin 计算轨道"零点"边缘的世界坐标
//
// wpos 是轨道轴心的世界坐标，减去按轴心比例缩放、按 Ratio 旋转的半尺寸。
// 两个方向的符号约定不同（垂直方向的 Dir 是水平方向 Dir 旋转 90° 的结果），
// 但得到的是同一个矩形角点。
func AnchorWorldOrigin(wpos utils.Vec2, rect Rect, r Ratio, o components.Orientation) utils.Vec2 {
	w, h := rect.Width, rect.Height
	px, py := rect.PivotX, rect.PivotY
	d := r.Dir

	if o == components.Vertical {
		return utils.Vec2{
			X: wpos.X + h*py*-d.X - w*px*d.Y,
			Y: wpos.Y - h*py*d.Y - w*px*-d.X,
		}
	}
	return utils.Vec2{
		X: wpos.X - w*px*d.X + h*py*d.Y,
		Y: wpos.Y - w*px*d.Y - h*py*d.X,
	}
}
