package slider

import (
	"math"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/utils"
)

// Range 用户配置的取值区间，Min 可以大于 Max（反向区间）
type Range struct {
	Min float64
	Max float64
}

// CalMin 实际计算用的下界 min(Min, Max)
func (r Range) CalMin() float64 { return math.Min(r.Min, r.Max) }

// CalMax 实际计算用的上界 max(Min, Max)
func (r Range) CalMax() float64 { return math.Max(r.Min, r.Max) }

// Reversed Max < Min 时显示/拖拽方向反转
func (r Range) Reversed() bool { return r.Max < r.Min }

// Size 区间长度，恒 >= 0
func (r Range) Size() float64 { return r.CalMax() - r.CalMin() }

// Clamp 将进度限制在 [CalMin, CalMax]
func (r Range) Clamp(p float64) float64 {
	return utils.Clamp(p, r.CalMin(), r.CalMax())
}

// PointerToNormalized 把指针世界坐标投影到轨道方向，得到 [0,1] 的归一化值
//
// 结果与指针在垂直于轨道方向上的位置无关。
// 轨道长度为 0 时返回 0。
func PointerToNormalized(pointer, origin utils.Vec2, r Ratio, rect Rect, o components.Orientation) float64 {
	extent := rect.extent(o)
	if extent == 0 {
		return 0
	}

	offset := utils.Sub(pointer, origin)
	track := utils.Scale(r.Dir, extent)
	length := utils.Length(track)
	if length == 0 {
		return 0
	}

	value := utils.Dot(track, offset) / length / extent
	return utils.Clamp01(utils.Round2(value))
}

// NormalizedToValue 归一化值 -> 区间值
func NormalizedToValue(n float64, rng Range) float64 {
	if rng.Reversed() {
		return (1-n)*rng.Size() + rng.CalMin()
	}
	return n*rng.Size() + rng.CalMin()
}

// ValueToNormalized 区间值 -> 归一化值（保留两位小数），区间长度为 0 时返回 0
func ValueToNormalized(p float64, rng Range) float64 {
	size := rng.Size()
	if size == 0 {
		return 0
	}
	relative := utils.Round2((rng.Clamp(p) - rng.CalMin()) / size)
	if rng.Reversed() {
		return 1 - relative
	}
	return relative
}
