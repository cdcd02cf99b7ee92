package components

// Anchor 锚点矩形，相对父矩形的比例坐标 [0,1]
// y 轴向下：MinY=0 为父矩形上边缘
type Anchor struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// FullAnchor 覆盖整个父矩形的锚点
var FullAnchor = Anchor{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}

// Margins 锚点区域各边的内缩量（像素），负值表示向外扩展
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Rect 控件的布局结果（局部尺寸）
type Rect struct {
	Width  float64
	Height float64
}

// WidgetComponent UI 控件组件
//
// 只实现定位 handle/fill 所需的最小锚点模型：
//   - 锚点两端相等的轴使用 Width/Height 作为固定尺寸
//   - 锚点两端不等的轴拉伸到锚点区域，再按 Margins 内缩
//   - 没有控件父节点的根控件直接使用 Width/Height
//
// Rect 由 WidgetSystem.UpdateLayout 计算，其余字段为配置
type WidgetComponent struct {
	Anchor  Anchor
	Margins Margins

	// 固定尺寸（锚点在该轴上重合时使用）
	Width  float64
	Height float64

	// 轴心（0~1），实体位置对应矩形上的这一点
	PivotX float64
	PivotY float64

	// Focusable 是否可以获得输入焦点
	Focusable bool

	// Rect 计算后的矩形尺寸
	Rect Rect
}

// NewWidgetComponent 创建居中轴心、铺满父矩形的控件
func NewWidgetComponent() *WidgetComponent {
	return &WidgetComponent{
		Anchor: FullAnchor,
		PivotX: 0.5,
		PivotY: 0.5,
	}
}

// SetAnchors 设置锚点
func (w *WidgetComponent) SetAnchors(minX, minY, maxX, maxY float64) {
	w.Anchor = Anchor{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// SetPivot 设置轴心
func (w *WidgetComponent) SetPivot(x, y float64) {
	w.PivotX, w.PivotY = x, y
}
