package slider

import (
	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/gonewx/slider/pkg/utils"
)

// WidgetHost 滑动条依赖的宿主输入/焦点系统
type WidgetHost interface {
	// FocusedEntity 当前持有输入焦点的实体，没有时返回 ecs.InvalidEntity
	FocusedEntity() ecs.EntityID
	// DragArea 顶层输入区域，拖拽过程中的 move/up/end 事件在这里监听
	DragArea() ecs.EntityID
}

// Slider 滑动条控件
//
// 职责：
//   - 持有配置（handle、fill、background、方向、区间、过渡模式）
//   - 缓存轨道方向 Ratio（绑定时计算一次）
//   - 把指针/触摸事件转换为进度，并更新 handle/fill 锚点
//   - 派发 EventValueChanged 和 EventTransition
//
// handle/fill/background 只是借用的实体引用，实体被销毁后相关操作静默跳过。
type Slider struct {
	em     *ecs.EntityManager
	host   WidgetHost
	entity ecs.EntityID

	enabled bool

	handle     ecs.EntityID
	fill       ecs.EntityID
	background ecs.EntityID
	// track 轨道实体（handle 的父实体）
	track ecs.EntityID

	direction  components.Orientation
	rng        Range
	progress   float64
	normalized float64

	transition components.TransitionMode
	colors     components.TransitionColors
	sprites    components.TransitionSprites

	state components.InteractionState
	input interaction
	ratio Ratio

	attached  bool
	listeners []ecs.ListenerID
}

// New 创建滑动条并作为组件挂到 entity 上
// 默认区间 [0, 1]，水平方向，无过渡
func New(em *ecs.EntityManager, host WidgetHost, entity ecs.EntityID) *Slider {
	s := &Slider{
		em:      em,
		host:    host,
		entity:  entity,
		enabled: true,
		rng:     Range{Min: 0, Max: 1},
		colors:  components.DefaultTransitionColors(),
		input:   newInteraction(),
		ratio:   ComputeRatio(0, components.Horizontal),
	}
	em.AddComponent(entity, s)
	return s
}

// Entity 滑动条所在实体
func (s *Slider) Entity() ecs.EntityID { return s.entity }

// Progress 当前值，恒在 [CalMin, CalMax] 内
func (s *Slider) Progress() float64 { return s.progress }

// NormalizedValue 视觉上的归一化值（反向区间已镜像）
func (s *Slider) NormalizedValue() float64 { return s.normalized }

// State 当前交互状态
func (s *Slider) State() components.InteractionState { return s.state }

// Range 当前配置区间
func (s *Slider) Range() Range { return s.rng }

// Reversed 是否为反向区间
func (s *Slider) Reversed() bool { return s.rng.Reversed() }

// Direction 当前方向
func (s *Slider) Direction() components.Orientation { return s.direction }

// Dragging 是否正在拖拽
func (s *Slider) Dragging() bool { return s.input.dragging }

// FingerID 当前跟踪的触摸 ID，没有时为 -1
func (s *Slider) FingerID() int { return s.input.fingerID }

// Ratio 缓存的轨道方向
func (s *Slider) Ratio() Ratio { return s.ratio }

// Handle 滑块实体
func (s *Slider) Handle() ecs.EntityID { return s.handle }

// Fill 填充实体
func (s *Slider) Fill() ecs.EntityID { return s.fill }

// Background 状态过渡使用的背景实体
func (s *Slider) Background() ecs.EntityID { return s.background }

// Attached 是否已绑定到场景
func (s *Slider) Attached() bool { return s.attached }

// Enabled 控件自身是否启用
func (s *Slider) Enabled() bool { return s.enabled }

// SetEnabled 启用/禁用控件；禁用后所有输入处理都被忽略
func (s *Slider) SetEnabled(enabled bool) { s.enabled = enabled }

// SetHandle 设置滑块实体，重新绑定轨道并刷新 Ratio 和视觉
func (s *Slider) SetHandle(handle ecs.EntityID) {
	if s.handle == handle {
		return
	}
	s.handle = handle
	s.track = s.em.Parent(handle)
	s.RefreshRatio()
	s.applyVisuals()
}

// SetFill 设置填充实体
func (s *Slider) SetFill(fill ecs.EntityID) {
	if s.fill == fill {
		return
	}
	s.fill = fill
	s.applyVisuals()
}

// SetBackground 设置状态过渡使用的背景实体，InvalidEntity 表示使用自身图片
func (s *Slider) SetBackground(background ecs.EntityID) {
	if s.background == background {
		return
	}
	s.background = background
}

// SetDirection 设置方向，重新计算 Ratio 和视觉
func (s *Slider) SetDirection(o components.Orientation) {
	if s.direction == o {
		return
	}
	s.direction = o
	s.RefreshRatio()
	s.applyVisuals()
}

// SetMinValue 设置区间起点
func (s *Slider) SetMinValue(v float64) {
	if s.rng.Min == v {
		return
	}
	s.rng.Min = v
	s.rerange()
}

// SetMaxValue 设置区间终点
func (s *Slider) SetMaxValue(v float64) {
	if s.rng.Max == v {
		return
	}
	s.rng.Max = v
	s.rerange()
}

// SetRange 同时设置区间两端
func (s *Slider) SetRange(min, max float64) {
	if s.rng.Min == min && s.rng.Max == max {
		return
	}
	s.rng = Range{Min: min, Max: max}
	s.rerange()
}

// SetProgress 外部设置进度，超出区间的值会被截断
func (s *Slider) SetProgress(v float64) {
	if s.progress == v {
		return
	}
	s.set(v, false)
}

// SetTransition 设置状态过渡模式
func (s *Slider) SetTransition(m components.TransitionMode) { s.transition = m }

// SetTransitionColors 设置各状态的背景颜色
func (s *Slider) SetTransitionColors(c components.TransitionColors) { s.colors = c }

// SetTransitionSprites 设置各状态的背景图片
func (s *Slider) SetTransitionSprites(sp components.TransitionSprites) { s.sprites = sp }

// RefreshRatio 按轨道当前的世界旋转重新计算 Ratio
//
// Ratio 只在绑定 handle、切换方向和 Attach 时计算；
// 运行时旋转轨道后需要宿主显式调用
func (s *Slider) RefreshRatio() {
	s.ratio = ComputeRatio(s.em.WorldRotation(s.track), s.direction)
}

// Attach 绑定到场景（对应实体的 ready 通知，只生效一次）
//
// 标记控件可聚焦，计算 Ratio 和初始归一化值，刷新视觉，
// 并在实体和拖拽区域上注册事件处理函数
func (s *Slider) Attach() {
	if s.attached {
		return
	}
	s.attached = true

	if w, ok := ecs.GetComponent[*components.WidgetComponent](s.em, s.entity); ok {
		w.Focusable = true
	}
	if s.handle != ecs.InvalidEntity {
		s.track = s.em.Parent(s.handle)
	}
	s.RefreshRatio()
	s.normalized = ValueToNormalized(s.progress, s.rng)
	s.applyVisuals()

	bus := s.em.Events()
	own := []struct {
		kind ecs.EventType
		fn   ecs.Handler
	}{
		{ecs.EventMouseEnter, s.onMouseEnter},
		{ecs.EventMouseLeave, s.onMouseLeave},
		{ecs.EventMouseDown, s.onMouseDown},
		{ecs.EventMouseUp, s.onMouseUp},
		{ecs.EventFocus, s.onFocus},
		{ecs.EventBlur, s.onBlur},
		{ecs.EventTouchEnter, s.onTouchEnter},
		{ecs.EventTouchLeave, s.onTouchLeave},
		{ecs.EventTouchStart, s.onTouchStart},
		{ecs.EventTouchEnd, s.onTouchEnd},
	}
	for _, h := range own {
		s.listeners = append(s.listeners, bus.On(s.entity, h.kind, h.fn))
	}

	dragArea := s.host.DragArea()
	if dragArea == ecs.InvalidEntity {
		return
	}
	s.listeners = append(s.listeners,
		bus.On(dragArea, ecs.EventMouseMove, s.onMouseMove),
		bus.On(dragArea, ecs.EventMouseUp, s.onMouseUp),
		bus.On(dragArea, ecs.EventTouchMove, s.onTouchMove),
		bus.On(dragArea, ecs.EventTouchEnd, s.onTouchEnd),
	)
}

// Detach 从场景解绑：取消可聚焦并注销 Attach 注册的所有处理函数
func (s *Slider) Detach() {
	if !s.attached {
		return
	}
	s.attached = false

	if w, ok := ecs.GetComponent[*components.WidgetComponent](s.em, s.entity); ok {
		w.Focusable = false
	}
	for _, id := range s.listeners {
		s.em.Events().Off(id)
	}
	s.listeners = nil
	s.input = newInteraction()
}

// set 截断并保存进度，变化时刷新视觉并派发 EventValueChanged
// fromDrag 为 true 时归一化值已由拖拽计算好
func (s *Slider) set(v float64, fromDrag bool) {
	num := s.rng.Clamp(v)
	if s.progress == num {
		return
	}
	s.progress = num
	if !fromDrag {
		s.normalized = ValueToNormalized(num, s.rng)
	}
	s.applyVisuals()
	s.em.Events().Emit(s.entity, ecs.NewEvent(ecs.EventValueChanged))
}

// rerange 区间变化后重新截断进度并刷新归一化值
func (s *Slider) rerange() {
	s.set(s.progress, false)
	s.normalized = ValueToNormalized(s.progress, s.rng)
	s.applyVisuals()
}

// updateDrag 把指针世界坐标转换为进度
func (s *Slider) updateDrag(pointer utils.Vec2) {
	if !s.em.IsAlive(s.handle) || !s.em.IsAlive(s.fill) {
		return
	}
	rect, ok := s.trackRect()
	if !ok {
		return
	}

	wx, wy := s.em.WorldPosition(s.track)
	origin := AnchorWorldOrigin(utils.Vec2{X: wx, Y: wy}, rect, s.ratio, s.direction)

	// 退化区间的归一化值恒为 0
	if s.rng.Size() == 0 {
		s.normalized = 0
	} else {
		s.normalized = PointerToNormalized(pointer, origin, s.ratio, rect, s.direction)
	}
	s.set(NormalizedToValue(s.normalized, s.rng), true)
}

// trackRect 读取轨道控件当前的布局矩形
func (s *Slider) trackRect() (Rect, bool) {
	w, ok := ecs.GetComponent[*components.WidgetComponent](s.em, s.track)
	if !ok {
		return Rect{}, false
	}
	return Rect{
		Width:  w.Rect.Width,
		Height: w.Rect.Height,
		PivotX: w.PivotX,
		PivotY: w.PivotY,
	}, true
}
