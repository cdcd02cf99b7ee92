package systems

import (
	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/gonewx/slider/pkg/utils"
)

// WidgetSystem 控件系统
//
// 职责：
//   - 管理屏幕根实体（第一个屏幕作为拖拽区域）
//   - 维护输入焦点，切换时派发 blur/focus
//   - 按锚点计算控件矩形和局部位置（UpdateLayout）
//   - 命中测试，考虑旋转和轴心（HitTest）
type WidgetSystem struct {
	entityManager *ecs.EntityManager
	screens       []ecs.EntityID
	focused       ecs.EntityID
}

// NewWidgetSystem 创建控件系统
func NewWidgetSystem(em *ecs.EntityManager) *WidgetSystem {
	return &WidgetSystem{entityManager: em}
}

// AddScreen 注册屏幕根实体，根实体需要带 WidgetComponent
func (s *WidgetSystem) AddScreen(id ecs.EntityID) {
	s.screens = append(s.screens, id)
}

// Screens 已注册的屏幕
func (s *WidgetSystem) Screens() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.screens...)
}

// DragArea 第一个屏幕实体，没有屏幕时返回 InvalidEntity
func (s *WidgetSystem) DragArea() ecs.EntityID {
	if len(s.screens) == 0 {
		return ecs.InvalidEntity
	}
	return s.screens[0]
}

// FocusedEntity 当前焦点实体
func (s *WidgetSystem) FocusedEntity() ecs.EntityID {
	if !s.entityManager.IsAlive(s.focused) {
		return ecs.InvalidEntity
	}
	return s.focused
}

// Focus 把焦点移到 id（InvalidEntity 表示清除焦点）
// 先对旧实体派发 blur，再对新实体派发 focus
func (s *WidgetSystem) Focus(id ecs.EntityID) {
	old := s.FocusedEntity()
	if old == id {
		return
	}
	s.focused = id

	bus := s.entityManager.Events()
	if old != ecs.InvalidEntity {
		bus.Emit(old, ecs.NewEvent(ecs.EventBlur))
	}
	if id != ecs.InvalidEntity {
		bus.Emit(id, ecs.NewEvent(ecs.EventFocus))
	}
}

// FocusAt 把焦点交给 target 或其最近的可聚焦祖先，没有则清除焦点
func (s *WidgetSystem) FocusAt(target ecs.EntityID) {
	for id := target; id != ecs.InvalidEntity; id = s.entityManager.Parent(id) {
		if w, ok := ecs.GetComponent[*components.WidgetComponent](s.entityManager, id); ok && w.Focusable {
			s.Focus(id)
			return
		}
	}
	s.Focus(ecs.InvalidEntity)
}

// UpdateLayout 从每个屏幕开始递归计算控件矩形
// 只沿带 WidgetComponent 的子实体递归
func (s *WidgetSystem) UpdateLayout() {
	for _, screen := range s.screens {
		w, ok := ecs.GetComponent[*components.WidgetComponent](s.entityManager, screen)
		if !ok {
			continue
		}
		w.Rect = components.Rect{Width: w.Width, Height: w.Height}
		s.layoutChildren(screen, w)
	}
}

func (s *WidgetSystem) layoutChildren(parent ecs.EntityID, pw *components.WidgetComponent) {
	for _, child := range s.entityManager.Children(parent) {
		cw, ok := ecs.GetComponent[*components.WidgetComponent](s.entityManager, child)
		if !ok {
			continue
		}
		x0, w := layoutAxis(pw.Rect.Width, pw.PivotX, cw.Anchor.MinX, cw.Anchor.MaxX, cw.Width, cw.PivotX, cw.Margins.Left, cw.Margins.Right)
		y0, h := layoutAxis(pw.Rect.Height, pw.PivotY, cw.Anchor.MinY, cw.Anchor.MaxY, cw.Height, cw.PivotY, cw.Margins.Top, cw.Margins.Bottom)
		cw.Rect = components.Rect{Width: w, Height: h}
		s.entityManager.SetLocalPosition(child, x0+cw.PivotX*w, y0+cw.PivotY*h)
		s.layoutChildren(child, cw)
	}
}

// layoutAxis 计算单个轴上的起点（父控件局部坐标）和尺寸
func layoutAxis(parentSize, parentPivot, anchorMin, anchorMax, fixedSize, pivot, marginMin, marginMax float64) (start, size float64) {
	base := -parentPivot * parentSize
	lo := base + anchorMin*parentSize
	hi := base + anchorMax*parentSize
	if anchorMin == anchorMax {
		return lo - pivot*fixedSize, fixedSize
	}
	start = lo + marginMin
	size = hi - marginMax - start
	if size < 0 {
		size = 0
	}
	return start, size
}

// HitTest 返回包含世界坐标 (x, y) 的最上层控件
// 后添加的子实体在上层；禁用的实体及其子树不参与命中
func (s *WidgetSystem) HitTest(x, y float64) ecs.EntityID {
	p := utils.Vec2{X: x, Y: y}
	for i := len(s.screens) - 1; i >= 0; i-- {
		if hit := s.hitTest(s.screens[i], p); hit != ecs.InvalidEntity {
			return hit
		}
	}
	return ecs.InvalidEntity
}

func (s *WidgetSystem) hitTest(id ecs.EntityID, p utils.Vec2) ecs.EntityID {
	if !s.entityManager.IsEnabled(id) {
		return ecs.InvalidEntity
	}
	children := s.entityManager.Children(id)
	for i := len(children) - 1; i >= 0; i-- {
		if hit := s.hitTest(children[i], p); hit != ecs.InvalidEntity {
			return hit
		}
	}
	if s.Contains(id, p.X, p.Y) {
		return id
	}
	return ecs.InvalidEntity
}

// Contains 判断世界坐标是否落在控件矩形内
func (s *WidgetSystem) Contains(id ecs.EntityID, x, y float64) bool {
	w, ok := ecs.GetComponent[*components.WidgetComponent](s.entityManager, id)
	if !ok {
		return false
	}
	wx, wy := s.entityManager.WorldPosition(id)
	local := utils.Rotate(utils.Vec2{X: x - wx, Y: y - wy}, -s.entityManager.WorldRotation(id))
	left := -w.PivotX * w.Rect.Width
	top := -w.PivotY * w.Rect.Height
	return local.X >= left && local.X <= left+w.Rect.Width &&
		local.Y >= top && local.Y <= top+w.Rect.Height
}
