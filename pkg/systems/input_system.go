package systems

import (
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerInput 输入系统使用的鼠标/触摸输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
}

// ebitenPointerInput Ebitengine 默认实现
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (e *ebitenPointerInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (e *ebitenPointerInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (e *ebitenPointerInput) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// defaultPointerInput 默认输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}

// touchState 上一帧的触摸点状态
type touchState struct {
	x, y  int
	hover ecs.EntityID
}

// InputSystem 输入系统
// 每帧轮询鼠标和触摸状态，转换为实体事件并通过事件总线派发
//
// 职责：
//   - 悬停目标变化时对离开/进入的控件链派发 mouseleave/mouseenter
//   - 左键按下时先把焦点交给可聚焦控件，再派发 mousedown
//   - 指针移动、左键释放时派发 mousemove/mouseup（冒泡到拖拽区域）
//   - 触摸开始/移动/结束派发 touchstart/touchmove/touchend，
//     活动触摸点的悬停目标变化时派发 touchleave/touchenter
type InputSystem struct {
	entityManager *ecs.EntityManager
	widgets       *WidgetSystem
	input         PointerInput

	mouseX, mouseY int
	mouseSeen      bool
	mousePressed   bool
	hover          ecs.EntityID

	touches map[ebiten.TouchID]touchState
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, widgets *WidgetSystem) *InputSystem {
	return NewInputSystemWithInput(em, widgets, defaultPointerInput)
}

// NewInputSystemWithInput 创建带自定义输入的输入系统（用于测试）
func NewInputSystemWithInput(em *ecs.EntityManager, widgets *WidgetSystem, input PointerInput) *InputSystem {
	return &InputSystem{
		entityManager: em,
		widgets:       widgets,
		input:         input,
		touches:       make(map[ebiten.TouchID]touchState),
	}
}

// Update 轮询输入并派发事件
func (s *InputSystem) Update(deltaTime float64) {
	s.updateMouse()
	s.updateTouches()
}

func (s *InputSystem) updateMouse() {
	x, y := s.input.CursorPosition()
	pressed := s.input.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	moved := !s.mouseSeen || x != s.mouseX || y != s.mouseY
	s.mouseX, s.mouseY, s.mouseSeen = x, y, true

	buttons := 0
	if pressed {
		buttons = ecs.ButtonsPrimary
	}
	newEvent := func(t ecs.EventType) *ecs.MouseEvent {
		return &ecs.MouseEvent{
			BaseEvent: ecs.BaseEvent{Type: t},
			Button:    ecs.MouseButtonLeft,
			Buttons:   buttons,
			X:         float64(x),
			Y:         float64(y),
		}
	}

	hover := s.widgets.HitTest(float64(x), float64(y))
	if hover != s.hover {
		s.crossBoundary(s.hover, hover, func(t ecs.EventType) ecs.Event {
			return newEvent(t)
		}, ecs.EventMouseLeave, ecs.EventMouseEnter)
		s.hover = hover
	}

	target := s.target(hover)
	bus := s.entityManager.Events()

	if moved {
		bus.Dispatch(target, newEvent(ecs.EventMouseMove))
	}
	if pressed && !s.mousePressed {
		s.widgets.FocusAt(hover)
		bus.Dispatch(target, newEvent(ecs.EventMouseDown))
	}
	if !pressed && s.mousePressed {
		bus.Dispatch(target, newEvent(ecs.EventMouseUp))
	}
	s.mousePressed = pressed
}

func (s *InputSystem) updateTouches() {
	ids := s.input.AppendTouchIDs(nil)
	bus := s.entityManager.Events()
	active := make(map[ebiten.TouchID]bool, len(ids))

	for _, id := range ids {
		active[id] = true
		x, y := s.input.TouchPosition(id)
		hover := s.widgets.HitTest(float64(x), float64(y))
		newEvent := func(t ecs.EventType) ecs.Event {
			return &ecs.TouchEvent{BaseEvent: ecs.BaseEvent{Type: t}, ID: int(id), X: float64(x), Y: float64(y)}
		}

		prev, known := s.touches[id]
		s.touches[id] = touchState{x: x, y: y, hover: hover}
		if !known {
			bus.Dispatch(s.target(hover), newEvent(ecs.EventTouchStart))
			continue
		}
		if hover != prev.hover {
			s.crossBoundary(prev.hover, hover, newEvent, ecs.EventTouchLeave, ecs.EventTouchEnter)
		}
		if x != prev.x || y != prev.y {
			bus.Dispatch(s.target(hover), newEvent(ecs.EventTouchMove))
		}
	}

	for id, prev := range s.touches {
		if active[id] {
			continue
		}
		delete(s.touches, id)
		bus.Dispatch(s.target(prev.hover), &ecs.TouchEvent{
			BaseEvent: ecs.BaseEvent{Type: ecs.EventTouchEnd},
			ID:        int(id),
			X:         float64(prev.x),
			Y:         float64(prev.y),
		})
	}
}

// target 没有命中控件时事件发给拖拽区域
func (s *InputSystem) target(hover ecs.EntityID) ecs.EntityID {
	if hover == ecs.InvalidEntity || !s.entityManager.IsAlive(hover) {
		return s.widgets.DragArea()
	}
	return hover
}

// crossBoundary 对只在旧祖先链中的实体派发 leave，对只在新祖先链中的实体派发 enter
// enter/leave 不冒泡
func (s *InputSystem) crossBoundary(from, to ecs.EntityID, newEvent func(ecs.EventType) ecs.Event, leave, enter ecs.EventType) {
	oldChain := s.ancestry(from)
	newChain := s.ancestry(to)
	inNew := make(map[ecs.EntityID]bool, len(newChain))
	for _, id := range newChain {
		inNew[id] = true
	}
	inOld := make(map[ecs.EntityID]bool, len(oldChain))
	for _, id := range oldChain {
		inOld[id] = true
	}

	bus := s.entityManager.Events()
	for _, id := range oldChain {
		if !inNew[id] {
			bus.Emit(id, newEvent(leave))
		}
	}
	for i := len(newChain) - 1; i >= 0; i-- {
		if id := newChain[i]; !inOld[id] {
			bus.Emit(id, newEvent(enter))
		}
	}
}

// ancestry 返回 id 及其所有存活的祖先（由内到外）
func (s *InputSystem) ancestry(id ecs.EntityID) []ecs.EntityID {
	var chain []ecs.EntityID
	for cur := id; cur != ecs.InvalidEntity && s.entityManager.IsAlive(cur); cur = s.entityManager.Parent(cur) {
		chain = append(chain, cur)
	}
	return chain
}
