package slider

import (
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/gonewx/slider/pkg/utils"
)

// interactable 控件和所在实体（含祖先）都启用时才处理输入
func (s *Slider) interactable() bool {
	return s.enabled && s.em.IsEnabledInHierarchy(s.entity)
}

func (s *Slider) focused() bool {
	return s.host.FocusedEntity() == s.entity
}

// ========== 鼠标 ==========

func (s *Slider) onMouseEnter(e ecs.Event) {
	if !s.interactable() {
		return
	}
	me, ok := e.(*ecs.MouseEvent)
	if !ok {
		return
	}

	s.input.highlighting = true
	if s.focused() && me.Buttons&ecs.ButtonsPrimary != 0 {
		s.input.pressing = true
	}
	s.updateState()
}

func (s *Slider) onMouseLeave(e ecs.Event) {
	if !s.interactable() {
		return
	}

	s.input.pressing = false
	s.input.highlighting = s.focused()
	s.updateState()
}

func (s *Slider) onMouseDown(e ecs.Event) {
	if !s.interactable() {
		return
	}
	me, ok := e.(*ecs.MouseEvent)
	if !ok || me.Button != ecs.MouseButtonLeft {
		return
	}
	me.Stop()

	if !s.focused() {
		return
	}

	s.input.pressing = true
	s.updateState()
	// 点在轨道上（而不是滑块上）时直接跳到点击位置
	if me.Target != s.handle {
		s.updateDrag(utils.Vec2{X: me.X, Y: me.Y})
	}
	s.input.dragging = true
}

func (s *Slider) onMouseMove(e ecs.Event) {
	if !s.interactable() || !s.input.dragging {
		return
	}
	me, ok := e.(*ecs.MouseEvent)
	if !ok {
		return
	}
	me.Stop()
	s.updateDrag(utils.Vec2{X: me.X, Y: me.Y})
}

func (s *Slider) onMouseUp(e ecs.Event) {
	if !s.interactable() {
		return
	}
	me, ok := e.(*ecs.MouseEvent)
	if !ok || me.Button != ecs.MouseButtonLeft {
		return
	}
	me.Stop()

	s.input.dragging = false
	s.input.pressing = false
	s.updateState()
}

// ========== 触摸 ==========

func (s *Slider) onTouchStart(e ecs.Event) {
	if !s.interactable() {
		return
	}
	te, ok := e.(*ecs.TouchEvent)
	if !ok {
		return
	}
	te.Stop()

	// 只跟踪第一个触摸点，直到它结束
	if s.input.fingerID != noFinger {
		return
	}

	s.input.fingerID = te.ID
	s.input.pressing = true
	s.updateState()
	if te.Target != s.handle {
		s.updateDrag(utils.Vec2{X: te.X, Y: te.Y})
	}
	s.input.dragging = true
}

func (s *Slider) onTouchMove(e ecs.Event) {
	if !s.interactable() {
		return
	}
	te, ok := e.(*ecs.TouchEvent)
	if !ok {
		return
	}
	te.Stop()
	if te.ID != s.input.fingerID {
		return
	}

	if s.input.dragging {
		s.updateDrag(utils.Vec2{X: te.X, Y: te.Y})
	}
}

func (s *Slider) onTouchEnd(e ecs.Event) {
	if !s.interactable() {
		return
	}
	te, ok := e.(*ecs.TouchEvent)
	if !ok {
		return
	}
	te.Stop()
	if te.ID != s.input.fingerID {
		return
	}

	s.input.dragging = false
	s.input.fingerID = noFinger
	s.input.pressing = false
	s.updateState()
}

func (s *Slider) onTouchEnter(e ecs.Event) {
	if !s.interactable() {
		return
	}
	te, ok := e.(*ecs.TouchEvent)
	if !ok || s.input.fingerID == noFinger || te.ID != s.input.fingerID {
		return
	}
	te.Stop()

	s.input.pressing = true
	s.updateState()
}

func (s *Slider) onTouchLeave(e ecs.Event) {
	if !s.interactable() {
		return
	}
	te, ok := e.(*ecs.TouchEvent)
	if !ok || s.input.fingerID == noFinger || te.ID != s.input.fingerID {
		return
	}
	te.Stop()

	s.input.pressing = false
	s.updateState()
}

// ========== 焦点 ==========

func (s *Slider) onFocus(ecs.Event) {
	if !s.interactable() {
		return
	}
	s.input.highlighting = true
	s.updateState()
}

func (s *Slider) onBlur(ecs.Event) {
	if !s.interactable() {
		return
	}
	s.input.fingerID = noFinger
	s.input.highlighting = false
	s.input.pressing = false
	s.updateState()
}
