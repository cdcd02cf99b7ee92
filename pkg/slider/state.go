package slider

import (
	"log"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/ecs"
)

// noFinger 没有活动触摸
const noFinger = -1

// TransitionEvent 交互状态切换通知
type TransitionEvent struct {
	ecs.BaseEvent
	Old components.InteractionState
	New components.InteractionState
}

// interaction 单一活动指针/触摸的交互状态
type interaction struct {
	highlighting bool
	pressing     bool
	dragging     bool
	fingerID     int
}

func newInteraction() interaction {
	return interaction{fingerID: noFinger}
}

// updateState 根据 highlighting/pressing 重新计算状态
// 状态变化时派发 EventTransition，并按过渡模式更新背景
func (s *Slider) updateState() {
	state := components.ResolveInteractionState(s.input.highlighting, s.input.pressing)
	if state == s.state {
		return
	}

	old := s.state
	s.state = state

	s.em.Events().Emit(s.entity, &TransitionEvent{
		BaseEvent: ecs.BaseEvent{Type: ecs.EventTransition},
		Old:       old,
		New:       state,
	})

	bg := s.backgroundImage()
	if bg == nil {
		return
	}

	switch s.transition {
	case components.TransitionNone:
	case components.TransitionColor:
		if c := s.colors.For(state); c != nil {
			bg.Color = c
		}
	case components.TransitionSprite:
		bg.Sprite = s.sprites.For(state)
	case components.TransitionAnimation:
		log.Printf("[Slider] Warning: transition %q is not implemented (%v -> %v)", s.transition, old, state)
	}
}

// backgroundImage 背景图片：优先使用 background 实体，否则使用滑动条自身的图片
func (s *Slider) backgroundImage() *components.ImageComponent {
	if s.background != ecs.InvalidEntity {
		img, _ := ecs.GetComponent[*components.ImageComponent](s.em, s.background)
		return img
	}
	img, _ := ecs.GetComponent[*components.ImageComponent](s.em, s.entity)
	return img
}
