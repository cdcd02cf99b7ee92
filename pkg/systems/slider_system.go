package systems

import (
	"log"
	"reflect"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/config"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/gonewx/slider/pkg/game"
	"github.com/gonewx/slider/pkg/slider"
)

var sliderType = reflect.TypeOf((*slider.Slider)(nil))

// sliderBinding 系统对单个滑动条的跟踪信息
type sliderBinding struct {
	slider    *slider.Slider
	storeKey  string
	listeners []ecs.ListenerID
}

// SliderSystem 滑动条生命周期系统
//
// 职责：
//   - 按配置创建滑动条，并从 SliderStore 恢复进度
//   - 在实体就绪后的第一次 Update 中调用 Attach（一次性 ready 通知）
//   - 实体销毁后调用 Detach，注销拖拽区域上的监听
//   - 进度变化时写入 SliderStore，释放按压时保存
type SliderSystem struct {
	entityManager *ecs.EntityManager
	widgets       *WidgetSystem
	store         *game.SliderStore
	bindings      map[ecs.EntityID]*sliderBinding
}

// NewSliderSystem 创建滑动条系统，store 可为 nil（不持久化）
func NewSliderSystem(em *ecs.EntityManager, widgets *WidgetSystem, store *game.SliderStore) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		widgets:       widgets,
		store:         store,
		bindings:      make(map[ecs.EntityID]*sliderBinding),
	}
}

// CreateSlider 在 entity 上创建滑动条并应用配置
func (s *SliderSystem) CreateSlider(entity ecs.EntityID, cfg *config.SliderConfig, sprites slider.SpriteResolver) (*slider.Slider, error) {
	sl := slider.New(s.entityManager, s.widgets, entity)
	if err := sl.ApplyConfig(cfg, sprites); err != nil {
		s.entityManager.RemoveComponent(entity, sliderType)
		return nil, err
	}

	b := &sliderBinding{slider: sl, storeKey: cfg.StoreKey}
	if s.store != nil && b.storeKey != "" {
		if v, ok := s.store.Value(b.storeKey); ok {
			sl.SetProgress(v)
		}
		bus := s.entityManager.Events()
		b.listeners = append(b.listeners,
			bus.On(entity, ecs.EventValueChanged, func(ecs.Event) {
				s.store.SetValue(b.storeKey, sl.Progress())
			}),
			bus.On(entity, ecs.EventTransition, func(e ecs.Event) {
				if te, ok := e.(*slider.TransitionEvent); ok && te.Old == components.StatePressed {
					s.save()
				}
			}),
		)
	}
	s.bindings[entity] = b
	return sl, nil
}

// Slider 返回实体上的滑动条
func (s *SliderSystem) Slider(entity ecs.EntityID) (*slider.Slider, bool) {
	b, ok := s.bindings[entity]
	if !ok {
		return nil, false
	}
	return b.slider, true
}

// Update 绑定新就绪的滑动条，解绑已销毁的滑动条
func (s *SliderSystem) Update(deltaTime float64) {
	for entity, b := range s.bindings {
		if !s.entityManager.IsAlive(entity) {
			s.release(entity, b)
			continue
		}
		if !b.slider.Attached() {
			b.slider.Attach()
		}
	}
}

// RemoveSlider 解绑并销毁滑动条实体
func (s *SliderSystem) RemoveSlider(entity ecs.EntityID) {
	if b, ok := s.bindings[entity]; ok {
		s.release(entity, b)
	}
	s.entityManager.DestroyEntity(entity)
}

// Close 保存所有未保存的进度
func (s *SliderSystem) Close() {
	s.save()
}

func (s *SliderSystem) release(entity ecs.EntityID, b *sliderBinding) {
	b.slider.Detach()
	for _, id := range b.listeners {
		s.entityManager.Events().Off(id)
	}
	delete(s.bindings, entity)
}

func (s *SliderSystem) save() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(); err != nil {
		log.Printf("[SliderSystem] Warning: Failed to save slider values: %v", err)
	}
}
