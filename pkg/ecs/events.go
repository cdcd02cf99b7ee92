package ecs

// EventType 实体事件类型
type EventType int

const (
	EventMouseEnter EventType = iota
	EventMouseLeave
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventTouchEnter
	EventTouchLeave
	EventFocus
	EventBlur
	EventValueChanged
	EventTransition
)

var eventTypeNames = [...]string{
	EventMouseEnter:   "mouseenter",
	EventMouseLeave:   "mouseleave",
	EventMouseDown:    "mousedown",
	EventMouseUp:      "mouseup",
	EventMouseMove:    "mousemove",
	EventTouchStart:   "touchstart",
	EventTouchMove:    "touchmove",
	EventTouchEnd:     "touchend",
	EventTouchEnter:   "touchenter",
	EventTouchLeave:   "touchleave",
	EventFocus:        "focus",
	EventBlur:         "blur",
	EventValueChanged: "valueChanged",
	EventTransition:   "transition",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event 可分发的实体事件
// 具体事件类型通过嵌入 BaseEvent 实现此接口
type Event interface {
	Kind() EventType
	Stop()
	IsStopped() bool
	base() *BaseEvent
}

// BaseEvent 事件公共字段
type BaseEvent struct {
	Type EventType
	// Target 事件的原始目标实体（冒泡过程中不变）
	Target  EntityID
	stopped bool
}

// NewEvent 创建不带额外负载的事件（focus、blur、valueChanged 等）
func NewEvent(t EventType) *BaseEvent {
	return &BaseEvent{Type: t}
}

func (e *BaseEvent) Kind() EventType  { return e.Type }
func (e *BaseEvent) Stop()            { e.stopped = true }
func (e *BaseEvent) IsStopped() bool  { return e.stopped }
func (e *BaseEvent) base() *BaseEvent { return e }

// MouseButton 鼠标按键
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// ButtonsPrimary Buttons 位掩码中的左键位
const ButtonsPrimary = 1

// MouseEvent 鼠标事件
type MouseEvent struct {
	BaseEvent
	Button  MouseButton
	Buttons int // 按下按键的位掩码，bit0 为左键
	X, Y    float64
}

// TouchEvent 触摸事件
type TouchEvent struct {
	BaseEvent
	ID   int
	X, Y float64
}

// Handler 事件处理函数
type Handler func(e Event)

// ListenerID 监听器句柄，用于 Off 注销
type ListenerID uint64

type listener struct {
	id     ListenerID
	entity EntityID
	kind   EventType
	fn     Handler
}

// EventBus 实体事件总线
//
// 职责：
//   - 按 (实体, 事件类型) 注册/注销监听器
//   - Dispatch 从目标实体开始沿父链冒泡，直到事件被 Stop
//   - Emit 只通知目标实体自身（不冒泡）
//
// 所有调用都在主循环中同步执行，不做并发保护
type EventBus struct {
	em        *EntityManager
	nextID    ListenerID
	listeners map[EntityID][]listener
}

func newEventBus(em *EntityManager) *EventBus {
	return &EventBus{
		em:        em,
		nextID:    1,
		listeners: make(map[EntityID][]listener),
	}
}

// On 注册监听器并返回句柄
func (b *EventBus) On(entity EntityID, kind EventType, fn Handler) ListenerID {
	id := b.nextID
	b.nextID++
	b.listeners[entity] = append(b.listeners[entity], listener{id: id, entity: entity, kind: kind, fn: fn})
	return id
}

// Off 注销监听器，重复注销是安全的
func (b *EventBus) Off(id ListenerID) {
	for entity, ls := range b.listeners {
		for i, l := range ls {
			if l.id != id {
				continue
			}
			ls = append(ls[:i:i], ls[i+1:]...)
			if len(ls) == 0 {
				delete(b.listeners, entity)
			} else {
				b.listeners[entity] = ls
			}
			return
		}
	}
}

// ListenerCount 返回实体上某类事件的监听器数量
func (b *EventBus) ListenerCount(entity EntityID, kind EventType) int {
	count := 0
	for _, l := range b.listeners[entity] {
		if l.kind == kind {
			count++
		}
	}
	return count
}

// Dispatch 向目标实体分发事件并沿父链冒泡
func (b *EventBus) Dispatch(target EntityID, e Event) {
	be := e.base()
	if be.Target == InvalidEntity {
		be.Target = target
	}
	for current := target; current != InvalidEntity; current = b.em.Parent(current) {
		b.notify(current, e)
		if e.IsStopped() {
			return
		}
	}
}

// Emit 只通知目标实体自身的监听器
func (b *EventBus) Emit(target EntityID, e Event) {
	be := e.base()
	if be.Target == InvalidEntity {
		be.Target = target
	}
	b.notify(target, e)
}

func (b *EventBus) notify(entity EntityID, e Event) {
	// 复制一份，允许处理函数在回调中注册/注销监听器
	ls := append([]listener(nil), b.listeners[entity]...)
	for _, l := range ls {
		if l.kind == e.Kind() {
			l.fn(e)
		}
	}
}

func (b *EventBus) removeEntity(id EntityID) {
	delete(b.listeners, id)
}
