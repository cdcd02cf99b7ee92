package ecs

import (
	"errors"
	"math"
	"reflect"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 表示"无实体"，ID 从 1 开始分配
const InvalidEntity EntityID = 0

// ErrEntityNotFound 表示实体不存在（从未创建或已被销毁）
var ErrEntityNotFound = errors.New("entity not found")

// node 场景图节点
// 保存实体的层级关系和局部变换（2D，旋转为弧度）
type node struct {
	name     string
	parent   EntityID
	children []EntityID
	x, y     float64
	rotation float64
	enabled  bool
}

// EntityManager 管理所有实体、组件和场景图层级
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 场景图节点: EntityID -> 节点
	nodes map[EntityID]*node
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 事件总线（实体事件分发与冒泡）
	events *EventBus
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	em := &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		nodes:             make(map[EntityID]*node),
		entitiesToDestroy: make([]EntityID, 0),
	}
	em.events = newEventBus(em)
	return em
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.nodes[id] = &node{enabled: true}
	return id
}

// CreateNamedEntity 创建带名称的实体，可选挂到父实体下
func (em *EntityManager) CreateNamedEntity(name string, parent EntityID) EntityID {
	id := em.CreateEntity()
	em.nodes[id].name = name
	if parent != InvalidEntity {
		_ = em.SetParent(id, parent)
	}
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive 检查实体是否存在
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.nodes[id]
	return ok
}

// Events 返回事件总线
func (em *EntityManager) Events() *EventBus {
	return em.events
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 子实体随父实体一起删除，事件监听同时注销
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		em.removeRecursive(id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

func (em *EntityManager) removeRecursive(id EntityID) {
	n, ok := em.nodes[id]
	if !ok {
		return
	}
	for _, child := range append([]EntityID(nil), n.children...) {
		em.removeRecursive(child)
	}
	if p, ok := em.nodes[n.parent]; ok {
		p.children = removeID(p.children, id)
	}
	delete(em.nodes, id)
	delete(em.components, id)
	em.events.removeEntity(id)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// ========== 场景图 ==========

// Name 返回实体名称
func (em *EntityManager) Name(id EntityID) string {
	if n, ok := em.nodes[id]; ok {
		return n.name
	}
	return ""
}

// FindByName 按名称查找实体（返回 ID 最小的匹配项）
func (em *EntityManager) FindByName(name string) (EntityID, bool) {
	found := InvalidEntity
	for id, n := range em.nodes {
		if n.name == name && (found == InvalidEntity || id < found) {
			found = id
		}
	}
	return found, found != InvalidEntity
}

// SetParent 设置父实体，parent 为 InvalidEntity 时从层级中脱离
func (em *EntityManager) SetParent(id, parent EntityID) error {
	n, ok := em.nodes[id]
	if !ok {
		return ErrEntityNotFound
	}
	if parent != InvalidEntity {
		if _, ok := em.nodes[parent]; !ok {
			return ErrEntityNotFound
		}
	}
	if old, ok := em.nodes[n.parent]; ok {
		old.children = removeID(old.children, id)
	}
	n.parent = parent
	if p, ok := em.nodes[parent]; ok {
		p.children = append(p.children, id)
	}
	return nil
}

// Parent 返回父实体，无父实体时返回 InvalidEntity
func (em *EntityManager) Parent(id EntityID) EntityID {
	if n, ok := em.nodes[id]; ok {
		return n.parent
	}
	return InvalidEntity
}

// Children 返回子实体列表（按添加顺序）
func (em *EntityManager) Children(id EntityID) []EntityID {
	if n, ok := em.nodes[id]; ok {
		return append([]EntityID(nil), n.children...)
	}
	return nil
}

// SetLocalPosition 设置相对父实体的位置
func (em *EntityManager) SetLocalPosition(id EntityID, x, y float64) {
	if n, ok := em.nodes[id]; ok {
		n.x, n.y = x, y
	}
}

// LocalPosition 返回相对父实体的位置
func (em *EntityManager) LocalPosition(id EntityID) (x, y float64) {
	if n, ok := em.nodes[id]; ok {
		return n.x, n.y
	}
	return 0, 0
}

// SetLocalRotation 设置相对父实体的旋转（弧度）
func (em *EntityManager) SetLocalRotation(id EntityID, radians float64) {
	if n, ok := em.nodes[id]; ok {
		n.rotation = radians
	}
}

// SetWorldRotation 设置世界旋转，内部换算为局部旋转
func (em *EntityManager) SetWorldRotation(id EntityID, radians float64) {
	n, ok := em.nodes[id]
	if !ok {
		return
	}
	n.rotation = radians - em.WorldRotation(n.parent)
}

// WorldRotation 返回实体的世界旋转（弧度），沿父链累加
func (em *EntityManager) WorldRotation(id EntityID) float64 {
	rot := 0.0
	for n, ok := em.nodes[id]; ok; n, ok = em.nodes[n.parent] {
		rot += n.rotation
	}
	return rot
}

// WorldPosition 返回实体的世界坐标
// 每一级的局部位置先按父实体的世界旋转旋转，再加上父实体的世界坐标
func (em *EntityManager) WorldPosition(id EntityID) (x, y float64) {
	n, ok := em.nodes[id]
	if !ok {
		return 0, 0
	}
	if _, hasParent := em.nodes[n.parent]; !hasParent {
		return n.x, n.y
	}
	px, py := em.WorldPosition(n.parent)
	rot := em.WorldRotation(n.parent)
	sin, cos := math.Sincos(rot)
	return px + n.x*cos - n.y*sin, py + n.x*sin + n.y*cos
}

// SetEnabled 设置实体启用状态
func (em *EntityManager) SetEnabled(id EntityID, enabled bool) {
	if n, ok := em.nodes[id]; ok {
		n.enabled = enabled
	}
}

// IsEnabled 返回实体自身的启用状态，不存在的实体视为禁用
func (em *EntityManager) IsEnabled(id EntityID) bool {
	if n, ok := em.nodes[id]; ok {
		return n.enabled
	}
	return false
}

// IsEnabledInHierarchy 实体及其所有祖先均启用时返回 true
func (em *EntityManager) IsEnabledInHierarchy(id EntityID) bool {
	n, ok := em.nodes[id]
	if !ok {
		return false
	}
	for ; ok; n, ok = em.nodes[n.parent] {
		if !n.enabled {
			return false
		}
	}
	return true
}

func removeID(ids []EntityID, id EntityID) []EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
