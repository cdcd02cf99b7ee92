package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SliderValues 持久化的滑动条进度，键由配置的 storeKey 决定
type SliderValues struct {
	Values map[string]float64 `yaml:"values"`
}

// SliderStore 滑动条进度存储
// 负责进度值的加载、保存和内存管理
type SliderStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	values       *SliderValues
	dirty        bool
}

// 存储路径常量
const (
	sliderStoreObject   = "sliders"
	sliderStoreProperty = "values"
)

func emptySliderValues() *SliderValues {
	return &SliderValues{Values: make(map[string]float64)}
}

// NewSliderStore 创建新的进度存储实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 加载失败不是致命错误，记录警告后以空数据开始
func NewSliderStore(gdataManager *gdata.Manager) *SliderStore {
	st := &SliderStore{
		gdataManager: gdataManager,
		values:       emptySliderValues(),
	}

	if err := st.Load(); err != nil {
		log.Printf("[SliderStore] Warning: Failed to load slider values: %v (starting empty)", err)
	}
	return st
}

// Load 从 gdata 加载进度
// gdataManager 为 nil 或数据不存在时清空内存中的值
func (st *SliderStore) Load() error {
	st.values = emptySliderValues()
	st.dirty = false

	if st.gdataManager == nil {
		return nil
	}
	if !st.gdataManager.ObjectPropExists(sliderStoreObject, sliderStoreProperty) {
		return nil
	}

	data, err := st.gdataManager.LoadObjectProp(sliderStoreObject, sliderStoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load slider values: %w", err)
	}

	var loaded SliderValues
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal slider values: %w", err)
	}
	if loaded.Values != nil {
		st.values = &loaded
	}
	log.Printf("[SliderStore] Loaded %d slider values", len(st.values.Values))
	return nil
}

// Save 保存进度到 gdata
// gdataManager 为 nil 或没有未保存的修改时直接返回
func (st *SliderStore) Save() error {
	if st.gdataManager == nil || !st.dirty {
		return nil
	}

	data, err := yaml.Marshal(st.values)
	if err != nil {
		return fmt.Errorf("failed to marshal slider values: %w", err)
	}
	if err := st.gdataManager.SaveObjectProp(sliderStoreObject, sliderStoreProperty, data); err != nil {
		return fmt.Errorf("failed to save slider values: %w", err)
	}

	st.dirty = false
	log.Printf("[SliderStore] Slider values saved successfully")
	return nil
}

// Value 返回保存的进度
func (st *SliderStore) Value(key string) (float64, bool) {
	v, ok := st.values.Values[key]
	return v, ok
}

// SetValue 修改内存中的进度，需调用 Save() 持久化
func (st *SliderStore) SetValue(key string, v float64) {
	if old, ok := st.values.Values[key]; ok && old == v {
		return
	}
	st.values.Values[key] = v
	st.dirty = true
}

// Dirty 是否有未保存的修改
func (st *SliderStore) Dirty() bool {
	return st.dirty
}
