package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager（HOME 指向临时目录）
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Setenv("HOME", t.TempDir())
	appName := fmt.Sprintf("slider_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestSliderStoreNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestSliderStoreNilGdata(t *testing.T) {
	st := NewSliderStore(nil)

	if _, ok := st.Value("volume"); ok {
		t.Error("empty store should not have values")
	}

	st.SetValue("volume", 0.4)
	if v, ok := st.Value("volume"); !ok || v != 0.4 {
		t.Errorf("Value(volume) = %v, %v; want 0.4, true", v, ok)
	}

	// 降级模式下保存不报错
	if err := st.Save(); err != nil {
		t.Errorf("Save() in degraded mode returned %v", err)
	}
}

// TestSliderStoreDirty 测试只有真正修改时才标记 dirty
func TestSliderStoreDirty(t *testing.T) {
	st := NewSliderStore(nil)
	if st.Dirty() {
		t.Fatal("new store should not be dirty")
	}

	st.SetValue("music", 0.5)
	if !st.Dirty() {
		t.Fatal("store should be dirty after SetValue")
	}

	if err := st.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if st.Dirty() {
		t.Error("Load() should reset dirty flag")
	}
}

// TestSliderStoreLoadSave 测试 Save() 后重新加载能读回进度
func TestSliderStoreLoadSave(t *testing.T) {
	manager := createTestGdataManager(t, "load_save")

	st1 := NewSliderStore(manager)
	st1.SetValue("music", 0.25)
	st1.SetValue("sound", 75)
	if err := st1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if st1.Dirty() {
		t.Error("store should not be dirty after Save()")
	}

	st2 := NewSliderStore(manager)
	if v, ok := st2.Value("music"); !ok || v != 0.25 {
		t.Errorf("music = %v, %v; want 0.25", v, ok)
	}
	if v, ok := st2.Value("sound"); !ok || v != 75 {
		t.Errorf("sound = %v, %v; want 75", v, ok)
	}
}
