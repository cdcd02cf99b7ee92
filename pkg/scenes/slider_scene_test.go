package scenes

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/config"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/gonewx/slider/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMouseInput 只模拟鼠标的输入
type mockMouseInput struct {
	x, y    int
	pressed bool
}

func (m *mockMouseInput) CursorPosition() (int, int) { return m.x, m.y }
func (m *mockMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return button == ebiten.MouseButtonLeft && m.pressed
}
func (m *mockMouseInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
func (m *mockMouseInput) TouchPosition(id ebiten.TouchID) (int, int)        { return 0, 0 }

func loadDemoConfigs(t *testing.T) map[string]*config.SliderConfig {
	t.Helper()
	configs, err := config.LoadSliderConfigs(filepath.Join("..", "..", "data", "slider_demo.yaml"))
	require.NoError(t, err)
	return configs
}

func TestNewSliderScene(t *testing.T) {
	scene, err := NewSliderScene(loadDemoConfigs(t), game.NewSliderStore(nil), &mockMouseInput{x: -1, y: -1})
	require.NoError(t, err)
	em := scene.EntityManager()

	volumeID, ok := em.FindByName("volume")
	require.True(t, ok)
	volume, ok := scene.Sliders().Slider(volumeID)
	require.True(t, ok)
	assert.True(t, volume.Attached())
	assert.Equal(t, 0.5, volume.Progress())

	speedID, _ := em.FindByName("speed")
	speed, ok := scene.Sliders().Slider(speedID)
	require.True(t, ok)
	assert.Equal(t, 75.0, speed.Progress())
	assert.Equal(t, 0.5, speed.NormalizedValue())
	assert.Equal(t, components.Vertical, speed.Direction())

	fillID, _ := em.FindByName("speed.fill")
	fill, ok := ecs.GetComponent[*components.ImageComponent](em, fillID)
	require.True(t, ok)
	assert.Equal(t, 0.5, fill.FilledStart)
	assert.True(t, fill.FillVertical)
}

func TestSliderSceneDragVolume(t *testing.T) {
	store := game.NewSliderStore(nil)
	input := &mockMouseInput{x: -1, y: -1}
	scene, err := NewSliderScene(loadDemoConfigs(t), store, input)
	require.NoError(t, err)

	volumeID, _ := scene.EntityManager().FindByName("volume")
	volume, _ := scene.Sliders().Slider(volumeID)

	// 音量滑动条中心 (400, 180)，轨道零点边缘 x=250
	input.x, input.y, input.pressed = 475, 180, true
	scene.Update(1.0 / 60)
	assert.Equal(t, volumeID, scene.Widgets().FocusedEntity())
	assert.Equal(t, 0.75, volume.Progress())
	assert.Equal(t, components.StatePressed, volume.State())

	input.x = 310
	scene.Update(1.0 / 60)
	assert.Equal(t, 0.2, volume.Progress())

	input.pressed = false
	scene.Update(1.0 / 60)
	assert.False(t, volume.Dragging())

	v, ok := store.Value("volume")
	assert.True(t, ok)
	assert.Equal(t, 0.2, v)
	assert.True(t, scene.SaveOnExit())
}

func TestSliderSceneRestoresStore(t *testing.T) {
	store := game.NewSliderStore(nil)
	store.SetValue("speed", 60)

	scene, err := NewSliderScene(loadDemoConfigs(t), store, &mockMouseInput{x: -1, y: -1})
	require.NoError(t, err)

	speedID, _ := scene.EntityManager().FindByName("speed")
	speed, _ := scene.Sliders().Slider(speedID)
	assert.Equal(t, 60.0, speed.Progress())
	assert.Equal(t, 0.8, speed.NormalizedValue())
}

func TestSliderSceneUnknownSlider(t *testing.T) {
	configs := loadDemoConfigs(t)
	configs["balance"] = configs["volume"]

	_, err := NewSliderScene(configs, nil, &mockMouseInput{})
	assert.True(t, errors.Is(err, ecs.ErrEntityNotFound), "err = %v", err)
}

func TestSliderSceneDraw(t *testing.T) {
	scene, err := NewSliderScene(loadDemoConfigs(t), nil, &mockMouseInput{x: -1, y: -1})
	require.NoError(t, err)

	screen := ebiten.NewImage(ScreenWidth, ScreenHeight)
	assert.NotPanics(t, func() {
		scene.Update(1.0 / 60)
		scene.Draw(screen)
	})
}
