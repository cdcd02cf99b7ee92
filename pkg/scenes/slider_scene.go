package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"sort"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/config"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/gonewx/slider/pkg/game"
	"github.com/gonewx/slider/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// ScreenWidth 演示场景逻辑宽度
	ScreenWidth = 800
	// ScreenHeight 演示场景逻辑高度
	ScreenHeight = 600
)

// SliderScene 滑动条演示场景
//
// 职责：
//   - 构建屏幕、水平音量滑动条和旋转的竖直速度滑动条
//   - 按配置创建滑动条，进度通过 SliderStore 持久化
//   - 驱动布局、输入、滑动条和渲染系统
type SliderScene struct {
	entityManager *ecs.EntityManager
	widgets       *systems.WidgetSystem
	input         *systems.InputSystem
	sliders       *systems.SliderSystem
	render        *systems.RenderSystem

	screen  ecs.EntityID
	entries []ecs.EntityID
	sprites map[string]*ebiten.Image
}

// NewSliderScene 创建演示场景
//
// 参数：
//   - configs: 以滑动条实体名称为键的配置（"volume"、"speed"）
//   - store: 进度存储，可为 nil
//   - input: 指针输入，nil 表示使用 ebiten 输入
func NewSliderScene(configs map[string]*config.SliderConfig, store *game.SliderStore, input systems.PointerInput) (*SliderScene, error) {
	em := ecs.NewEntityManager()
	widgets := systems.NewWidgetSystem(em)

	s := &SliderScene{
		entityManager: em,
		widgets:       widgets,
		sliders:       systems.NewSliderSystem(em, widgets, store),
		render:        systems.NewRenderSystem(em, widgets),
		sprites:       newKnobSprites(),
	}
	if input != nil {
		s.input = systems.NewInputSystemWithInput(em, widgets, input)
	} else {
		s.input = systems.NewInputSystem(em, widgets)
	}

	s.screen = em.CreateNamedEntity("screen", ecs.InvalidEntity)
	screenWidget := components.NewWidgetComponent()
	screenWidget.Width, screenWidget.Height = ScreenWidth, ScreenHeight
	screenWidget.SetPivot(0, 0)
	em.AddComponent(s.screen, screenWidget)
	em.AddComponent(s.screen, components.NewImageComponent(color.RGBA{R: 40, G: 44, B: 52, A: 255}))
	widgets.AddScreen(s.screen)

	s.buildVolume()
	s.buildSpeed()
	// 布局先于 Attach，轨道矩形在第一次拖拽前就可用
	widgets.UpdateLayout()

	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entity, ok := em.FindByName(name)
		if !ok {
			return nil, fmt.Errorf("slider %q: %w", name, ecs.ErrEntityNotFound)
		}
		if _, err := s.sliders.CreateSlider(entity, configs[name], s.sprite); err != nil {
			return nil, fmt.Errorf("slider %q: %w", name, err)
		}
		em.Events().On(entity, ecs.EventValueChanged, func(ecs.Event) {
			if sl, ok := s.sliders.Slider(entity); ok {
				log.Printf("[SliderScene] %s = %.2f", name, sl.Progress())
			}
		})
		s.entries = append(s.entries, entity)
	}

	s.sliders.Update(0)
	return s, nil
}

// EntityManager 场景使用的实体管理器
func (s *SliderScene) EntityManager() *ecs.EntityManager { return s.entityManager }

// Sliders 场景使用的滑动条系统
func (s *SliderScene) Sliders() *systems.SliderSystem { return s.sliders }

// Widgets 场景使用的控件系统
func (s *SliderScene) Widgets() *systems.WidgetSystem { return s.widgets }

// Update 更新布局、绑定滑动条、处理输入并清理已销毁实体
func (s *SliderScene) Update(deltaTime float64) {
	s.widgets.UpdateLayout()
	s.sliders.Update(deltaTime)
	s.input.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制控件和当前进度
func (s *SliderScene) Draw(screen *ebiten.Image) {
	s.render.Draw(screen)

	text := ""
	for _, entity := range s.entries {
		sl, ok := s.sliders.Slider(entity)
		if !ok {
			continue
		}
		text += fmt.Sprintf("%s: %.2f (%s)\n", s.entityManager.Name(entity), sl.Progress(), sl.State())
	}
	ebitenutil.DebugPrint(screen, text)
}

// SaveOnExit 保存滑动条进度
func (s *SliderScene) SaveOnExit() bool {
	s.sliders.Close()
	return true
}

func (s *SliderScene) sprite(name string) *ebiten.Image {
	img, ok := s.sprites[name]
	if !ok {
		log.Printf("[SliderScene] Warning: sprite %q not found", name)
		return nil
	}
	return img
}

// buildVolume 水平滑动条：背景、填充区域和滑块区域
func (s *SliderScene) buildVolume() {
	root := s.widget("volume", s.screen, func(w *components.WidgetComponent) {
		w.SetAnchors(0.5, 0.3, 0.5, 0.3)
		w.Width, w.Height = 300, 20
	})
	s.entityManager.AddComponent(root, components.NewImageComponent(color.RGBA{R: 90, G: 90, B: 90, A: 255}))

	bg := s.widget("volume.bg", root, nil)
	s.entityManager.AddComponent(bg, components.NewImageComponent(color.White))

	fillArea := s.widget("volume.fillArea", root, func(w *components.WidgetComponent) {
		w.Margins = components.Margins{Left: 2, Top: 2, Right: 2, Bottom: 2}
	})
	fill := s.widget("volume.fill", fillArea, func(w *components.WidgetComponent) {
		w.SetAnchors(0, 0, 0, 1)
	})
	s.entityManager.AddComponent(fill, components.NewImageComponent(color.RGBA{R: 220, G: 60, B: 60, A: 255}))

	handleArea := s.widget("volume.handleArea", root, nil)
	handle := s.widget("volume.handle", handleArea, func(w *components.WidgetComponent) {
		w.SetAnchors(0, 0, 0, 1)
		w.Width = 20
		w.Margins = components.Margins{Top: -10, Bottom: -10}
	})
	s.entityManager.AddComponent(handle, components.NewImageComponent(color.RGBA{R: 200, G: 60, B: 200, A: 255}))
}

// buildSpeed 竖直滑动条，整体旋转 30 度，填充使用 ImageFilled 模式
func (s *SliderScene) buildSpeed() {
	root := s.widget("speed", s.screen, func(w *components.WidgetComponent) {
		w.SetAnchors(0.5, 0.65, 0.5, 0.65)
		w.Width, w.Height = 20, 240
	})
	s.entityManager.SetLocalRotation(root, math.Pi/6)
	bg := components.NewImageComponent(color.White)
	bg.Sprite = s.sprites["knob_normal"]
	s.entityManager.AddComponent(root, bg)

	fill := s.widget("speed.fill", root, nil)
	fillImage := components.NewImageComponent(color.RGBA{R: 60, G: 180, B: 90, A: 255})
	fillImage.Type = components.ImageFilled
	s.entityManager.AddComponent(fill, fillImage)

	handleArea := s.widget("speed.handleArea", root, nil)
	handle := s.widget("speed.handle", handleArea, func(w *components.WidgetComponent) {
		w.SetAnchors(0, 0, 1, 0)
		w.Height = 20
		w.Margins = components.Margins{Left: -10, Right: -10}
	})
	s.entityManager.AddComponent(handle, components.NewImageComponent(color.RGBA{R: 240, G: 200, B: 60, A: 255}))
}

// widget 创建带 WidgetComponent 的命名实体，configure 可为 nil
func (s *SliderScene) widget(name string, parent ecs.EntityID, configure func(*components.WidgetComponent)) ecs.EntityID {
	id := s.entityManager.CreateNamedEntity(name, parent)
	w := components.NewWidgetComponent()
	if configure != nil {
		configure(w)
	}
	s.entityManager.AddComponent(id, w)
	return id
}

// newKnobSprites 生成速度滑动条三种状态的纯色图片
func newKnobSprites() map[string]*ebiten.Image {
	sprites := map[string]color.Color{
		"knob_normal":    color.RGBA{R: 120, G: 120, B: 140, A: 255},
		"knob_highlight": color.RGBA{R: 160, G: 160, B: 200, A: 255},
		"knob_pressed":   color.RGBA{R: 90, G: 90, B: 220, A: 255},
	}
	out := make(map[string]*ebiten.Image, len(sprites))
	for name, c := range sprites {
		img := ebiten.NewImage(4, 4)
		img.Fill(c)
		out[name] = img
	}
	return out
}

var (
	_ game.Scene    = (*SliderScene)(nil)
	_ game.Saveable = (*SliderScene)(nil)
)
