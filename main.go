// Package main runs the slider demo: a horizontal volume slider and a
// rotated vertical speed slider whose values persist between runs.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <file>    Load slider configs from a YAML file instead of the embedded one
//	--no-save          Keep slider values in memory only
//
// Controls:
//
//	Mouse / Touch     - Press a slider track to jump, drag to change the value
//	Escape            - Quit (values are saved)
package main

import (
	"flag"
	"log"

	"github.com/gonewx/slider/pkg/config"
	"github.com/gonewx/slider/pkg/embedded"
	"github.com/gonewx/slider/pkg/game"
	"github.com/gonewx/slider/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const demoConfigPath = "data/slider_demo.yaml"

var (
	configFlag = flag.String("config", "", "Slider config YAML file (default: embedded data/slider_demo.yaml)")
	noSaveFlag = flag.Bool("no-save", false, "Do not persist slider values")
)

// Game implements ebiten.Game and forwards to the active scene.
type Game struct {
	sceneManager *game.SceneManager
}

// Update updates the active scene.
// Returns ebiten.Termination after saving when the window is closed or Escape is pressed.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sceneManager.SaveOnExit()
		return ebiten.Termination
	}
	g.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the active scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sceneManager.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	configs, err := loadConfigs()
	if err != nil {
		log.Fatalf("Failed to load slider configs: %v", err)
	}

	var store *game.SliderStore
	if *noSaveFlag {
		store = game.NewSliderStore(nil)
	} else {
		store = game.NewSliderStore(openGdata())
	}

	scene, err := scenes.NewSliderScene(configs, store, nil)
	if err != nil {
		log.Fatalf("Failed to build slider scene: %v", err)
	}

	sm := game.NewSceneManager()
	sm.SwitchTo(scene)

	ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
	ebiten.SetWindowTitle("Slider Demo")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&Game{sceneManager: sm}); err != nil {
		log.Fatal(err)
	}
}

func loadConfigs() (map[string]*config.SliderConfig, error) {
	if *configFlag != "" {
		return config.LoadSliderConfigs(*configFlag)
	}
	data, err := embedded.ReadFile(demoConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseSliderConfigs(data)
}

// openGdata 打开跨平台存储，失败时返回 nil（仅内存保存）
func openGdata() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: "gonewx_slider"})
	if err != nil {
		log.Printf("[main] Warning: gdata unavailable, slider values will not persist: %v", err)
		return nil
	}
	return manager
}
