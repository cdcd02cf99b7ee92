package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/gonewx/slider/pkg/components"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownDirection direction 字段不是 horizontal/vertical
	ErrUnknownDirection = errors.New("unknown slider direction")
	// ErrUnknownTransition transition 字段不是 none/color/sprite/animation
	ErrUnknownTransition = errors.New("unknown slider transition")
)

// Direction YAML 中的方向字段（"horizontal" | "vertical"）
type Direction components.Orientation

// UnmarshalYAML 解析方向字符串
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "horizontal":
		*d = Direction(components.Horizontal)
	case "vertical":
		*d = Direction(components.Vertical)
	default:
		return fmt.Errorf("line %d: %q: %w", value.Line, value.Value, ErrUnknownDirection)
	}
	return nil
}

// Transition YAML 中的过渡模式字段
type Transition components.TransitionMode

// UnmarshalYAML 解析过渡模式字符串
func (t *Transition) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "", "none":
		*t = Transition(components.TransitionNone)
	case "color":
		*t = Transition(components.TransitionColor)
	case "sprite":
		*t = Transition(components.TransitionSprite)
	case "animation":
		*t = Transition(components.TransitionAnimation)
	default:
		return fmt.Errorf("line %d: %q: %w", value.Line, value.Value, ErrUnknownTransition)
	}
	return nil
}

// HexColor 十六进制颜色（"#rrggbb" 或 "#rgb"）
type HexColor struct {
	color.Color
}

// UnmarshalYAML 解析十六进制颜色
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	c, err := colorful.Hex(strings.TrimSpace(value.Value))
	if err != nil {
		return fmt.Errorf("line %d: invalid color %q: %w", value.Line, value.Value, err)
	}
	r, g, b := c.Clamped().RGB255()
	h.Color = color.RGBA{R: r, G: g, B: b, A: 255}
	return nil
}

// TransitionColorsConfig 各状态颜色，未配置的状态为 nil
type TransitionColorsConfig struct {
	Normal    *HexColor `yaml:"normal"`
	Highlight *HexColor `yaml:"highlight"`
	Pressed   *HexColor `yaml:"pressed"`
}

// ToComponent 转换为组件使用的颜色表，未配置的状态使用 fallback
func (c TransitionColorsConfig) ToComponent(fallback components.TransitionColors) components.TransitionColors {
	out := fallback
	if c.Normal != nil {
		out.Normal = c.Normal.Color
	}
	if c.Highlight != nil {
		out.Highlight = c.Highlight.Color
	}
	if c.Pressed != nil {
		out.Pressed = c.Pressed.Color
	}
	return out
}

// TransitionSpritesConfig 各状态图片名称，由调用方解析为图片
type TransitionSpritesConfig struct {
	Normal    string `yaml:"normal"`
	Highlight string `yaml:"highlight"`
	Pressed   string `yaml:"pressed"`
}

// SliderConfig 滑动条配置
// 实体引用使用实体名称，应用配置时通过 EntityManager.FindByName 解析
type SliderConfig struct {
	Handle     string `yaml:"handle"`
	Fill       string `yaml:"fill"`
	Background string `yaml:"background"` // 为空表示使用滑动条自身的图片

	Direction Direction `yaml:"direction"`
	MinValue  float64   `yaml:"minValue"`
	MaxValue  float64   `yaml:"maxValue"`
	Progress  float64   `yaml:"progress"`

	Transition        Transition              `yaml:"transition"`
	TransitionColors  TransitionColorsConfig  `yaml:"transitionColors"`
	TransitionSprites TransitionSpritesConfig `yaml:"transitionSprites"`

	// StoreKey 持久化进度使用的键，为空表示不持久化
	StoreKey string `yaml:"storeKey"`
}

// DefaultSliderConfig 默认配置：水平、区间 [0,1]、无过渡
func DefaultSliderConfig() *SliderConfig {
	return &SliderConfig{
		Direction:  Direction(components.Horizontal),
		MinValue:   0,
		MaxValue:   1,
		Transition: Transition(components.TransitionNone),
	}
}

// Orientation 返回组件使用的方向
func (c *SliderConfig) Orientation() components.Orientation {
	return components.Orientation(c.Direction)
}

// TransitionMode 返回组件使用的过渡模式
func (c *SliderConfig) TransitionMode() components.TransitionMode {
	return components.TransitionMode(c.Transition)
}

// ParseSliderConfig 从 YAML 数据解析配置，未出现的字段保持默认值
func ParseSliderConfig(data []byte) (*SliderConfig, error) {
	cfg := DefaultSliderConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse slider config YAML: %w", err)
	}
	if err := validateSliderConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid slider config: %w", err)
	}
	return cfg, nil
}

// LoadSliderConfig 从文件加载配置
func LoadSliderConfig(filePath string) (*SliderConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read slider config file: %w", err)
	}
	return ParseSliderConfig(data)
}

// validateSliderConfig 验证配置的有效性
// min == max 是允许的（退化区间），归一化值恒为 0
func validateSliderConfig(cfg *SliderConfig) error {
	if cfg.Handle == "" {
		return fmt.Errorf("handle cannot be empty")
	}
	if cfg.Fill == "" {
		return fmt.Errorf("fill cannot be empty")
	}
	return nil
}

// ParseSliderConfigs 解析以滑动条实体名称为键的多份配置
// 每份配置独立套用默认值
func ParseSliderConfigs(data []byte) (map[string]*SliderConfig, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse slider configs YAML: %w", err)
	}

	configs := make(map[string]*SliderConfig, len(raw))
	for name, node := range raw {
		cfg := DefaultSliderConfig()
		if err := node.Decode(cfg); err != nil {
			return nil, fmt.Errorf("slider %q: %w", name, err)
		}
		if err := validateSliderConfig(cfg); err != nil {
			return nil, fmt.Errorf("invalid slider config %q: %w", name, err)
		}
		configs[name] = cfg
	}
	return configs, nil
}

// LoadSliderConfigs 从文件加载多份配置
func LoadSliderConfigs(filePath string) (map[string]*SliderConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read slider config file: %w", err)
	}
	return ParseSliderConfigs(data)
}
