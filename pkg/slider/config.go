package slider

import (
	"fmt"

	"github.com/gonewx/slider/pkg/components"
	"github.com/gonewx/slider/pkg/config"
	"github.com/gonewx/slider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteResolver 按名称查找图片，找不到时返回 nil
type SpriteResolver func(name string) *ebiten.Image

// ApplyConfig 把配置应用到滑动条
//
// 顺序：方向、区间、handle、fill、background、进度、过渡。
// 先设置区间再设置进度，保证进度按新区间截断。
func (s *Slider) ApplyConfig(cfg *config.SliderConfig, sprites SpriteResolver) error {
	handle, err := s.lookup("handle", cfg.Handle)
	if err != nil {
		return err
	}
	fill, err := s.lookup("fill", cfg.Fill)
	if err != nil {
		return err
	}
	background := ecs.InvalidEntity
	if cfg.Background != "" {
		if background, err = s.lookup("background", cfg.Background); err != nil {
			return err
		}
	}

	s.SetDirection(cfg.Orientation())
	s.SetRange(cfg.MinValue, cfg.MaxValue)
	s.SetHandle(handle)
	s.SetFill(fill)
	s.SetBackground(background)
	s.SetProgress(cfg.Progress)

	s.SetTransition(cfg.TransitionMode())
	s.SetTransitionColors(cfg.TransitionColors.ToComponent(components.DefaultTransitionColors()))
	if sprites != nil {
		s.SetTransitionSprites(components.TransitionSprites{
			Normal:    resolveSprite(sprites, cfg.TransitionSprites.Normal),
			Highlight: resolveSprite(sprites, cfg.TransitionSprites.Highlight),
			Pressed:   resolveSprite(sprites, cfg.TransitionSprites.Pressed),
		})
	}
	return nil
}

func (s *Slider) lookup(field, name string) (ecs.EntityID, error) {
	id, ok := s.em.FindByName(name)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("slider %s %q: %w", field, name, ecs.ErrEntityNotFound)
	}
	return id, nil
}

func resolveSprite(sprites SpriteResolver, name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	return sprites(name)
}
