package demo2d

import (
	"errors"
	"fmt"
	"os"

	"github.com/bocanonline/demo2d/scene"
	"gopkg.in/yaml.v3"
)

// WindowConfig sizes are in framebuffer pixels; the window module divides them by the
// monitor content scale before asking for a window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
}

type AppConfig struct {
	Window WindowConfig `yaml:"window"`
	Debug  bool         `yaml:"debug"`
	Scene  scene.Config `yaml:"scene"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Window: WindowConfig{
			Width:     1920,
			Height:    1080,
			Title:     "Transformations",
			MinWidth:  640,
			MinHeight: 360,
			MaxWidth:  3024,
			MaxHeight: 1964,
		},
		Scene: scene.DefaultConfig(),
	}
}

// TemplateAppConfig is the rotating square demo.
func TemplateAppConfig() AppConfig {
	cfg := DefaultAppConfig()
	cfg.Window.Width = 800
	cfg.Window.Height = 800
	cfg.Window.Title = "Template"
	cfg.Scene = scene.TemplateConfig()
	return cfg
}

// LoadConfig overlays the YAML file at path on base. An empty path returns base.
func LoadConfig(path string, base AppConfig) (AppConfig, error) {
	cfg := base
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	w := c.Window
	var errs []error
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height))
	}
	if w.MinWidth > 0 && w.MaxWidth > 0 && w.MinWidth > w.MaxWidth {
		errs = append(errs, fmt.Errorf("min_width %d exceeds max_width %d", w.MinWidth, w.MaxWidth))
	}
	if w.MinHeight > 0 && w.MaxHeight > 0 && w.MinHeight > w.MaxHeight {
		errs = append(errs, fmt.Errorf("min_height %d exceeds max_height %d", w.MinHeight, w.MaxHeight))
	}
	if err := c.Scene.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scene: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Marshal renders the config as YAML, e.g. for dumping the effective settings.
func (c AppConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
