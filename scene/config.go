package scene

import (
	"fmt"
)

type ProjectionMode string

const (
	// ProjectionPixels maps one world unit to one framebuffer pixel, origin at the center.
	ProjectionPixels ProjectionMode = "pixels"
	// ProjectionUnit leaves the projection at identity so world space is clip space.
	ProjectionUnit ProjectionMode = "unit"
)

type Config struct {
	ModelLength       float32        `yaml:"model_length"`
	CircleSegments    int            `yaml:"circle_segments"`
	RotationSpeed     float32        `yaml:"rotation_speed"`    // degrees per second
	TranslationSpeed  float32        `yaml:"translation_speed"` // world units per second
	ScaleSpeed        float32        `yaml:"scale_speed"`       // fraction per second
	EnvironmentOffset [2]float32     `yaml:"environment_offset"`
	Projection        ProjectionMode `yaml:"projection"`
}

func DefaultConfig() Config {
	return Config{
		ModelLength:       100,
		CircleSegments:    150,
		RotationSpeed:     90,
		TranslationSpeed:  300,
		ScaleSpeed:        1,
		EnvironmentOffset: [2]float32{200, 200},
		Projection:        ProjectionPixels,
	}
}

// TemplateConfig describes the single rotating square demo: a unit square drawn
// straight into clip space.
func TemplateConfig() Config {
	cfg := DefaultConfig()
	cfg.ModelLength = 1
	cfg.EnvironmentOffset = [2]float32{0, 0}
	cfg.Projection = ProjectionUnit
	return cfg
}

func (c Config) Validate() error {
	if c.ModelLength <= 0 {
		return fmt.Errorf("model_length must be positive, got %v", c.ModelLength)
	}
	// Every sampled angle is written twice, so the point count has to stay even.
	if c.CircleSegments < 12 || c.CircleSegments%6 != 0 {
		return fmt.Errorf("circle_segments must be a multiple of 6 and at least 12, got %d", c.CircleSegments)
	}
	if c.RotationSpeed < 0 || c.TranslationSpeed < 0 || c.ScaleSpeed < 0 {
		return fmt.Errorf("speeds must not be negative")
	}
	switch c.Projection {
	case ProjectionPixels, ProjectionUnit:
	default:
		return fmt.Errorf("unknown projection mode %q", c.Projection)
	}
	return nil
}
