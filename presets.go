package demo2d

import (
	"math"
	"time"

	"github.com/bocanonline/demo2d/render"
	"github.com/bocanonline/demo2d/scene"
)

// Variant picks which keys and entities a run uses.
type Variant struct {
	Name     string
	Bindings func() []scene.Binding
	Entities func() []scene.Entity
}

var (
	// VariantTransformations is the full demo: axes, environment square and the user shape.
	VariantTransformations = Variant{
		Name:     "transformations",
		Bindings: scene.DefaultBindings,
		Entities: scene.DefaultEntities,
	}
	// VariantTemplate is a single white square rotated with the arrow keys.
	VariantTemplate = Variant{
		Name:     "template",
		Bindings: scene.TemplateBindings,
		Entities: scene.TemplateEntities,
	}
)

// WindowedModules opens a window and renders with wgpu.
func WindowedModules(cfg AppConfig, v Variant) []Module {
	return []Module{
		LoggingModule{Prefix: v.Name, Debug: cfg.Debug},
		PlatformWindowModule{Config: cfg.Window},
		TimeModule{Clock: GlfwClock{}},
		InputModule{},
		ClientModule{},
		SceneModule{Config: cfg.Scene, Bindings: v.Bindings(), Entities: v.Entities()},
	}
}

// Headless describes an offscreen run driven by a fixed step clock and scripted keys.
type Headless struct {
	FPS   float64
	Holds []Hold
	// Logger overrides the default stdout logger.
	Logger Logger
}

func (h Headless) step() float64 {
	if h.FPS <= 0 {
		return 1.0 / 60
	}
	return 1 / h.FPS
}

// Frames is how many frames cover every hold.
func (h Headless) Frames() int {
	end := (&ScriptedInput{Holds: h.Holds}).End()
	return int(math.Ceil(end.Seconds()/h.step() - holdEpsilon))
}

func HeadlessModules(cfg AppConfig, v Variant, h Headless) []Module {
	return []Module{
		LoggingModule{Prefix: v.Name, Debug: cfg.Debug, Logger: h.Logger},
		TimeModule{Clock: &FixedClock{Step: h.step()}},
		InputModule{Source: &ScriptedInput{Holds: h.Holds}},
		HeadlessModule{Width: cfg.Window.Width, Height: cfg.Window.Height},
		SceneModule{Config: cfg.Scene, Bindings: v.Bindings(), Entities: v.Entities()},
	}
}

// RunFrames steps the app n times, stopping early if a system asked to exit.
func RunFrames(app *App, n int) {
	for i := 0; i < n && !app.Exiting(); i++ {
		app.Step()
	}
}

// Snapshot returns the raster of a headless app.
func Snapshot(app *App) (*render.Raster, bool) {
	return Resource[render.Raster](app)
}

// FrameDuration converts a frame count back to time at the given rate.
func FrameDuration(frames int, fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(frames) / fps * float64(time.Second))
}
