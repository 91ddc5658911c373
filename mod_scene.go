package demo2d

import (
	"errors"
	"fmt"

	"github.com/bocanonline/demo2d/scene"
)

// SceneModule owns the demo scene: it uploads the geometry once, applies held keys every
// frame and draws through whichever FrameRenderer is installed. Install it last.
type SceneModule struct {
	Config   scene.Config
	Bindings []scene.Binding
	Entities []scene.Entity
}

// FrameStats counts finished frames.
type FrameStats struct {
	Presented uint64
	Skipped   uint64
	Failed    uint64

	// drawErr carries a compose failure from Render to PostRender.
	drawErr error
}

func (mod SceneModule) Install(app *App, cmd *Commands) error {
	if err := mod.Config.Validate(); err != nil {
		return fmt.Errorf("scene config: %w", err)
	}
	r, ok := renderer(app)
	if !ok {
		return errors.New("scene needs a renderer")
	}

	geometry := scene.NewGeometry(mod.Config)
	buffers, err := scene.UploadGeometry(geometry, r)
	if err != nil {
		return err
	}

	width, height := r.Size()
	state := scene.NewState(mod.Config, width, height)
	mapper := scene.NewMapper(mod.Bindings)
	composer := scene.NewComposer(geometry, buffers, mod.Entities)

	cmd.AddResources(state, mapper, composer, &FrameStats{})
	cmd.UseSystem(System(sceneInputSystem).InStage(Update))
	cmd.UseSystem(System(beginFrameSystem).InStage(PreRender))
	cmd.UseSystem(System(drawSceneSystem).InStage(Render))
	cmd.UseSystem(System(presentSystem).InStage(PostRender))

	app.OnResize(func(width, height int) {
		state.Resize(width, height)
		r.Resize(width, height)
		if width > 0 && height > 0 {
			app.Redraw()
		}
	})

	app.Logger().Infof("scene ready: %d shapes, %d bindings, %d entities", len(buffers), len(mod.Bindings), len(mod.Entities))
	return nil
}

func sceneInputSystem(state *scene.State, mapper *scene.Mapper, input *Input, t *Time, log Logger) {
	if err := mapper.Apply(state, input, t.Dt); err != nil {
		log.Warnf("input: %v", err)
	}
}

func beginFrameSystem(r FrameRenderer, stats *FrameStats) {
	stats.drawErr = nil
	r.BeginFrame()
}

func drawSceneSystem(state *scene.State, composer *scene.Composer, r FrameRenderer, stats *FrameStats) {
	stats.drawErr = composer.Draw(state, r)
}

func presentSystem(r FrameRenderer, stats *FrameStats, log Logger) {
	if stats.drawErr != nil {
		log.Errorf("frame skipped: %v", stats.drawErr)
		r.Discard()
		stats.Skipped++
		return
	}
	if err := r.EndFrame(); err != nil {
		log.Errorf("present: %v", err)
		stats.Failed++
		return
	}
	stats.Presented++
}
