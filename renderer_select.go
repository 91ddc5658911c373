package demo2d

import (
	"fmt"
	"reflect"

	"github.com/bocanonline/demo2d/render"
)

// RendererName identifies a concrete renderer module.
type RendererName string

const (
	RendererWGPU   RendererName = "wgpu"
	RendererRaster RendererName = "raster"
)

// RendererTag marks that a renderer has been installed into the App.
type RendererTag struct {
	Name RendererName
}

// ensureSingleRenderer panics when a second, different renderer is installed.
func ensureSingleRenderer(app *App, name RendererName) {
	if tag, ok := Resource[RendererTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}

// HeadlessModule renders into an in-memory image instead of a window.
type HeadlessModule struct {
	Width  int
	Height int
}

func (mod HeadlessModule) Install(app *App, cmd *Commands) error {
	ensureSingleRenderer(app, RendererRaster)
	if mod.Width <= 0 || mod.Height <= 0 {
		return fmt.Errorf("headless size must be positive, got %dx%d", mod.Width, mod.Height)
	}
	cmd.AddResources(render.NewRaster(mod.Width, mod.Height))
	return nil
}

var typeOfFrameRenderer = reflect.TypeOf((*FrameRenderer)(nil)).Elem()

// renderer returns the installed FrameRenderer, if any.
func renderer(app *App) (FrameRenderer, bool) {
	res, ok := app.resourceImplementing(typeOfFrameRenderer)
	if !ok {
		return nil, false
	}
	return res.(FrameRenderer), true
}
