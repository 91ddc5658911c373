package demo2d

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw *glfw.Window
	// Framebuffer size in pixels, kept current by the resize callback.
	Width        int
	Height       int
	Title        string
	ContentScale float32
}

// PlatformWindowModule creates the single glfw window and forwards framebuffer
// resizes to App.NotifyResize. Install is a no-op when a window already exists.
type PlatformWindowModule struct {
	Config WindowConfig
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) error {
	if _, ok := Resource[WindowState](app); ok {
		return nil
	}

	ws, err := createWindowState(m.Config)
	if err != nil {
		return err
	}
	app.OnClose(ws.destroy)

	ws.windowGlfw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		ws.Width, ws.Height = width, height
		app.NotifyResize(width, height)
	})

	cmd.AddResources(ws)
	app.Logger().Infof("window ready: %dx%d framebuffer, content scale %.2f", ws.Width, ws.Height, ws.ContentScale)
	return nil
}

func createWindowState(cfg WindowConfig) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // no OpenGL context, wgpu owns the surface
	glfw.WindowHint(glfw.Resizable, glfw.True)

	scale := float32(1)
	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if sx, _ := monitor.GetContentScale(); sx > 0 {
			scale = sx
		}
	}
	logical := func(px int) int {
		if px <= 0 {
			return glfw.DontCare
		}
		return int(float32(px) / scale)
	}

	win, err := glfw.CreateWindow(logical(cfg.Width), logical(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.SetSizeLimits(logical(cfg.MinWidth), logical(cfg.MinHeight), logical(cfg.MaxWidth), logical(cfg.MaxHeight))

	width, height := win.GetFramebufferSize()
	return &WindowState{
		windowGlfw:   win,
		Width:        width,
		Height:       height,
		Title:        cfg.Title,
		ContentScale: scale,
	}, nil
}

func (s *WindowState) destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}
