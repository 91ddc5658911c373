package demo2d

import (
	"errors"

	"github.com/bocanonline/demo2d/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeySource produces the held logical keys once per frame.
type KeySource interface {
	// Poll is called with the elapsed frame time. quit reports a request to close.
	Poll(elapsed float32) (keys scene.KeySet, quit bool)
}

type InputModule struct {
	// Source defaults to polling the shared glfw window.
	Source KeySource
}

type Input struct {
	Pressed      scene.KeySet
	JustPressed  scene.KeySet
	JustReleased scene.KeySet
}

func (in *Input) IsKeyDown(key scene.Key) bool {
	return in.Pressed.IsKeyDown(key)
}

func (mod InputModule) Install(app *App, cmd *Commands) error {
	src := mod.Source
	if src == nil {
		ws, ok := Resource[WindowState](app)
		if !ok {
			return errors.New("input needs a window or an explicit key source")
		}
		src = &glfwKeySource{win: ws.windowGlfw}
	}

	cmd.AddResources(&Input{}, &keySource{src})
	cmd.UseSystem(System(inputSystem).InStage(PreUpdate))
	return nil
}

// keySource wraps the configured source so it is resolved as a resource by its own type.
type keySource struct {
	KeySource
}

func inputSystem(src *keySource, t *Time, input *Input, log Logger, cmd *Commands) {
	keys, quit := src.Poll(t.Elapsed)
	input.update(keys, log)
	if quit {
		cmd.Exit()
	}
}

func (in *Input) update(next scene.KeySet, log Logger) {
	for key := scene.KeyNone + 1; key < scene.KeyCount; key++ {
		was, is := in.Pressed.IsKeyDown(key), next.IsKeyDown(key)
		in.JustPressed.Set(key, is && !was)
		in.JustReleased.Set(key, was && !is)
		if is && !was {
			log.Debugf("keyboard input: %s", key)
		}
	}
	in.Pressed = next
}

type glfwKeySource struct {
	win *glfw.Window
}

func (s *glfwKeySource) Poll(float32) (scene.KeySet, bool) {
	glfw.PollEvents()

	if s.win.GetKey(glfw.KeyEscape) == glfw.Press {
		s.win.SetShouldClose(true)
	}

	var keys scene.KeySet
	for key, glfwKey := range keyToGlfw {
		keys.Set(key, s.win.GetKey(glfwKey) == glfw.Press)
	}
	return keys, s.win.ShouldClose()
}

var keyToGlfw = map[scene.Key]glfw.Key{
	scene.KeyRotateLeft:      glfw.KeyLeft,
	scene.KeyRotateRight:     glfw.KeyRight,
	scene.KeyMoveUp:          glfw.KeyUp,
	scene.KeyMoveDown:        glfw.KeyDown,
	scene.KeyScaleUp:         glfw.KeyPeriod,
	scene.KeyScaleDown:       glfw.KeyComma,
	scene.KeyCameraUp:        glfw.KeyW,
	scene.KeyCameraDown:      glfw.KeyS,
	scene.KeyCameraLeft:      glfw.KeyA,
	scene.KeyCameraRight:     glfw.KeyD,
	scene.KeyCameraRotateCCW: glfw.KeyQ,
	scene.KeyCameraRotateCW:  glfw.KeyE,
	scene.KeyZoomIn:          glfw.KeyZ,
	scene.KeyZoomOut:         glfw.KeyX,
	scene.KeyResetCamera:     glfw.KeyO,
	scene.KeyResetModel:      glfw.KeyH,
	scene.KeyColorRed:        glfw.KeyR,
	scene.KeyColorGreen:      glfw.KeyG,
	scene.KeyColorBlue:       glfw.KeyB,
	scene.KeyColorWhite:      glfw.KeySpace,
	scene.KeySelect1:         glfw.Key1,
	scene.KeySelect2:         glfw.Key2,
	scene.KeySelect3:         glfw.Key3,
	scene.KeySelect4:         glfw.Key4,
}
