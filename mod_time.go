package demo2d

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Time is the frame clock in seconds. On the first frame Dt is measured from install.
type Time struct {
	Elapsed float32
	Dt      float32
}

type Clock interface {
	// Now returns monotonic seconds.
	Now() float64
}

// GlfwClock reads the glfw timer. glfw must be initialized.
type GlfwClock struct{}

func (GlfwClock) Now() float64 {
	return glfw.GetTime()
}

// FixedClock advances by Step on every read, independent of wall time.
type FixedClock struct {
	Step float64
	now  float64
}

func (c *FixedClock) Now() float64 {
	t := c.now
	c.now += c.Step
	return t
}

type frameClock struct {
	clock Clock
	start float64
	last  float64
}

type TimeModule struct {
	Clock Clock
}

func (mod TimeModule) Install(app *App, cmd *Commands) error {
	clock := mod.Clock
	if clock == nil {
		clock = GlfwClock{}
	}
	now := clock.Now()
	cmd.AddResources(&Time{}, &frameClock{clock: clock, start: now, last: now})
	cmd.UseSystem(System(timeSystem).InStage(PreUpdate))
	return nil
}

func timeSystem(t *Time, fc *frameClock) {
	now := fc.clock.Now()

	t.Dt = float32(now - fc.last)
	t.Elapsed = float32(now - fc.start)
	fc.last = now
}
