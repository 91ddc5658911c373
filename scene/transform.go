package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transforms owns every matrix of the scene.
//
// Model operations compose onto the right of User (object space), camera operations
// compose onto the left of View (world space). The two orders are not interchangeable:
// swapping them turns a rotation about the object's own axis into one about the origin.
type Transforms struct {
	Axes        mgl32.Mat4
	Environment mgl32.Mat4
	User        mgl32.Mat4
	View        mgl32.Mat4
	Projection  mgl32.Mat4

	mode ProjectionMode
}

func NewTransforms(cfg Config, width, height int) Transforms {
	t := Transforms{
		Axes:        mgl32.Ident4(),
		Environment: mgl32.Translate3D(cfg.EnvironmentOffset[0], cfg.EnvironmentOffset[1], 0),
		User:        mgl32.Ident4(),
		View:        mgl32.Ident4(),
		Projection:  mgl32.Ident4(),
		mode:        cfg.Projection,
	}
	t.setProjection(width, height)
	return t
}

// MVP composes projection * view * model for one drawable.
func (t *Transforms) MVP(model mgl32.Mat4) mgl32.Mat4 {
	return t.Projection.Mul4(t.View).Mul4(model)
}

func (t *Transforms) applyModel(op mgl32.Mat4) {
	t.User = t.User.Mul4(op)
}

func (t *Transforms) applyView(op mgl32.Mat4) {
	t.View = op.Mul4(t.View)
}

// setProjection recomputes the projection from scratch. Degenerate sizes (a minimized
// window reports 0x0) keep the previous matrix.
func (t *Transforms) setProjection(width, height int) {
	if t.mode != ProjectionPixels {
		t.Projection = mgl32.Ident4()
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	t.Projection = OrthoPixels(width, height)
}

// OrthoPixels spans [-w/2, w/2] x [-h/2, h/2] x [-1, 1].
func OrthoPixels(width, height int) mgl32.Mat4 {
	hw := float32(width) / 2
	hh := float32(height) / 2
	return mgl32.Ortho(-hw, hw, -hh, hh, -1, 1)
}
