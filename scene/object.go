package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model selects which shape the user controls.
type Model int

const (
	ModelSquare Model = iota + 1
	ModelTriangle
	ModelHexagon
	ModelCircle
)

var modelShapes = map[Model]ShapeID{
	ModelSquare:   ShapeSquare,
	ModelTriangle: ShapeTriangle,
	ModelHexagon:  ShapeHexagon,
	ModelCircle:   ShapeCircle,
}

func (m Model) Shape() (ShapeID, bool) {
	id, ok := modelShapes[m]
	return id, ok
}

func (m Model) String() string {
	if id, ok := modelShapes[m]; ok {
		return id.String()
	}
	return "unknown"
}

var (
	ColorWhite  = mgl32.Vec4{1, 1, 1, 1}
	ColorRed    = mgl32.Vec4{1, 0, 0, 1}
	ColorGreen  = mgl32.Vec4{0, 1, 0, 1}
	ColorBlue   = mgl32.Vec4{0, 0, 1, 1}
	ColorOrange = mgl32.Vec4{1, 0.65, 0, 1}
)

type ObjectState struct {
	Active Model
	Color  mgl32.Vec4
}

func NewObjectState() ObjectState {
	return ObjectState{
		Active: ModelSquare,
		Color:  ColorWhite,
	}
}
