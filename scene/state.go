package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrInvalidKey   = errors.New("invalid keyboard input")
	ErrUnknownModel = errors.New("invalid model selection")
)

// State is the whole mutable scene: matrices plus the user object's look.
// It is only touched from the frame loop.
type State struct {
	Transforms
	Object ObjectState

	cfg Config
}

func NewState(cfg Config, width, height int) *State {
	return &State{
		Transforms: NewTransforms(cfg, width, height),
		Object:     NewObjectState(),
		cfg:        cfg,
	}
}

func (s *State) Config() Config {
	return s.cfg
}

func invalidKey(key Key, action string) error {
	return fmt.Errorf("%w: %s cannot %s", ErrInvalidKey, key, action)
}

func (s *State) RotateModel(key Key, dt float32) error {
	angle := s.cfg.RotationSpeed * dt
	switch key {
	case KeyRotateLeft:
	case KeyRotateRight:
		angle = -angle
	default:
		return invalidKey(key, "rotate the model")
	}
	s.applyModel(mgl32.HomogRotate3DZ(mgl32.DegToRad(angle)))
	return nil
}

func (s *State) TranslateModel(key Key, dt float32) error {
	step := s.cfg.TranslationSpeed * dt
	switch key {
	case KeyMoveUp:
	case KeyMoveDown:
		step = -step
	default:
		return invalidKey(key, "translate the model")
	}
	s.applyModel(mgl32.Translate3D(0, step, 0))
	return nil
}

func (s *State) ScaleModel(key Key, dt float32) error {
	step := s.cfg.ScaleSpeed * dt
	var factor float32
	switch key {
	case KeyScaleUp:
		factor = 1 + step
	case KeyScaleDown:
		factor = 1 - step
	default:
		return invalidKey(key, "scale the model")
	}
	s.applyModel(mgl32.Scale3D(factor, factor, factor))
	return nil
}

// TranslateCamera moves the world opposite to the camera: camera-up shifts everything down.
func (s *State) TranslateCamera(key Key, dt float32) error {
	step := s.cfg.TranslationSpeed * dt
	var offset mgl32.Vec3
	switch key {
	case KeyCameraUp:
		offset[1] = -step
	case KeyCameraDown:
		offset[1] = step
	case KeyCameraLeft:
		offset[0] = step
	case KeyCameraRight:
		offset[0] = -step
	default:
		return invalidKey(key, "translate the camera")
	}
	s.applyView(mgl32.Translate3D(offset[0], offset[1], offset[2]))
	return nil
}

func (s *State) RotateCamera(key Key, dt float32) error {
	angle := s.cfg.RotationSpeed * dt
	switch key {
	case KeyCameraRotateCCW:
		angle = -angle
	case KeyCameraRotateCW:
	default:
		return invalidKey(key, "rotate the camera")
	}
	s.applyView(mgl32.HomogRotate3DZ(mgl32.DegToRad(angle)))
	return nil
}

func (s *State) ZoomCamera(key Key, dt float32) error {
	step := s.cfg.ScaleSpeed * dt
	var factor float32
	switch key {
	case KeyZoomIn:
		factor = 1 + step
	case KeyZoomOut:
		factor = 1 - step
	default:
		return invalidKey(key, "zoom the camera")
	}
	s.applyView(mgl32.Scale3D(factor, factor, factor))
	return nil
}

func (s *State) ResetCamera() {
	s.View = mgl32.Ident4()
}

// ResetModel puts the user object back at the origin and paints it white.
// The selected shape is kept.
func (s *State) ResetModel() {
	s.User = mgl32.Ident4()
	s.Object.Color = ColorWhite
}

func (s *State) ColorModel(key Key) error {
	switch key {
	case KeyColorRed:
		s.Object.Color = ColorRed
	case KeyColorGreen:
		s.Object.Color = ColorGreen
	case KeyColorBlue:
		s.Object.Color = ColorBlue
	case KeyColorWhite:
		s.Object.Color = ColorWhite
	default:
		return invalidKey(key, "color the model")
	}
	return nil
}

func (s *State) SwapModel(key Key) error {
	switch key {
	case KeySelect1:
		s.Object.Active = ModelSquare
	case KeySelect2:
		s.Object.Active = ModelTriangle
	case KeySelect3:
		s.Object.Active = ModelHexagon
	case KeySelect4:
		s.Object.Active = ModelCircle
	default:
		return invalidKey(key, "swap the model")
	}
	return nil
}

// Resize rebuilds the projection for a new framebuffer size.
func (s *State) Resize(width, height int) {
	s.setProjection(width, height)
}
