package scene

import (
	"errors"
)

// Operation applies one key's effect to the scene. dt is the frame time in seconds.
type Operation func(s *State, key Key, dt float32) error

var (
	OpRotateModel     Operation = (*State).RotateModel
	OpTranslateModel  Operation = (*State).TranslateModel
	OpScaleModel      Operation = (*State).ScaleModel
	OpTranslateCamera Operation = (*State).TranslateCamera
	OpRotateCamera    Operation = (*State).RotateCamera
	OpZoomCamera      Operation = (*State).ZoomCamera

	OpResetCamera Operation = func(s *State, key Key, dt float32) error {
		s.ResetCamera()
		return nil
	}
	OpResetModel Operation = func(s *State, key Key, dt float32) error {
		s.ResetModel()
		return nil
	}
	OpColorModel Operation = func(s *State, key Key, dt float32) error {
		return s.ColorModel(key)
	}
	OpSwapModel Operation = func(s *State, key Key, dt float32) error {
		return s.SwapModel(key)
	}
)

type Binding struct {
	Key Key
	Op  Operation
}

// DefaultBindings is the full demo key table. The slice order is the evaluation
// order within a frame; it matters because rotations and translations composed onto
// the same matrix do not commute.
func DefaultBindings() []Binding {
	return []Binding{
		{KeyRotateLeft, OpRotateModel},
		{KeyRotateRight, OpRotateModel},
		{KeyMoveUp, OpTranslateModel},
		{KeyMoveDown, OpTranslateModel},
		{KeyScaleUp, OpScaleModel},
		{KeyScaleDown, OpScaleModel},
		{KeyCameraUp, OpTranslateCamera},
		{KeyCameraDown, OpTranslateCamera},
		{KeyCameraLeft, OpTranslateCamera},
		{KeyCameraRight, OpTranslateCamera},
		{KeyCameraRotateCCW, OpRotateCamera},
		{KeyCameraRotateCW, OpRotateCamera},
		{KeyZoomIn, OpZoomCamera},
		{KeyZoomOut, OpZoomCamera},
		{KeyResetCamera, OpResetCamera},
		{KeyResetModel, OpResetModel},
		{KeyColorRed, OpColorModel},
		{KeyColorGreen, OpColorModel},
		{KeyColorBlue, OpColorModel},
		{KeyColorWhite, OpColorModel},
		{KeySelect1, OpSwapModel},
		{KeySelect2, OpSwapModel},
		{KeySelect3, OpSwapModel},
		{KeySelect4, OpSwapModel},
	}
}

// TemplateBindings only rotates the model.
func TemplateBindings() []Binding {
	return []Binding{
		{KeyRotateLeft, OpRotateModel},
		{KeyRotateRight, OpRotateModel},
	}
}

type Mapper struct {
	bindings []Binding
}

func NewMapper(bindings []Binding) *Mapper {
	return &Mapper{bindings: bindings}
}

func (m *Mapper) Bindings() []Binding {
	return m.bindings
}

// Apply fires every binding whose key is down, in binding order. A failing
// binding does not stop the others; all failures are returned joined.
func (m *Mapper) Apply(s *State, keys KeyState, dt float32) error {
	var errs []error
	for _, b := range m.bindings {
		if !keys.IsKeyDown(b.Key) {
			continue
		}
		if err := b.Op(s, b.Key, dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
