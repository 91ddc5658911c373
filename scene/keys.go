package scene

import (
	"fmt"
)

// Key is a logical key of the demo, independent of the physical keyboard layout.
type Key int

const (
	KeyNone Key = iota
	KeyRotateLeft
	KeyRotateRight
	KeyMoveUp
	KeyMoveDown
	KeyScaleUp
	KeyScaleDown
	KeyCameraUp
	KeyCameraDown
	KeyCameraLeft
	KeyCameraRight
	KeyCameraRotateCCW
	KeyCameraRotateCW
	KeyZoomIn
	KeyZoomOut
	KeyResetCamera
	KeyResetModel
	KeyColorRed
	KeyColorGreen
	KeyColorBlue
	KeyColorWhite
	KeySelect1
	KeySelect2
	KeySelect3
	KeySelect4

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:            "none",
	KeyRotateLeft:      "rotate-left",
	KeyRotateRight:     "rotate-right",
	KeyMoveUp:          "move-up",
	KeyMoveDown:        "move-down",
	KeyScaleUp:         "scale-up",
	KeyScaleDown:       "scale-down",
	KeyCameraUp:        "camera-up",
	KeyCameraDown:      "camera-down",
	KeyCameraLeft:      "camera-left",
	KeyCameraRight:     "camera-right",
	KeyCameraRotateCCW: "camera-rotate-ccw",
	KeyCameraRotateCW:  "camera-rotate-cw",
	KeyZoomIn:          "zoom-in",
	KeyZoomOut:         "zoom-out",
	KeyResetCamera:     "reset-camera",
	KeyResetModel:      "reset-model",
	KeyColorRed:        "color-red",
	KeyColorGreen:      "color-green",
	KeyColorBlue:       "color-blue",
	KeyColorWhite:      "color-white",
	KeySelect1:         "select-1",
	KeySelect2:         "select-2",
	KeySelect3:         "select-3",
	KeySelect4:         "select-4",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return keyNames[k]
}

func ParseKey(name string) (Key, error) {
	for k := KeyRotateLeft; k < KeyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: unknown key name %q", ErrInvalidKey, name)
}

// KeyState reports which logical keys are held during the current frame.
type KeyState interface {
	IsKeyDown(key Key) bool
}

// KeySet is a KeyState backed by a fixed table, handy for replays and tests.
type KeySet [KeyCount]bool

func (s *KeySet) IsKeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s[key]
}

func (s *KeySet) Set(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s[key] = down
}
