package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Absolute per-element tolerance; translations reach a few hundred units.
const matTolerance = 2e-3

func assertMatApprox(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], matTolerance, "element %d", i) {
			t.Logf("want %v\ngot  %v", want, got)
			return
		}
	}
}

func newTestState() *State {
	return NewState(DefaultConfig(), 1920, 1080)
}

func TestNewState_Initial(t *testing.T) {
	s := newTestState()

	assert.Equal(t, mgl32.Ident4(), s.Axes)
	assert.Equal(t, mgl32.Ident4(), s.User)
	assert.Equal(t, mgl32.Ident4(), s.View)
	assert.Equal(t, mgl32.Translate3D(200, 200, 0), s.Environment)
	assert.Equal(t, ModelSquare, s.Object.Active)
	assert.Equal(t, ColorWhite, s.Object.Color)
}

func TestRotateModel_InversePair(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.TranslateModel(KeyMoveUp, 0.3))
	before := s.User

	require.NoError(t, s.RotateModel(KeyRotateLeft, 0.25))
	require.NoError(t, s.RotateModel(KeyRotateRight, 0.25))

	assertMatApprox(t, before, s.User)
}

func TestRotateCamera_InversePair(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.TranslateCamera(KeyCameraLeft, 0.5))
	before := s.View

	require.NoError(t, s.RotateCamera(KeyCameraRotateCCW, 0.4))
	require.NoError(t, s.RotateCamera(KeyCameraRotateCW, 0.4))

	assertMatApprox(t, before, s.View)
}

func TestRotateModel_Direction(t *testing.T) {
	s := newTestState()
	// 90 deg/s for one second: counter-clockwise quarter turn.
	require.NoError(t, s.RotateModel(KeyRotateLeft, 1))

	p := s.User.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 1, p.Y(), 1e-5)
}

func TestModelAndCameraComposeInOppositeOrder(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.TranslateModel(KeyMoveUp, 1)) // (0, 300)
	require.NoError(t, s.RotateModel(KeyRotateLeft, 1))
	// Model ops are applied in object space: the translation stays where it was
	// and the shape spins about its own center.
	center := s.User.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, center.X(), 1e-3)
	assert.InDelta(t, 300, center.Y(), 1e-3)

	require.NoError(t, s.TranslateCamera(KeyCameraDown, 1)) // world +300 y
	require.NoError(t, s.RotateCamera(KeyCameraRotateCW, 1))
	// Camera ops are applied in world space: the earlier translation is rotated
	// about the origin along with everything else.
	p := s.View.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -300, p.X(), 1e-3)
	assert.InDelta(t, 0, p.Y(), 1e-3)
}

func TestTranslateCamera_Signs(t *testing.T) {
	cases := []struct {
		key  Key
		want mgl32.Vec2
	}{
		{KeyCameraUp, mgl32.Vec2{0, -300}},
		{KeyCameraDown, mgl32.Vec2{0, 300}},
		{KeyCameraLeft, mgl32.Vec2{300, 0}},
		{KeyCameraRight, mgl32.Vec2{-300, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			s := newTestState()
			require.NoError(t, s.TranslateCamera(tc.key, 1))
			origin := s.View.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
			assert.InDelta(t, tc.want.X(), origin.X(), 1e-4)
			assert.InDelta(t, tc.want.Y(), origin.Y(), 1e-4)
		})
	}
}

func TestScaleAndZoom(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.ScaleModel(KeyScaleUp, 0.5))
	assert.InDelta(t, 1.5, s.User.At(0, 0), 1e-6)
	require.NoError(t, s.ScaleModel(KeyScaleDown, 0.5))
	assert.InDelta(t, 0.75, s.User.At(1, 1), 1e-6)

	require.NoError(t, s.ZoomCamera(KeyZoomIn, 0.25))
	assert.InDelta(t, 1.25, s.View.At(0, 0), 1e-6)
	require.NoError(t, s.ZoomCamera(KeyZoomOut, 0.5))
	assert.InDelta(t, 0.625, s.View.At(1, 1), 1e-6)
}

func TestOperations_RejectForeignKeys(t *testing.T) {
	s := newTestState()
	s.Object.Color = ColorBlue
	s.Object.Active = ModelHexagon
	before := *s

	assert.ErrorIs(t, s.RotateModel(KeyMoveUp, 1), ErrInvalidKey)
	assert.ErrorIs(t, s.TranslateModel(KeyRotateLeft, 1), ErrInvalidKey)
	assert.ErrorIs(t, s.ScaleModel(KeyZoomIn, 1), ErrInvalidKey)
	assert.ErrorIs(t, s.TranslateCamera(KeyMoveUp, 1), ErrInvalidKey)
	assert.ErrorIs(t, s.RotateCamera(KeyRotateLeft, 1), ErrInvalidKey)
	assert.ErrorIs(t, s.ZoomCamera(KeyScaleUp, 1), ErrInvalidKey)
	assert.ErrorIs(t, s.ColorModel(KeySelect1), ErrInvalidKey)
	assert.ErrorIs(t, s.SwapModel(KeyColorRed), ErrInvalidKey)
	assert.ErrorIs(t, s.SwapModel(Key(99)), ErrInvalidKey)

	assert.Equal(t, before, *s, "rejected operations must not mutate state")
}

func TestResetModel(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.RotateModel(KeyRotateLeft, 0.7))
	require.NoError(t, s.TranslateModel(KeyMoveDown, 0.2))
	require.NoError(t, s.ScaleModel(KeyScaleUp, 0.9))
	require.NoError(t, s.ColorModel(KeyColorGreen))
	require.NoError(t, s.SwapModel(KeySelect4))
	view := s.View

	s.ResetModel()

	assert.Equal(t, mgl32.Ident4(), s.User)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, s.Object.Color)
	assert.Equal(t, ModelCircle, s.Object.Active)
	assert.Equal(t, view, s.View)
}

func TestResetCamera(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.TranslateCamera(KeyCameraRight, 0.3))
	require.NoError(t, s.RotateCamera(KeyCameraRotateCW, 0.3))
	require.NoError(t, s.ZoomCamera(KeyZoomOut, 0.3))
	require.NoError(t, s.TranslateModel(KeyMoveUp, 0.3))
	user := s.User

	s.ResetCamera()

	assert.Equal(t, mgl32.Ident4(), s.View)
	assert.Equal(t, user, s.User)
}

func TestSwapModel_KeepsTransformAndColor(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.RotateModel(KeyRotateLeft, 0.3))
	require.NoError(t, s.ColorModel(KeyColorRed))
	user, color := s.User, s.Object.Color

	for key, want := range map[Key]Model{
		KeySelect2: ModelTriangle,
		KeySelect3: ModelHexagon,
		KeySelect4: ModelCircle,
		KeySelect1: ModelSquare,
	} {
		require.NoError(t, s.SwapModel(key))
		assert.Equal(t, want, s.Object.Active)
		assert.Equal(t, user, s.User)
		assert.Equal(t, color, s.Object.Color)
	}
}

func TestResize_ProjectionCorners(t *testing.T) {
	s := newTestState()
	s.Resize(800, 600)

	topRight := s.Projection.Mul4x1(mgl32.Vec4{400, 300, 0, 1})
	bottomLeft := s.Projection.Mul4x1(mgl32.Vec4{-400, -300, 0, 1})

	assert.InDelta(t, 1, topRight.X(), 1e-6)
	assert.InDelta(t, 1, topRight.Y(), 1e-6)
	assert.InDelta(t, -1, bottomLeft.X(), 1e-6)
	assert.InDelta(t, -1, bottomLeft.Y(), 1e-6)
}

func TestResize_ReplacesRatherThanAccumulates(t *testing.T) {
	s := newTestState()
	s.Resize(640, 360)
	s.Resize(640, 360)
	assert.Equal(t, OrthoPixels(640, 360), s.Projection)

	s.Resize(0, 0)
	assert.Equal(t, OrthoPixels(640, 360), s.Projection, "minimized window keeps the last projection")
}

func TestResize_UnitProjection(t *testing.T) {
	s := NewState(TemplateConfig(), 800, 600)
	s.Resize(1024, 768)
	assert.Equal(t, mgl32.Ident4(), s.Projection)
}
