package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/bocanonline/demo2d/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderScene(t *testing.T, r *Raster, s *scene.State) {
	t.Helper()
	g := scene.NewGeometry(s.Config())
	buffers, err := scene.UploadGeometry(g, r)
	require.NoError(t, err)
	c := scene.NewComposer(g, buffers, scene.DefaultEntities())

	r.BeginFrame()
	require.NoError(t, c.Draw(s, r))
	require.NoError(t, r.EndFrame())
}

func TestRaster_DefaultScene(t *testing.T) {
	r := NewRaster(600, 600)
	s := scene.NewState(scene.DefaultConfig(), 600, 600)
	renderScene(t, r, s)
	img := r.Image()

	// Background
	assert.Equal(t, uint8(0), img.RGBAAt(5, 5).R)
	assert.Equal(t, uint8(255), img.RGBAAt(5, 5).A)
	assert.Equal(t, uint8(0), img.RGBAAt(320, 320).G, "inside the user square")

	// Green y axis along the center column.
	green := img.RGBAAt(300, 30)
	assert.Greater(t, green.G, uint8(100))
	assert.Less(t, green.R, uint8(30))

	// Red x axis along the center row.
	red := img.RGBAAt(30, 300)
	assert.Greater(t, red.R, uint8(100))
	assert.Less(t, red.G, uint8(30))

	// Orange environment square, left edge at x=450 for a center at (200, 200).
	orange := img.RGBAAt(450, 100)
	assert.Greater(t, orange.R, uint8(100))
	assert.Greater(t, orange.G, uint8(50))
	assert.Less(t, orange.G, orange.R)
	assert.Less(t, orange.B, uint8(30))

	// White user square, 100 px wide around the origin.
	white := img.RGBAAt(250, 320)
	assert.Greater(t, white.R, uint8(100))
	assert.Equal(t, white.R, white.G)
	assert.Equal(t, white.G, white.B)
}

func TestRaster_FollowsCameraZoom(t *testing.T) {
	r := NewRaster(600, 600)
	s := scene.NewState(scene.DefaultConfig(), 600, 600)
	require.NoError(t, s.ZoomCamera(scene.KeyZoomIn, 1)) // 2x

	renderScene(t, r, s)
	img := r.Image()

	assert.Equal(t, uint8(0), img.RGBAAt(250, 320).R, "old edge is empty after zoom")
	assert.Greater(t, img.RGBAAt(200, 320).R, uint8(100), "edge moved to x=200")
}

func TestRaster_ExtremeTransformsAreClipped(t *testing.T) {
	r := NewRaster(64, 64)
	s := scene.NewState(scene.DefaultConfig(), 64, 64)
	for i := 0; i < 20; i++ {
		require.NoError(t, s.ZoomCamera(scene.KeyZoomIn, 1))
	}
	require.NoError(t, s.RotateCamera(scene.KeyCameraRotateCW, 0.3))

	assert.NotPanics(t, func() { renderScene(t, r, s) })
}

func TestRaster_UnknownBuffer(t *testing.T) {
	r := NewRaster(32, 32)
	r.BeginFrame()
	r.Submit(scene.DrawCall{Entity: "ghost", Buffer: "nope", MVP: mgl32.Ident4(), VertexCount: 2})
	err := r.EndFrame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestRaster_DiscardKeepsLastFrame(t *testing.T) {
	r := NewRaster(600, 600)
	s := scene.NewState(scene.DefaultConfig(), 600, 600)
	renderScene(t, r, s)
	before := append([]uint8(nil), r.Image().Pix...)

	r.BeginFrame()
	r.Submit(scene.DrawCall{Entity: "pending"})
	r.Discard()

	assert.Equal(t, before, r.Image().Pix)
}

func TestRaster_ResizeAndPNG(t *testing.T) {
	r := NewRaster(40, 30)
	r.Resize(0, 10)
	assert.Equal(t, 40, r.Image().Bounds().Dx(), "zero size is ignored")

	r.Resize(80, 60)
	r.BeginFrame()
	require.NoError(t, r.EndFrame())

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 80, decoded.Bounds().Dx())
	assert.Equal(t, 60, decoded.Bounds().Dy())
}

func TestClipSegment(t *testing.T) {
	a, b, ok := clipSegment(mgl32.Vec2{-10, 5}, mgl32.Vec2{20, 5}, 0, 0, 10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, a.X(), 1e-5)
	assert.InDelta(t, 10, b.X(), 1e-5)
	assert.Equal(t, float32(5), a.Y())

	_, _, ok = clipSegment(mgl32.Vec2{-10, -5}, mgl32.Vec2{20, -5}, 0, 0, 10, 10)
	assert.False(t, ok)
}
