package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/bocanonline/demo2d/scene"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"
)

const defaultLineWidth = 1.5

// Raster is a CPU line-list renderer. It produces the same frames as the GPU path
// into an in-memory image, which is what headless runs and snapshots use.
type Raster struct {
	meshes    *MeshServer
	width     int
	height    int
	lineWidth float32
	clear     color.NRGBA

	calls []scene.DrawCall
	img   *image.RGBA
	z     *vector.Rasterizer
}

func NewRaster(width, height int) *Raster {
	r := &Raster{
		meshes:    NewMeshServer(),
		lineWidth: defaultLineWidth,
		clear:     color.NRGBA{0, 0, 0, 255},
	}
	r.Resize(width, height)
	return r
}

func (r *Raster) UploadVertexBuffer(points []float32) (scene.BufferHandle, error) {
	return r.meshes.Load(points)
}

func (r *Raster) Submit(call scene.DrawCall) {
	r.calls = append(r.calls, call)
}

func (r *Raster) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.z = vector.NewRasterizer(width, height)
}

func (r *Raster) BeginFrame() {
	r.calls = r.calls[:0]
}

// EndFrame clears the image and rasterizes every call submitted since BeginFrame.
func (r *Raster) EndFrame() error {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.clear), image.Point{}, draw.Src)

	for _, call := range r.calls {
		mesh, ok := r.meshes.Mesh(call.Buffer)
		if !ok {
			return fmt.Errorf("draw %s: unknown buffer %q", call.Entity, call.Buffer)
		}
		count := call.VertexCount
		if count > int(mesh.VertexCount) {
			count = int(mesh.VertexCount)
		}
		r.drawLines(mesh.points[:count*3], call.MVP, call.Color)
	}
	return nil
}

// Discard drops the pending calls without touching the last finished image.
func (r *Raster) Discard() {
	r.calls = r.calls[:0]
}

func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) drawLines(points []float32, mvp mgl32.Mat4, c mgl32.Vec4) {
	r.z.Reset(r.width, r.height)
	hw := r.lineWidth / 2
	drawn := false

	for i := 0; i+5 < len(points); i += 6 {
		a := r.toPixel(mvp, points[i], points[i+1], points[i+2])
		b := r.toPixel(mvp, points[i+3], points[i+4], points[i+5])

		a, b, ok := clipSegment(a, b, hw, hw, float32(r.width)-hw, float32(r.height)-hw)
		if !ok {
			continue
		}

		d := b.Sub(a)
		length := d.Len()
		if length < 1e-6 {
			continue
		}
		n := mgl32.Vec2{-d.Y(), d.X()}.Mul(hw / length)

		r.z.MoveTo(a.X()+n.X(), a.Y()+n.Y())
		r.z.LineTo(b.X()+n.X(), b.Y()+n.Y())
		r.z.LineTo(b.X()-n.X(), b.Y()-n.Y())
		r.z.LineTo(a.X()-n.X(), a.Y()-n.Y())
		r.z.ClosePath()
		drawn = true
	}

	if drawn {
		r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{})
	}
}

// toPixel maps an object space point to framebuffer pixels, y pointing down.
func (r *Raster) toPixel(mvp mgl32.Mat4, x, y, z float32) mgl32.Vec2 {
	clip := mvp.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if clip.W() != 0 && clip.W() != 1 {
		clip = clip.Mul(1 / clip.W())
	}
	return mgl32.Vec2{
		(clip.X() + 1) / 2 * float32(r.width),
		(1 - clip.Y()) / 2 * float32(r.height),
	}
}

// clipSegment is Liang-Barsky against an axis aligned box.
func clipSegment(a, b mgl32.Vec2, minX, minY, maxX, maxY float32) (mgl32.Vec2, mgl32.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := float32(0), float32(1)

	edges := [4][2]float32{
		{-d.X(), a.X() - minX},
		{d.X(), maxX - a.X()},
		{-d.Y(), a.Y() - minY},
		{d.Y(), maxY - a.Y()},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

func toNRGBA(c mgl32.Vec4) color.NRGBA {
	ch := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{ch(c[0]), ch(c[1]), ch(c[2]), ch(c[3])}
}

func (r *Raster) Size() (int, int) {
	return r.width, r.height
}
