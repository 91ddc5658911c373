package scene

import (
	"math"
)

type ShapeID int

const (
	ShapeAxisX ShapeID = iota
	ShapeAxisY
	ShapeSquare
	ShapeTriangle
	ShapeHexagon
	ShapeCircle
)

var shapeNames = map[ShapeID]string{
	ShapeAxisX:    "x-axis",
	ShapeAxisY:    "y-axis",
	ShapeSquare:   "square",
	ShapeTriangle: "triangle",
	ShapeHexagon:  "hexagon",
	ShapeCircle:   "circle",
}

func (id ShapeID) String() string {
	if name, ok := shapeNames[id]; ok {
		return name
	}
	return "unknown"
}

const (
	axisXExtent = 10
	axisYExtent = 7

	// Apex and base of the triangle sit this fraction of the half length off the x axis.
	triangleRise = 0.95241298

	// Circle components closer to zero than this are snapped to zero.
	circleSnap = 0.1
)

// Geometry holds the immutable line-list vertex data of every shape in the scene.
// Each list is a flat run of xyz triples consumed in pairs, one pair per segment.
type Geometry struct {
	shapes map[ShapeID][]float32
}

func NewGeometry(cfg Config) *Geometry {
	l := cfg.ModelLength
	half := l / 2
	quarter := l / 4
	rise := half * triangleRise
	hexRise := half * float32(math.Sqrt(3)) / 2

	g := &Geometry{shapes: make(map[ShapeID][]float32, len(shapeNames))}

	g.shapes[ShapeAxisX] = []float32{
		-l * axisXExtent, 0, 0,
		l * axisXExtent, 0, 0,
	}
	g.shapes[ShapeAxisY] = []float32{
		0, l * axisYExtent, 0,
		0, -l * axisYExtent, 0,
	}
	g.shapes[ShapeSquare] = []float32{
		-half, half, 0, half, half, 0, // top
		half, half, 0, half, -half, 0, // right
		half, -half, 0, -half, -half, 0, // bottom
		-half, -half, 0, -half, half, 0, // left
	}
	g.shapes[ShapeTriangle] = []float32{
		0, rise, 0, -half, -rise, 0,
		-half, -rise, 0, half, -rise, 0,
		half, -rise, 0, 0, rise, 0,
	}
	g.shapes[ShapeHexagon] = []float32{
		-quarter, hexRise, 0, quarter, hexRise, 0,
		quarter, hexRise, 0, half, 0, 0,
		half, 0, 0, quarter, -hexRise, 0,
		quarter, -hexRise, 0, -quarter, -hexRise, 0,
		-quarter, -hexRise, 0, -half, 0, 0,
		-half, 0, 0, -quarter, hexRise, 0,
	}
	g.shapes[ShapeCircle] = GenerateCircle(half, cfg.CircleSegments)

	return g
}

// Shapes lists every shape in upload order.
func (g *Geometry) Shapes() []ShapeID {
	return []ShapeID{ShapeAxisX, ShapeAxisY, ShapeSquare, ShapeTriangle, ShapeHexagon, ShapeCircle}
}

func (g *Geometry) Vertices(id ShapeID) []float32 {
	return g.shapes[id]
}

// VertexCount returns the number of points (not floats) of a shape.
func (g *Geometry) VertexCount(id ShapeID) int {
	return len(g.shapes[id]) / 3
}

// GenerateCircle approximates a circle outline with independent line segments.
// slots is the number of float slots to fill (three per point) and must be a
// multiple of 6. Point 0 and the last point both sit at angle zero; every point in
// between is written twice so it ends one segment and starts the next.
func GenerateCircle(radius float32, slots int) []float32 {
	v := make([]float32, slots)
	if slots < 6 {
		return v
	}

	sample := func(i int) (float32, float32) {
		angle := 2 * math.Pi * float64(i) / float64(slots)
		return radius * float32(math.Cos(angle)), radius * float32(math.Sin(angle))
	}

	v[0], v[1] = sample(0)

	for i := 3; i < slots-3; i += 6 {
		x, y := sample(i)
		x, y = snap(x), snap(y)
		v[i], v[i+1], v[i+2] = x, y, 0
		v[i+3], v[i+4], v[i+5] = x, y, 0
	}

	v[slots-3], v[slots-2], v[slots-1] = v[0], v[1], 0
	return v
}

func snap(c float32) float32 {
	if c < circleSnap && c > -circleSnap {
		return 0
	}
	return c
}
