package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// BufferHandle identifies a vertex buffer owned by a renderer.
type BufferHandle string

type BufferTable map[ShapeID]BufferHandle

type Uploader interface {
	UploadVertexBuffer(points []float32) (BufferHandle, error)
}

// DrawCall asks the renderer to draw VertexCount points of Buffer as a line list.
type DrawCall struct {
	Entity      string
	Buffer      BufferHandle
	MVP         mgl32.Mat4
	Color       mgl32.Vec4
	VertexCount int
}

type Submitter interface {
	Submit(call DrawCall)
}

// UploadGeometry hands every shape to the renderer once.
func UploadGeometry(g *Geometry, up Uploader) (BufferTable, error) {
	table := make(BufferTable, len(g.Shapes()))
	for _, id := range g.Shapes() {
		handle, err := up.UploadVertexBuffer(g.Vertices(id))
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", id, err)
		}
		table[id] = handle
	}
	return table, nil
}

// Entity is one drawable. A nil Shape means "whatever the user has selected",
// a nil Color means "the user's color".
type Entity struct {
	Name      string
	Shape     *ShapeID
	Transform func(t *Transforms) mgl32.Mat4
	Color     *mgl32.Vec4
}

func fixedShape(id ShapeID) *ShapeID { return &id }

func fixedColor(c mgl32.Vec4) *mgl32.Vec4 { return &c }

func axesTransform(t *Transforms) mgl32.Mat4        { return t.Axes }
func environmentTransform(t *Transforms) mgl32.Mat4 { return t.Environment }
func userTransform(t *Transforms) mgl32.Mat4        { return t.User }

// DefaultEntities draws the grid, the environment square and the user shape, in that order.
func DefaultEntities() []Entity {
	return []Entity{
		{Name: "x-axis", Shape: fixedShape(ShapeAxisX), Transform: axesTransform, Color: fixedColor(ColorRed)},
		{Name: "y-axis", Shape: fixedShape(ShapeAxisY), Transform: axesTransform, Color: fixedColor(ColorGreen)},
		{Name: "environment", Shape: fixedShape(ShapeSquare), Transform: environmentTransform, Color: fixedColor(ColorOrange)},
		{Name: "user", Transform: userTransform},
	}
}

func TemplateEntities() []Entity {
	return []Entity{
		{Name: "user", Transform: userTransform},
	}
}

type Composer struct {
	geometry *Geometry
	buffers  BufferTable
	entities []Entity
}

func NewComposer(g *Geometry, buffers BufferTable, entities []Entity) *Composer {
	return &Composer{
		geometry: g,
		buffers:  buffers,
		entities: entities,
	}
}

// Compose turns the current state into draw calls without touching it.
// When the selected model is unknown, the calls built so far are returned together
// with ErrUnknownModel and the frame should not be presented.
func (c *Composer) Compose(s *State) ([]DrawCall, error) {
	calls := make([]DrawCall, 0, len(c.entities))
	for _, e := range c.entities {
		shape, color := ShapeID(0), s.Object.Color
		if e.Shape != nil {
			shape = *e.Shape
		} else {
			id, ok := s.Object.Active.Shape()
			if !ok {
				return calls, fmt.Errorf("%w: %d", ErrUnknownModel, int(s.Object.Active))
			}
			shape = id
		}
		if e.Color != nil {
			color = *e.Color
		}

		calls = append(calls, DrawCall{
			Entity:      e.Name,
			Buffer:      c.buffers[shape],
			MVP:         s.MVP(e.Transform(&s.Transforms)),
			Color:       color,
			VertexCount: c.geometry.VertexCount(shape),
		})
	}
	return calls, nil
}

// Draw composes and submits in entity order.
func (c *Composer) Draw(s *State, sub Submitter) error {
	calls, err := c.Compose(s)
	for _, call := range calls {
		sub.Submit(call)
	}
	return err
}
