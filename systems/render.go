package systems

import (
	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/ecs"
)

// Canvas is the drawing surface a render consumer provides.
type Canvas interface {
	Size() (width, height float64)
	Clear()
	FillRect(x, y, width, height float64)
	FillCircle(cx, cy, radius float64)
	Text(s string, x, y float64)
}

type renderBundle struct {
	Position *component.Position `ecs:"position"`
	Mesh     *component.Mesh     `ecs:"mesh"`
}

// RenderSystem draws every entity with a mesh onto a canvas.
type RenderSystem struct {
	ecs.Query[renderBundle]
	canvas Canvas
}

// NewRenderSystem fails with *MissingRenderContextError if canvas is nil.
func NewRenderSystem(canvas Canvas) (*RenderSystem, error) {
	if canvas == nil {
		return nil, &MissingRenderContextError{System: "RenderSystem"}
	}
	return &RenderSystem{canvas: canvas}, nil
}

// Update clears the canvas and draws each mesh at its entity's position.
func (s *RenderSystem) Update(float64) error {
	s.canvas.Clear()

	for item := range s.Values() {
		shape := item.Mesh.Translate(item.Position.Point())
		switch shape.Kind {
		case component.ShapeRectangle:
			s.canvas.FillRect(shape.Origin.X, shape.Origin.Y, shape.Size.Width, shape.Size.Height)
		case component.ShapeCircle:
			s.canvas.FillCircle(shape.Origin.X, shape.Origin.Y, shape.Radius)
		}
	}
	return nil
}
