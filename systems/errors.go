package systems

import (
	"fmt"

	"github.com/plus3/paddleball/component"
)

// UnsupportedShapePairError is returned when physics meets a bounding shape
// combination other than rectangle-rectangle. It marks a scene configuration
// defect, not a transient condition.
type UnsupportedShapePairError struct {
	Op string
	A  component.ShapeKind
	B  component.ShapeKind
}

func (e *UnsupportedShapePairError) Error() string {
	return fmt.Sprintf("systems: unsupported %s between %s and %s", e.Op, e.A, e.B)
}

// MissingRenderContextError is returned when a drawing system is constructed
// without a canvas.
type MissingRenderContextError struct {
	System string
}

func (e *MissingRenderContextError) Error() string {
	return fmt.Sprintf("systems: %s requires a render context", e.System)
}
