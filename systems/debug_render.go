package systems

import (
	"strconv"
	"time"

	"github.com/plus3/paddleball/ecs"
)

// DebugRenderSystem overlays frame rate and frame time. It admits no entities.
type DebugRenderSystem struct {
	canvas   Canvas
	now      func() time.Time
	tracker  FrameRateTracker
	fontSize float64
}

// NewDebugRenderSystem fails with *MissingRenderContextError if canvas is nil.
// A nil clock defaults to time.Now.
func NewDebugRenderSystem(canvas Canvas, now func() time.Time) (*DebugRenderSystem, error) {
	if canvas == nil {
		return nil, &MissingRenderContextError{System: "DebugRenderSystem"}
	}
	if now == nil {
		now = time.Now
	}

	_, height := canvas.Size()
	return &DebugRenderSystem{
		canvas:   canvas,
		now:      now,
		fontSize: height / 20,
	}, nil
}

func (s *DebugRenderSystem) Accepts(ecs.Components) bool {
	return false
}

func (s *DebugRenderSystem) AddEntity(ecs.EntityId, ecs.Components) bool {
	return false
}

// FPS returns the frame rate measured so far.
func (s *DebugRenderSystem) FPS() int {
	return s.tracker.FPS()
}

func (s *DebugRenderSystem) Update(delta float64) error {
	s.tracker.Tick(s.now())

	fps := "n/a"
	if n := s.tracker.FPS(); n > 0 {
		fps = strconv.Itoa(n)
	}

	s.canvas.Text("FPS: "+fps, 30, s.fontSize)
	s.canvas.Text("Δ: "+strconv.FormatFloat(delta*1000, 'g', 4, 64), 30, s.fontSize*2+s.fontSize*0.1)
	return nil
}
