// Package display records canvas drawing calls so a front-end can replay them
// on its own frame, outside the simulation update.
package display

import "github.com/plus3/paddleball/systems"

type OpKind uint8

const (
	OpRect OpKind = iota + 1
	OpCircle
	OpText
)

// Op is one recorded drawing call. Rectangles use X, Y, Width and Height;
// circles use X, Y as the center and Radius; text uses X, Y and Text.
type Op struct {
	Kind   OpKind
	X, Y   float64
	Width  float64
	Height float64
	Radius float64
	Text   string
}

// List is a systems.Canvas that keeps the calls made since the last Clear.
type List struct {
	width, height float64
	ops           []Op
	frames        int
}

var _ systems.Canvas = (*List)(nil)

func NewList(width, height float64) *List {
	return &List{width: width, height: height}
}

func (l *List) Size() (float64, float64) {
	return l.width, l.height
}

// Clear starts a new frame.
func (l *List) Clear() {
	l.ops = l.ops[:0]
	l.frames++
}

func (l *List) FillRect(x, y, width, height float64) {
	l.ops = append(l.ops, Op{Kind: OpRect, X: x, Y: y, Width: width, Height: height})
}

func (l *List) FillCircle(cx, cy, radius float64) {
	l.ops = append(l.ops, Op{Kind: OpCircle, X: cx, Y: cy, Radius: radius})
}

func (l *List) Text(s string, x, y float64) {
	l.ops = append(l.ops, Op{Kind: OpText, X: x, Y: y, Text: s})
}

// Ops returns the calls of the current frame. The slice is reused by the next
// Clear.
func (l *List) Ops() []Op {
	return l.ops
}

// Frames returns how many times Clear has been called.
func (l *List) Frames() int {
	return l.frames
}
