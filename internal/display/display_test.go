package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/paddleball/config"
	"github.com/plus3/paddleball/game"
	"github.com/plus3/paddleball/internal/display"
)

func TestList(t *testing.T) {
	l := display.NewList(640, 360)

	w, h := l.Size()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 360.0, h)

	l.FillRect(1, 2, 3, 4)
	l.FillCircle(5, 6, 7)
	l.Text("hi", 8, 9)

	assert.Equal(t, []display.Op{
		{Kind: display.OpRect, X: 1, Y: 2, Width: 3, Height: 4},
		{Kind: display.OpCircle, X: 5, Y: 6, Radius: 7},
		{Kind: display.OpText, X: 8, Y: 9, Text: "hi"},
	}, l.Ops())

	l.Clear()
	assert.Empty(t, l.Ops())
	assert.Equal(t, 1, l.Frames())
}

func TestListRecordsGameFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true

	l := display.NewList(cfg.Playfield.Width, cfg.Playfield.Height)
	g, err := game.New(cfg, game.Options{Canvas: l, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	require.NoError(t, g.Update(0))
	assert.Equal(t, 1, l.Frames())

	counts := map[display.OpKind]int{}
	for _, op := range l.Ops() {
		counts[op.Kind]++
	}
	// two paddles and two walls, the ball, and the FPS and frame time lines
	assert.Equal(t, 4, counts[display.OpRect])
	assert.Equal(t, 1, counts[display.OpCircle])
	assert.Equal(t, 2, counts[display.OpText])

	for _, op := range l.Ops() {
		if op.Kind == display.OpCircle {
			assert.Equal(t, display.Op{Kind: display.OpCircle, X: 320, Y: 180, Radius: 5}, op)
		}
	}
}
