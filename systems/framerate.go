package systems

import "time"

// FrameRateTracker counts frames seen during the last second.
type FrameRateTracker struct {
	frames []time.Time
}

// Tick records a frame at now and drops frames older than one second.
func (t *FrameRateTracker) Tick(now time.Time) {
	cutoff := now.Add(-time.Second)
	drop := 0
	for drop < len(t.frames) && !t.frames[drop].After(cutoff) {
		drop++
	}
	t.frames = append(t.frames[:0], t.frames[drop:]...)
	t.frames = append(t.frames, now)
}

// FPS returns the number of frames in the trailing one second window.
func (t *FrameRateTracker) FPS() int {
	return len(t.frames)
}
