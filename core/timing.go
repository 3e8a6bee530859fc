package core

import "time"

// FrameLimiter paces the main loop to a fixed target rate by sleeping off
// the remainder of each frame's time slice.
type FrameLimiter struct {
	frameDur time.Duration
	last     time.Time
}

// NewFrameLimiter targets fps frames per second. fps <= 0 disables pacing.
func NewFrameLimiter(fps int) *FrameLimiter {
	fl := &FrameLimiter{last: time.Now()}
	if fps > 0 {
		fl.frameDur = time.Second / time.Duration(fps)
	}
	return fl
}

// Wait sleeps until the current frame's slot has elapsed and returns the
// delta time in seconds since the previous Wait.
func (fl *FrameLimiter) Wait() float32 {
	if fl.frameDur > 0 {
		elapsed := time.Since(fl.last)
		if elapsed < fl.frameDur {
			time.Sleep(fl.frameDur - elapsed)
		}
	}
	now := time.Now()
	dt := float32(now.Sub(fl.last).Seconds())
	fl.last = now
	return dt
}

// FPSCounter computes a once-per-second frame rate figure.
type FPSCounter struct {
	frames int
	fps    int
	since  time.Time
}

func NewFPSCounter() *FPSCounter {
	return &FPSCounter{since: time.Now()}
}

// Tick records a frame and returns the most recent whole-second FPS value.
func (fc *FPSCounter) Tick() int {
	fc.frames++
	if elapsed := time.Since(fc.since); elapsed >= time.Second {
		fc.fps = int(float64(fc.frames) / elapsed.Seconds())
		fc.frames = 0
		fc.since = time.Now()
	}
	return fc.fps
}
