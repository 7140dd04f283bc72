// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"context"
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) Time {
	return Time{
		fps:        cfg.FramesPerSecond,
		frames:     cfg.Frames,
		fpsTicker:  time.NewTicker(interval(cfg.FramesPerSecond)),
		frameDelay: cfg.FrameDelay,
	}
}

// interval turns a frame rate into a ticker period, 0 meaning as
// fast as possible.
func interval(fps int) time.Duration {
	if fps <= 0 {
		return time.Nanosecond
	}
	return time.Second / time.Duration(fps)
}

// Time contains all the time services and tickers
type Time struct {
	fps       int
	fpsTicker *time.Ticker

	frames     int
	frameDelay time.Duration
}

// Fps gets the set frames per second
func (t *Time) Fps() int {
	return t.fps
}

// Frames gets the number of frames a fixed-iteration lesson draws
func (t *Time) Frames() int {
	return t.frames
}

// FpsTicker gets the initialized fps ticker
func (t *Time) FpsTicker() *time.Ticker {
	return t.fpsTicker
}

// Hold keeps the current frame on screen for the configured delay,
// returning early when ctx is done.
func (t *Time) Hold(ctx context.Context) {
	if t.frameDelay <= 0 {
		return
	}
	timer := time.NewTimer(t.frameDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Stop releases the tickers.
func (t *Time) Stop() {
	t.fpsTicker.Stop()
}
