// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/devblok/lessons/core"
)

func TestTimeTicks(t *testing.T) {
	tm := core.NewTime(core.TimeConfiguration{FramesPerSecond: 0, Frames: 2})
	defer tm.Stop()

	select {
	case <-tm.FpsTicker().C:
	case <-time.After(time.Second):
		t.Fatal("unlimited ticker did not tick")
	}
	if tm.Frames() != 2 {
		t.Errorf("unexpected frame count %d", tm.Frames())
	}
}

func TestTimeHold(t *testing.T) {
	tm := core.NewTime(core.TimeConfiguration{FramesPerSecond: 60, FrameDelay: 20 * time.Millisecond})
	defer tm.Stop()

	start := time.Now()
	tm.Hold(context.Background())
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Hold returned after %s", elapsed)
	}
	if tm.Fps() != 60 {
		t.Errorf("unexpected fps %d", tm.Fps())
	}
}

func TestTimeHoldCancelled(t *testing.T) {
	tm := core.NewTime(core.TimeConfiguration{FrameDelay: time.Minute})
	defer tm.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	start := time.Now()
	tm.Hold(ctx)
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("Hold ignored cancellation for %s", elapsed)
	}
}
