// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"errors"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/lessons/gfx"
)

func TestSheetClips(t *testing.T) {
	c := qt.New(t)
	clips := gfx.SheetClips(4, 2, 100, 100)
	c.Assert(clips, qt.DeepEquals, []gfx.Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 100, Y: 0, W: 100, H: 100},
		{X: 0, Y: 100, W: 100, H: 100},
		{X: 100, Y: 100, W: 100, H: 100},
	})
	c.Assert(gfx.SheetClips(0, 2, 10, 10), qt.HasLen, 0)
	c.Assert(gfx.SheetClips(3, 0, 10, 10), qt.HasLen, 0)
}

func TestCentered(t *testing.T) {
	cases := []struct {
		sw, sh, w, h int32
		x, y         int32
	}{
		{640, 480, 100, 100, 270, 190},
		{640, 480, 101, 33, 270, 224},
		{640, 480, 640, 480, 0, 0},
		{641, 481, 0, 0, 320, 240},
		{33554435, 0, 0, 0, 16777217, 0},
		{math.MaxInt32, math.MaxInt32, 1, 1, 1073741823, 1073741823},
	}
	for _, tc := range cases {
		x, y := gfx.Centered(tc.sw, tc.sh, tc.w, tc.h)
		wantX := tc.sw/2 - tc.w/2
		wantY := tc.sh/2 - tc.h/2
		if x != tc.x || y != tc.y || x != wantX || y != wantY {
			t.Errorf("Centered(%d, %d, %d, %d) = %d, %d; want %d, %d",
				tc.sw, tc.sh, tc.w, tc.h, x, y, tc.x, tc.y)
		}
	}
}

func TestTileOrigins(t *testing.T) {
	c := qt.New(t)
	origins := gfx.TileOrigins(640, 480, 320, 240)
	c.Assert(origins, qt.DeepEquals, []gfx.Point{
		{X: 0, Y: 0}, {X: 0, Y: 240},
		{X: 320, Y: 0}, {X: 320, Y: 240},
	})

	// partial tiles at the edges still count
	c.Assert(gfx.TileOrigins(640, 480, 300, 300), qt.HasLen, 3*2)
	c.Assert(gfx.TileOrigins(640, 480, 0, 10), qt.HasLen, 0)
}

func TestTileOriginsNearInt32Limit(t *testing.T) {
	c := qt.New(t)
	origins := gfx.TileOrigins(math.MaxInt32, 1, 1<<30, 1)
	c.Assert(origins, qt.DeepEquals, []gfx.Point{
		{X: 0, Y: 0},
		{X: 1 << 30, Y: 0},
	})

	origins = gfx.TileOrigins(1, math.MaxInt32, 1, math.MaxInt32-1)
	c.Assert(origins, qt.DeepEquals, []gfx.Point{
		{X: 0, Y: 0},
		{X: 0, Y: math.MaxInt32 - 1},
	})
}

type sizedTexture struct {
	w, h int32
	err  error
}

func (sizedTexture) Release() {}

func (s sizedTexture) Size() (int32, int32, error) {
	return s.w, s.h, s.err
}

type copyRecorder struct {
	clips []*gfx.Rect
	dsts  []gfx.Rect
}

func (*copyRecorder) Release()     {}
func (*copyRecorder) Clear() error { return nil }
func (*copyRecorder) Present()     {}

func (r *copyRecorder) Copy(t gfx.Texture, clip, dst *gfx.Rect) error {
	r.clips = append(r.clips, clip)
	r.dsts = append(r.dsts, *dst)
	return nil
}

func TestRenderAt(t *testing.T) {
	c := qt.New(t)
	r := &copyRecorder{}
	tex := sizedTexture{w: 64, h: 32}

	c.Assert(gfx.RenderAt(r, tex, 10, 20, nil), qt.IsNil)
	c.Assert(r.dsts[0], qt.Equals, gfx.Rect{X: 10, Y: 20, W: 64, H: 32})
	c.Assert(r.clips[0], qt.Equals, (*gfx.Rect)(nil))

	clip := &gfx.Rect{X: 100, Y: 0, W: 100, H: 100}
	c.Assert(gfx.RenderAt(r, tex, 5, 6, clip), qt.IsNil)
	c.Assert(r.dsts[1], qt.Equals, gfx.Rect{X: 5, Y: 6, W: 100, H: 100})
	c.Assert(r.clips[1], qt.Equals, clip)

	broken := sizedTexture{err: errors.New("invalid texture")}
	c.Assert(gfx.RenderAt(r, broken, 0, 0, nil), qt.ErrorMatches, "invalid texture")
	c.Assert(r.dsts, qt.HasLen, 2)
}
