// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Rect is a rectangle in pixels, origin in the top left corner.
type Rect struct {
	X, Y int32
	W, H int32
}

// Point is a position in pixels.
type Point struct {
	X, Y int32
}

// SheetClips cuts a sprite sheet into count clips of w by h pixels,
// laid out row by row with the given number of columns.
func SheetClips(count, columns int, w, h int32) []Rect {
	if count <= 0 || columns <= 0 {
		return nil
	}
	clips := make([]Rect, count)
	for idx := range clips {
		clips[idx] = Rect{
			X: int32(idx%columns) * w,
			Y: int32(idx/columns) * h,
			W: w,
			H: h,
		}
	}
	return clips
}

// Centered returns the origin that places a w by h rectangle in the
// middle of the screen.
func Centered(screenW, screenH, w, h int32) (x, y int32) {
	return screenW/2 - w/2, screenH/2 - h/2
}

// TileOrigins returns the origins of tileW by tileH tiles needed to
// cover the screen, column by column.
func TileOrigins(screenW, screenH, tileW, tileH int32) []Point {
	if tileW <= 0 || tileH <= 0 {
		return nil
	}
	var origins []Point
	// int64 counters so stepping past the last tile can't wrap around
	for x := int64(0); x < int64(screenW); x += int64(tileW) {
		for y := int64(0); y < int64(screenH); y += int64(tileH) {
			origins = append(origins, Point{X: int32(x), Y: int32(y)})
		}
	}
	return origins
}

// RenderAt draws t with its top left corner at x, y. The destination
// keeps the clip's size when one is given and the texture's otherwise.
func RenderAt(r Renderer, t Texture, x, y int32, clip *Rect) error {
	dst := Rect{X: x, Y: y}
	if clip != nil {
		dst.W, dst.H = clip.W, clip.H
	} else {
		w, h, err := t.Size()
		if err != nil {
			return err
		}
		dst.W, dst.H = w, h
	}
	return r.Copy(t, clip, &dst)
}
