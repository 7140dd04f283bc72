// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sdlr

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/lessons/gfx"
)

// Window wraps an SDL window.
type Window struct {
	window *sdl.Window
}

// Release destroys the window.
func (w *Window) Release() {
	if w == nil || w.window == nil {
		return
	}
	logDestroy("window", w.window.Destroy())
	w.window = nil
}

// Renderer wraps an SDL renderer.
type Renderer struct {
	renderer *sdl.Renderer
}

// Release destroys the renderer.
func (r *Renderer) Release() {
	if r == nil || r.renderer == nil {
		return
	}
	logDestroy("renderer", r.renderer.Destroy())
	r.renderer = nil
}

// Clear clears the current rendering target.
func (r *Renderer) Clear() error {
	return r.renderer.Clear()
}

// Copy draws the clip region of t into dst.
func (r *Renderer) Copy(t gfx.Texture, clip, dst *gfx.Rect) error {
	tex, ok := t.(*Texture)
	if !ok || tex.texture == nil {
		return ErrForeignHandle
	}
	return r.renderer.Copy(tex.texture, sdlRect(clip), sdlRect(dst))
}

// Present updates the window with everything drawn since the last call.
func (r *Renderer) Present() {
	r.renderer.Present()
}

// Texture wraps an SDL texture.
type Texture struct {
	texture *sdl.Texture
}

// Release destroys the texture.
func (t *Texture) Release() {
	if t == nil || t.texture == nil {
		return
	}
	logDestroy("texture", t.texture.Destroy())
	t.texture = nil
}

// Size queries the texture's dimensions.
func (t *Texture) Size() (int32, int32, error) {
	_, _, w, h, err := t.texture.Query()
	return w, h, err
}

// Surface wraps a decoded SDL surface.
type Surface struct {
	surface *sdl.Surface
}

// Release frees the surface.
func (s *Surface) Release() {
	if s == nil || s.surface == nil {
		return
	}
	s.surface.Free()
	s.surface = nil
}

func sdlRect(r *gfx.Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
