// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package lessons

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/devblok/lessons/gfx"
)

// Sprite sheet layout used by SpriteClips
const (
	ClipCount   = 4
	ClipColumns = 2
	ClipSize    = 100
)

// HelloPath initialises SDL and prints where resources are looked up.
var HelloPath = Lesson{
	Name: "lesson0",
	Body: func(c *Context) error {
		_, err := fmt.Fprintf(c.Out, "Resource path is: %s\n", c.Resolver.Path(""))
		return err
	},
}

// HelloBitmap shows a bitmap stretched over the whole window for a
// few frames.
var HelloBitmap = Lesson{
	Name: "lesson1",
	Body: func(c *Context) error {
		_, renderer, err := openTarget(c)
		if err != nil {
			return err
		}
		texture, err := c.LoadBMPTexture(renderer, "Lesson1/hello.bmp")
		if err != nil {
			return err
		}

		return c.Frames(func() error {
			return frame(renderer, func() error {
				return errors.Wrap(renderer.Copy(texture, nil, nil), "RenderCopy error")
			})
		})
	},
}

// TiledBackground tiles a background over the window and draws an
// image in its centre.
var TiledBackground = Lesson{
	Name: "lesson2",
	Body: func(c *Context) error {
		_, renderer, err := openTarget(c)
		if err != nil {
			return err
		}
		background, err := c.LoadBMPTexture(renderer, "Lesson2/background.bmp")
		if err != nil {
			return err
		}
		image, err := c.LoadBMPTexture(renderer, "Lesson2/image.bmp")
		if err != nil {
			return err
		}

		screenW, screenH := c.Config.Window.Width, c.Config.Window.Height
		return c.Frames(func() error {
			return frame(renderer, func() error {
				bw, bh, err := background.Size()
				if err != nil {
					return errors.Wrap(err, "QueryTexture error")
				}
				for _, p := range gfx.TileOrigins(screenW, screenH, bw, bh) {
					if err := gfx.RenderAt(renderer, background, p.X, p.Y, nil); err != nil {
						return errors.Wrap(err, "RenderCopy error")
					}
				}
				return renderCentered(renderer, image, screenW, screenH)
			})
		})
	},
}

// PNGEventLoop draws a PNG in the centre of the window until the
// window is closed, a key is pressed or a mouse button is clicked.
var PNGEventLoop = Lesson{
	Name:       "lesson4",
	Subsystems: gfx.SubsystemPNG,
	Body: func(c *Context) error {
		_, renderer, err := openTarget(c)
		if err != nil {
			return err
		}
		image, err := c.LoadTexture(renderer, "Lesson4/image.png")
		if err != nil {
			return err
		}

		screenW, screenH := c.Config.Window.Width, c.Config.Window.Height
		return c.Loop(func(e gfx.Event) bool {
			switch e.(type) {
			case gfx.QuitEvent, gfx.KeyDownEvent, gfx.MouseButtonDownEvent:
				return true
			}
			return false
		}, func() error {
			return frame(renderer, func() error {
				return renderCentered(renderer, image, screenW, screenH)
			})
		})
	},
}

// SpriteClips draws one clip of a sprite sheet, keys 1 to 4 pick
// which. Escape or closing the window ends the lesson.
var SpriteClips = Lesson{
	Name:       "lesson5",
	Subsystems: gfx.SubsystemPNG,
	Body: func(c *Context) error {
		_, renderer, err := openTarget(c)
		if err != nil {
			return err
		}
		sheet, err := c.LoadTexture(renderer, "Lesson5/image.png")
		if err != nil {
			return err
		}

		clips := gfx.SheetClips(ClipCount, ClipColumns, ClipSize, ClipSize)
		x, y := gfx.Centered(c.Config.Window.Width, c.Config.Window.Height, ClipSize, ClipSize)
		useClip := 0

		return c.Loop(func(e gfx.Event) bool {
			switch et := e.(type) {
			case gfx.QuitEvent:
				return true
			case gfx.KeyDownEvent:
				switch et.Key {
				case gfx.Key1, gfx.Key2, gfx.Key3, gfx.Key4:
					useClip = int(et.Key - gfx.Key1)
					c.Log.Debugf("using clip %d", useClip)
				case gfx.KeyEscape:
					return true
				}
			}
			return false
		}, func() error {
			return frame(renderer, func() error {
				return errors.Wrap(gfx.RenderAt(renderer, sheet, x, y, &clips[useClip]), "RenderCopy error")
			})
		})
	},
}

func openTarget(c *Context) (gfx.Window, gfx.Renderer, error) {
	window, err := c.OpenWindow()
	if err != nil {
		return nil, nil, err
	}
	renderer, err := c.OpenRenderer(window)
	if err != nil {
		return nil, nil, err
	}
	return window, renderer, nil
}

// frame clears the target, lets draw fill it and presents the result.
func frame(r gfx.Renderer, draw func() error) error {
	if err := r.Clear(); err != nil {
		return errors.Wrap(err, "RenderClear error")
	}
	if err := draw(); err != nil {
		return err
	}
	r.Present()
	return nil
}

func renderCentered(r gfx.Renderer, t gfx.Texture, screenW, screenH int32) error {
	w, h, err := t.Size()
	if err != nil {
		return errors.Wrap(err, "QueryTexture error")
	}
	x, y := gfx.Centered(screenW, screenH, w, h)
	return errors.Wrap(gfx.RenderAt(r, t, x, y, nil), "RenderCopy error")
}
