// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package lessons

import (
	"context"
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/lessons/core"
	"github.com/devblok/lessons/gfx"
	"github.com/devblok/lessons/resource"
)

// Context is what a lesson body works with. Every handle acquired
// through it is registered with Scope and released when the lesson
// returns.
type Context struct {
	context.Context

	Device   gfx.Device
	Config   core.Configuration
	Resolver *resource.Resolver
	Scope    gfx.Scope
	Time     *core.Time
	Out      io.Writer
	Log      *log.Entry

	source   resource.Source
	external bool
}

// OpenWindow creates the configured window.
func (c *Context) OpenWindow() (gfx.Window, error) {
	w, err := c.Device.CreateWindow(c.Config.Window)
	if err != nil {
		return nil, errors.Wrap(err, "CreateWindow error")
	}
	c.Scope.Add(w)
	return w, nil
}

// OpenRenderer creates a renderer drawing into w.
func (c *Context) OpenRenderer(w gfx.Window) (gfx.Renderer, error) {
	r, err := c.Device.CreateRenderer(w)
	if err != nil {
		return nil, errors.Wrap(err, "CreateRenderer error")
	}
	c.Scope.Add(r)
	return r, nil
}

// LoadBMPTexture reads a bitmap, decodes it into a surface and uploads
// it. The surface is released as soon as the texture exists.
func (c *Context) LoadBMPTexture(r gfx.Renderer, name string) (gfx.Texture, error) {
	data, err := c.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "LoadBMP error")
	}
	surface, err := c.Device.LoadBMP(data)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadBMP error: %s", name)
	}
	texture, err := c.Device.CreateTextureFromSurface(r, surface)
	gfx.Release(surface)
	if err != nil {
		return nil, errors.Wrap(err, "CreateTextureFromSurface error")
	}
	c.Scope.Add(texture)
	return texture, nil
}

// LoadTexture reads an image in any format the image extension knows
// and uploads it.
func (c *Context) LoadTexture(r gfx.Renderer, name string) (gfx.Texture, error) {
	data, err := c.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "LoadTexture error")
	}
	texture, err := c.Device.LoadTexture(r, data)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadTexture error: %s", name)
	}
	c.Scope.Add(texture)
	return texture, nil
}

// ReadFile reads a resource by its slash separated name. The source
// is opened on first use.
func (c *Context) ReadFile(name string) ([]byte, error) {
	if c.source == nil {
		src, err := c.openSource()
		if err != nil {
			return nil, err
		}
		c.source = src
	}
	return c.source.ReadFile(name)
}

func (c *Context) openSource() (resource.Source, error) {
	switch c.Config.Resources.Source {
	case core.SourceArchive:
		return resource.OpenArchive(filepath.Join(c.Resolver.Root(), c.Config.Resources.Archive))
	case core.SourceBox:
		return resource.EmbeddedBox(), nil
	default:
		return resource.NewDir(c.Resolver), nil
	}
}

func (c *Context) closeSource() {
	if c.source == nil || c.external {
		return
	}
	if err := c.source.Close(); err != nil {
		c.Log.WithError(err).Warn("closing resource source")
	}
}

// Loop polls events and redraws once per frame until handle reports
// that the lesson should end or the context is cancelled.
func (c *Context) Loop(handle func(gfx.Event) bool, draw func() error) error {
	for {
		quit := false
		for event := c.Device.PollEvent(); event != nil; event = c.Device.PollEvent() {
			if handle(event) {
				quit = true
			}
		}
		if quit {
			return nil
		}

		if err := draw(); err != nil {
			return err
		}

		select {
		case <-c.Done():
			c.Log.Debug("interrupted")
			return nil
		case <-c.Time.FpsTicker().C:
		}
	}
}

// Frames draws the configured number of frames, holding each on
// screen for the configured delay.
func (c *Context) Frames(draw func() error) error {
	for idx := 0; idx < c.Time.Frames(); idx++ {
		if c.Err() != nil {
			return nil
		}
		if err := draw(); err != nil {
			return err
		}
		c.Time.Hold(c)
	}
	return nil
}
