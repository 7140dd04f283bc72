// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sdlr implements gfx.Device on top of SDL2 and SDL_image.
// Like SDL itself it must be driven from the main OS thread.
package sdlr

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/lessons/gfx"
)

// ErrForeignHandle is returned when a handle created by another
// gfx.Device is passed to this one.
var ErrForeignHandle = errors.New("handle does not belong to the SDL device")

// NewDevice creates a Device. Nothing is initialised until Init.
func NewDevice() *Device {
	return &Device{}
}

var _ gfx.Device = (*Device)(nil)

// Device is the SDL2 backed gfx.Device.
type Device struct {
	initialised gfx.Subsystem
}

// Init initialises SDL video and, if requested, SDL_image with PNG support.
func (d *Device) Init(sub gfx.Subsystem) error {
	if sub&gfx.SubsystemVideo != 0 {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return err
		}
		d.initialised |= gfx.SubsystemVideo
	}
	if sub&gfx.SubsystemPNG != 0 {
		if err := img.Init(img.INIT_PNG); err != nil {
			return err
		}
		d.initialised |= gfx.SubsystemPNG
	}
	return nil
}

// Quit shuts down the subsystems brought up by Init.
func (d *Device) Quit() {
	if d.initialised&gfx.SubsystemPNG != 0 {
		img.Quit()
	}
	if d.initialised&gfx.SubsystemVideo != 0 {
		sdl.Quit()
	}
	d.initialised = 0
}

// BasePath returns the executable's directory as reported by SDL.
func (d *Device) BasePath() (string, error) {
	path := sdl.GetBasePath()
	if path == "" {
		if err := sdl.GetError(); err != nil {
			return "", err
		}
		return "", errors.New("base path unavailable")
	}
	return path, nil
}

// CreateWindow creates a shown window.
func (d *Device) CreateWindow(cfg gfx.WindowConfig) (gfx.Window, error) {
	w, err := sdl.CreateWindow(cfg.Title, cfg.X, cfg.Y, cfg.Width, cfg.Height, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	return &Window{window: w}, nil
}

// CreateRenderer creates an accelerated, vsynced renderer for w.
func (d *Device) CreateRenderer(w gfx.Window) (gfx.Renderer, error) {
	win, ok := w.(*Window)
	if !ok || win.window == nil {
		return nil, ErrForeignHandle
	}
	r, err := sdl.CreateRenderer(win.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r}, nil
}

// LoadBMP decodes an uncompressed bitmap held in memory.
func (d *Device) LoadBMP(data []byte) (gfx.Surface, error) {
	rw, err := rwops(data)
	if err != nil {
		return nil, err
	}
	s, err := sdl.LoadBMPRW(rw, true)
	if err != nil {
		return nil, err
	}
	return &Surface{surface: s}, nil
}

// CreateTextureFromSurface uploads s to the renderer's device.
func (d *Device) CreateTextureFromSurface(r gfx.Renderer, s gfx.Surface) (gfx.Texture, error) {
	rend, ok := r.(*Renderer)
	if !ok || rend.renderer == nil {
		return nil, ErrForeignHandle
	}
	srf, ok := s.(*Surface)
	if !ok || srf.surface == nil {
		return nil, ErrForeignHandle
	}
	t, err := rend.renderer.CreateTextureFromSurface(srf.surface)
	if err != nil {
		return nil, err
	}
	return &Texture{texture: t}, nil
}

// LoadTexture decodes data with SDL_image straight into a texture.
func (d *Device) LoadTexture(r gfx.Renderer, data []byte) (gfx.Texture, error) {
	rend, ok := r.(*Renderer)
	if !ok || rend.renderer == nil {
		return nil, ErrForeignHandle
	}
	rw, err := rwops(data)
	if err != nil {
		return nil, err
	}
	t, err := img.LoadTextureRW(rend.renderer, rw, true)
	if err != nil {
		return nil, err
	}
	return &Texture{texture: t}, nil
}

// PollEvent translates the next pending SDL event. Events the lessons
// don't care about are dropped.
func (d *Device) PollEvent() gfx.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.QuitEvent:
			return gfx.QuitEvent{}
		case *sdl.KeyboardEvent:
			if et.Type == sdl.KEYDOWN {
				return gfx.KeyDownEvent{Key: translateKey(et.Keysym.Sym)}
			}
		case *sdl.MouseButtonEvent:
			if et.Type == sdl.MOUSEBUTTONDOWN {
				return gfx.MouseButtonDownEvent{Button: et.Button}
			}
		}
	}
	return nil
}

func translateKey(sym sdl.Keycode) gfx.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return gfx.KeyEscape
	case sdl.K_1:
		return gfx.Key1
	case sdl.K_2:
		return gfx.Key2
	case sdl.K_3:
		return gfx.Key3
	case sdl.K_4:
		return gfx.Key4
	}
	return gfx.KeyOther
}

func rwops(data []byte) (*sdl.RWops, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	return sdl.RWFromMem(data)
}

func logDestroy(kind string, err error) {
	if err != nil {
		log.WithError(err).Warnf("destroying %s", kind)
	}
}
