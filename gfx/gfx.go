// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the rendering features the lessons rely on.
// Backends implement Device and hand out handles that satisfy Releasable.
package gfx

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	// Releasing an already released handle does nothing.
	Release()
}

// Subsystem selects which parts of the backend Init brings up.
type Subsystem uint32

// Subsystems understood by Device.Init
const (
	SubsystemVideo Subsystem = 1 << iota
	SubsystemPNG
)

// WindowConfig describes the window a lesson draws into.
type WindowConfig struct {
	Title  string
	X, Y   int32
	Width  int32
	Height int32
}

// Window is a native window handle.
type Window interface {
	Releasable
}

// Surface is a decoded image held in general memory, not yet uploaded
// to the rendering device.
type Surface interface {
	Releasable
}

// Texture is an image resident on the rendering device.
type Texture interface {
	Releasable

	// Size queries the width and height of the texture.
	Size() (w, h int32, err error)
}

// Renderer draws textures into a window.
type Renderer interface {
	Releasable

	// Clear clears the current rendering target.
	Clear() error

	// Copy draws the clip region of t into dst. A nil clip selects the
	// whole texture, a nil dst the whole target.
	Copy(t Texture, clip, dst *Rect) error

	// Present shows everything drawn since the last Present.
	Present()
}

// Device describes the rendering backend. Every acquiring method
// returns a handle that the caller owns and must release.
type Device interface {
	// Init brings up the requested subsystems.
	Init(Subsystem) error

	// Quit shuts down whatever Init brought up.
	Quit()

	// BasePath returns the directory the running executable lives in.
	BasePath() (string, error)

	CreateWindow(WindowConfig) (Window, error)
	CreateRenderer(Window) (Renderer, error)

	// LoadBMP decodes an uncompressed bitmap into a Surface.
	LoadBMP(data []byte) (Surface, error)

	// CreateTextureFromSurface uploads s. The surface stays owned by
	// the caller.
	CreateTextureFromSurface(Renderer, Surface) (Texture, error)

	// LoadTexture decodes any format supported by the image extension
	// straight into a texture.
	LoadTexture(r Renderer, data []byte) (Texture, error)

	// PollEvent returns the next pending event or nil if there is none.
	PollEvent() Event
}
