// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Event is an input or window event reported by a Device.
type Event interface {
	isEvent()
}

// Key identifies the keys the lessons react to.
type Key int

// Keys known to the lessons, everything else is KeyOther
const (
	KeyOther Key = iota
	KeyEscape
	Key1
	Key2
	Key3
	Key4
)

// QuitEvent is sent when the window is closed.
type QuitEvent struct{}

// KeyDownEvent is sent when a key is pressed.
type KeyDownEvent struct {
	Key Key
}

// MouseButtonDownEvent is sent when any mouse button is pressed.
type MouseButtonDownEvent struct {
	Button uint8
}

func (QuitEvent) isEvent()            {}
func (KeyDownEvent) isEvent()         {}
func (MouseButtonDownEvent) isEvent() {}
