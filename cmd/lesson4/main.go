// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Lesson 4 loads a PNG through SDL_image and runs an event loop.
package main

import (
	"runtime"

	"github.com/devblok/lessons/gfx/sdlr"
	"github.com/devblok/lessons/lessons"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	lessons.Main(lessons.PNGEventLoop, sdlr.NewDevice())
}
