// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Lesson 2 tiles a background and centres an image on top of it.
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
	lessons.Main(lessons.TiledBackground, sdlr.NewDevice())
}
