// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Lesson 5 picks sprite sheet clips with the number keys.
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
	lessons.Main(lessons.SpriteClips, sdlr.NewDevice())
}
