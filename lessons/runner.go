// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package lessons holds the lesson programs and the runner that gives
// each of them an initialised device, a resource root and a scope that
// releases whatever the lesson acquired, however it exits.
package lessons

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/lessons/core"
	"github.com/devblok/lessons/gfx"
	"github.com/devblok/lessons/resource"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Lesson describes one lesson program.
type Lesson struct {
	Name string

	// Subsystems the runner initialises before Body runs.
	// Video is always initialised.
	Subsystems gfx.Subsystem

	Body func(*Context) error
}

// Runner runs lessons against a Device.
type Runner struct {
	Device gfx.Device
	Config core.Configuration

	// Source overrides the resource source selected by Config.
	Source resource.Source

	// Out receives the lessons' regular output, stdout when nil.
	Out io.Writer

	// Log receives diagnostics, the standard logrus logger when nil.
	Log *log.Logger
}

// Run initialises the device, runs the lesson and tears everything
// down again. It returns the process exit code.
func (r *Runner) Run(ctx context.Context, l Lesson) int {
	logger := r.Log
	if logger == nil {
		logger = log.StandardLogger()
	}
	entry := logger.WithField("lesson", l.Name)

	if err := r.Device.Init(gfx.SubsystemVideo); err != nil {
		entry.Error(errors.Wrap(err, "SDL_Init error"))
		return ExitFailure
	}
	defer r.Device.Quit()

	if l.Subsystems&gfx.SubsystemPNG != 0 {
		if err := r.Device.Init(gfx.SubsystemPNG); err != nil {
			entry.Error(errors.Wrap(err, "IMG_Init error"))
			return ExitFailure
		}
	}

	resolver, err := resource.NewResolver(r.Device.BasePath, r.Config.Resources.Root)
	if err != nil {
		entry.Error(errors.Wrap(err, "ResourcePath error"))
		return ExitFailure
	}

	clock := core.NewTime(r.Config.Time)
	defer clock.Stop()

	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	c := &Context{
		Context:  ctx,
		Device:   r.Device,
		Config:   r.Config,
		Resolver: resolver,
		Time:     &clock,
		Out:      out,
		Log:      entry,
		source:   r.Source,
		external: r.Source != nil,
	}
	defer c.closeSource()
	defer c.Scope.Release()

	entry.Debug("lesson starting")
	if err := l.Body(c); err != nil {
		entry.Error(err)
		return ExitFailure
	}
	entry.Debug("lesson finished")
	return ExitOK
}
