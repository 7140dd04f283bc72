// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"os"
	"strconv"
	"time"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/lessons/gfx"
)

// Configuration defines a global lesson configuration setting
type Configuration struct {
	Time      TimeConfiguration
	Window    gfx.WindowConfig
	Resources ResourceConfiguration
	LogLevel  log.Level
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps how often interactive lessons poll events
	// and redraw. To unlimit, set to 0
	FramesPerSecond int

	// Frames is the number of frames fixed-iteration lessons draw
	Frames int

	// FrameDelay is how long every fixed-iteration frame stays on screen
	FrameDelay time.Duration
}

// ResourceSource names where lessons read their images from.
type ResourceSource string

// Known resource sources
const (
	SourceDirectory ResourceSource = "dir"
	SourceArchive   ResourceSource = "kar"
	SourceBox       ResourceSource = "box"
)

// ResourceConfiguration is used to configure resource lookup
type ResourceConfiguration struct {
	// Root overrides the resource root derived from the executable
	Root string

	Source ResourceSource

	// Archive is the kar file name, relative to the resource root
	Archive string
}

// DefaultConfiguration is what the lessons run with when nothing is
// set in the environment.
var DefaultConfiguration = Configuration{
	Time: TimeConfiguration{
		FramesPerSecond: 60,
		Frames:          3,
		FrameDelay:      time.Second,
	},
	Window: gfx.WindowConfig{
		Title:  "Hello World!",
		X:      100,
		Y:      100,
		Width:  640,
		Height: 480,
	},
	Resources: ResourceConfiguration{
		Source:  SourceDirectory,
		Archive: "res.kar",
	},
	LogLevel: log.InfoLevel,
}

// Environment variables read by LoadConfiguration
const (
	EnvWindowTitle  = "LESSONS_WINDOW_TITLE"
	EnvWindowX      = "LESSONS_WINDOW_X"
	EnvWindowY      = "LESSONS_WINDOW_Y"
	EnvScreenWidth  = "LESSONS_SCREEN_WIDTH"
	EnvScreenHeight = "LESSONS_SCREEN_HEIGHT"
	EnvFPS          = "LESSONS_FPS"
	EnvFrames       = "LESSONS_FRAMES"
	EnvFrameDelay   = "LESSONS_FRAME_DELAY_MS"
	EnvResRoot      = "LESSONS_RES_ROOT"
	EnvResSource    = "LESSONS_RES_SOURCE"
	EnvResArchive   = "LESSONS_RES_ARCHIVE"
	EnvLogLevel     = "LESSONS_LOG_LEVEL"
)

// LoadConfiguration starts from DefaultConfiguration and applies the
// environment on top. envFile is loaded first if it exists; variables
// already present in the environment win over the file.
func LoadConfiguration(envFile string) (Configuration, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Configuration{}, errors.Wrapf(err, "loading %s", envFile)
			}
		}
	}
	envy.Reload()

	cfg := DefaultConfiguration
	cfg.Window.Title = envy.Get(EnvWindowTitle, cfg.Window.Title)
	cfg.Resources.Root = envy.Get(EnvResRoot, cfg.Resources.Root)
	cfg.Resources.Archive = envy.Get(EnvResArchive, cfg.Resources.Archive)

	source := ResourceSource(envy.Get(EnvResSource, string(cfg.Resources.Source)))
	switch source {
	case SourceDirectory, SourceArchive, SourceBox:
		cfg.Resources.Source = source
	default:
		return Configuration{}, errors.Errorf("%s: unknown resource source %q", EnvResSource, source)
	}

	level, err := log.ParseLevel(envy.Get(EnvLogLevel, cfg.LogLevel.String()))
	if err != nil {
		return Configuration{}, errors.Wrap(err, EnvLogLevel)
	}
	cfg.LogLevel = level

	ints := []struct {
		key string
		set func(int32)
	}{
		{EnvWindowX, func(v int32) { cfg.Window.X = v }},
		{EnvWindowY, func(v int32) { cfg.Window.Y = v }},
		{EnvScreenWidth, func(v int32) { cfg.Window.Width = v }},
		{EnvScreenHeight, func(v int32) { cfg.Window.Height = v }},
		{EnvFPS, func(v int32) { cfg.Time.FramesPerSecond = int(v) }},
		{EnvFrames, func(v int32) { cfg.Time.Frames = int(v) }},
		{EnvFrameDelay, func(v int32) { cfg.Time.FrameDelay = time.Duration(v) * time.Millisecond }},
	}
	for _, i := range ints {
		raw := envy.Get(i.key, "")
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Configuration{}, errors.Wrapf(err, "%s: not an integer", i.key)
		}
		if v < 0 {
			return Configuration{}, errors.Errorf("%s: must not be negative", i.key)
		}
		i.set(int32(v))
	}

	return cfg, nil
}
