// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package lessons

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/lessons/core"
	"github.com/devblok/lessons/gfx"
)

// EnvFile is the optional dotenv file read from the working directory.
const EnvFile = ".env"

// Main runs l on dev and exits the process with its status. With the
// SDL device it has to be called from the main OS thread.
func Main(l Lesson, dev gfx.Device) {
	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	cfg, err := core.LoadConfiguration(EnvFile)
	if err != nil {
		logger.WithError(err).Error("configuration error")
		os.Exit(ExitFailure)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runner := Runner{
		Device: dev,
		Config: cfg,
		Log:    logger,
	}
	code := runner.Run(ctx, l)
	stop()
	os.Exit(code)
}
