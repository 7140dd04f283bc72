// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"

	"github.com/devblok/lessons/utility/kar"
)

// packExtensions are the image formats the lessons load.
var packExtensions = map[string]bool{
	".bmp": true,
	".png": true,
}

// packDirectory validates every image under dir and writes them into
// a new archive at dst, named by their slash separated path relative
// to dir.
func packDirectory(dir, dst, author string, version int64) (int64, error) {
	if _, err := os.Stat(dst); err == nil {
		return 0, errors.Errorf("%s exists, will not overwrite", dst)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return 0, err
	}

	builder, err := kar.NewBuilder(kar.Header{
		Author:      author,
		DateCreated: time.Now().Unix(),
		Version:     version,
	})
	if err != nil {
		return 0, err
	}
	defer builder.Close()

	if err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && abs == absDst {
			return nil
		}
		if !packExtensions[strings.ToLower(filepath.Ext(path))] {
			log.WithField("file", path).Debug("skipping, not an image")
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return errors.Wrapf(err, "%s is not a valid image", path)
		}
		if err := builder.Add(name, bytes.NewReader(data)); err != nil {
			return errors.Wrap(err, name)
		}
		log.WithFields(log.Fields{
			"format": format,
			"width":  cfg.Width,
			"height": cfg.Height,
		}).Info(name)
		return nil
	}); err != nil {
		return 0, err
	}

	if builder.Len() == 0 {
		return 0, errors.Errorf("no images found in %s", dir)
	}

	f, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	written, err := builder.WriteTo(f)
	if err != nil {
		f.Close()
		os.Remove(dst)
		return written, err
	}
	return written, f.Close()
}
