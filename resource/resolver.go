// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package resource locates and reads the images the lessons draw.
//
// The project directory is expected to be laid out like:
//
//	project/
//	  bin/
//	    lesson1
//	  res/
//	    Lesson1/
//	      hello.bmp
package resource

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Conventional directory names
const (
	BinSegment = "bin"
	ResSegment = "res"
)

// BasePathFunc returns the directory of the running executable.
type BasePathFunc func() (string, error)

// Resolver maps lesson sub-directories to absolute paths under the
// resource root. The root is computed once in NewResolver and never
// changes, so a Resolver can be shared freely.
type Resolver struct {
	root string
	sep  string
}

// NewResolver computes the resource root. A non-empty override is used
// as the root after being made absolute. Otherwise the last "bin" segment of the base path
// is replaced by "res", or "res" is appended when there is none.
func NewResolver(base BasePathFunc, override string) (*Resolver, error) {
	sep := string(os.PathSeparator)
	if override != "" {
		root, err := filepath.Abs(override)
		if err != nil {
			return nil, errors.Wrap(err, "resolving resource root")
		}
		return &Resolver{root: withSeparator(root, sep), sep: sep}, nil
	}
	if base == nil {
		return nil, errors.New("no base path available")
	}
	basePath, err := base()
	if err != nil {
		return nil, errors.Wrap(err, "getting resource path")
	}
	if basePath == "" {
		return nil, errors.New("getting resource path: empty base path")
	}
	return &Resolver{root: resourceRoot(basePath, sep), sep: sep}, nil
}

// Root returns the resource root, always ending in a path separator.
func (r *Resolver) Root() string {
	return r.root
}

// Path returns the directory of sub under the resource root, with a
// trailing separator. An empty sub yields the root itself.
func (r *Resolver) Path(sub string) string {
	sub = strings.Trim(sub, "/"+r.sep)
	if sub == "" {
		return r.root
	}
	return r.root + sub + r.sep
}

func resourceRoot(base, sep string) string {
	trimmed := strings.TrimRight(base, sep)
	segments := strings.Split(trimmed, sep)
	for idx := len(segments) - 1; idx >= 0; idx-- {
		if segments[idx] == BinSegment {
			return strings.Join(segments[:idx], sep) + sep + ResSegment + sep
		}
	}
	return trimmed + sep + ResSegment + sep
}

func withSeparator(path, sep string) string {
	if strings.HasSuffix(path, sep) {
		return path
	}
	return path + sep
}
