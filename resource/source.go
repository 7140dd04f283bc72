// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resource

import (
	"os"
	"path"
	"path/filepath"

	"github.com/gobuffalo/packr"
	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"

	"github.com/devblok/lessons/utility/kar"
)

// Source reads resources by slash separated name, like "Lesson1/hello.bmp".
type Source interface {
	ReadFile(name string) ([]byte, error)
	Close() error
}

// NewDir creates a Source reading plain files under the resolver's root.
func NewDir(r *Resolver) *Dir {
	return &Dir{resolver: r}
}

// Dir reads resources straight from the file system.
type Dir struct {
	resolver *Resolver
}

// ReadFile reads the named file.
func (d *Dir) ReadFile(name string) ([]byte, error) {
	sub, file := path.Split(name)
	return os.ReadFile(d.resolver.Path(filepath.FromSlash(sub)) + file)
}

// Close does nothing, the directory needs no teardown.
func (d *Dir) Close() error {
	return nil
}

// OpenArchive memory maps the kar archive at file and reads its index.
func OpenArchive(file string) (*Archive, error) {
	r, err := mmap.Open(file)
	if err != nil {
		return nil, err
	}
	ar, err := kar.Open(r)
	if err != nil {
		r.Close()
		return nil, errors.Wrap(err, file)
	}
	return &Archive{mapped: r, archive: ar}, nil
}

// Archive reads resources out of a memory mapped kar archive.
type Archive struct {
	mapped  *mmap.ReaderAt
	archive *kar.Archive
}

// ReadFile decompresses the named entry.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	data, err := a.archive.ReadAll(name)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return data, nil
}

// Names lists the archive entries.
func (a *Archive) Names() []string {
	return a.archive.Names()
}

// Close unmaps the archive.
func (a *Archive) Close() error {
	return a.mapped.Close()
}

// NewBox wraps a packr box.
func NewBox(b packr.Box) *Box {
	return &Box{box: b}
}

// EmbeddedBox returns the project's res directory as a packr box,
// embedded into the binary when built with the packr tool.
func EmbeddedBox() *Box {
	return NewBox(packr.NewBox("../res"))
}

// Box reads resources from a packr box.
type Box struct {
	box packr.Box
}

// ReadFile finds the named file in the box.
func (b *Box) ReadFile(name string) ([]byte, error) {
	data, err := b.box.Find(name)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return data, nil
}

// Close does nothing, boxes live as long as the process.
func (b *Box) Close() error {
	return nil
}
