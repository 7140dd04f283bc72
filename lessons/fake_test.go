// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package lessons_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/devblok/lessons/gfx"
)

var errFake = errors.New("fake failure")

type copyCall struct {
	texture string
	clip    *gfx.Rect
	dst     *gfx.Rect
}

// fakeDevice records every acquisition and release in log. Image data
// is the resource name, which makes handles easy to tell apart.
type fakeDevice struct {
	log      []string
	fail     map[string]error
	sizes    map[string][2]int32
	basePath string

	events    [][]gfx.Event
	batch     int
	endless   bool
	exhausted bool

	copies   []copyCall
	presents int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		fail:     make(map[string]error),
		sizes:    make(map[string][2]int32),
		basePath: "/opt/lessons/bin/",
	}
}

func (d *fakeDevice) record(entry string) {
	d.log = append(d.log, entry)
}

type fakeHandle struct {
	id       string
	dev      *fakeDevice
	released int
}

func (h *fakeHandle) Release() {
	h.released++
	h.dev.record("release:" + h.id)
}

type fakeTexture struct {
	fakeHandle
	w, h int32
}

func (t *fakeTexture) Size() (int32, int32, error) {
	return t.w, t.h, nil
}

type fakeRenderer struct {
	fakeHandle
}

func (r *fakeRenderer) Clear() error {
	return r.dev.fail["clear"]
}

func (r *fakeRenderer) Copy(t gfx.Texture, clip, dst *gfx.Rect) error {
	var name string
	if ft, ok := t.(*fakeTexture); ok {
		name = ft.id
	}
	r.dev.copies = append(r.dev.copies, copyCall{texture: name, clip: clip, dst: dst})
	return nil
}

func (r *fakeRenderer) Present() {
	r.dev.presents++
}

func (d *fakeDevice) Init(sub gfx.Subsystem) error {
	key := "init:video"
	if sub == gfx.SubsystemPNG {
		key = "init:png"
	}
	if err := d.fail[key]; err != nil {
		return err
	}
	d.record(key)
	return nil
}

func (d *fakeDevice) Quit() {
	d.record("quit")
}

func (d *fakeDevice) BasePath() (string, error) {
	if err := d.fail["basepath"]; err != nil {
		return "", err
	}
	return d.basePath, nil
}

func (d *fakeDevice) acquire(key, id string) (*fakeHandle, error) {
	if err := d.fail[key]; err != nil {
		return nil, err
	}
	d.record("acquire:" + id)
	return &fakeHandle{id: id, dev: d}, nil
}

func (d *fakeDevice) CreateWindow(gfx.WindowConfig) (gfx.Window, error) {
	h, err := d.acquire("window", "window")
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (d *fakeDevice) CreateRenderer(gfx.Window) (gfx.Renderer, error) {
	h, err := d.acquire("renderer", "renderer")
	if err != nil {
		return nil, err
	}
	return &fakeRenderer{*h}, nil
}

func (d *fakeDevice) LoadBMP(data []byte) (gfx.Surface, error) {
	name := string(data)
	h, err := d.acquire("bmp:"+name, "surface:"+name)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (d *fakeDevice) CreateTextureFromSurface(r gfx.Renderer, s gfx.Surface) (gfx.Texture, error) {
	name := s.(*fakeHandle).id[len("surface:"):]
	return d.texture("upload:"+name, name)
}

func (d *fakeDevice) LoadTexture(r gfx.Renderer, data []byte) (gfx.Texture, error) {
	name := string(data)
	return d.texture("png:"+name, name)
}

func (d *fakeDevice) texture(key, name string) (gfx.Texture, error) {
	h, err := d.acquire(key, "texture:"+name)
	if err != nil {
		return nil, err
	}
	size, ok := d.sizes[name]
	if !ok {
		size = [2]int32{100, 100}
	}
	return &fakeTexture{fakeHandle: *h, w: size[0], h: size[1]}, nil
}

// PollEvent hands out one scripted batch per frame. Once the script
// runs out it reports a quit, unless the device is endless.
func (d *fakeDevice) PollEvent() gfx.Event {
	if d.batch >= len(d.events) {
		if d.endless {
			return nil
		}
		d.exhausted = true
		return gfx.QuitEvent{}
	}
	if len(d.events[d.batch]) == 0 {
		d.batch++
		return nil
	}
	event := d.events[d.batch][0]
	d.events[d.batch] = d.events[d.batch][1:]
	return event
}

// mapSource serves each resource's own name as its contents.
type mapSource struct {
	files  map[string]bool
	closed int
}

func newMapSource(names ...string) *mapSource {
	s := &mapSource{files: make(map[string]bool)}
	for _, name := range names {
		s.files[name] = true
	}
	return s
}

func (s *mapSource) ReadFile(name string) ([]byte, error) {
	if !s.files[name] {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrNotExist)
	}
	return []byte(name), nil
}

func (s *mapSource) Close() error {
	s.closed++
	return nil
}
