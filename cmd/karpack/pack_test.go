// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/image/bmp"

	"github.com/devblok/lessons/resource"
)

func writeImage(c *qt.C, path string, encode func(*bytes.Buffer, image.Image) error) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	c.Assert(encode(&buf, img), qt.IsNil)
	c.Assert(os.MkdirAll(filepath.Dir(path), 0755), qt.IsNil)
	c.Assert(os.WriteFile(path, buf.Bytes(), 0644), qt.IsNil)
}

func encodeBMP(buf *bytes.Buffer, img image.Image) error { return bmp.Encode(buf, img) }
func encodePNG(buf *bytes.Buffer, img image.Image) error { return png.Encode(buf, img) }

func TestPackDirectory(t *testing.T) {
	c := qt.New(t)
	res := t.TempDir()
	writeImage(c, filepath.Join(res, "Lesson1", "hello.bmp"), encodeBMP)
	writeImage(c, filepath.Join(res, "Lesson4", "image.png"), encodePNG)
	c.Assert(os.WriteFile(filepath.Join(res, "README.md"), []byte("notes"), 0644), qt.IsNil)

	dst := filepath.Join(res, "res.kar")
	written, err := packDirectory(res, dst, "devblok", 2)
	c.Assert(err, qt.IsNil)
	c.Assert(written > 0, qt.Equals, true)

	ar, err := resource.OpenArchive(dst)
	c.Assert(err, qt.IsNil)
	defer ar.Close()
	c.Assert(ar.Names(), qt.DeepEquals, []string{"Lesson1/hello.bmp", "Lesson4/image.png"})

	data, err := ar.ReadFile("Lesson1/hello.bmp")
	c.Assert(err, qt.IsNil)
	img, err := bmp.Decode(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)
	c.Assert(img.Bounds(), qt.Equals, image.Rect(0, 0, 4, 2))

	// refuses to overwrite the archive it just wrote
	_, err = packDirectory(res, dst, "devblok", 3)
	c.Assert(err, qt.ErrorMatches, ".*will not overwrite")
}

func TestPackDirectoryRejectsBrokenImages(t *testing.T) {
	c := qt.New(t)
	res := t.TempDir()
	c.Assert(os.MkdirAll(filepath.Join(res, "Lesson1"), 0755), qt.IsNil)
	c.Assert(os.WriteFile(filepath.Join(res, "Lesson1", "hello.bmp"), []byte("BMnope"), 0644), qt.IsNil)

	dst := filepath.Join(t.TempDir(), "res.kar")
	_, err := packDirectory(res, dst, "devblok", 1)
	c.Assert(err, qt.ErrorMatches, ".*is not a valid image.*")
	_, statErr := os.Stat(dst)
	c.Assert(os.IsNotExist(statErr), qt.Equals, true)
}

func TestPackDirectoryEmpty(t *testing.T) {
	c := qt.New(t)
	_, err := packDirectory(t.TempDir(), filepath.Join(t.TempDir(), "res.kar"), "devblok", 1)
	c.Assert(err, qt.ErrorMatches, "no images found in .*")
}
