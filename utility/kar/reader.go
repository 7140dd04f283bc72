// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/pierrec/lz4"
)

// Open opens the kar archived from r. It will also check
// if the file is actually a kar archive, will return an error
// when file incorrect.
func Open(r io.ReaderAt) (*Archive, error) {
	prefix := make([]byte, MagicLength)
	if num, err := r.ReadAt(prefix, 0); num < MagicLength {
		if err == nil || err == io.EOF {
			return nil, ErrFileFormat
		}
		return nil, err
	} else if !bytes.Equal(prefix, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); num < HeaderSizeNumberLength {
		if err == nil || err == io.EOF {
			return nil, ErrFileFormat
		}
		return nil, err
	}

	headerSize, err := binaryToint64(headerSizeBytes)
	if err != nil || headerSize <= 0 || headerSize > maxHeaderSize {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); int64(num) < headerSize {
		if err == nil || err == io.EOF {
			return nil, ErrFileFormat
		}
		return nil, err
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	index := make(map[string]IndexEntry, len(header.Index))
	for _, e := range header.Index {
		if e.Offset < 0 || e.CompressedSize < 0 || e.Size < 0 {
			return nil, ErrFileFormat
		}
		index[e.Name] = e
	}

	return &Archive{
		reader:    r,
		header:    header,
		index:     index,
		dataStart: MagicLength + HeaderSizeNumberLength + headerSize,
	}, nil
}

// Archive provides concurrent io for a kar file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader    io.ReaderAt
	header    Header
	index     map[string]IndexEntry
	dataStart int64
}

// Header returns the archive header, index included.
func (a *Archive) Header() Header {
	return a.header
}

// Names returns the names of all files in the order they were added.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.header.Index))
	for _, e := range a.header.Index {
		names = append(names, e.Name)
	}
	return names
}

// ReadAll returns the entire contents of a file with a given name
func (a *Archive) ReadAll(name string) ([]byte, error) {
	r, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	// one byte past the recorded size is enough to spot a lying index
	data, err := ioutil.ReadAll(io.LimitReader(r, r.Size()+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != r.Size() {
		return nil, ErrFileFormat
	}
	return data, nil
}

// Open returns a Reader for a file in the Archive
func (a *Archive) Open(name string) (*Reader, error) {
	e, ok := a.index[name]
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, a.dataStart+e.Offset, e.CompressedSize)
	return &Reader{
		entry:  e,
		reader: lz4.NewReader(section),
	}, nil
}

// Reader is a reader for a single file in an Archive.
// Abstracts away the location that needs to be known.
type Reader struct {
	entry  IndexEntry
	reader io.Reader
}

// Read reads already decompressed data
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.reader.Read(p)
}

// Size returns the decompressed size of the file.
func (r *Reader) Size() int64 {
	return r.entry.Size
}
