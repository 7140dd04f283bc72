// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "reflect"

// Release releases every handle in argument order. Nil interfaces and
// typed nil pointers are skipped, so it can be handed whatever a
// failed acquisition sequence managed to produce.
func Release(handles ...Releasable) {
	for _, h := range handles {
		if isNil(h) {
			continue
		}
		h.Release()
	}
}

func isNil(h Releasable) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Scope collects handles as they are acquired and releases them
// together. Registering a handle right after acquiring it replaces
// manual teardown on every early exit path.
type Scope struct {
	handles []Releasable
}

// Add registers h with the scope and returns it. Nil handles are ignored.
func (s *Scope) Add(h Releasable) Releasable {
	if isNil(h) {
		return h
	}
	s.handles = append(s.handles, h)
	return h
}

// Len returns the number of handles waiting to be released.
func (s *Scope) Len() int {
	return len(s.handles)
}

// Release releases registered handles in reverse registration order
// and empties the scope, it can be reused afterwards.
func (s *Scope) Release() {
	for idx := len(s.handles) - 1; idx >= 0; idx-- {
		s.handles[idx].Release()
		s.handles[idx] = nil
	}
	s.handles = s.handles[:0]
}
