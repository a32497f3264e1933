/*
   Copyright 2026 The Errbox Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errbox provides a polymorphic error container: a single concrete
// type that can hold an error of any type, erase its static type for storage
// and transport, and later give the original concrete value back via a
// checked downcast.
package errbox

import (
	"reflect"

	"errbox.dev/errbox/apis"
)

// Box is the polymorphic error container.
//
// A Box owns exactly one error value of an erased concrete type for its
// entire lifetime. It carries:
//   - the erased payload itself;
//   - a small dispatch table (describe + source accessors) captured at
//     construction with the payload's static type still in scope;
//   - a type-identity token used by As / Take to decide downcasts.
//
// The dispatch table is equivalent in effect to an interface value's method
// table, but stored as plain data the package controls. That is what makes a
// reliable, checked downcast possible without guessing: the token recorded at
// construction is compared by value equality and never mutated.
//
// A Box is itself an error value: Error forwards to the payload's
// description and Cause / Unwrap forward to the payload's source. Boxes can
// therefore be nested inside other boxes and handed directly to the report
// package. A Box is immutable after construction and safe for concurrent
// reads; moving it between goroutines is safe whenever the payload type
// itself is.
type Box struct {
	payload any
	vt      vtable
}

// vtable is the manually-constructed dispatch table for one Box.
// All three entries are fixed at construction and never change.
type vtable struct {
	// token identifies the dynamic type of the payload. reflect.Type values
	// are canonical per type and comparable, which is exactly the "identity
	// token compared by value equality" a checked downcast needs.
	token reflect.Type

	// describe produces the payload's human-readable description.
	describe func(any) string

	// source returns the payload's underlying cause, or nil for a root cause.
	source func(any) error
}

// Compile-time guarantees: a Box speaks the full errbox capability set.
var (
	_ error            = (*Box)(nil)
	_ apis.CausedError = (*Box)(nil)
	_ apis.TypedError  = (*Box)(nil)
)

// New stores err in a fresh Box, erasing E's static type while retaining its
// dynamic identity. It always succeeds; constructing from an error with no
// source is valid and simply yields a Box whose Cause returns nil.
//
// The describe and source entries of the dispatch table are captured here as
// E-typed closures, so later calls go through the accessor chosen while the
// concrete type was still known — not through a per-call interface probe.
//
// A nil error (nil interface or typed nil pointer) yields a nil *Box, which
// all Box methods tolerate.
func New[E error](err E) *Box {
	if isNil(err) {
		return nil
	}
	return &Box{
		payload: err,
		vt: vtable{
			token:    reflect.TypeOf(err),
			describe: func(p any) string { return p.(E).Error() },
			source:   sourceEntry[E](err),
		},
	}
}

// From adapts an already-erased error into a Box.
//
// Unlike New, From collapses nesting: if err is already a *Box it is returned
// as-is rather than boxed a second time, so round-tripping an error through
// several From calls never stacks containers. (Use New explicitly if a
// box-in-a-box is actually wanted.)
func From(err error) *Box {
	if err == nil {
		return nil
	}
	if b, ok := err.(*Box); ok {
		return b
	}
	return New(err)
}

// Error implements the built-in error interface by forwarding to the
// payload's description. A nil Box describes itself as "<nil>".
func (b *Box) Error() string {
	if b == nil {
		return "<nil>"
	}
	return b.vt.describe(b.payload)
}

// Cause returns the payload's underlying cause, if any.
// It implements apis.CausedError.
func (b *Box) Cause() error {
	if b == nil {
		return nil
	}
	return b.vt.source(b.payload)
}

// Unwrap mirrors Cause under the standard-library convention, enabling
// errors.Is / errors.As to traverse through the Box into the payload's chain.
func (b *Box) Unwrap() error { return b.Cause() }

// TypeName returns the name of the erased concrete type, e.g.
// "*storage.ConnError". It is informational only; downcasts compare the
// identity token, never this string.
func (b *Box) TypeName() string {
	if b == nil || b.vt.token == nil {
		return ""
	}
	return b.vt.token.String()
}

// sourceEntry picks the source accessor for E while the concrete type is
// still in scope. apis.CausedError wins over the standard Unwrap convention;
// types with neither get a constant-nil entry (they are root causes).
//
// The decision is made once, against err's dynamic type; the returned closure
// only ever re-asserts to the interface chosen here.
func sourceEntry[E error](err E) func(any) error {
	switch any(err).(type) {
	case apis.CausedError:
		return func(p any) error { return p.(apis.CausedError).Cause() }
	case interface{ Unwrap() error }:
		return func(p any) error { return p.(interface{ Unwrap() error }).Unwrap() }
	default:
		return func(any) error { return nil }
	}
}

// isNil reports whether err is nil as an interface or a typed nil pointer.
// Boxing either would produce a container whose describe entry panics, so
// New refuses both up front.
func isNil[E error](err E) bool {
	v := any(err)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
