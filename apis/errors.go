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

package apis

// CausedError represents an error that exposes its underlying cause.
//
// Together with the built-in error interface (which supplies the
// human-readable description), this is the full capability set the rest of
// errbox operates on: "describe yourself" plus "optionally name the error
// that caused you". Repeatedly following Cause links forms the source chain
// that the reporter renders.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis keeps
// the contract explicit and lets code work with cause chains without reaching
// for errors.As / errors.Is directly. Error types that only implement
// Unwrap() error are still understood everywhere in errbox — Cause is simply
// consulted first.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil. A root cause is
// simply an error whose Cause (and Unwrap) returns nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one, if any.
	// May return nil.
	Cause() error
}

// TypedError represents an error that knows the name of its dynamic type.
//
// The concrete container in the root package implements this so that
// diagnostics and transport adapters can name the erased payload type
// without performing a downcast. The returned string is informational only:
// downcasts are decided by type identity, never by comparing these names.
type TypedError interface {
	error

	// TypeName returns a human-readable name of the concrete error type,
	// e.g. "*pgdriver.ConnError". May be empty for untyped errors.
	TypeName() string
}
