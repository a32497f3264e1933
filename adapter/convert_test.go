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

package adapter

import (
	"errors"
	"testing"

	"errbox.dev/errbox"
)

type wrapErr struct {
	msg   string
	cause error
}

func (e *wrapErr) Error() string { return e.msg }
func (e *wrapErr) Unwrap() error { return e.cause }

type loopErr struct{}

func (e *loopErr) Error() string { return "ouroboros" }
func (e *loopErr) Unwrap() error { return e }

func TestEnsure(t *testing.T) {
	if Ensure(nil) != nil {
		t.Fatal("Ensure(nil) must be nil")
	}

	b := errbox.From(errors.New("x"))
	if Ensure(b) != b {
		t.Fatal("Ensure must pass an existing box through")
	}

	plain := errors.New("plain")
	boxed := Ensure(plain)
	if boxed == nil || boxed.Error() != "plain" {
		t.Fatalf("Ensure(plain) = %v", boxed)
	}
}

func TestToView(t *testing.T) {
	root := errors.New("connection refused")
	mid := &wrapErr{msg: "db query failed", cause: root}
	top := &wrapErr{msg: "request failed", cause: mid}

	v := ToView(top)
	if v.Message != "request failed" {
		t.Fatalf("Message = %q", v.Message)
	}
	if len(v.Causes) != 2 || v.Causes[0] != "db query failed" || v.Causes[1] != "connection refused" {
		t.Fatalf("Causes = %v", v.Causes)
	}
	if v.Truncated {
		t.Fatal("finite chain must not be truncated")
	}
}

func TestToView_RootAndNil(t *testing.T) {
	v := ToView(errors.New("alone"))
	if v.Message != "alone" || v.Causes != nil || v.Truncated {
		t.Fatalf("unexpected view: %+v", v)
	}

	v = ToView(nil)
	if v.Message != "" || v.Causes != nil || v.Truncated {
		t.Fatalf("view of nil must be zero, got %+v", v)
	}
}

func TestToView_CycleTruncates(t *testing.T) {
	v := ToView(&loopErr{})
	if !v.Truncated {
		t.Fatal("cyclic chain must set Truncated")
	}
	if len(v.Causes) == 0 {
		t.Fatal("truncated view must still carry the walked causes")
	}
}

func TestToView_ThroughBox(t *testing.T) {
	root := errors.New("connection refused")
	b := errbox.From(&wrapErr{msg: "db query failed", cause: root})

	v := ToView(b)
	if v.Message != "db query failed" {
		t.Fatalf("Message = %q", v.Message)
	}
	if len(v.Causes) != 1 || v.Causes[0] != "connection refused" {
		t.Fatalf("Causes = %v", v.Causes)
	}
}
