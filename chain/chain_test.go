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

package chain

import (
	"errors"
	"testing"
)

// linkErr chains via the standard Unwrap convention.
type linkErr struct {
	msg   string
	cause error
}

func (e *linkErr) Error() string { return e.msg }
func (e *linkErr) Unwrap() error { return e.cause }

// causedErr chains via the explicit Cause convention.
type causedErr struct {
	msg   string
	cause error
}

func (e *causedErr) Error() string { return e.msg }
func (e *causedErr) Cause() error  { return e.cause }

// selfErr maliciously reports itself as its own source.
type selfErr struct{}

func (e *selfErr) Error() string { return "ouroboros" }
func (e *selfErr) Unwrap() error { return e }

func TestNext(t *testing.T) {
	root := errors.New("root")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no source", root, nil},
		{"unwrap convention", &linkErr{msg: "a", cause: root}, root},
		{"cause convention", &causedErr{msg: "a", cause: root}, root},
		{"joined errors are not a linear chain", errors.Join(root, errors.New("other")), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.err); got != tt.want {
				t.Fatalf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalk_Order(t *testing.T) {
	c := errors.New("connection refused")
	b := &causedErr{msg: "db query failed", cause: c}
	a := &linkErr{msg: "request failed", cause: b}

	got, truncated := Walk(a)
	if truncated {
		t.Fatal("finite chain must not be truncated")
	}
	want := []error{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("Walk returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWalk_Nil(t *testing.T) {
	got, truncated := Walk(nil)
	if got != nil || truncated {
		t.Fatal("Walk(nil) must be empty and untruncated")
	}
}

func TestSources_ExcludesHead(t *testing.T) {
	root := errors.New("root")
	a := &linkErr{msg: "a", cause: root}

	srcs, truncated := Sources(a)
	if truncated {
		t.Fatal("finite chain must not be truncated")
	}
	if len(srcs) != 1 || srcs[0] != root {
		t.Fatalf("Sources = %v, want just the root", srcs)
	}

	srcs, _ = Sources(root)
	if srcs != nil {
		t.Fatalf("Sources of a root cause = %v, want nil", srcs)
	}
}

func TestRootAndDepth(t *testing.T) {
	c := errors.New("c")
	b := &linkErr{msg: "b", cause: c}
	a := &linkErr{msg: "a", cause: b}

	if Root(a) != c {
		t.Fatalf("Root = %v, want %v", Root(a), c)
	}
	if Root(nil) != nil {
		t.Fatal("Root(nil) must be nil")
	}
	if d := Depth(a); d != 2 {
		t.Fatalf("Depth = %d, want 2", d)
	}
	if d := Depth(c); d != 0 {
		t.Fatalf("Depth of a root = %d, want 0", d)
	}
}

func TestWalk_CycleTruncates(t *testing.T) {
	got, truncated := Walk(&selfErr{})
	if !truncated {
		t.Fatal("cyclic chain must report truncation")
	}
	if len(got) != Limit+1 {
		t.Fatalf("Walk of a cycle returned %d entries, want %d", len(got), Limit+1)
	}
}
