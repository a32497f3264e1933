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

import "errbox.dev/errbox/apis"

// Limit is the maximum number of source hops any walk will take.
//
// Real chains are a handful of links deep; 1000 leaves generous headroom
// while converting an accidental cycle into a bounded, reported condition
// rather than a hang. The cap is deliberately not configurable — it is a
// safety net, not a formatting knob.
const Limit = 1000

// Next returns err's direct source, or nil if err is a root cause.
//
// apis.CausedError.Cause is consulted first, then the standard
// Unwrap() error convention. Errors that wrap multiple causes at once
// (Unwrap() []error, as produced by errors.Join) do not form a linear
// chain and are treated as roots here.
func Next(err error) error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(apis.CausedError); ok {
		return ce.Cause()
	}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}

// Walk collects err and all of its transitive sources in traversal order:
// err first, the root cause last.
//
// The walk stops after Limit hops; the second result reports whether the
// chain was cut short. A nil err yields (nil, false).
func Walk(err error) ([]error, bool) {
	if err == nil {
		return nil, false
	}
	out := make([]error, 0, 8)
	out = append(out, err)
	cur := err
	for hops := 0; hops < Limit; hops++ {
		next := Next(cur)
		if next == nil {
			return out, false
		}
		out = append(out, next)
		cur = next
	}
	// Still had a source after Limit hops: cycle or pathological depth.
	return out, true
}

// Sources is Walk without the leading err itself: only the causes, in
// traversal order (direct cause first, root cause last).
func Sources(err error) ([]error, bool) {
	all, truncated := Walk(err)
	if len(all) <= 1 {
		return nil, truncated
	}
	return all[1:], truncated
}

// Root returns the last error in the chain — the one with no source of its
// own. For a truncated (cyclic) chain it returns the error at the cap, which
// is the best available answer. Root of nil is nil.
func Root(err error) error {
	all, _ := Walk(err)
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// Depth returns the number of causes below err (0 for a root cause).
// Truncated chains report Limit.
func Depth(err error) int {
	srcs, _ := Sources(err)
	return len(srcs)
}
