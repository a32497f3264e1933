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

package report

import (
	"strconv"
	"strings"

	"errbox.dev/errbox/chain"
	"errbox.dev/errbox/report/internal/linewriter"
)

// causeHeader opens the cause list in multi-line reports. Errors without a
// source render as a bare description and never emit it.
const causeHeader = "Caused by:"

// TruncationMarker is appended (as a cause-list entry in Render, as a final
// segment in Inline) when the chain walk hits chain.Limit without reaching
// a root cause.
const TruncationMarker = "... (cause chain truncated)"

// Report is a transient, read-only view over one error value and its cause
// chain. It borrows the target for the duration of formatting and carries
// only cosmetic configuration — no hidden state, so every rendering method
// is idempotent: repeated calls yield byte-identical output.
//
// Concurrent use of one Report (or of many Reports over the same error) is
// safe as long as the target's own Error and Cause methods are, since
// rendering never mutates anything.
type Report struct {
	target error
	opts   options
}

// New wraps target for reporting. It never fails; a nil target yields a
// Report that renders to the empty string.
func New(target error, opts ...Option) *Report {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Report{target: target, opts: o}
}

// Render produces the multi-line report:
//
//	<top-level description>
//
//	Caused by:
//	    <direct cause>
//	    <next cause>
//	    ...
//
// Causes appear in traversal order — each line explains the one before it,
// with the root cause last. With WithNumbers the cause lines are prefixed
// "1: ", "2: ", and so on. An error with no source renders as a single line
// containing only its own description.
//
// A chain that exceeds chain.Limit hops (a cycle, in practice) is cut off
// and the report ends with TruncationMarker instead of hanging.
func (r *Report) Render() string {
	if r == nil || r.target == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(r.target.Error())

	causes, truncated := chain.Sources(r.target)
	if len(causes) == 0 {
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(causeHeader)
	for i, c := range causes {
		b.WriteByte('\n')
		head, cont := r.prefixes(i)
		linewriter.Write(&b, c.Error(), head, cont)
	}
	if truncated {
		b.WriteByte('\n')
		b.WriteString(r.opts.indent)
		b.WriteString(TruncationMarker)
	}
	return b.String()
}

// Inline produces the compact single-line form, with descriptions joined by
// ": " in traversal order:
//
//	<top-level description>: <direct cause>: ...: <root cause>
//
// The same truncation rule applies as in Render.
func (r *Report) Inline() string {
	if r == nil || r.target == nil {
		return ""
	}
	all, truncated := chain.Walk(r.target)
	parts := make([]string, 0, len(all)+1)
	for _, e := range all {
		parts = append(parts, e.Error())
	}
	if truncated {
		parts = append(parts, TruncationMarker)
	}
	return strings.Join(parts, ": ")
}

// String implements fmt.Stringer as an alias for Render, so a Report can be
// printed directly.
func (r *Report) String() string { return r.Render() }

// prefixes returns the first-line and continuation prefixes for the i-th
// cause (0-based). Numbered continuation lines are padded to the width of
// the number prefix so multi-line causes stay aligned under their entry.
func (r *Report) prefixes(i int) (head, cont string) {
	if !r.opts.numbered {
		return r.opts.indent, r.opts.indent
	}
	head = r.opts.indent + strconv.Itoa(i+1) + ": "
	cont = strings.Repeat(" ", len(head))
	return head, cont
}
