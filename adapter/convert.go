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

// Package adapter converts between the concrete errbox container and the
// transport-friendly view types in apis. HTTP and gRPC boundaries build on
// these helpers instead of walking chains themselves.
package adapter

import (
	"errbox.dev/errbox"
	"errbox.dev/errbox/apis"
	"errbox.dev/errbox/chain"
)

// Ensure normalizes an arbitrary error into the errbox container.
//
// Behavior:
//   - nil input => nil output;
//   - an error that already is a *errbox.Box => returned as-is;
//   - anything else => boxed with its dynamic type recorded.
func Ensure(err error) *errbox.Box {
	return errbox.From(err)
}

// ToView snapshots an error and its cause chain into a portable ReportView.
//
// The view is intended for structured logging or wire transports. It carries
// exactly what the error exposes — the top-level description plus the cause
// descriptions in traversal order — with no redaction or filtering; apply
// policy at a higher layer if needed. The chain package's traversal cap
// applies, surfacing pathological chains via the Truncated flag.
func ToView(err error) apis.ReportView {
	if err == nil {
		return apis.ReportView{}
	}
	causes, truncated := chain.Sources(err)
	v := apis.ReportView{
		Message:   err.Error(),
		Truncated: truncated,
	}
	if len(causes) > 0 {
		v.Causes = make([]string, len(causes))
		for i, c := range causes {
			v.Causes[i] = c.Error()
		}
	}
	return v
}
