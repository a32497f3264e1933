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

// ReportView is a minimal, serializable snapshot of an error and its cause
// chain.
//
// This is *not* the live error value — it is the shape we are comfortable
// exposing over the wire or handing to a logger. Keeping it here (in apis)
// allows both the HTTP and gRPC adapters to share the same struct without
// importing the concrete container or reporter.
type ReportView struct {
	// Message is the description of the top-level error.
	Message string `json:"message"`

	// Causes lists the descriptions of the underlying errors, in traversal
	// order: the direct cause first, the root cause last. Empty for errors
	// with no source.
	Causes []string `json:"causes,omitempty"`

	// Truncated reports that the cause chain exceeded the traversal cap and
	// was cut short. A well-behaved (finite, acyclic) chain never sets this.
	Truncated bool `json:"truncated,omitempty"`
}
