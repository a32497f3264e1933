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

// Package report renders an error and its cause chain as human-readable text.
//
// # Overview
//
// A Report wraps any error value — including the container from the root
// errbox package — and walks its sources via the chain package. Two layouts
// are offered:
//
//   - Render: a multi-line report with the top-level description first,
//     followed by a "Caused by:" list of every underlying error, the root
//     cause last;
//   - Inline: the compact "a: b: c" single-line form.
//
// # Options
//
// Formatting is configured with functional options at construction:
//
//	r := report.New(err, report.WithNumbers())
//	fmt.Println(r.Render())
//
//	// request failed
//	//
//	// Caused by:
//	//     1: db query failed
//	//     2: connection refused
//
// Options are purely cosmetic. They never change the traversal order or the
// set of causes shown, so two Reports over the same error always agree on
// content.
//
// # Pathological chains
//
// An error that reports itself (or an ancestor) as its own source would make
// a naive walk loop forever. Rendering instead stops at chain.Limit hops and
// appends TruncationMarker, turning the bug into a visible, bounded line of
// output.
package report
