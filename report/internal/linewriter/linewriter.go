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

// Package linewriter prefixes multi-line text for the report renderer.
//
// Cause descriptions are usually a single line, but nothing forbids an error
// from describing itself across several. The renderer hands each description
// here so that the first line gets the list prefix (indent, or indent plus a
// number) and every following line gets a continuation prefix that keeps the
// block visually attached to its entry.
package linewriter

import "strings"

// Write appends text to b, prefixing the first line with head and every
// subsequent line with cont.
//
// Interior empty lines are kept but never indented, so rendered reports do
// not carry trailing whitespace on blank lines.
func Write(b *strings.Builder, text, head, cont string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		if i == 0 {
			b.WriteString(head)
		} else {
			b.WriteString(cont)
		}
		b.WriteString(line)
	}
}
