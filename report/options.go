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

// Option configures a Report at construction time.
//
// All options are purely cosmetic: they change how the cause list is
// prefixed, never the traversal order or the set of causes shown.
type Option func(*options)

// options is the resolved formatting configuration of one Report.
type options struct {
	// numbered switches cause lines from a plain indent to 1-based
	// "N: " prefixes. The top-level line is never numbered.
	numbered bool

	// indent is the string inserted before every cause line (and before
	// the number, when numbering is on).
	indent string
}

// defaultIndent matches the four-space indentation conventionally used for
// "Caused by" blocks.
const defaultIndent = "    "

func defaultOptions() options {
	return options{indent: defaultIndent}
}

// WithNumbers prefixes each cause line with its 1-based position in the
// chain ("1: ", "2: ", ...). The top-level error line stays unnumbered.
func WithNumbers() Option {
	return func(o *options) { o.numbered = true }
}

// WithIndent replaces the default four-space indentation of cause lines.
// An empty string is accepted and yields a flush-left cause list.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}
