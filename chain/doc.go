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

// Package chain walks the singly-linked cause chain behind an error value.
//
// A chain is formed by repeatedly asking an error for its source — via
// apis.CausedError.Cause when available, via the standard Unwrap() error
// convention otherwise — until a root cause (no source) is reached.
//
// Well-behaved chains are finite and acyclic, but the walker must not trust
// that: a faulty error type can report itself (or an ancestor) as its own
// source. Traversal therefore carries a hard iteration cap (Limit) and
// reports truncation instead of looping. The cap is a visited-count rather
// than a visited-set on purpose — a set would require identity-hashing of
// arbitrary error values, and chains in healthy code are short.
package chain
