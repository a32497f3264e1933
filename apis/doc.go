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

// Package apis defines the public Go-level contracts for errbox.
//
// The goal of this package is to provide *small, composable* interfaces that
// other errbox packages (and application code) can depend on without
// importing the concrete container implementation.
//
// An "error value" in errbox terms is anything that can describe itself
// (the built-in error interface) and optionally expose the error that caused
// it (CausedError, or the standard Unwrap convention). The chain, report,
// httpx and grpcx packages all target this surface; the concrete container
// in the root package implements it.
//
// This package must remain lightweight: it contains only interfaces and very
// small view types, and no heavy dependencies.
package apis
