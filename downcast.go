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

package errbox

import "reflect"

// As recovers the original concrete value from b if, and only if, T is
// exactly the erased dynamic type recorded when the Box was constructed.
//
// On a match it returns the stored value and true; the Box remains valid and
// can keep being used or downcast again. On a mismatch — including T being an
// interface type, a nil Box, or an unrelated concrete type — it returns the
// zero value and false. It never panics: type confusion is ruled out by the
// identity comparison, not by caller discipline.
func As[T error](b *Box) (T, bool) {
	var zero T
	if b == nil {
		return zero, false
	}
	if b.vt.token != typeFor[T]() {
		return zero, false
	}
	v, ok := b.payload.(T)
	if !ok {
		// Token matched but the assertion did not; only possible if the
		// table was corrupted, which the package never does.
		return zero, false
	}
	return v, true
}

// Take is the consuming variant of As: on a match the caller takes over the
// original value and should stop using the Box as the carrier of it.
//
// On a mismatch nothing is lost — the Box is untouched and still renders,
// unwraps and downcasts exactly as before, so the caller can try an
// alternate handling path with the original error intact.
func Take[T error](b *Box) (T, bool) {
	return As[T](b)
}

// typeFor resolves T's identity token without needing a value of T.
// The pointer round-trip makes this work for any T, including interface
// types (which then simply never match a concrete payload token).
func typeFor[T error]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
