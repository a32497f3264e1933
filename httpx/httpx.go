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

// Package httpx writes errbox cause chains as HTTP error responses.
package httpx

import (
	"encoding/json"
	"net/http"

	"errbox.dev/errbox/adapter"
)

// Writer is a thin adapter that turns any error into a JSON HTTP response
// carrying the apis.ReportView shape: the top-level message plus the cause
// descriptions in traversal order.
type Writer struct {
	// Status is the HTTP status to respond with. Zero means 500. This layer
	// deliberately has no opinion on classifying errors into statuses;
	// callers that need per-error statuses construct the Writer per call.
	Status int
}

// Write serializes err's chain view and writes it to rw.
//
// No automatic redaction or filtering is performed: whatever the error
// descriptions contain is exposed as-is. Higher-level handlers should apply
// policy if needed. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	status := w.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	view := adapter.ToView(err)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
