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

// Package main demonstrates usage of the errbox container and reporter.
package main

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"

	"errbox.dev/errbox"
	"errbox.dev/errbox/grpcx"
	"errbox.dev/errbox/report"
)

type queryError struct {
	query string
	cause error
}

func (e *queryError) Error() string { return "query failed: " + e.query }
func (e *queryError) Unwrap() error { return e.cause }

func main() {
	// Build a three-link chain and erase the concrete type.
	root := errors.New("connection refused")
	qerr := &queryError{query: "SELECT 1", cause: root}
	box := errbox.New(qerr)

	// The box still describes and unwraps like the original.
	fmt.Println(box.Error(), "| type:", box.TypeName())

	// Checked downcast back to the concrete type.
	if q, ok := errbox.As[*queryError](box); ok {
		fmt.Println("recovered query:", q.query)
	}

	// Multi-line report, numbered causes.
	fmt.Println(report.New(box, report.WithNumbers()).Render())

	// Compact single-line form.
	fmt.Println(report.New(box).Inline())

	// The same chain on a gRPC status.
	st := grpcx.ToStatus(codes.Unavailable, box)
	if causes, ok := grpcx.Causes(st.Err()); ok {
		fmt.Println("wire causes:", causes)
	}
}
