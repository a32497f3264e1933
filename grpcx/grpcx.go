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

// Package grpcx carries errbox cause chains across gRPC boundaries.
//
// The chain travels as a google.rpc.DebugInfo detail on the status: each
// cause description becomes one stack entry, in traversal order. Clients
// that know about errbox can recover the chain with Causes; everyone else
// still sees a plain status with the top-level message.
package grpcx

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"errbox.dev/errbox/adapter"
	"errbox.dev/errbox/report"
)

// chainDetail labels the DebugInfo payload so clients can tell it apart from
// other DebugInfo uses (actual stack traces, vendor diagnostics).
const chainDetail = "errbox cause chain"

// ToStatus converts err into a gRPC status with the given code.
//
// The status message is the top-level description; the cause chain (if any)
// is attached as a DebugInfo detail. If attaching details fails the plain
// status is returned — the error itself is never lost. A nil err yields nil.
func ToStatus(c codes.Code, err error) *gstatus.Status {
	if err == nil {
		return nil
	}
	v := adapter.ToView(err)
	st := gstatus.New(c, v.Message)

	entries := v.Causes
	if v.Truncated {
		entries = append(entries, report.TruncationMarker)
	}
	if len(entries) == 0 {
		return st
	}

	info := &errdetails.DebugInfo{
		StackEntries: entries,
		Detail:       chainDetail,
	}
	if with, derr := st.WithDetails(info); derr == nil {
		return with
	}
	return st
}

// Causes pulls the cause chain back out of a gRPC error produced by
// ToStatus. The entries come back in traversal order; a trailing
// report.TruncationMarker entry means the server-side chain was cut at the
// traversal cap. Returns (nil, false) when err carries no errbox chain.
func Causes(err error) ([]string, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.DebugInfo); ok && info.GetDetail() == chainDetail {
			return info.GetStackEntries(), true
		}
	}
	return nil, false
}

// UnaryServerInterceptor returns an interceptor that converts handler errors
// into rich statuses via ToStatus with the given code.
//
// Errors that already carry a gRPC status (anything implementing
// GRPCStatus) pass through untouched, so handlers keep full control when
// they want it.
func UnaryServerInterceptor(c codes.Code) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
			// Already a status error — the handler decided; keep it.
			return nil, err
		}
		return nil, ToStatus(c, err).Err()
	}
}

// DebugJSON renders the DebugInfo form of err's cause chain as protobuf
// JSON. Useful for structured logs that should match what ToStatus puts on
// the wire.
func DebugJSON(err error) ([]byte, error) {
	v := adapter.ToView(err)
	entries := v.Causes
	if v.Truncated {
		entries = append(entries, report.TruncationMarker)
	}
	info := &errdetails.DebugInfo{
		StackEntries: entries,
		Detail:       v.Message,
	}
	// protojson (not encoding/json) so field names and empty-field handling
	// match the wire representation of the detail.
	return protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}.Marshal(info)
}
