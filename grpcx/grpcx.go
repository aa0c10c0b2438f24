/*
   Copyright 2026 The BLKit Authors

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

package grpcx

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"blkit.dev/blerrors"
	"blkit.dev/blerrors/apis"
	"blkit.dev/blerrors/kind"
)

// Domain is the errdetails.ErrorInfo domain under which all device errors
// produced by this package are reported.
const Domain = "broadlink.device"

// MetaFn extracts extra metadata from context and the classified error.
// The returned map is merged into the ErrorInfo metadata next to the errno
// (device IDs, request IDs, and similar). It can return nil if nothing is
// available.
type MetaFn func(ctx context.Context, e *blerrors.Error) map[string]string

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *blerrors.Error and *blerrors.MultipleErrors into gRPC errors carrying
// errdetails.ErrorInfo details.
//
// The provided apis.Mapper is used to map the error kind/errno into the
// transport status code. A MultipleErrors aggregate maps to codes.Internal
// (there is no single classified failure to resolve) and carries one
// ErrorInfo detail per classified member.
//
// The optional MetaFn can be used to extract additional metadata from
// context and the error to populate the ErrorInfo. If nil, only the errno
// is attached.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *blerrors.Error) map[string]string { return nil }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch e := err.(type) {
		case *blerrors.Error:
			return nil, statusFromError(ctx, m, e, metaFn)
		case *blerrors.MultipleErrors:
			return nil, statusFromAggregate(ctx, m, e, metaFn)
		default:
			// Not ours — return as-is.
			return nil, err
		}
	}
}

// statusFromError converts a single classified error into a gRPC error with
// an attached ErrorInfo detail.
func statusFromError(ctx context.Context, m apis.Mapper, e *blerrors.Error, metaFn MetaFn) error {
	st := m.Status(e.Kind, e.Errno)
	base := gstatus.New(st.GRPC, e.Error())

	info := errorInfo(e, metaFn(ctx, e))

	// Try to attach the detail. If it fails — return base.
	if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}
	return base.Err()
}

// statusFromAggregate converts a MultipleErrors into a single gRPC error.
// Each classified member contributes its own ErrorInfo detail, preserving
// the original sequence order.
func statusFromAggregate(ctx context.Context, m apis.Mapper, agg *blerrors.MultipleErrors, metaFn MetaFn) error {
	base := gstatus.New(m.Status(kind.Empty, 0).GRPC, agg.Error())

	var details []protoadapt.MessageV1
	for _, member := range agg.Errors() {
		e, ok := member.(*blerrors.Error)
		if !ok {
			continue
		}
		details = append(details, errorInfo(e, metaFn(ctx, e)))
	}
	if len(details) > 0 {
		if with, err := base.WithDetails(details...); err == nil {
			return with.Err()
		}
	}
	return base.Err()
}

// errorInfo builds the ErrorInfo detail for one classified error.
// The Reason is the kind in the UPPER_SNAKE_CASE convention used by
// google.rpc; the errno travels in the metadata.
func errorInfo(e *blerrors.Error, meta map[string]string) *errdetails.ErrorInfo {
	md := make(map[string]string, len(meta)+1)
	for k, v := range meta {
		md[k] = v
	}
	if e.Errno != 0 {
		md["errno"] = strconv.Itoa(e.Errno)
	}
	return &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(string(e.Kind)),
		Domain:   Domain,
		Metadata: md,
	}
}

// ExtractErrorInfo pulls the first errdetails.ErrorInfo out of a gRPC error,
// if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
