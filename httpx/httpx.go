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

package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"blkit.dev/blerrors"
	"blkit.dev/blerrors/apis"
)

// Domain is the errdetails.ErrorInfo domain under which all device errors
// produced by this package are reported.
const Domain = "broadlink.device"

// Meta carries extra context that the HTTP layer can add on top of a
// classified error. All fields are optional and typically come from request
// context, headers, or bridge-level logic.
type Meta struct {
	// RetryAfterSeconds, when positive, is emitted as a Retry-After header.
	// Bridges use it to hint when an offline device is worth polling again.
	RetryAfterSeconds int32

	// Metadata is merged into the ErrorInfo detail next to the errno
	// (device IDs, request IDs, and similar).
	Metadata map[string]string
}

// Writer is a thin adapter that knows how to turn a classified device error
// into an HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes a google.rpc.Status body with an embedded ErrorInfo
// detail and writes it to the response writer. The HTTP status is resolved
// via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *blerrors.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Kind, err.Errno)

	md := make(map[string]string, len(meta.Metadata)+1)
	for k, v := range meta.Metadata {
		md[k] = v
	}
	if err.Errno != 0 {
		md["errno"] = strconv.Itoa(err.Errno)
	}
	info := &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(string(err.Kind)),
		Domain:   Domain,
		Metadata: md,
	}

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: err.Error(),
	}
	// A detail that fails to pack is dropped rather than failing the write.
	if detail, aerr := anypb.New(info); aerr == nil {
		body.Details = append(body.Details, detail)
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of the Any-packed detail, field names (json_name),
	// and well-known types.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}
