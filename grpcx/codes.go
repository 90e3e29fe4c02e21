/*
   Copyright 2025 The Stackerr Authors

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
	"google.golang.org/grpc/codes"

	"stackerr.dev/stackerr/code"
)

// grpcByCode projects classification codes onto gRPC status codes, following
// the conventional HTTP↔gRPC transcoding table. The projection is
// many-to-one (several HTTP and I/O kinds collapse into one gRPC code), so
// unlike the HTTP and I/O tables in the code package it makes no round-trip
// promise. Codes absent from the table have no meaningful gRPC rendering.
var grpcByCode = map[code.Code]codes.Code{
	code.RuntimeInvalidValue:   codes.InvalidArgument,
	code.RuntimeInvalidIndex:   codes.OutOfRange,
	code.RuntimeInvalidKey:     codes.InvalidArgument,
	code.RuntimeNotImplemented: codes.Unimplemented,

	code.HTTPBadRequest:           codes.InvalidArgument,
	code.HTTPUnauthorized:         codes.Unauthenticated,
	code.HTTPForbidden:            codes.PermissionDenied,
	code.HTTPNotFound:             codes.NotFound,
	code.HTTPRequestTimeout:       codes.DeadlineExceeded,
	code.HTTPConflict:             codes.Aborted,
	code.HTTPGone:                 codes.NotFound,
	code.HTTPPreconditionFailed:   codes.FailedPrecondition,
	code.HTTPPayloadTooLarge:      codes.ResourceExhausted,
	code.HTTPUnprocessableEntity:  codes.InvalidArgument,
	code.HTTPTooEarly:             codes.FailedPrecondition,
	code.HTTPPreconditionRequired: codes.FailedPrecondition,
	code.HTTPTooManyRequests:      codes.ResourceExhausted,
	code.HTTPInternalServerError:  codes.Internal,
	code.HTTPNotImplemented:       codes.Unimplemented,
	code.HTTPBadGateway:           codes.Unavailable,
	code.HTTPServiceUnavailable:   codes.Unavailable,
	code.HTTPGatewayTimeout:       codes.DeadlineExceeded,

	code.IONotFound:          codes.NotFound,
	code.IOPermissionDenied:  codes.PermissionDenied,
	code.IOAlreadyExists:     codes.AlreadyExists,
	code.IOInvalidInput:      codes.InvalidArgument,
	code.IOTimedOut:          codes.DeadlineExceeded,
	code.IOUnsupported:       codes.Unimplemented,
	code.IOOutOfMemory:       codes.ResourceExhausted,
	code.IOConnectionRefused: codes.Unavailable,
	code.IOConnectionReset:   codes.Unavailable,
	code.IOConnectionAborted: codes.Unavailable,
	code.IONotConnected:      codes.Unavailable,
	code.IOBrokenPipe:        codes.Unavailable,
	code.IOInterrupted:       codes.Aborted,
}

// codeByGRPC is the reverse projection used when consuming foreign gRPC
// errors whose details carry no exact classification. It picks the HTTP
// code conventionally paired with each gRPC code.
var codeByGRPC = map[codes.Code]code.Code{
	codes.InvalidArgument:    code.HTTPBadRequest,
	codes.OutOfRange:         code.RuntimeInvalidIndex,
	codes.FailedPrecondition: code.HTTPPreconditionFailed,
	codes.Unauthenticated:    code.HTTPUnauthorized,
	codes.PermissionDenied:   code.HTTPForbidden,
	codes.NotFound:           code.HTTPNotFound,
	codes.Aborted:            code.HTTPConflict,
	codes.AlreadyExists:      code.HTTPConflict,
	codes.ResourceExhausted:  code.HTTPTooManyRequests,
	codes.Internal:           code.HTTPInternalServerError,
	codes.DataLoss:           code.HTTPInternalServerError,
	codes.Unimplemented:      code.HTTPNotImplemented,
	codes.Unavailable:        code.HTTPServiceUnavailable,
	codes.DeadlineExceeded:   code.HTTPGatewayTimeout,
}

// ToGRPCCode maps a classification code to its gRPC status code. Codes with
// no gRPC rendering return (codes.Unknown, false).
func ToGRPCCode(c code.Code) (codes.Code, bool) {
	gc, ok := grpcByCode[c]
	if !ok {
		return codes.Unknown, false
	}
	return gc, true
}

// FromGRPCCode maps a gRPC status code back to a classification code.
// codes.OK, codes.Unknown and codes.Canceled carry no classification and
// return (None, false).
func FromGRPCCode(gc codes.Code) (code.Code, bool) {
	c, ok := codeByGRPC[gc]
	if !ok {
		return code.None, false
	}
	return c, true
}
