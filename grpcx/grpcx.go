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

// Package grpcx projects stackerr errors onto gRPC statuses and back.
//
// Outgoing statuses carry the exact classification code in an
// errdetails.ErrorInfo detail and the diagnostic URI in an errdetails.Help
// link, so a stackerr-aware client recovers both precisely even when the
// gRPC status code itself is a lossy projection.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"stackerr.dev/stackerr"
	"stackerr.dev/stackerr/code"
)

// errorDomain identifies this library in ErrorInfo details.
const errorDomain = "stackerr.dev"

// ToStatus converts an error into a gRPC status.
//
// The status code comes from the classification code when the error exposes
// one that has a gRPC rendering, codes.Unknown otherwise. The status message
// is the rendered chain. The classification code and diagnostic URI ride in
// the status details.
func ToStatus(err error) *status.Status {
	if err == nil {
		return nil
	}

	gc := codes.Unknown
	var info *errdetails.ErrorInfo
	var ce stackerr.CodedError
	if errors.As(err, &ce) {
		if c, ok := ce.Code(); ok {
			if mapped, ok := ToGRPCCode(c); ok {
				gc = mapped
			}
			info = &errdetails.ErrorInfo{
				Reason: c.String(),
				Domain: errorDomain,
			}
		}
	}

	var help *errdetails.Help
	var le stackerr.LinkedError
	if errors.As(err, &le) {
		if uri, ok := le.URI(); ok {
			help = &errdetails.Help{
				Links: []*errdetails.Help_Link{
					{Description: "diagnostics", Url: uri},
				},
			}
		}
	}

	st := status.New(gc, err.Error())
	if info != nil {
		if with, err := st.WithDetails(info); err == nil {
			st = with
		}
	}
	if help != nil {
		if with, err := st.WithDetails(help); err == nil {
			st = with
		}
	}
	return st
}

// FromError converts a gRPC client-side error into a stackerr chain.
//
// The status message becomes the root message. The classification code is
// recovered from an ErrorInfo detail when present (exact round trip for
// statuses produced by ToStatus), falling back to the gRPC code projection;
// the diagnostic URI is recovered from a Help detail. Errors that are not
// gRPC statuses become a plain root chain with no code.
func FromError(err error) *stackerr.Error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return stackerr.New(err)
	}

	e := stackerr.New(st.Message())
	if c, ok := FromGRPCCode(st.Code()); ok {
		e = e.WithCode(c)
	}
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			if c, perr := code.Parse(d.GetReason()); perr == nil {
				e = e.WithCode(c)
			}
		case *errdetails.Help:
			if links := d.GetLinks(); len(links) > 0 {
				e = e.WithURI(links[0].GetUrl())
			}
		}
	}
	return e
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that converts
// classified errors returned by handlers into gRPC statuses via ToStatus.
// Errors that do not expose a classification code are returned as-is so
// other interceptors or the default transport handling can deal with them.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var ce stackerr.CodedError
		if !errors.As(err, &ce) {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, ToStatus(err).Err()
	}
}
