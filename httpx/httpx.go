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

// Package httpx converts between HTTP statuses and stackerr errors at the
// client and server boundary.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"stackerr.dev/stackerr"
	"stackerr.dev/stackerr/code"
)

// FromStatusCode builds a root error from a numeric HTTP status. The message
// is the status's textual rendering ("404 Not Found"); statuses in the
// mapped 4xx/5xx subset also get the corresponding classification code,
// anything else (unrecognized 2xx/3xx included) yields a chain with no code.
func FromStatusCode(status int) *stackerr.Error {
	e := stackerr.New(statusLine(status))
	if c, ok := code.FromHTTPStatus(status); ok {
		e = e.WithCode(c)
	}
	return e
}

// FromResponse builds a root error from a response's status, preferring the
// server-sent status line when present. Returns nil for a nil response.
func FromResponse(resp *http.Response) *stackerr.Error {
	if resp == nil {
		return nil
	}
	msg := resp.Status
	if msg == "" {
		msg = statusLine(resp.StatusCode)
	}
	e := stackerr.New(msg)
	if c, ok := code.FromHTTPStatus(resp.StatusCode); ok {
		e = e.WithCode(c)
	}
	return e
}

// FromRoundTrip converts the (response, error) pair of an HTTP client call.
//
// If a response is present its status is mapped first and the client error's
// own message is stacked on top, preserving the derived code; without a
// response the client error becomes the root of a fresh chain. A nil error
// yields nil: FromRoundTrip never invents a failure.
func FromRoundTrip(resp *http.Response, err error) *stackerr.Error {
	if err == nil {
		return nil
	}
	if resp != nil {
		return FromResponse(resp).Stack(err)
	}
	return stackerr.New(err)
}

// Write renders err as a plain-text HTTP response. The status is resolved
// from the error's classification code when it lies in the HTTP subset and
// defaults to 500 Internal Server Error otherwise; the body is the rendered
// chain, one message per line, root first.
//
// No redaction is performed: whatever the chain contains is exposed as-is.
// Handlers that serve untrusted clients should stack a presentable message
// on top before writing.
func Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	status := http.StatusInternalServerError
	var ce stackerr.CodedError
	if errors.As(err, &ce) {
		if c, ok := ce.Code(); ok {
			if mapped, ok := c.HTTPStatus(); ok {
				status = mapped
			}
		}
	}
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(status)
	fmt.Fprintln(rw, err.Error())
}

func statusLine(status int) string {
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("%d %s", status, text)
	}
	return strconv.Itoa(status)
}
