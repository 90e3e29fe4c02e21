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

package code

import "fmt"

// httpStatuses is the forward half of the HTTP mapping: classification code
// to numeric status. The reverse half is derived from it at package init, so
// the mapping is one-to-one on the mapped subset by construction.
//
// Only 4xx and 5xx statuses appear here. Informational, success and redirect
// statuses are not failures and deliberately have no code.
var httpStatuses = map[Code]int{
	HTTPBadRequest:                  400,
	HTTPUnauthorized:                401,
	HTTPPaymentRequired:             402,
	HTTPForbidden:                   403,
	HTTPNotFound:                    404,
	HTTPMethodNotAllowed:            405,
	HTTPNotAcceptable:               406,
	HTTPProxyAuthRequired:           407,
	HTTPRequestTimeout:              408,
	HTTPConflict:                    409,
	HTTPGone:                        410,
	HTTPLengthRequired:              411,
	HTTPPreconditionFailed:          412,
	HTTPPayloadTooLarge:             413,
	HTTPURITooLong:                  414,
	HTTPUnsupportedMediaType:        415,
	HTTPRangeNotSatisfiable:         416,
	HTTPExpectationFailed:           417,
	HTTPTeapot:                      418,
	HTTPMisdirectedRequest:          421,
	HTTPUnprocessableEntity:         422,
	HTTPLocked:                      423,
	HTTPFailedDependency:            424,
	HTTPTooEarly:                    425,
	HTTPUpgradeRequired:             426,
	HTTPPreconditionRequired:        428,
	HTTPTooManyRequests:             429,
	HTTPRequestHeaderFieldsTooLarge: 431,
	HTTPUnavailableForLegalReasons:  451,

	HTTPInternalServerError:           500,
	HTTPNotImplemented:                501,
	HTTPBadGateway:                    502,
	HTTPServiceUnavailable:            503,
	HTTPGatewayTimeout:                504,
	HTTPVersionNotSupported:           505,
	HTTPVariantAlsoNegotiates:         506,
	HTTPInsufficientStorage:           507,
	HTTPLoopDetected:                  508,
	HTTPNotExtended:                   510,
	HTTPNetworkAuthenticationRequired: 511,
}

var httpByStatus = func() map[int]Code {
	m := make(map[int]Code, len(httpStatuses))
	for c, status := range httpStatuses {
		if prev, dup := m[status]; dup {
			panic(fmt.Sprintf("code: HTTP status %d mapped to both %q and %q", status, prev, c))
		}
		m[status] = c
	}
	return m
}()

// FromHTTPStatus maps a numeric HTTP status to its classification code.
// Statuses outside the mapped 4xx/5xx subset return (None, false).
func FromHTTPStatus(status int) (Code, bool) {
	c, ok := httpByStatus[status]
	return c, ok
}

// HTTPStatus maps the code back to its numeric HTTP status. Codes outside
// the HTTP subset return (0, false).
func (c Code) HTTPStatus() (int, bool) {
	status, ok := httpStatuses[c]
	return status, ok
}
