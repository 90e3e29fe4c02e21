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

// Runtime error codes
//
// These codes describe failures detected by the program itself, without any
// external system involved. They are the codes business logic reaches for
// when a value, index or key turns out to be unusable at runtime.
const (
	// RuntimeInvalidValue indicates that a runtime value violates an
	// invariant: wrong format, range, state or cross-field consistency.
	RuntimeInvalidValue Code = "runtime_invalid_value"

	// RuntimeInvalidIndex indicates an index outside the valid range of
	// the indexed collection.
	RuntimeInvalidIndex Code = "runtime_invalid_index"

	// RuntimeInvalidKey indicates a lookup key that is absent from, or
	// malformed for, the keyed collection being consulted.
	RuntimeInvalidKey Code = "runtime_invalid_key"

	// RuntimeNotImplemented indicates that the requested operation exists
	// in the interface but has no implementation in this build or
	// configuration.
	RuntimeNotImplemented Code = "runtime_not_implemented"
)

// HTTP client error codes (4xx)
//
// Mirrored one-for-one from the HTTP status namespace; see http.go for the
// bidirectional mapping.
const (
	HTTPBadRequest                  Code = "http_bad_request"
	HTTPUnauthorized                Code = "http_unauthorized"
	HTTPPaymentRequired             Code = "http_payment_required"
	HTTPForbidden                   Code = "http_forbidden"
	HTTPNotFound                    Code = "http_not_found"
	HTTPMethodNotAllowed            Code = "http_method_not_allowed"
	HTTPNotAcceptable               Code = "http_not_acceptable"
	HTTPProxyAuthRequired           Code = "http_proxy_authentication_required"
	HTTPRequestTimeout              Code = "http_request_timeout"
	HTTPConflict                    Code = "http_conflict"
	HTTPGone                        Code = "http_gone"
	HTTPLengthRequired              Code = "http_length_required"
	HTTPPreconditionFailed          Code = "http_precondition_failed"
	HTTPPayloadTooLarge             Code = "http_payload_too_large"
	HTTPURITooLong                  Code = "http_uri_too_long"
	HTTPUnsupportedMediaType        Code = "http_unsupported_media_type"
	HTTPRangeNotSatisfiable         Code = "http_range_not_satisfiable"
	HTTPExpectationFailed           Code = "http_expectation_failed"
	HTTPTeapot                      Code = "http_im_a_teapot"
	HTTPMisdirectedRequest          Code = "http_misdirected_request"
	HTTPUnprocessableEntity         Code = "http_unprocessable_entity"
	HTTPLocked                      Code = "http_locked"
	HTTPFailedDependency            Code = "http_failed_dependency"
	HTTPTooEarly                    Code = "http_too_early"
	HTTPUpgradeRequired             Code = "http_upgrade_required"
	HTTPPreconditionRequired        Code = "http_precondition_required"
	HTTPTooManyRequests             Code = "http_too_many_requests"
	HTTPRequestHeaderFieldsTooLarge Code = "http_request_header_fields_too_large"
	HTTPUnavailableForLegalReasons  Code = "http_unavailable_for_legal_reasons"
)

// HTTP server error codes (5xx)
const (
	HTTPInternalServerError           Code = "http_internal_server_error"
	HTTPNotImplemented                Code = "http_not_implemented"
	HTTPBadGateway                    Code = "http_bad_gateway"
	HTTPServiceUnavailable            Code = "http_service_unavailable"
	HTTPGatewayTimeout                Code = "http_gateway_timeout"
	HTTPVersionNotSupported           Code = "http_version_not_supported"
	HTTPVariantAlsoNegotiates         Code = "http_variant_also_negotiates"
	HTTPInsufficientStorage           Code = "http_insufficient_storage"
	HTTPLoopDetected                  Code = "http_loop_detected"
	HTTPNotExtended                   Code = "http_not_extended"
	HTTPNetworkAuthenticationRequired Code = "http_network_authentication_required"
)

// Platform I/O error codes
//
// Mirrored from the standard library's I/O failure kinds: the fs/os sentinel
// errors, the io package sentinels, and the common POSIX errnos surfaced by
// network and file operations. See io.go for the bidirectional mapping.
const (
	IONotFound          Code = "io_not_found"
	IOPermissionDenied  Code = "io_permission_denied"
	IOAlreadyExists     Code = "io_already_exists"
	IOClosed            Code = "io_closed"
	IOInvalidInput      Code = "io_invalid_input"
	IOTimedOut          Code = "io_timed_out"
	IOEOF               Code = "io_eof"
	IOUnexpectedEOF     Code = "io_unexpected_eof"
	IOShortWrite        Code = "io_short_write"
	IOShortBuffer       Code = "io_short_buffer"
	IOUnsupported       Code = "io_unsupported"
	IOConnectionRefused Code = "io_connection_refused"
	IOConnectionReset   Code = "io_connection_reset"
	IOConnectionAborted Code = "io_connection_aborted"
	IONotConnected      Code = "io_not_connected"
	IOAddrInUse         Code = "io_addr_in_use"
	IOAddrNotAvailable  Code = "io_addr_not_available"
	IOBrokenPipe        Code = "io_broken_pipe"
	IOWouldBlock        Code = "io_would_block"
	IOInterrupted       Code = "io_interrupted"
	IOOutOfMemory       Code = "io_out_of_memory"
)

// all enumerates the closed set in declaration order. The taxonomy is
// intentionally flat: no hierarchy and no application-defined codes beyond
// what is listed here.
var all = []Code{
	RuntimeInvalidValue,
	RuntimeInvalidIndex,
	RuntimeInvalidKey,
	RuntimeNotImplemented,

	HTTPBadRequest,
	HTTPUnauthorized,
	HTTPPaymentRequired,
	HTTPForbidden,
	HTTPNotFound,
	HTTPMethodNotAllowed,
	HTTPNotAcceptable,
	HTTPProxyAuthRequired,
	HTTPRequestTimeout,
	HTTPConflict,
	HTTPGone,
	HTTPLengthRequired,
	HTTPPreconditionFailed,
	HTTPPayloadTooLarge,
	HTTPURITooLong,
	HTTPUnsupportedMediaType,
	HTTPRangeNotSatisfiable,
	HTTPExpectationFailed,
	HTTPTeapot,
	HTTPMisdirectedRequest,
	HTTPUnprocessableEntity,
	HTTPLocked,
	HTTPFailedDependency,
	HTTPTooEarly,
	HTTPUpgradeRequired,
	HTTPPreconditionRequired,
	HTTPTooManyRequests,
	HTTPRequestHeaderFieldsTooLarge,
	HTTPUnavailableForLegalReasons,

	HTTPInternalServerError,
	HTTPNotImplemented,
	HTTPBadGateway,
	HTTPServiceUnavailable,
	HTTPGatewayTimeout,
	HTTPVersionNotSupported,
	HTTPVariantAlsoNegotiates,
	HTTPInsufficientStorage,
	HTTPLoopDetected,
	HTTPNotExtended,
	HTTPNetworkAuthenticationRequired,

	IONotFound,
	IOPermissionDenied,
	IOAlreadyExists,
	IOClosed,
	IOInvalidInput,
	IOTimedOut,
	IOEOF,
	IOUnexpectedEOF,
	IOShortWrite,
	IOShortBuffer,
	IOUnsupported,
	IOConnectionRefused,
	IOConnectionReset,
	IOConnectionAborted,
	IONotConnected,
	IOAddrInUse,
	IOAddrNotAvailable,
	IOBrokenPipe,
	IOWouldBlock,
	IOInterrupted,
	IOOutOfMemory,
}

var known = func() map[Code]struct{} {
	m := make(map[Code]struct{}, len(all))
	for _, c := range all {
		if err := Validate(c); err != nil {
			panic("code: malformed code in closed set: " + string(c))
		}
		if _, dup := m[c]; dup {
			panic("code: duplicate code in closed set: " + string(c))
		}
		m[c] = struct{}{}
	}
	return m
}()
