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

package stackerr

import "stackerr.dev/stackerr/code"

// Code is re-exported from stackerr.dev/stackerr/code so that generated
// wrapper files and casual callers need only one import.
type Code = code.Code

// Stacker is the full behavioral contract of a stacking error.
//
// The type parameter E is the implementing type itself, so that builder and
// stacking operations return the concrete type rather than an interface:
// a wrapper around *Error stays a wrapper through every operation.
//
// *Error satisfies Stacker[*Error]; files emitted by cmd/stackwrap make a
// single-field wrapper type satisfy Stacker[Wrapper] with zero hand-written
// logic.
type Stacker[E any] interface {
	error

	// Unwrap exposes the immediate cause for errors.Is / errors.As.
	Unwrap() error

	// Message renders the topmost message only.
	Message() string

	// Code and URI read the topmost node's metadata.
	Code() (code.Code, bool)
	URI() (string, bool)

	// Builders: each returns a new value with one field changed.
	WithCode(c code.Code) E
	ClearCode() E
	WithURI(uri string) E
	ClearURI() E
	WithMessage(msg any) E
	ClearMessage() E

	// Stacking: push a new message on top, inheriting code and URI.
	Stack(msg any) E
	Stackf(format string, args ...any) E
}

var _ Stacker[*Error] = (*Error)(nil)

// CodedError is the boundary-facing subset of the contract for consumers
// that only need the classification code: transport adapters, log sinks,
// retry policies. Both *Error and generated wrapper types satisfy it.
type CodedError interface {
	error
	Code() (code.Code, bool)
}

// LinkedError is the boundary-facing subset for consumers that surface the
// diagnostic URI.
type LinkedError interface {
	error
	URI() (string, bool)
}

var (
	_ CodedError  = (*Error)(nil)
	_ LinkedError = (*Error)(nil)
)
