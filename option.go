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

// Option is a functional option for constructing an Error. It always takes
// an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithCodeOption sets the classification code on the error being
// constructed. Intended to be used with New(...).
func WithCodeOption(c code.Code) Option {
	return func(e *Error) *Error {
		return e.WithCode(c)
	}
}

// WithURIOption sets the diagnostic URI on the error being constructed.
// Intended to be used with New(...).
func WithURIOption(uri string) Option {
	return func(e *Error) *Error {
		return e.WithURI(uri)
	}
}
