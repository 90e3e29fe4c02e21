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

// Package liberr shows how a downstream library declares its own
// distinctly-named error type: one struct, one go:generate line, zero
// hand-written logic.
package liberr

import "stackerr.dev/stackerr"

//go:generate go run stackerr.dev/stackerr/cmd/stackwrap -type LibError

// LibError is this library's error type. Its whole behavior lives in the
// generated liberror_stack.go.
type LibError struct {
	err *stackerr.Error
}
