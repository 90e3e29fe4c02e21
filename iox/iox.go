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

// Package iox converts platform I/O failures into stackerr errors.
package iox

import (
	"stackerr.dev/stackerr"
	"stackerr.dev/stackerr/code"
)

// From wraps an I/O failure as the root of a fresh chain. The failure's
// textual description becomes the root message and its categorical kind is
// mapped through the classification table; unmapped kinds yield a chain with
// no code rather than a guessed one. A nil error yields nil.
func From(err error) *stackerr.Error {
	if err == nil {
		return nil
	}
	e := stackerr.New(err)
	if c, ok := code.FromIOError(err); ok {
		e = e.WithCode(c)
	}
	return e
}

// Stack is a convenience for the common catch-and-contextualize site:
// From(err) with a message stacked on top.
func Stack(err error, msg any) *stackerr.Error {
	if err == nil {
		return nil
	}
	return From(err).Stack(msg)
}
