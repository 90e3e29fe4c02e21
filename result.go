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

// Result is a two-variant success/failure container that lifts the stacking
// contract over fallible computations: every Stacker operation is available
// directly on the Result and applies only to the failure branch, so call
// sites can chain context without unwrapping first.
//
//	res := load(path).Stack("loading user config")
//	cfg, err := res.Get()
//
// The lifting is a strict no-op on the success branch: it never invents a
// failure and never discards a success value.
type Result[T any, E Stacker[E]] struct {
	val    T
	err    E
	failed bool
}

// OK returns a Result holding a success value.
func OK[T any, E Stacker[E]](val T) Result[T, E] {
	return Result[T, E]{val: val}
}

// Fail returns a Result holding a failure.
func Fail[T any, E Stacker[E]](err E) Result[T, E] {
	return Result[T, E]{err: err, failed: true}
}

// Failed reports whether the Result holds the failure branch.
func (r Result[T, E]) Failed() bool {
	return r.failed
}

// Value returns the success value, if present.
func (r Result[T, E]) Value() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.val, true
}

// Err returns the failure, if present.
func (r Result[T, E]) Err() (E, bool) {
	if !r.failed {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Get converts the Result back into Go's native (value, error) shape.
func (r Result[T, E]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.val, nil
}

// Message renders the failure's topmost message, or "" on success.
func (r Result[T, E]) Message() string {
	if !r.failed {
		return ""
	}
	return r.err.Message()
}

// Code reads the failure's classification code; (None, false) on success.
func (r Result[T, E]) Code() (code.Code, bool) {
	if !r.failed {
		return code.None, false
	}
	return r.err.Code()
}

// URI reads the failure's diagnostic URI; ("", false) on success.
func (r Result[T, E]) URI() (string, bool) {
	if !r.failed {
		return "", false
	}
	return r.err.URI()
}

// WithCode applies Stacker.WithCode to the failure branch.
func (r Result[T, E]) WithCode(c code.Code) Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.WithCode(c)
	return r
}

// ClearCode applies Stacker.ClearCode to the failure branch.
func (r Result[T, E]) ClearCode() Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.ClearCode()
	return r
}

// WithURI applies Stacker.WithURI to the failure branch.
func (r Result[T, E]) WithURI(uri string) Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.WithURI(uri)
	return r
}

// ClearURI applies Stacker.ClearURI to the failure branch.
func (r Result[T, E]) ClearURI() Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.ClearURI()
	return r
}

// WithMessage applies Stacker.WithMessage to the failure branch.
func (r Result[T, E]) WithMessage(msg any) Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.WithMessage(msg)
	return r
}

// ClearMessage applies Stacker.ClearMessage to the failure branch.
func (r Result[T, E]) ClearMessage() Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.ClearMessage()
	return r
}

// Stack stacks a contextual message onto the failure branch.
func (r Result[T, E]) Stack(msg any) Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.Stack(msg)
	return r
}

// Stackf is Stack with a fmt.Sprintf-formatted message.
func (r Result[T, E]) Stackf(format string, args ...any) Result[T, E] {
	if !r.failed {
		return r
	}
	r.err = r.err.Stackf(format, args...)
	return r
}
