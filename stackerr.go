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

import (
	"fmt"
	"strings"

	"stackerr.dev/stackerr/code"
)

// Error is the canonical stacking error for stackerr.
//
// Each Error is one node of a chain: it carries a display-able message, an
// optional classification code, an optional diagnostic URI, and an optional
// exclusively-owned link to the prior node (the cause). Chains grow by
// stacking a new message on top as a failure propagates upward; the code and
// URI attached below propagate forward automatically so that the topmost
// node always answers "what kind of failure is this?" without a chain walk.
//
// All builder and stacking methods return a new value and never modify the
// receiver, so Error instances can be shared freely across goroutines. The
// message payload is stored as-is and rendered with fmt.Sprint at display
// time; treat stored payloads as immutable.
type Error struct {
	// msg is the type-erased message payload of this node. It only needs
	// to render itself as text; nil means the node has no message.
	msg any

	// cause is the prior node of the chain, exclusively owned by this
	// node. Causes are only ever attached by moving an existing chain
	// into a new node, so cycles cannot be constructed.
	cause *Error

	// code is the classification of the error. code.None means no
	// classification is attached at this node.
	code code.Code

	// uri is an optional diagnostic-location string, for example a link
	// to a runbook or API documentation. Empty means no URI.
	uri string
}

// New constructs a root Error from a message and applies the provided
// options in order.
//
// Usage:
//
//	return stackerr.New("row decode failed",
//	    stackerr.WithCodeOption(code.RuntimeInvalidValue),
//	)
//
// The message may be any value that renders with fmt.Sprint, including
// another error.
func New(msg any, opts ...Option) *Error {
	e := &Error{msg: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Newf constructs a root Error from a fmt.Sprintf-formatted message.
func Newf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Empty constructs a root Error with no message. Useful when classification
// metadata has to be attached before any message exists.
func Empty() *Error {
	return &Error{}
}

// clone returns a shallow copy of e. A nil receiver clones to an empty root,
// which makes every builder safe on zero values (e.g. a generated wrapper's
// zero value).
func (e *Error) clone() *Error {
	if e == nil {
		return &Error{}
	}
	cp := *e
	return &cp
}

// Message renders the message of this node only, without the rest of the
// chain. Nodes without a message render as "".
func (e *Error) Message() string {
	if e == nil || e.msg == nil {
		return ""
	}
	return fmt.Sprint(e.msg)
}

// Error implements the built-in error interface. It renders the whole chain
// as human-readable text: one message per line, oldest (root) first, with no
// separator before the first line.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	depth := 0
	for n := e; n != nil; n = n.cause {
		depth++
	}
	lines := make([]string, depth)
	for n := e; n != nil; n = n.cause {
		depth--
		lines[depth] = n.Message()
	}
	return strings.Join(lines, "\n")
}

// Unwrap returns the immediate cause node, enabling errors.Is / errors.As
// traversal. The cause is exposed read-only: there is no way to mutate a
// chain through it.
func (e *Error) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}
	return e.cause
}

// Code returns the classification code of the topmost node. It does not
// search the chain: codes attached below have already been propagated
// forward at stack time.
func (e *Error) Code() (code.Code, bool) {
	if e == nil || e.code == code.None {
		return code.None, false
	}
	return e.code, true
}

// WithCode returns a copy of e with the classification code set.
func (e *Error) WithCode(c code.Code) *Error {
	cp := e.clone()
	cp.code = c
	return cp
}

// ClearCode returns a copy of e with no classification code. Subsequent
// stacked nodes inherit the cleared state until a new code is set.
func (e *Error) ClearCode() *Error {
	cp := e.clone()
	cp.code = code.None
	return cp
}

// URI returns the diagnostic URI of the topmost node, following the same
// propagation rule as Code.
func (e *Error) URI() (string, bool) {
	if e == nil || e.uri == "" {
		return "", false
	}
	return e.uri, true
}

// WithURI returns a copy of e with the diagnostic URI set. Setting the
// empty string is equivalent to ClearURI.
func (e *Error) WithURI(uri string) *Error {
	cp := e.clone()
	cp.uri = uri
	return cp
}

// ClearURI returns a copy of e with no diagnostic URI.
func (e *Error) ClearURI() *Error {
	cp := e.clone()
	cp.uri = ""
	return cp
}

// WithMessage returns a copy of e with the message of the current node
// replaced. The cause chain and metadata are untouched.
func (e *Error) WithMessage(msg any) *Error {
	cp := e.clone()
	cp.msg = msg
	return cp
}

// ClearMessage returns a copy of e with no message on the current node.
func (e *Error) ClearMessage() *Error {
	cp := e.clone()
	cp.msg = nil
	return cp
}

// Stack returns a new node with the given message on top of e. The new node
// owns e as its cause and inherits e's classification code and diagnostic
// URI, so stacking never loses metadata unless the caller clears it
// explicitly afterward.
//
// This is the operation every layer that catches and re-raises should use:
// stack, don't replace.
func (e *Error) Stack(msg any) *Error {
	if e == nil {
		return New(msg)
	}
	return &Error{
		msg:   msg,
		cause: e,
		code:  e.code,
		uri:   e.uri,
	}
}

// Stackf is Stack with a fmt.Sprintf-formatted message.
func (e *Error) Stackf(format string, args ...any) *Error {
	return e.Stack(fmt.Sprintf(format, args...))
}
