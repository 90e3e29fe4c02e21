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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a classification code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// The zero value None means "no classification". Error values carry None
// until a code is explicitly attached.
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// classification code. They are separate constants so that validation errors,
// tests and mirroring packages can reference the same limits.
const (
	// MinLength is the minimum length for a valid code. Requiring at least
	// 3 characters keeps ultra-short, ambiguous identifiers like "a" or
	// "x1" out of the namespace.
	MinLength = 3

	// MaxLength is the maximum length for a valid code. 64 characters is
	// enough for descriptive codes like "http_network_authentication_required"
	// while still preventing unbounded strings.
	MaxLength = 64
)

// codeFmt is the canonical pattern for classification codes:
// a lowercase ASCII letter followed by lowercase letters, digits or
// underscores. The quantifier {2,63} ties the total length to
// MinLength/MaxLength above; keep them in sync.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

// codeRe is precompiled so repeated validations in hot paths do not pay the
// compilation cost over and over again.
var codeRe = regexp.MustCompile(codeFmt)

// ErrInvalid is returned when a value cannot be parsed or validated as a
// classification code. A dedicated sentinel lets callers and tests detect
// "this is about code format" vs "some other failure".
var ErrInvalid = errors.New("code: invalid classification code")

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// None is the zero-value code. It means "no classification attached" and is
// what accessors report as absent.
var None Code = ""

// Parse takes a user-provided string, normalizes it, validates its format and
// checks it against the closed set of known codes. On success it returns the
// canonical Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return None, err
	}
	c := Code(s)
	if !c.IsKnown() {
		return None, ErrInvalid
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to the canonical code form.
// It is intentionally conservative and only performs obvious, non-lossy
// transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result is a known code; callers should
// still use Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code has the canonical format.
// The empty code is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// IsKnown reports whether c belongs to the closed set of codes enumerated in
// this package. Format-valid but unknown codes are rejected by Parse, so a
// Code obtained through Parse is always known.
func (c Code) IsKnown() bool {
	_, ok := known[c]
	return ok
}

// All returns every code in the closed set, in declaration order. The
// returned slice is a copy and safe to mutate.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// MarshalText implements encoding.TextMarshaler. It always returns the
// canonical string representation.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It normalizes and
// validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrInvalid
	}
	return nil
}
