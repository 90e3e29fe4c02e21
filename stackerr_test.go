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
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stackerr.dev/stackerr/code"
)

func TestNew_Builds(t *testing.T) {
	err := New("test error")

	require.Equal(t, "test error", err.Error())
	require.Equal(t, "test error", err.Message())
	require.Nil(t, err.Unwrap())

	_, ok := err.Code()
	require.False(t, ok)
	_, ok = err.URI()
	require.False(t, ok)
}

func TestNew_Options(t *testing.T) {
	err := New("db is down",
		WithCodeOption(code.HTTPServiceUnavailable),
		WithURIOption("https://runbooks.example.com/db"),
	)

	c, ok := err.Code()
	require.True(t, ok)
	require.Equal(t, code.HTTPServiceUnavailable, c)

	uri, ok := err.URI()
	require.True(t, ok)
	require.Equal(t, "https://runbooks.example.com/db", uri)
}

func TestNewf_Formats(t *testing.T) {
	err := Newf("invalid value: %d (expected %d)", 5, 10)
	require.Equal(t, "invalid value: 5 (expected 10)", err.Error())
}

func TestNew_ErrorPayload(t *testing.T) {
	// Any fmt.Sprint-able payload can be a message, errors included.
	root := errors.New("root failure")
	err := New(root)
	require.Equal(t, "root failure", err.Error())
}

func TestEmpty_MetadataBeforeMessage(t *testing.T) {
	err := Empty().WithCode(code.RuntimeInvalidKey).Stack("lookup failed")

	c, ok := err.Code()
	require.True(t, ok)
	require.Equal(t, code.RuntimeInvalidKey, c)
	// The empty root still occupies a line of its own.
	require.Equal(t, "\nlookup failed", err.Error())
}

func TestStack_RendersRootFirst(t *testing.T) {
	err := New("Base error").
		WithCode(code.RuntimeInvalidValue).
		WithURI("https://x/base").
		Stack("Stacked error")

	require.Equal(t, "Base error\nStacked error", err.Error())

	c, ok := err.Code()
	require.True(t, ok)
	require.Equal(t, code.RuntimeInvalidValue, c)

	uri, ok := err.URI()
	require.True(t, ok)
	require.Equal(t, "https://x/base", uri)
}

func TestStack_CountAndOrder(t *testing.T) {
	const n = 7
	err := New("msg 0")
	for i := 1; i <= n; i++ {
		err = err.Stackf("msg %d", i)
	}

	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, n+1)
	for i, line := range lines {
		require.Equal(t, fmt.Sprintf("msg %d", i), line)
	}
}

func TestStack_PropagatesMetadata(t *testing.T) {
	err := New("root").
		WithCode(code.IOTimedOut).
		WithURI("https://x/timeout")
	for i := 0; i < 4; i++ {
		err = err.Stackf("layer %d", i)
	}

	c, ok := err.Code()
	require.True(t, ok)
	require.Equal(t, code.IOTimedOut, c)

	uri, ok := err.URI()
	require.True(t, ok)
	require.Equal(t, "https://x/timeout", uri)
}

func TestClearCode_StopsPropagation(t *testing.T) {
	err := New("root").WithCode(code.HTTPConflict).ClearCode()

	_, ok := err.Code()
	require.False(t, ok)

	// Cleared state is itself what propagates.
	err = err.Stack("first").Stack("second")
	_, ok = err.Code()
	require.False(t, ok)

	// Until a new code is set.
	err = err.WithCode(code.HTTPGone).Stack("third")
	c, ok := err.Code()
	require.True(t, ok)
	require.Equal(t, code.HTTPGone, c)
}

func TestWithCode_Overrides(t *testing.T) {
	err := New("root").WithCode(code.HTTPNotFound).
		Stack("mid").WithCode(code.HTTPGone).
		Stack("top")

	c, ok := err.Code()
	require.True(t, ok)
	require.Equal(t, code.HTTPGone, c)
}

func TestBuilders_DoNotMutateReceiver(t *testing.T) {
	base := New("base").WithCode(code.HTTPNotFound)

	_ = base.WithCode(code.HTTPGone)
	_ = base.ClearCode()
	_ = base.WithURI("https://x")
	_ = base.Stack("more")

	c, ok := base.Code()
	require.True(t, ok)
	require.Equal(t, code.HTTPNotFound, c)
	_, ok = base.URI()
	require.False(t, ok)
	require.Equal(t, "base", base.Error())
}

func TestWithMessage_ReplacesTopOnly(t *testing.T) {
	err := New("root").Stack("draft message").WithMessage("final message")
	require.Equal(t, "root\nfinal message", err.Error())

	err = err.ClearMessage()
	require.Equal(t, "root\n", err.Error())
	require.Equal(t, "", err.Message())
}

func TestUnwrap_WalksChain(t *testing.T) {
	base := New("base")
	top := base.Stack("top")

	require.Same(t, base, top.Unwrap())
	require.True(t, errors.Is(top, base))
	require.Nil(t, base.Unwrap())
}

func TestError_NilReceiver(t *testing.T) {
	var err *Error
	require.Equal(t, "<nil>", err.Error())

	// Builders on a nil receiver behave as on an empty root.
	require.Equal(t, "fixed", err.Stack("fixed").Error())
	c := err.WithCode(code.HTTPTeapot)
	got, ok := c.Code()
	require.True(t, ok)
	require.Equal(t, code.HTTPTeapot, got)
}

func TestLocf_PrefixesFileAndLine(t *testing.T) {
	msg := Locf("error %d occurred", 42)

	require.True(t, strings.HasPrefix(msg, "stackerr_test.go:"), "got %q", msg)
	require.True(t, strings.HasSuffix(msg, " error 42 occurred"), "got %q", msg)
}
