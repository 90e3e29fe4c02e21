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
	"testing"

	"github.com/stretchr/testify/require"

	"stackerr.dev/stackerr/code"
)

func TestResult_SuccessPassthrough(t *testing.T) {
	r := OK[int, *Error](42)

	// Every lifted operation is a no-op on the success branch.
	r = r.Stack("must not appear").
		Stackf("nor %s", "this").
		WithCode(code.HTTPNotFound).
		WithURI("https://x").
		WithMessage("replaced").
		ClearCode().
		ClearURI().
		ClearMessage()

	require.False(t, r.Failed())

	v, ok := r.Value()
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = r.Err()
	require.False(t, ok)
	_, ok = r.Code()
	require.False(t, ok)
	_, ok = r.URI()
	require.False(t, ok)
	require.Equal(t, "", r.Message())

	v, err := r.Get()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestResult_FailureLifting(t *testing.T) {
	r := Fail[string](New("connect refused")).
		WithCode(code.IOConnectionRefused).
		Stack("loading tenant settings").
		WithURI("https://runbooks.example.com/net")

	require.True(t, r.Failed())

	_, ok := r.Value()
	require.False(t, ok)

	c, ok := r.Code()
	require.True(t, ok)
	require.Equal(t, code.IOConnectionRefused, c)

	uri, ok := r.URI()
	require.True(t, ok)
	require.Equal(t, "https://runbooks.example.com/net", uri)

	require.Equal(t, "loading tenant settings", r.Message())

	_, err := r.Get()
	require.Error(t, err)
	require.Equal(t, "connect refused\nloading tenant settings", err.Error())
}

func TestResult_NeverDiscardsSuccess(t *testing.T) {
	type payload struct{ n int }

	r := OK[*payload, *Error](&payload{n: 7}).Stack("context")
	v, ok := r.Value()
	require.True(t, ok)
	require.Equal(t, 7, v.n)
}

func TestResult_ClearCodeOnFailure(t *testing.T) {
	r := Fail[int](New("boom").WithCode(code.HTTPInternalServerError)).
		ClearCode().
		Stack("handled upstream")

	_, ok := r.Code()
	require.False(t, ok)
}
