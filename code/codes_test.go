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
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPMapping_RoundTripsOnMappedSubset(t *testing.T) {
	mapped := 0
	for _, c := range All() {
		status, ok := c.HTTPStatus()
		if !ok {
			continue
		}
		mapped++
		back, ok := FromHTTPStatus(status)
		require.True(t, ok, "status %d", status)
		require.Equal(t, c, back, "status %d", status)
	}
	require.Equal(t, 40, mapped)
}

func TestHTTPMapping_Samples(t *testing.T) {
	tests := []struct {
		status int
		want   Code
	}{
		{404, HTTPNotFound},
		{418, HTTPTeapot},
		{429, HTTPTooManyRequests},
		{500, HTTPInternalServerError},
		{511, HTTPNetworkAuthenticationRequired},
	}
	for _, tt := range tests {
		c, ok := FromHTTPStatus(tt.status)
		require.True(t, ok)
		require.Equal(t, tt.want, c)
	}
}

func TestHTTPMapping_UnmappedValues(t *testing.T) {
	for _, status := range []int{0, 200, 204, 299, 301, 420, 509, 600} {
		_, ok := FromHTTPStatus(status)
		require.False(t, ok, "status %d should have no mapping", status)
	}

	// A non-HTTP code cannot be rendered as an HTTP status.
	_, ok := RuntimeInvalidValue.HTTPStatus()
	require.False(t, ok)
	_, ok = IONotFound.HTTPStatus()
	require.False(t, ok)
}

func TestIOMapping_RoundTripsOnMappedSubset(t *testing.T) {
	mapped := 0
	for _, c := range All() {
		sentinel, ok := c.IOError()
		if !ok {
			continue
		}
		mapped++
		back, ok := FromIOError(sentinel)
		require.True(t, ok, "code %q", c)
		require.Equal(t, c, back, "code %q", c)
	}
	require.Equal(t, 21, mapped)
}

func TestIOMapping_MatchesWrappedErrors(t *testing.T) {
	tests := []struct {
		err  error
		want Code
	}{
		{fmt.Errorf("open config: %w", os.ErrNotExist), IONotFound},
		{&os.PathError{Op: "open", Path: "/etc/shadow", Err: os.ErrPermission}, IOPermissionDenied},
		{&os.SyscallError{Syscall: "connect", Err: syscall.ECONNREFUSED}, IOConnectionRefused},
		{io.ErrUnexpectedEOF, IOUnexpectedEOF},
		{fmt.Errorf("read frame: %w", io.EOF), IOEOF},
	}
	for _, tt := range tests {
		c, ok := FromIOError(tt.err)
		require.True(t, ok, "%v", tt.err)
		require.Equal(t, tt.want, c)
	}
}

func TestIOMapping_UnmappedKinds(t *testing.T) {
	_, ok := FromIOError(nil)
	require.False(t, ok)

	_, ok = FromIOError(fmt.Errorf("some application failure"))
	require.False(t, ok)

	_, ok = HTTPNotFound.IOError()
	require.False(t, ok)
}
