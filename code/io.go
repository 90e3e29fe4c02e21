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
	"errors"
	"io"
	"os"
	"syscall"
)

// ioSentinels is the forward half of the I/O mapping: each classification
// code paired with the standard library value that identifies the kind.
// Matching uses errors.Is, so wrapped failures (os.PathError, net.OpError,
// fmt.Errorf("%w")) classify the same as bare sentinels.
//
// The slice is ordered: FromIOError scans it front to back and returns the
// first match. All entries are mutually exclusive under errors.Is, so the
// order only determines scan cost, not results.
var ioSentinels = []struct {
	code Code
	err  error
}{
	{IONotFound, os.ErrNotExist},
	{IOPermissionDenied, os.ErrPermission},
	{IOAlreadyExists, os.ErrExist},
	{IOClosed, os.ErrClosed},
	{IOInvalidInput, os.ErrInvalid},
	{IOTimedOut, os.ErrDeadlineExceeded},
	{IOEOF, io.EOF},
	{IOUnexpectedEOF, io.ErrUnexpectedEOF},
	{IOShortWrite, io.ErrShortWrite},
	{IOShortBuffer, io.ErrShortBuffer},
	{IOUnsupported, errors.ErrUnsupported},
	{IOConnectionRefused, syscall.ECONNREFUSED},
	{IOConnectionReset, syscall.ECONNRESET},
	{IOConnectionAborted, syscall.ECONNABORTED},
	{IONotConnected, syscall.ENOTCONN},
	{IOAddrInUse, syscall.EADDRINUSE},
	{IOAddrNotAvailable, syscall.EADDRNOTAVAIL},
	{IOBrokenPipe, syscall.EPIPE},
	{IOWouldBlock, syscall.EAGAIN},
	{IOInterrupted, syscall.EINTR},
	{IOOutOfMemory, syscall.ENOMEM},
}

var ioByCode = func() map[Code]error {
	m := make(map[Code]error, len(ioSentinels))
	for _, s := range ioSentinels {
		if _, dup := m[s.code]; dup {
			panic("code: duplicate I/O mapping for " + string(s.code))
		}
		m[s.code] = s.err
	}
	return m
}()

// FromIOError maps a platform I/O failure to its classification code by
// probing the error chain with errors.Is. Failures whose kind is not in the
// table return (None, false) rather than a guessed code.
func FromIOError(err error) (Code, bool) {
	if err == nil {
		return None, false
	}
	for _, s := range ioSentinels {
		if errors.Is(err, s.err) {
			return s.code, true
		}
	}
	return None, false
}

// IOError maps the code back to the standard library sentinel (or errno)
// that identifies its I/O kind. Codes outside the I/O subset return
// (nil, false).
func (c Code) IOError() (error, bool) {
	err, ok := ioByCode[c]
	return err, ok
}
