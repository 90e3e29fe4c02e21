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
	"path/filepath"
	"runtime"
)

// Locf formats a message with fmt.Sprintf and prefixes it with the caller's
// source file and line number, for call sites that want provenance in the
// message text itself:
//
//	err.Stack(stackerr.Locf("decoding user %d", id))
//	// → "users.go:87 decoding user 42"
//
// Only the file's base name is kept, matching log.Lshortfile. If caller
// information is unavailable the message is returned without a prefix.
func Locf(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return msg
	}
	return fmt.Sprintf("%s:%d %s", filepath.Base(file), line, msg)
}
