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

// Package code defines the closed set of classification codes that stackerr
// errors may carry, together with the partial bidirectional mappings into two
// external classification namespaces: HTTP status codes and platform I/O
// error kinds (the standard library's sentinel errors and syscall errnos).
//
// A code answers "what kind of failure is this?" in a machine-readable way,
// distinct from the human-readable message chain. Codes are:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - drawn from the closed set enumerated in codes.go.
//
// The mappings in http.go and io.go are explicit, partial and one-to-one on
// the mapped subset: every mapped value round-trips, and anything outside the
// tables reports "no mapping" rather than guessing a default.
package code
