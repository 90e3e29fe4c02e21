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

// Package stackerr provides an error type that accumulates context as a
// failure travels up through layers, while carrying a machine-readable
// classification code and a diagnostic URI along with it.
//
// A chain is built by stacking:
//
//	base := stackerr.New("connect to 10.0.0.7:5432 refused").
//	    WithCode(code.IOConnectionRefused).
//	    WithURI("https://runbooks.example.com/pg")
//	err := base.Stack("loading tenant settings")
//
//	fmt.Println(err)
//	// connect to 10.0.0.7:5432 refused
//	// loading tenant settings
//
// The rendered chain is root-first: the oldest message comes first and each
// stacked message is appended on its own line. The classification code and
// URI attached anywhere below are inherited by every node stacked on top, so
// err.Code() still reports IOConnectionRefused. Stacking never loses
// metadata unless a layer clears or overrides it explicitly.
//
// Downstream libraries that want their own distinctly-named error type
// generate one with cmd/stackwrap (see example/liberr); the generated type
// behaves identically to *Error. Fallible computations can be chained
// without unwrapping via Result. Adapters for HTTP statuses, gRPC statuses
// and platform I/O failures live in the httpx, grpcx and iox subpackages.
package stackerr
