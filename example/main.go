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

// Package main demonstrates stacking context onto a failure as it crosses
// layers, and a generated wrapper type behaving exactly like the base type.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"stackerr.dev/stackerr"
	"stackerr.dev/stackerr/code"
	"stackerr.dev/stackerr/example/liberr"
	"stackerr.dev/stackerr/iox"
)

func loadSettings(path string) ([]byte, *stackerr.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, iox.Stack(err, stackerr.Locf("loading settings from %s", path)).
			WithURI("https://docs.example.com/settings")
	}
	return data, nil
}

func main() {
	_, err := loadSettings("/nonexistent/settings.toml")
	if err != nil {
		err = err.Stack("starting service")
		c, _ := err.Code()
		uri, _ := err.URI()
		fmt.Printf("code=%s uri=%s\n%v\n\n", c, uri, err)
	}

	// A library-specific error type generated by stackwrap.
	lerr := liberr.NewLibError(fs.ErrPermission).
		WithCode(code.IOPermissionDenied).
		Stack("refreshing index")
	fmt.Println(lerr)
}
