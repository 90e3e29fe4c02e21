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

// Stackwrap generates the full stacking-error behavior for a nominal wrapper
// type, so a library can declare its own distinctly-named error type without
// hand-writing any delegation:
//
//	//go:generate go run stackerr.dev/stackerr/cmd/stackwrap -type LibError
//	type LibError struct {
//		err *stackerr.Error
//	}
//
// The declared type must be a struct with exactly one named field whose type
// implements stackerr.Stacker; anything else is rejected when the generator
// runs, before the code ever compiles. The emitted file (<type>_stack.go by
// default, lowercased) contains constructors, every contract method as a
// "delegate and re-wrap" one-liner, and a compile-time assertion that the
// wrapper satisfies stackerr.Stacker.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stackwrap: ")

	typeName := flag.String("type", "", "wrapper type name; required")
	srcFile := flag.String("src", "", "source file declaring the type; defaults to $GOFILE set by go generate")
	output := flag.String("output", "", "output file name; defaults to <type>_stack.go in the current directory")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: stackwrap -type T [-src file.go] [-output file.go]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *typeName == "" {
		flag.Usage()
		os.Exit(2)
	}
	src := *srcFile
	if src == "" {
		src = os.Getenv("GOFILE")
	}
	if src == "" {
		log.Fatal("no source file: pass -src or run through go generate")
	}

	out, err := Generate(src, *typeName)
	if err != nil {
		log.Fatal(err)
	}

	dst := *output
	if dst == "" {
		dst = strings.ToLower(*typeName) + "_stack.go"
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		log.Fatal(err)
	}
}
