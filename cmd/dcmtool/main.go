// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dcmtool is a thin wrapper around the dicom, predicate, and pixel
// packages: dump an object's elements, test a predicate script against it,
// transcode it to another transfer syntax, or render a frame to JPEG. All
// of the actual logic lives in those packages; this file only parses flags
// and wires them together.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "dump":
		err = runDump(os.Args[2:])
	case "match":
		err = runMatch(os.Args[2:])
	case "transcode":
		err = runTranscode(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "dcmtool: unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		logrus.Errorf("dcmtool %s: %v", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dcmtool <command> [flags]

commands:
  dump       print an object's elements as a depth-indented table
  match      evaluate a predicate script against an object
  transcode  rewrite an object under a different transfer syntax
  render     save a frame as a window/leveled JPEG

Run "dcmtool <command> -h" for a command's flags.`)
}
