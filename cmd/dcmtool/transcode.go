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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yaorongge/CTP/dicom"
)

func runTranscode(args []string) error {
	fs := flag.NewFlagSet("transcode", flag.ExitOnError)
	in := fs.String("in", "", "path to a DICOM file")
	out := fs.String("out", "", "path to write the transcoded file")
	syntax := fs.String("syntax", "", "target transfer syntax UID (default: keep source)")
	implicit := fs.Bool("implicit", false, "force Implicit VR Little Endian, overriding -syntax")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-in and -out are required")
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	obj, err := dicom.Open(f)
	if err != nil {
		return err
	}
	defer obj.Close()

	return obj.SaveToFile(*out, *syntax, *implicit)
}
