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
	"github.com/yaorongge/CTP/predicate"
)

func runMatch(args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	path := fs.String("in", "", "path to a DICOM file")
	script := fs.String("script", "", "predicate script to evaluate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" || *script == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-in and -script are required")
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	obj, err := dicom.Open(f)
	if err != nil {
		return err
	}
	defer obj.Close()

	matched, err := predicate.Evaluate(*script, obj)
	if err != nil {
		return err
	}

	fmt.Println(matched)
	if !matched {
		os.Exit(1)
	}
	return nil
}
