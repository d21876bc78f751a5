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
	"strings"

	"github.com/yaorongge/CTP/dicom"
)

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	path := fs.String("in", "", "path to a DICOM file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-in is required")
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

	dicom.Walk(obj.Dataset, func(row dicom.Row) {
		indent := strings.Repeat("  ", row.Depth)
		owner := ""
		if row.Owner != "" {
			owner = " owner=" + row.Owner
		}
		fmt.Printf("%s%s %-24s %s %s%s\n", indent, row.Tag, row.Name, row.VR, row.Value, owner)
	})
	return nil
}
