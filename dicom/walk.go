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

package dicom

import (
	"fmt"
	"strings"
)

// Row is one line of an ordered, depth-annotated dataset walk, meant to
// feed an external element-table renderer (out of scope per §1 — the
// renderer owns presentation, this owns the data it needs).
type Row struct {
	Depth   int
	Tag     Tag
	Name    string
	VR      string
	Length  uint32
	Value   string
	Private bool
	Owner   string // private block owner string, if this tag falls in one
}

// Walk invokes visit once per element in ds, depth-first, in encoded order;
// SQ elements are visited themselves and then each item's elements at
// depth+1, recursively.
func Walk(ds *Dataset, visit func(Row)) {
	walk(ds, 0, visit)
}

func walk(ds *Dataset, depth int, visit func(Row)) {
	if ds == nil {
		return
	}
	for _, e := range ds.Elements {
		name, _, err := LookupTag(e.Tag)
		if err != nil {
			name = ""
		}
		row := Row{
			Depth:   depth,
			Tag:     e.Tag,
			Name:    name,
			VR:      e.VR.Name,
			Length:  e.Length,
			Value:   displayValue(e),
			Private: e.Tag.IsPrivate(),
		}
		if row.Private && !e.Tag.IsPrivateCreator() {
			row.Owner = privateOwner(ds, e.Tag)
		}
		visit(row)
		if e.VR == SQ {
			for _, item := range e.Sequences() {
				walk(item, depth+1, visit)
			}
		}
	}
}

// displayValue renders an element's value as one text line. Sequences
// render as an item count rather than their (recursively walked) contents.
func displayValue(e *Element) string {
	switch v := e.Value.(type) {
	case []string:
		return strings.Join(v, `\`)
	case []int64:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return strings.Join(parts, `\`)
	case []float64:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = fmt.Sprintf("%g", n)
		}
		return strings.Join(parts, `\`)
	case []Tag:
		parts := make([]string, len(v))
		for i, t := range v {
			parts[i] = t.String()
		}
		return strings.Join(parts, `\`)
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(v))
	case []*Dataset:
		return fmt.Sprintf("<%d item(s)>", len(v))
	default:
		return ""
	}
}
