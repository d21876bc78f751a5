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
	"strconv"
	"strings"
)

// fileMetaThreshold mirrors the "tag & 0x7FFFFFFF < 0x80000" rule: elements
// of group 0x0000-0x0007 are resolved against file-meta before the main
// dataset, since file-meta itself lives in group 0x0002.
const fileMetaThreshold = 0x00080000

func tagUint32(t Tag) uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}

// datasetFor picks the dataset (file-meta or main) that should be consulted
// first for tag, per the file-meta fallthrough rule.
func (f *File) datasetFor(tag Tag) *Dataset {
	if f.MetaDataset != nil && tagUint32(tag)&0x7FFFFFFF < fileMetaThreshold {
		if f.MetaDataset.Find(tag) != nil {
			return f.MetaDataset
		}
	}
	return f.Dataset
}

// privateOwner returns the owner string for a private tag, by reading
// element (group, 0x0010 | (element>>8)) in the same dataset, or "" if
// absent or not private.
func privateOwner(ds *Dataset, tag Tag) string {
	if !tag.IsPrivate() {
		return ""
	}
	ownerTag := Tag{Group: tag.Group, Element: 0x0010 | (tag.Element >> 8)}
	e := ds.Find(ownerTag)
	if e == nil {
		return ""
	}
	strs := e.Strings()
	if len(strs) == 0 {
		return ""
	}
	return strs[0]
}

// rawElementString reinterprets whatever bytes are backing an element's
// value as a string with no VR-aware decoding, used for the private "CTP"
// owner rule in §4.4.
func rawElementString(e *Element) string {
	switch v := e.Value.(type) {
	case []byte:
		return string(v)
	case []string:
		return strings.Join(v, "\\")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// resolve walks path through the given starting dataset, descending into
// the first item of each non-terminal SQ element. It returns the element at
// the final tag and the dataset it was found in (needed for the
// private-owner lookup), or nil if any step is missing or not a sequence.
func resolve(ds *Dataset, path []Tag) (*Element, *Dataset) {
	if len(path) == 0 || ds == nil {
		return nil, nil
	}
	for _, tag := range path[:len(path)-1] {
		e := ds.Find(tag)
		if e == nil || e.VR != SQ {
			return nil, nil
		}
		items := e.Sequences()
		if len(items) == 0 {
			return nil, nil
		}
		ds = items[0]
	}
	last := path[len(path)-1]
	return ds.Find(last), ds
}

// GetString returns the element at path joined with "\" (DICOM's value
// multiplicity delimiter), honoring the file-meta fallthrough and private
// "CTP" owner rules. def is returned if the element is absent at any step.
func (f *File) GetString(path []Tag, def string) string {
	if len(path) == 0 {
		return def
	}
	start := f.datasetFor(path[0])
	e, ds := resolve(start, path)
	if e == nil {
		return def
	}
	if owner := privateOwner(ds, e.Tag); owner == "CTP" {
		return rawElementString(e)
	}
	strs := e.Strings()
	if strs == nil {
		return def
	}
	return strings.Join(strs, `\`)
}

// GetStringPiped is GetString but joins multi-valued elements with "|"
// instead of "\", matching the explicit multi-string accessor of §4.4.
func (f *File) GetStringPiped(path []Tag, def string) string {
	if len(path) == 0 {
		return def
	}
	start := f.datasetFor(path[0])
	e, ds := resolve(start, path)
	if e == nil {
		return def
	}
	if owner := privateOwner(ds, e.Tag); owner == "CTP" {
		return rawElementString(e)
	}
	strs := e.Strings()
	if strs == nil {
		return def
	}
	return strings.Join(strs, "|")
}

// GetStrings returns the raw multi-valued strings at path, or nil if absent.
func (f *File) GetStrings(path []Tag) []string {
	if len(path) == 0 {
		return nil
	}
	start := f.datasetFor(path[0])
	e, _ := resolve(start, path)
	return e.Strings()
}

// GetBytes returns the raw value bytes at path, or nil if absent or not a
// byte-valued element.
func (f *File) GetBytes(path []Tag) []byte {
	if len(path) == 0 {
		return nil
	}
	start := f.datasetFor(path[0])
	e, _ := resolve(start, path)
	return e.Bytes()
}

// GetInt returns the first value at path decoded as an integer (IS, US, SS,
// UL, SL, or a numeric string for DS), or def if absent or unparseable.
func (f *File) GetInt(path []Tag, def int64) int64 {
	if len(path) == 0 {
		return def
	}
	start := f.datasetFor(path[0])
	e, _ := resolve(start, path)
	if e == nil {
		return def
	}
	if ints := e.Ints(); len(ints) > 0 {
		return ints[0]
	}
	if strs := e.Strings(); len(strs) > 0 {
		if v, err := strconv.ParseInt(strings.TrimSpace(strs[0]), 10, 64); err == nil {
			return v
		}
	}
	return def
}

// GetFloat returns the first value at path decoded as a float (FL, FD, or a
// numeric string for DS), or def if absent or unparseable.
func (f *File) GetFloat(path []Tag, def float64) float64 {
	if len(path) == 0 {
		return def
	}
	start := f.datasetFor(path[0])
	e, _ := resolve(start, path)
	if e == nil {
		return def
	}
	if floats := e.Floats(); len(floats) > 0 {
		return floats[0]
	}
	if ints := e.Ints(); len(ints) > 0 {
		return float64(ints[0])
	}
	if strs := e.Strings(); len(strs) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(strs[0]), 64); err == nil {
			return v
		}
	}
	return def
}

// SetString writes value into the element at tag in the main dataset,
// creating it if absent. Private tags are always written with VR=UT; public
// tags fall back to the dictionary VR, defaulting to UT if unknown. An
// empty PN value is written as a single space (DICOM disallows a fully
// empty Person Name value in some contexts); other VRs permit a truly
// empty value.
func (f *File) SetString(tag Tag, value string) {
	vr := UT
	if !tag.IsPrivate() {
		if _, dictVR, err := LookupTag(tag); err == nil {
			vr = dictVR
		}
	}
	if vr == PN && value == "" {
		value = " "
	}

	e := f.Dataset.Find(tag)
	if e == nil {
		e = &Element{Tag: tag, VR: vr}
		f.Dataset.Append(e)
	}
	e.VR = vr
	e.Value = []string{value}
	e.Length = uint32(len(value))
}
