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

import "fmt"

// Tag is a (group, element) pair identifying a data element.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type Tag struct {
	Group   uint16
	Element uint16
}

// NewTag builds a Tag from its group and element.
func NewTag(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// String renders a tag in the conventional "(gggg,eeee)" form.
func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// IsPrivate reports whether the tag's group is odd, marking it as reserved for
// a private data element rather than the public DICOM dictionary.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.8
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsPrivateCreator reports whether the tag identifies a private block owner
// (elements 0x10-0xFF of a private group hold the block's "creator" string).
func (t Tag) IsPrivateCreator() bool {
	return t.IsPrivate() && t.Element >= 0x0010 && t.Element <= 0x00FF
}

// Well-known pseudo-tags used for item/sequence delimitation.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#table_7.5-1
var (
	TagItem                    = Tag{0xFFFE, 0xE000}
	TagItemDelimitationItem    = Tag{0xFFFE, 0xE00D}
	TagSequenceDelimitationItem = Tag{0xFFFE, 0xE0DD}
)

// PixelDataTag identifies the bulk pixel data element.
var PixelDataTag = Tag{0x7FE0, 0x0010}

// FileMetaInformationGroupLengthTag is always the first element of group 0002.
var FileMetaInformationGroupLengthTag = Tag{0x0002, 0x0000}

// Element is a single decoded data element: a tag, its VR, and its value.
//
// Value holds one of:
//   - []string for VRKindText, VRKindUID
//   - []int64 for VRKindBinaryNumber (integer VRs: SS, US, SL, UL)
//   - []float64 for VRKindBinaryNumber (floating VRs: FL, FD)
//   - []Tag for VRKindTag
//   - []string for the text-like VRKindBulkData VRs (UC, UR, UT)
//   - []byte for the other VRKindBulkData VRs
//   - []*Dataset for VRKindSequence (one per item)
//
// Length is the original encoded value length in bytes (UndefinedLength for an
// encapsulated or undefined-length sequence/item).
type Element struct {
	Tag    Tag
	VR     VR
	Value  interface{}
	Length uint32
}

// Dataset is an ordered collection of elements, as read from (or to be written
// to) a DICOM stream. Order is preserved since DICOM elements must be written
// in ascending tag order and a round trip must not reorder them.
type Dataset struct {
	Elements []*Element
}

// NewDataset returns an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

// Find returns the element for tag, or nil if the dataset has none.
func (ds *Dataset) Find(tag Tag) *Element {
	if ds == nil {
		return nil
	}
	for _, e := range ds.Elements {
		if e.Tag == tag {
			return e
		}
	}
	return nil
}

// Append adds an element to the end of the dataset.
func (ds *Dataset) Append(e *Element) {
	ds.Elements = append(ds.Elements, e)
}

// Strings returns a text-valued element's value, or nil if the element is
// absent or not string-valued.
func (e *Element) Strings() []string {
	if e == nil {
		return nil
	}
	v, _ := e.Value.([]string)
	return v
}

// Ints returns an integer-binary-valued element's value.
func (e *Element) Ints() []int64 {
	if e == nil {
		return nil
	}
	v, _ := e.Value.([]int64)
	return v
}

// Floats returns a floating-binary-valued element's value.
func (e *Element) Floats() []float64 {
	if e == nil {
		return nil
	}
	v, _ := e.Value.([]float64)
	return v
}

// Bytes returns a bulk-data element's raw value.
func (e *Element) Bytes() []byte {
	if e == nil {
		return nil
	}
	v, _ := e.Value.([]byte)
	return v
}

// Sequences returns a sequence element's items.
func (e *Element) Sequences() []*Dataset {
	if e == nil {
		return nil
	}
	v, _ := e.Value.([]*Dataset)
	return v
}
