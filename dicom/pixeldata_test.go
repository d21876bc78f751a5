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
	"bytes"
	"testing"
)

// TestStreamTrailingElementsSwapsRegardlessOfVR confirms every trailing
// element's bytes are swapped across a byte-order-changing save, not just
// OW ones: writeValueTo applies the swap unconditionally, with no VR check.
func TestStreamTrailingElementsSwapsRegardlessOfVR(t *testing.T) {
	source := ExplicitVRLittleEndian
	target := ExplicitVRBigEndian

	rowsTag := Tag{Group: 0x0028, Element: 0x0010}

	var src bytes.Buffer
	sw := newDcmWriter(&src)
	if err := sw.Tag(source.ByteOrder, rowsTag); err != nil {
		t.Fatalf("writing tag: %v", err)
	}
	if err := source.writeVR(sw, US); err != nil {
		t.Fatalf("writing vr: %v", err)
	}
	if err := source.writeValueLength(sw, US, 2); err != nil {
		t.Fatalf("writing length: %v", err)
	}
	if err := sw.UInt16(source.ByteOrder, 512); err != nil {
		t.Fatalf("writing value: %v", err)
	}

	dr, err := newDcmReader(bytes.NewReader(src.Bytes()))
	if err != nil {
		t.Fatalf("newDcmReader: %v", err)
	}

	var dst bytes.Buffer
	dw := newDcmWriter(&dst)
	if err := streamTrailingElements(dw, dr, source, target); err != nil {
		t.Fatalf("streamTrailingElements: %v", err)
	}

	out, err := newDcmReader(bytes.NewReader(dst.Bytes()))
	if err != nil {
		t.Fatalf("newDcmReader(out): %v", err)
	}
	gotTag, err := out.Tag(target.ByteOrder)
	if err != nil {
		t.Fatalf("reading tag: %v", err)
	}
	if gotTag != rowsTag {
		t.Fatalf("tag = %v, want %v", gotTag, rowsTag)
	}
	gotVR, err := target.readVR(out, gotTag)
	if err != nil {
		t.Fatalf("reading vr: %v", err)
	}
	if gotVR != US {
		t.Fatalf("vr = %v, want %v", gotVR, US)
	}
	length, err := target.readValueLength(out, gotVR)
	if err != nil {
		t.Fatalf("reading length: %v", err)
	}
	if length != 2 {
		t.Fatalf("length = %d, want 2", length)
	}
	value, err := out.UInt16(target.ByteOrder)
	if err != nil {
		t.Fatalf("reading value: %v", err)
	}
	if value != 512 {
		t.Errorf("value = %d, want 512 (byte pair should have been swapped across the endian change)", value)
	}
}
