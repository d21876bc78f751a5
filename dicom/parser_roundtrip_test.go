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

	"github.com/google/go-cmp/cmp"
)

// buildTestStream assembles a minimal Part 10 stream (preamble, magic,
// file-meta group, dataset) under the given target syntax, with no
// PixelData, using the same write primitives the serializer itself uses.
func buildTestStream(t *testing.T, target TransferSyntax, ds *Dataset) []byte {
	t.Helper()

	var buf bytes.Buffer
	dw := newDcmWriter(&buf)
	if err := dw.Bytes(make([]byte, preambleSize)); err != nil {
		t.Fatalf("writing preamble: %v", err)
	}
	if err := dw.String(string(dicmMagic[:])); err != nil {
		t.Fatalf("writing magic: %v", err)
	}

	meta := metaForSave(NewDataset(), target.UID)
	if err := writeDataset(dw, ExplicitVRLittleEndian, meta); err != nil {
		t.Fatalf("writing file meta: %v", err)
	}
	if err := writeDataset(dw, target, ds); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	return buf.Bytes()
}

func samplePayload() *Dataset {
	ds := NewDataset()
	ds.Append(&Element{Tag: Tag{0x0010, 0x0020}, VR: LO, Value: []string{"ANON1234"}, Length: 8})
	ds.Append(&Element{Tag: Tag{0x0008, 0x0060}, VR: CS, Value: []string{"CT"}, Length: 2})
	ds.Append(&Element{Tag: Tag{0x0028, 0x0010}, VR: US, Value: []int64{512}, Length: 2})
	ds.Append(&Element{Tag: Tag{0x0020, 0x000D}, VR: UI, Value: []string{"1.2.840.99999.1"}, Length: 16})
	return ds
}

// TestOpenParsesDataset confirms a hand-assembled stream parses into the
// elements it was built from.
func TestOpenParsesDataset(t *testing.T) {
	stream := buildTestStream(t, ExplicitVRLittleEndian, samplePayload())

	f, err := Open(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	if got := f.GetString([]Tag{{0x0010, 0x0020}}, ""); got != "ANON1234" {
		t.Errorf("PatientID = %q, want ANON1234", got)
	}
	if got := f.GetString([]Tag{{0x0008, 0x0060}}, ""); got != "CT" {
		t.Errorf("Modality = %q, want CT", got)
	}
	if got := f.GetInt([]Tag{{0x0028, 0x0010}}, 0); got != 512 {
		t.Errorf("Rows = %d, want 512", got)
	}
	if f.TransferSyntax.UID != ExplicitVRLittleEndianUID {
		t.Errorf("TransferSyntax.UID = %q, want %q", f.TransferSyntax.UID, ExplicitVRLittleEndianUID)
	}
}

// TestSaveRoundTrip exercises testable property 2 from §8: parsing a saved
// object back under its own transfer syntax reproduces the same dataset.
func TestSaveRoundTrip(t *testing.T) {
	for _, ts := range []TransferSyntax{ImplicitVRLittleEndian, ExplicitVRLittleEndian, ExplicitVRBigEndian} {
		t.Run(ts.UID, func(t *testing.T) {
			stream := buildTestStream(t, ts, samplePayload())

			f, err := Open(bytes.NewReader(stream))
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer f.Close()

			var out bytes.Buffer
			if err := f.Save(&out, "", false); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			f2, err := Open(bytes.NewReader(out.Bytes()))
			if err != nil {
				t.Fatalf("re-Open() error = %v", err)
			}
			defer f2.Close()

			if diff := cmp.Diff(f.Dataset, f2.Dataset); diff != "" {
				t.Errorf("Dataset changed across a save/reopen round trip (-original +reopened):\n%s", diff)
			}
		})
	}
}

// TestSaveTranscodesTransferSyntax confirms Save can change the target
// syntax and still reproduce equivalent element values.
func TestSaveTranscodesTransferSyntax(t *testing.T) {
	stream := buildTestStream(t, ImplicitVRLittleEndian, samplePayload())

	f, err := Open(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := f.Save(&out, ExplicitVRBigEndianUID, false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f2, err := Open(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("re-Open() error = %v", err)
	}
	defer f2.Close()

	if f2.TransferSyntax.UID != ExplicitVRBigEndianUID {
		t.Fatalf("TransferSyntax.UID = %q, want %q", f2.TransferSyntax.UID, ExplicitVRBigEndianUID)
	}
	if got := f2.GetString([]Tag{{0x0010, 0x0020}}, ""); got != "ANON1234" {
		t.Errorf("PatientID = %q, want ANON1234", got)
	}
	if got := f2.GetInt([]Tag{{0x0028, 0x0010}}, 0); got != 512 {
		t.Errorf("Rows = %d, want 512", got)
	}
}
