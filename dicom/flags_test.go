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

import "testing"

func newFlagsTestFile(elements ...*Element) *File {
	ds := NewDataset()
	for _, e := range elements {
		ds.Append(e)
	}
	return &File{MetaDataset: NewDataset(), Dataset: ds}
}

func TestComputeFlagsDICOMDIR(t *testing.T) {
	f := newFlagsTestFile()
	f.MetaDataset.Append(&Element{Tag: Tag{0x0002, 0x0002}, VR: UI, Value: []string{DICOMDIRSOPClassUID}})
	f.computeFlags()

	if !f.IsDICOMDIR {
		t.Error("IsDICOMDIR = false, want true")
	}
}

func TestComputeFlagsStructuredReportManifest(t *testing.T) {
	f := newFlagsTestFile(
		&Element{Tag: Tag{0x0008, 0x0016}, VR: UI, Value: []string{keyObjectSelectionUID}},
		&Element{Tag: Tag{0x0040, 0xA043}, VR: SQ, Value: []*Dataset{
			{Elements: []*Element{{Tag: Tag{0x0008, 0x0100}, VR: SH, Value: []string{tceManifestCode1}}}},
		}},
	)
	f.computeFlags()

	if !f.IsKIN {
		t.Error("IsKIN = false, want true")
	}
	if !f.IsManifest {
		t.Error("IsManifest = false, want true")
	}
	if f.IsAdditionalTFInfo {
		t.Error("IsAdditionalTFInfo = true, want false")
	}
}

func TestComputeFlagsPlainObjectHasNoClassificationFlags(t *testing.T) {
	f := newFlagsTestFile(&Element{Tag: Tag{0x0008, 0x0060}, VR: CS, Value: []string{"CT"}})
	f.computeFlags()

	if f.IsDICOMDIR || f.IsSR || f.IsKIN || f.IsManifest || f.IsAdditionalTFInfo {
		t.Errorf("expected no classification flags set, got %+v", f)
	}
}
