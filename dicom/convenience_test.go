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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvenienceAccessorsPlainObject(t *testing.T) {
	ds := NewDataset()
	ds.Append(&Element{Tag: Tag{0x0010, 0x0010}, VR: PN, Value: []string{"Doe^Jane"}})
	ds.Append(&Element{Tag: Tag{0x0008, 0x0060}, VR: CS, Value: []string{"CT"}})
	ds.Append(&Element{Tag: Tag{0x0028, 0x0010}, VR: US, Value: []int64{256}})
	f := &File{MetaDataset: NewDataset(), Dataset: ds}
	f.computeFlags()

	require.False(t, f.IsDICOMDIR)
	require.Equal(t, "Doe^Jane", f.GetPatientName())
	require.Equal(t, "CT", f.GetModality())
	require.EqualValues(t, 256, f.GetRows())
}

// TestConvenienceAccessorsDICOMDIRRouting exercises testable property 7
// (§8): patient/study-level accessors on a DICOMDIR read the first
// DirectoryRecordSequence item instead of the top-level dataset.
func TestConvenienceAccessorsDICOMDIRRouting(t *testing.T) {
	record := &Dataset{Elements: []*Element{
		{Tag: Tag{0x0010, 0x0010}, VR: PN, Value: []string{"Roe^Richard"}},
		{Tag: Tag{0x0010, 0x0020}, VR: LO, Value: []string{"MRN0001"}},
	}}
	ds := NewDataset()
	ds.Append(&Element{Tag: directoryRecordSequenceTag, VR: SQ, Value: []*Dataset{record}})
	// A top-level PatientName is present too, and must be ignored in favor
	// of the routed one: this is the behavior the routing rule exists for.
	ds.Append(&Element{Tag: Tag{0x0010, 0x0010}, VR: PN, Value: []string{"WrongTopLevelName"}})

	meta := NewDataset()
	meta.Append(&Element{Tag: Tag{0x0002, 0x0002}, VR: UI, Value: []string{DICOMDIRSOPClassUID}})

	f := &File{MetaDataset: meta, Dataset: ds}
	f.computeFlags()

	require.True(t, f.IsDICOMDIR)
	require.Equal(t, "Roe^Richard", f.GetPatientName())
	require.Equal(t, "MRN0001", f.GetPatientID())
}

// TestConvenienceAccessorsAbsentElementDefaults matches DicomObject.java's
// own catch-block defaults for these getters: a missing element is not the
// same as a zero-valued one.
func TestConvenienceAccessorsAbsentElementDefaults(t *testing.T) {
	f := &File{MetaDataset: NewDataset(), Dataset: NewDataset()}
	f.computeFlags()

	require.EqualValues(t, -1, f.GetRows())
	require.EqualValues(t, -1, f.GetColumns())
	require.EqualValues(t, 12, f.GetBitsStored())
	require.EqualValues(t, 0, f.GetNumberOfFrames())
	require.EqualValues(t, 1, f.GetPlanarConfiguration())
	require.Equal(t, "", f.GetBodyPartExamined())
}
