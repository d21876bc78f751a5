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

// Convenience accessors mirroring the common per-object getters of the
// original RSNA CTP DicomObject: thin wrappers over GetString/GetInt that
// hide their tag addresses behind names matching what callers actually ask
// for. Patient-level accessors honor the DICOMDIR routing rule of §3: for a
// DICOMDIR, they read the first DirectoryRecordSequence item instead of the
// top-level dataset.

var directoryRecordSequenceTag = Tag{0x0004, 0x1220}

// dicomdirPath builds the DirectoryRecordSequence-relative path used to
// route patient/study-level accessors on a DICOMDIR.
func dicomdirPath(leaf Tag) []Tag {
	return []Tag{directoryRecordSequenceTag, leaf}
}

// routedString resolves leaf through DirectoryRecordSequence when this File
// is a DICOMDIR, or directly otherwise.
func (f *File) routedString(leaf Tag, def string) string {
	if f.IsDICOMDIR {
		return f.GetString(dicomdirPath(leaf), def)
	}
	return f.GetString([]Tag{leaf}, def)
}

func (f *File) GetPatientName() string       { return f.routedString(Tag{0x0010, 0x0010}, "") }
func (f *File) GetPatientID() string         { return f.routedString(Tag{0x0010, 0x0020}, "") }
func (f *File) GetAccessionNumber() string   { return f.routedString(Tag{0x0008, 0x0050}, "") }
func (f *File) GetModality() string          { return f.routedString(Tag{0x0008, 0x0060}, "") }
func (f *File) GetStudyDate() string         { return f.routedString(Tag{0x0008, 0x0020}, "") }
func (f *File) GetStudyTime() string         { return f.routedString(Tag{0x0008, 0x0030}, "") }
func (f *File) GetStudyDescription() string  { return f.routedString(Tag{0x0008, 0x1030}, "") }
func (f *File) GetSeriesDescription() string { return f.routedString(Tag{0x0008, 0x103E}, "") }
func (f *File) GetStudyInstanceUID() string  { return f.GetString([]Tag{{0x0020, 0x000D}}, "") }
func (f *File) GetSeriesInstanceUID() string { return f.GetString([]Tag{{0x0020, 0x000E}}, "") }

func (f *File) GetSOPClassUID() string { return f.GetString([]Tag{{0x0008, 0x0016}}, "") }
func (f *File) GetMediaStorageSOPClassUID() string {
	return f.GetString([]Tag{{0x0002, 0x0002}}, "")
}
func (f *File) GetSOPInstanceUID() string { return f.GetString([]Tag{{0x0008, 0x0018}}, "") }
func (f *File) GetMediaStorageSOPInstanceUID() string {
	return f.GetString([]Tag{{0x0002, 0x0003}}, "")
}

func (f *File) GetSeriesNumber() int64      { return f.GetInt([]Tag{{0x0020, 0x0011}}, 0) }
func (f *File) GetAcquisitionNumber() int64 { return f.GetInt([]Tag{{0x0020, 0x0012}}, 0) }
func (f *File) GetInstanceNumber() int64    { return f.GetInt([]Tag{{0x0020, 0x0013}}, 0) }

func (f *File) GetBodyPartExamined() string { return f.GetString([]Tag{{0x0018, 0x0015}}, "") }

// GetRows and GetColumns default to -1 when absent, matching the original
// getRows/getColumns: a missing dimension is not the same as a zero one.
func (f *File) GetRows() int64    { return f.GetInt([]Tag{{0x0028, 0x0010}}, -1) }
func (f *File) GetColumns() int64 { return f.GetInt([]Tag{{0x0028, 0x0011}}, -1) }

// GetBitsStored defaults to 12, the original's fallback when BitsStored is
// absent, rather than an unset-looking 0.
func (f *File) GetBitsStored() int64 {
	return f.GetInt([]Tag{{0x0028, 0x0101}}, 12)
}

// GetNumberOfFrames defaults to 0 when absent, matching the original: 1
// would misrepresent "absent" as "exactly one frame".
func (f *File) GetNumberOfFrames() int64 { return f.GetInt([]Tag{{0x0028, 0x0008}}, 0) }
func (f *File) GetPhotometricInterpretation() string {
	return f.GetString([]Tag{{0x0028, 0x0004}}, "")
}
func (f *File) GetSamplesPerPixel() int64 { return f.GetInt([]Tag{{0x0028, 0x0002}}, 1) }

// GetPlanarConfiguration defaults to 1 when absent, matching the original.
func (f *File) GetPlanarConfiguration() int64 {
	return f.GetInt([]Tag{{0x0028, 0x0006}}, 1)
}
