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

// dictEntry is one row of the public data dictionary.
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
type dictEntry struct {
	Tag  Tag
	VR   VR
	Name string
}

// dictionary indexes the public DICOM data dictionary by tag and by name. It
// covers the elements this library's accessors, flags, and pixel pipeline
// need to resolve by name; it is not a transcription of all of PS3.6.
var dictionary = buildDictionary([]dictEntry{
	{Tag{0x0002, 0x0000}, UL, "FileMetaInformationGroupLength"},
	{Tag{0x0002, 0x0001}, OB, "FileMetaInformationVersion"},
	{Tag{0x0002, 0x0002}, UI, "MediaStorageSOPClassUID"},
	{Tag{0x0002, 0x0003}, UI, "MediaStorageSOPInstanceUID"},
	{Tag{0x0002, 0x0010}, UI, "TransferSyntaxUID"},
	{Tag{0x0002, 0x0012}, UI, "ImplementationClassUID"},
	{Tag{0x0002, 0x0013}, SH, "ImplementationVersionName"},
	{Tag{0x0002, 0x0016}, AE, "SourceApplicationEntityTitle"},

	{Tag{0x0008, 0x0005}, CS, "SpecificCharacterSet"},
	{Tag{0x0008, 0x0008}, CS, "ImageType"},
	{Tag{0x0008, 0x0016}, UI, "SOPClassUID"},
	{Tag{0x0008, 0x0018}, UI, "SOPInstanceUID"},
	{Tag{0x0008, 0x0020}, DA, "StudyDate"},
	{Tag{0x0008, 0x0021}, DA, "SeriesDate"},
	{Tag{0x0008, 0x0030}, TM, "StudyTime"},
	{Tag{0x0008, 0x0050}, SH, "AccessionNumber"},
	{Tag{0x0008, 0x0060}, CS, "Modality"},
	{Tag{0x0008, 0x0070}, LO, "Manufacturer"},
	{Tag{0x0008, 0x1030}, LO, "StudyDescription"},
	{Tag{0x0008, 0x103E}, LO, "SeriesDescription"},
	{Tag{0x0008, 0x1060}, PN, "NameOfPhysiciansReadingStudy"},

	{Tag{0x0010, 0x0010}, PN, "PatientName"},
	{Tag{0x0010, 0x0020}, LO, "PatientID"},
	{Tag{0x0010, 0x0030}, DA, "PatientBirthDate"},
	{Tag{0x0010, 0x0040}, CS, "PatientSex"},

	{Tag{0x0018, 0x0050}, DS, "SliceThickness"},

	{Tag{0x0020, 0x000D}, UI, "StudyInstanceUID"},
	{Tag{0x0020, 0x000E}, UI, "SeriesInstanceUID"},
	{Tag{0x0020, 0x0011}, IS, "SeriesNumber"},
	{Tag{0x0020, 0x0012}, IS, "AcquisitionNumber"},
	{Tag{0x0020, 0x0013}, IS, "InstanceNumber"},

	{Tag{0x0028, 0x0002}, US, "SamplesPerPixel"},
	{Tag{0x0028, 0x0004}, CS, "PhotometricInterpretation"},
	{Tag{0x0028, 0x0006}, US, "PlanarConfiguration"},
	{Tag{0x0028, 0x0008}, IS, "NumberOfFrames"},
	{Tag{0x0028, 0x0010}, US, "Rows"},
	{Tag{0x0028, 0x0011}, US, "Columns"},
	{Tag{0x0028, 0x0100}, US, "BitsAllocated"},
	{Tag{0x0028, 0x0101}, US, "BitsStored"},
	{Tag{0x0028, 0x0102}, US, "HighBit"},
	{Tag{0x0028, 0x0103}, US, "PixelRepresentation"},
	{Tag{0x0028, 0x1050}, DS, "WindowCenter"},
	{Tag{0x0028, 0x1051}, DS, "WindowWidth"},
	{Tag{0x0028, 0x1052}, DS, "RescaleIntercept"},
	{Tag{0x0028, 0x1053}, DS, "RescaleSlope"},
	{Tag{0x0028, 0x2110}, CS, "LossyImageCompression"},
	{Tag{0x0028, 0x2050}, CS, "PresentationLUTShape"},

	{Tag{0x0040, 0xA043}, SQ, "ConceptNameCodeSequence"},
	{Tag{0x0040, 0xA168}, SQ, "ConceptCodeSequence"},
	{Tag{0x0008, 0x0100}, SH, "CodeValue"},
	{Tag{0x0008, 0x0102}, SH, "CodingSchemeDesignator"},
	{Tag{0x0008, 0x0104}, LO, "CodeMeaning"},

	{Tag{0x0004, 0x1220}, SQ, "DirectoryRecordSequence"},
	{Tag{0x0004, 0x1430}, CS, "DirectoryRecordType"},
	{Tag{0x0004, 0x1500}, CS, "ReferencedFileID"},

	{Tag{0x7FE0, 0x0010}, OW, "PixelData"},
})

type dictionaryData struct {
	byTag  map[Tag]dictEntry
	byName map[string]dictEntry
}

func buildDictionary(entries []dictEntry) dictionaryData {
	d := dictionaryData{
		byTag:  make(map[Tag]dictEntry, len(entries)),
		byName: make(map[string]dictEntry, len(entries)),
	}
	for _, e := range entries {
		d.byTag[e.Tag] = e
		d.byName[strings.ToLower(e.Name)] = e
	}
	return d
}

// LookupTag returns the dictionary entry for tag. Group-length elements
// (element 0x0000 of any group) always resolve to a synthetic UL entry even
// when not individually listed above.
func LookupTag(tag Tag) (name string, vr VR, err error) {
	if e, ok := dictionary.byTag[tag]; ok {
		return e.Name, e.VR, nil
	}
	if tag.Element == 0x0000 {
		return "GroupLength", UL, nil
	}
	if tag.IsPrivateCreator() {
		return "PrivateCreator", LO, nil
	}
	return "", VR{}, fmt.Errorf("tag %v not found in dictionary", tag)
}

// LookupTagByName resolves a dictionary entry by its keyword name
// (case-insensitive), as used by the tag address parser.
func LookupTagByName(name string) (Tag, VR, error) {
	e, ok := dictionary.byName[strings.ToLower(name)]
	if !ok {
		return Tag{}, VR{}, fmt.Errorf("no tag named %q in dictionary", name)
	}
	return e.Tag, e.VR, nil
}
