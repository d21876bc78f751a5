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

// SOP Class UIDs for Structured Report and Key Image Note storage, used to
// classify a parsed object for routing purposes.
// http://dicom.nema.org/medical/dicom/current/output/html/part04.html#sect_B.5
const (
	basicTextSRStorageUID       = "1.2.840.10008.5.1.4.1.1.88.11"
	enhancedSRStorageUID        = "1.2.840.10008.5.1.4.1.1.88.22"
	comprehensiveSRStorageUID   = "1.2.840.10008.5.1.4.1.1.88.33"
	comprehensive3DSRStorageUID = "1.2.840.10008.5.1.4.1.1.88.34"
	extensibleSRStorageUID      = "1.2.840.10008.5.1.4.1.1.88.35"
	keyObjectSelectionUID       = "1.2.840.10008.5.1.4.1.1.88.59"
)

var srSOPClasses = map[string]bool{
	basicTextSRStorageUID:       true,
	enhancedSRStorageUID:        true,
	comprehensiveSRStorageUID:   true,
	comprehensive3DSRStorageUID: true,
	extensibleSRStorageUID:      true,
}

var kinSOPClasses = map[string]bool{
	keyObjectSelectionUID: true,
}

// Teaching-file-collection concept-code values that classify an SR/KIN
// document's purpose, as used by the RSNA Clinical Trial Exporter manifest
// convention this object model descends from.
const (
	tceManifestCode1    = "TCE001"
	tceManifestCode2    = "TCE002"
	tceManifestCode3    = "TCE007"
	tceAdditionalTFInfo = "TCE006"
)

var conceptNameCodeSequenceTag = []Tag{{0x0040, 0xA043}, {0x0008, 0x0100}}

// computeFlags populates the boolean classification flags cached on a File
// once at parse time, per §4.7.
func (f *File) computeFlags() {
	f.IsImage = f.cursor.Valid
	f.IsEncapsulated = f.IsImage && f.TransferSyntax.Encapsulated

	mediaSOPClass := f.GetString([]Tag{{0x0002, 0x0002}}, "")
	f.IsDICOMDIR = IsDICOMDIRSOPClass(mediaSOPClass)

	sopClass := f.GetString([]Tag{{0x0008, 0x0016}}, "")
	f.IsSR = srSOPClasses[sopClass] || srSOPClasses[mediaSOPClass]
	f.IsKIN = kinSOPClasses[sopClass] || kinSOPClasses[mediaSOPClass]

	conceptCode := f.GetString(conceptNameCodeSequenceTag, "")
	f.IsManifest = f.IsKIN && (conceptCode == tceManifestCode1 || conceptCode == tceManifestCode2 || conceptCode == tceManifestCode3)
	f.IsAdditionalTFInfo = f.IsSR && conceptCode == tceAdditionalTFInfo
}
