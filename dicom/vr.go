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

// VRKind groups VRs that share an on-disk encoding strategy.
type VRKind int

const (
	// VRKindText is for value fields interpreted as delimited text with space padding.
	VRKindText VRKind = iota

	// VRKindBinaryNumber is for value fields parsed as fixed-width binary numbers.
	VRKindBinaryNumber

	// VRKindBulkData groups large binary/text fields (OB, OW, UN, UT, ...).
	VRKindBulkData

	// VRKindUID is for VR: UI. Padded with NUL instead of space.
	VRKindUID

	// VRKindSequence is for VR: SQ.
	VRKindSequence

	// VRKindTag is for VR: AT. Distinct from VRKindBinaryNumber since each value is a tag.
	VRKindTag
)

// UndefinedLength marks a sequence, item, or encapsulated PixelData element whose
// length is not known ahead of encoding.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xffffffff

// VR models a DICOM Value Representation.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name is the 2-character VR code as it appears in an explicit-VR stream.
	Name string
	Kind VRKind
}

var vrByName = map[string]VR{}

func newVR(name string, kind VRKind) VR {
	vr := VR{name, kind}
	vrByName[name] = vr
	return vr
}

// LookupVR returns the VR registered under the given 2-character code.
func LookupVR(name string) (VR, error) {
	vr, ok := vrByName[name]
	if !ok {
		return VR{}, fmt.Errorf("unknown vr name: %q", name)
	}
	return vr, nil
}

// VR list per http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	CS = newVR("CS", VRKindText)
	SH = newVR("SH", VRKindText)
	LO = newVR("LO", VRKindText)
	ST = newVR("ST", VRKindText)
	LT = newVR("LT", VRKindText)
	AS = newVR("AS", VRKindText)
	PN = newVR("PN", VRKindText)
	AE = newVR("AE", VRKindText)
	DA = newVR("DA", VRKindText)
	TM = newVR("TM", VRKindText)
	DT = newVR("DT", VRKindText)
	IS = newVR("IS", VRKindText)
	DS = newVR("DS", VRKindText)

	SS = newVR("SS", VRKindBinaryNumber)
	US = newVR("US", VRKindBinaryNumber)
	SL = newVR("SL", VRKindBinaryNumber)
	UL = newVR("UL", VRKindBinaryNumber)
	FL = newVR("FL", VRKindBinaryNumber)
	FD = newVR("FD", VRKindBinaryNumber)

	OB = newVR("OB", VRKindBulkData)
	OD = newVR("OD", VRKindBulkData)
	OL = newVR("OL", VRKindBulkData)
	OW = newVR("OW", VRKindBulkData)
	OF = newVR("OF", VRKindBulkData)
	UC = newVR("UC", VRKindBulkData)
	UN = newVR("UN", VRKindBulkData)
	UR = newVR("UR", VRKindBulkData)
	UT = newVR("UT", VRKindBulkData)

	AT = newVR("AT", VRKindTag)
	UI = newVR("UI", VRKindUID)
	SQ = newVR("SQ", VRKindSequence)
)

// has32BitLength reports whether, under explicit-VR encoding, this VR's value length
// is stored as a 4-byte field (preceded by 2 reserved bytes) rather than a 2-byte field.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (vr VR) has32BitLength() bool {
	switch vr {
	case OB, OD, OF, OL, OW, SQ, UC, UR, UT, UN:
		return true
	default:
		return false
	}
}
