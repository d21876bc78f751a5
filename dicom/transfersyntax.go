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
	"encoding/binary"
	"fmt"
	"math"
)

// Well-known transfer syntax UIDs.
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	ImplicitVRLittleEndianUID         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndianUID         = "1.2.840.10008.1.2.1"
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
	ExplicitVRBigEndianUID            = "1.2.840.10008.1.2.2"
	JPEGBaselineUID                   = "1.2.840.10008.1.2.4.50"
	JPEGExtendedUID                   = "1.2.840.10008.1.2.4.51"
	JPEGLosslessUID                   = "1.2.840.10008.1.2.4.57"
	JPEGLosslessSV1UID                = "1.2.840.10008.1.2.4.70"
	JPEGLSLosslessUID                 = "1.2.840.10008.1.2.4.80"
	JPEGLSNearLosslessUID             = "1.2.840.10008.1.2.4.81"
	JPEG2000LosslessUID               = "1.2.840.10008.1.2.4.90"
	JPEG2000UID                       = "1.2.840.10008.1.2.4.91"
	RLELosslessUID                    = "1.2.840.10008.1.2.5"

	// DICOMDIRSOPClassUID identifies a Media Storage Directory (DICOMDIR) file.
	DICOMDIRSOPClassUID = "1.2.840.10008.1.3.10"
)

const (
	tagSize = 4
	vrSize  = 2
)

// TransferSyntax is the named tuple of the data model: a UID, a byte order, whether
// VRs are written explicitly in the stream, and whether PixelData is encapsulated.
type TransferSyntax struct {
	UID          string
	ByteOrder    binary.ByteOrder
	Explicit     bool
	Deflated     bool
	Encapsulated bool
}

var (
	// ImplicitVRLittleEndian is the default syntax for a file with no file-meta group.
	ImplicitVRLittleEndian = TransferSyntax{UID: ImplicitVRLittleEndianUID, ByteOrder: binary.LittleEndian}
	// ExplicitVRLittleEndian is always used for the file-meta group itself.
	ExplicitVRLittleEndian = TransferSyntax{UID: ExplicitVRLittleEndianUID, ByteOrder: binary.LittleEndian, Explicit: true}
	// ExplicitVRBigEndian is retired but still recognized for legacy files.
	ExplicitVRBigEndian = TransferSyntax{UID: ExplicitVRBigEndianUID, ByteOrder: binary.BigEndian, Explicit: true}

	transferSyntaxTable = map[string]TransferSyntax{
		ImplicitVRLittleEndianUID:         ImplicitVRLittleEndian,
		ExplicitVRLittleEndianUID:         ExplicitVRLittleEndian,
		ExplicitVRBigEndianUID:            ExplicitVRBigEndian,
		DeflatedExplicitVRLittleEndianUID: {UID: DeflatedExplicitVRLittleEndianUID, ByteOrder: binary.LittleEndian, Explicit: true, Deflated: true},
		JPEGBaselineUID:                   {UID: JPEGBaselineUID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		JPEGExtendedUID:                   {UID: JPEGExtendedUID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		JPEGLosslessUID:                   {UID: JPEGLosslessUID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		JPEGLosslessSV1UID:                {UID: JPEGLosslessSV1UID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		JPEGLSLosslessUID:                 {UID: JPEGLSLosslessUID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		JPEGLSNearLosslessUID:             {UID: JPEGLSNearLosslessUID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		JPEG2000LosslessUID:               {UID: JPEG2000LosslessUID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		JPEG2000UID:                       {UID: JPEG2000UID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
		RLELosslessUID:                    {UID: RLELosslessUID, ByteOrder: binary.LittleEndian, Explicit: true, Encapsulated: true},
	}
)

// LookupTransferSyntax resolves a transfer syntax UID to its parameters. A UID not in
// the table falls back to Explicit VR Little Endian, per PS3.5 Annex A.4: any
// transfer syntax not otherwise recognized is still required to be explicit-VR
// little endian for a standard-conforming encoder.
func LookupTransferSyntax(uid string) TransferSyntax {
	if ts, ok := transferSyntaxTable[uid]; ok {
		return ts
	}
	return ExplicitVRLittleEndian
}

// elementSize returns the total on-disk byte count of a data element header plus its
// value under this syntax's VR-encoding rules, or UndefinedLength if valueLength is
// undefined.
func (ts TransferSyntax) elementSize(vr VR, valueLength uint32) uint32 {
	if valueLength == UndefinedLength {
		return UndefinedLength
	}
	if !ts.Explicit {
		return tagSize + 4 /*length*/ + valueLength
	}
	if vr.has32BitLength() {
		return tagSize + vrSize + 2 /*reserved*/ + 4 /*32-bit length*/ + valueLength
	}
	return tagSize + vrSize + 2 /*16-bit length*/ + valueLength
}

// readVR determines an element's VR: read from the stream under explicit-VR
// encoding, or looked up by tag in the public dictionary under implicit-VR
// encoding (PS3.5 Annex A.1: implicit VR elements carry no VR in the stream).
func (ts TransferSyntax) readVR(dr *dcmReader, tag Tag) (VR, error) {
	if !ts.Explicit {
		_, vr, err := LookupTag(tag)
		if err != nil {
			// An element missing from the dictionary under implicit VR has no
			// way to determine its VR; UN (unknown) is the conventional fallback.
			return UN, nil
		}
		return vr, nil
	}

	vrString, err := dr.String(vrSize)
	if err != nil {
		return VR{}, fmt.Errorf("reading vr: %v", err)
	}
	return LookupVR(vrString)
}

// readValueLength reads an element's value-length field according to this
// syntax's explicit/implicit and 16/32-bit length rules.
func (ts TransferSyntax) readValueLength(dr *dcmReader, vr VR) (uint32, error) {
	if !ts.Explicit {
		return dr.UInt32(ts.ByteOrder)
	}

	if vr.has32BitLength() {
		if _, err := dr.UInt16(ts.ByteOrder); err != nil {
			return 0, fmt.Errorf("reading reserved field: %v", err)
		}
		length, err := dr.UInt32(ts.ByteOrder)
		if err != nil {
			return 0, fmt.Errorf("reading 32 bit length: %v", err)
		}
		return length, nil
	}

	length, err := dr.UInt16(ts.ByteOrder)
	if err != nil {
		return 0, fmt.Errorf("reading 16 bit length: %v", err)
	}
	return uint32(length), nil
}

// writeVR writes an element's VR code if this syntax is explicit; implicit
// VR encoding omits it entirely.
func (ts TransferSyntax) writeVR(dw *dcmWriter, vr VR) error {
	if !ts.Explicit {
		return nil
	}
	return dw.String(vr.Name)
}

// writeValueLength writes an element's value-length field according to this
// syntax's explicit/implicit and 16/32-bit length rules.
func (ts TransferSyntax) writeValueLength(dw *dcmWriter, vr VR, valueLength uint32) error {
	if !ts.Explicit {
		return dw.UInt32(ts.ByteOrder, valueLength)
	}

	if vr.has32BitLength() {
		if err := dw.UInt16(ts.ByteOrder, 0); err != nil {
			return fmt.Errorf("writing reserved field: %v", err)
		}
		if err := dw.UInt32(ts.ByteOrder, valueLength); err != nil {
			return fmt.Errorf("writing 32 bit length: %v", err)
		}
		return nil
	}

	if valueLength > math.MaxUint16 {
		return fmt.Errorf("data element value length exceeds unsigned 16-bit length")
	}
	if err := dw.UInt16(ts.ByteOrder, uint16(valueLength)); err != nil {
		return fmt.Errorf("writing 16 bit length: %v", err)
	}
	return nil
}
