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

// uidNames maps well-known UIDs (transfer syntaxes, SOP classes) to their
// standard display names, per PS3.6 Annex A.
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html
var uidNames = map[string]string{
	ImplicitVRLittleEndianUID:         "Implicit VR Little Endian",
	ExplicitVRLittleEndianUID:         "Explicit VR Little Endian",
	DeflatedExplicitVRLittleEndianUID: "Deflated Explicit VR Little Endian",
	ExplicitVRBigEndianUID:            "Explicit VR Big Endian (Retired)",
	JPEGBaselineUID:                   "JPEG Baseline (Process 1)",
	JPEGExtendedUID:                   "JPEG Extended (Process 2 & 4)",
	JPEGLosslessUID:                   "JPEG Lossless, Non-Hierarchical (Process 14)",
	JPEGLosslessSV1UID:                "JPEG Lossless, Non-Hierarchical, First-Order Prediction",
	JPEGLSLosslessUID:                 "JPEG-LS Lossless Image Compression",
	JPEGLSNearLosslessUID:             "JPEG-LS Lossy (Near-Lossless) Image Compression",
	JPEG2000LosslessUID:               "JPEG 2000 Image Compression (Lossless Only)",
	JPEG2000UID:                       "JPEG 2000 Image Compression",
	RLELosslessUID:                    "RLE Lossless",
	DICOMDIRSOPClassUID:               "Media Storage Directory Storage",
}

// UIDName returns the standard display name for uid, or "" if it is unknown.
func UIDName(uid string) string {
	return uidNames[uid]
}

// IsDICOMDIRSOPClass reports whether uid identifies the Media Storage
// Directory Storage SOP class, i.e. whether a file using it as its
// MediaStorageSOPClassUID is a DICOMDIR.
func IsDICOMDIRSOPClass(uid string) bool {
	return uid == DICOMDIRSOPClassUID
}
