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

import "github.com/pkg/errors"

// Sentinel errors identifying the taxonomy of failures this package can
// return. Callers distinguish them with errors.Is; wrapping preserves a
// stack trace via github.com/pkg/errors so a failure deep in the parser or
// serializer can still be diagnosed from a top-level caller's log line.
var (
	// ErrUnrecognizedFormat is returned by Open when none of the supported
	// file-format detection strategies recognize the stream.
	ErrUnrecognizedFormat = errors.New("dicom: unrecognized file format")

	// ErrParse is returned when the dataset is structurally malformed: a
	// truncated element, an invalid VR code, or a length field that runs
	// past the end of the stream.
	ErrParse = errors.New("dicom: parse error")

	// ErrBadEncapsulation is returned when encapsulated PixelData's item
	// framing (FFFE,E000 / FFFE,E00D / FFFE,E0DD) is malformed.
	ErrBadEncapsulation = errors.New("dicom: bad encapsulated pixel data")

	// ErrOddLengthSwap is returned by Save when a byte-swap is required
	// across a transcode (OW pixel data, or any element following it,
	// changing byte order) but the element's value has an odd length and
	// cannot be swapped in place.
	ErrOddLengthSwap = errors.New("dicom: odd-length element cannot be byte-swapped")

	// ErrWrite is returned when serialization fails after the destination
	// has already been partially written; the caller should treat the
	// destination as unusable and remove it.
	ErrWrite = errors.New("dicom: write error")

	// ErrScript is returned by the predicate package when a DSL expression
	// fails to parse or references an unknown operand.
	ErrScript = errors.New("dicom: predicate script error")

	// ErrImageRead is returned by the pixel package when frame decoding or
	// the window/level pipeline cannot produce a renderable image.
	ErrImageRead = errors.New("dicom: image read error")
)

// parseErrorf wraps ErrParse with added context, preserving errors.Is(err, ErrParse).
func parseErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParse, format, args...)
}

// writeErrorf wraps ErrWrite with added context, preserving errors.Is(err, ErrWrite).
func writeErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrWrite, format, args...)
}
