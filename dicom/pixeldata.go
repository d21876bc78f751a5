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
	"io"

	"github.com/pkg/errors"
)

// streamPixelData re-emits the PixelData header in the target encoding and
// copies its value from the source stream without buffering the whole
// element in memory: item-by-item for encapsulated data, or as a single
// byte-swapped copy for native data crossing a byte-order change.
func streamPixelData(dw *dcmWriter, dr *dcmReader, source, target TransferSyntax, cursor Cursor) error {
	sourceEncapsulated := cursor.Length == UndefinedLength

	vr := cursor.VR
	length := cursor.Length
	if target.Encapsulated {
		vr = OB
		length = UndefinedLength
	}

	if err := dw.Tag(target.ByteOrder, PixelDataTag); err != nil {
		return errors.Wrap(err, "writing pixel data tag")
	}
	if err := target.writeVR(dw, vr); err != nil {
		return errors.Wrap(err, "writing pixel data vr")
	}
	if err := target.writeValueLength(dw, vr, length); err != nil {
		return errors.Wrap(err, "writing pixel data length")
	}

	switch {
	case sourceEncapsulated && target.Encapsulated:
		return copyEncapsulatedItems(dw, dr, source, target)
	case sourceEncapsulated && !target.Encapsulated:
		return errors.Wrap(ErrBadEncapsulation, "cannot save encapsulated pixel data to a non-encapsulated transfer syntax without decompression")
	case !sourceEncapsulated && target.Encapsulated:
		return errors.Wrap(ErrBadEncapsulation, "cannot save native pixel data to an encapsulated transfer syntax without compression")
	default:
		return copyNativePixelData(dw, dr, source, target, cursor.VR, cursor.Length)
	}
}

// copyEncapsulatedItems copies an encapsulated PixelData's Item/
// SequenceDelimitationItem framing verbatim, re-encoding only the
// framing tags and lengths, never the compressed fragment bytes.
func copyEncapsulatedItems(dw *dcmWriter, dr *dcmReader, source, target TransferSyntax) error {
	for {
		tag, err := dr.Tag(source.ByteOrder)
		if err != nil {
			return errors.Wrap(err, "reading item framing")
		}

		if tag == TagSequenceDelimitationItem {
			if _, err := dr.UInt32(source.ByteOrder); err != nil {
				return errors.Wrap(err, "reading sequence delimiter length")
			}
			return dw.Delimiter(target.ByteOrder, TagSequenceDelimitationItem)
		}
		if tag != TagItem {
			return errors.Wrapf(ErrBadEncapsulation, "expected item or sequence delimiter, got %v", tag)
		}

		length, err := dr.UInt32(source.ByteOrder)
		if err != nil {
			return errors.Wrap(err, "reading item length")
		}
		if length == UndefinedLength {
			return errors.Wrap(ErrBadEncapsulation, "item has undefined length")
		}

		if err := dw.Tag(target.ByteOrder, TagItem); err != nil {
			return errors.Wrap(err, "writing item tag")
		}
		if err := dw.UInt32(target.ByteOrder, length); err != nil {
			return errors.Wrap(err, "writing item length")
		}
		if err := copyBytes(dw, dr, length); err != nil {
			return errors.Wrap(err, "copying item fragment")
		}
	}
}

// copyNativePixelData copies a native PixelData value verbatim, swapping
// each pair of bytes when the save target's byte order differs from the
// source's and the value is 16-bit pixel data (VR OW).
func copyNativePixelData(dw *dcmWriter, dr *dcmReader, source, target TransferSyntax, vr VR, length uint32) error {
	swap := vr == OW && source.ByteOrder != target.ByteOrder
	if swap && length%2 != 0 {
		return errors.Wrapf(ErrOddLengthSwap, "pixel data length %d", length)
	}
	return copyBytesSwapped(dw, dr, length, swap)
}

// streamTrailingElements copies any elements following PixelData one at a
// time, re-encoding their headers in the target syntax, until the source is
// exhausted or the magic terminator tag is reached.
func streamTrailingElements(dw *dcmWriter, dr *dcmReader, source, target TransferSyntax) error {
	for {
		tag, err := dr.Tag(source.ByteOrder)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading trailing element tag")
		}
		if tag == magicTerminatorTag {
			return nil
		}

		vr, err := source.readVR(dr, tag)
		if err != nil {
			return errors.Wrap(err, "reading trailing element vr")
		}
		length, err := source.readValueLength(dr, vr)
		if err != nil {
			return errors.Wrap(err, "reading trailing element length")
		}
		if length == UndefinedLength {
			return errors.Wrapf(ErrParse, "trailing element %v has undefined length", tag)
		}

		if err := dw.Tag(target.ByteOrder, tag); err != nil {
			return errors.Wrap(err, "writing trailing element tag")
		}
		if err := target.writeVR(dw, vr); err != nil {
			return errors.Wrap(err, "writing trailing element vr")
		}
		if err := target.writeValueLength(dw, vr, length); err != nil {
			return errors.Wrap(err, "writing trailing element length")
		}

		// Unlike copyNativePixelData's VR-gated swap, every trailing element
		// is swapped on a byte-order change, with no VR check: this follows
		// writeValueTo's handling of the elements following PixelData.
		swap := source.ByteOrder != target.ByteOrder
		if swap && length%2 != 0 {
			return errors.Wrapf(ErrOddLengthSwap, "trailing element %v length %d", tag, length)
		}
		if err := copyBytesSwapped(dw, dr, length, swap); err != nil {
			return errors.Wrap(err, "copying trailing element value")
		}
	}
}

func copyBytes(dw *dcmWriter, dr *dcmReader, length uint32) error {
	return copyBytesSwapped(dw, dr, length, false)
}

const copyChunkSize = 1 << 20

// copyBytesSwapped streams length bytes from dr to dw in bounded chunks,
// swapping each adjacent byte pair in place when swap is true.
func copyBytesSwapped(dw *dcmWriter, dr *dcmReader, length uint32, swap bool) error {
	remaining := int64(length)
	for remaining > 0 {
		chunk := int64(copyChunkSize)
		if remaining < chunk {
			chunk = remaining
		}
		buf, err := dr.Bytes(chunk)
		if err != nil {
			return err
		}
		if swap {
			swapBytePairs(buf)
		}
		if err := dw.Bytes(buf); err != nil {
			return err
		}
		remaining -= chunk
	}
	return nil
}

func swapBytePairs(b []byte) {
	for i := 0; i+1 < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
}
