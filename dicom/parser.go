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
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode"

	"golang.org/x/text/encoding"
)

// preamble is the fixed 128-byte block preceding the "DICM" magic in a
// standard Part 10 file. Its content is unspecified by the standard; only
// its length and the following magic matter for detection.
const preambleSize = 128

var dicmMagic = [4]byte{'D', 'I', 'C', 'M'}

// SpecificCharacterSetTag names the element whose value selects the decoder
// used for subsequent string decoding within its dataset scope.
var SpecificCharacterSetTag = Tag{0x0008, 0x0005}

// Cursor captures the parser's position at the point it stopped: either at
// PixelData, or at end of stream. Save uses it to resume streaming the
// remainder of the source without buffering it.
type Cursor struct {
	Position int64
	Tag      Tag
	VR       VR
	Length   uint32
	Valid    bool // false if the parser ran to EOF without stopping at an element
}

// File is a parsed DICOM object: its file-meta group, its main dataset up to
// (but not including) the value of PixelData, and enough state to resume
// reading or re-serialize the remainder of the source.
type File struct {
	source io.ReadSeeker
	closer io.Closer

	MetaDataset *Dataset
	Dataset     *Dataset

	TransferSyntax TransferSyntax
	entryPos       int64 // stream position at Open

	cursor Cursor

	IsImage            bool
	IsEncapsulated     bool
	IsDICOMDIR         bool
	IsSR               bool
	IsKIN              bool
	IsManifest         bool
	IsAdditionalTFInfo bool
}

// Open parses a DICOM object from a seekable source. The source must remain
// open and positioned as File left it until the caller is done with File;
// Close releases it if it also implements io.Closer.
func Open(source io.ReadSeeker) (*File, error) {
	entryPos, err := source.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, parseErrorf("locating start of stream: %v", err)
	}

	dr, err := newDcmReader(source)
	if err != nil {
		return nil, parseErrorf("%v", err)
	}

	hasPreamble, err := detectPreamble(dr)
	if err != nil {
		return nil, parseErrorf("detecting preamble: %v", err)
	}

	f := &File{source: source, entryPos: entryPos}
	if c, ok := source.(io.Closer); ok {
		f.closer = c
	}

	metaTS := ExplicitVRLittleEndian
	meta, sawMeta, err := parseFileMeta(dr, metaTS)
	if err != nil {
		if !hasPreamble {
			// No preamble and no plausible file-meta: the remaining detection
			// strategies all assume a raw dataset starting at position entryPos.
			if rewindErr := dr.Seek(entryPos); rewindErr != nil {
				return nil, parseErrorf("rewinding after failed meta parse: %v", rewindErr)
			}
			meta, sawMeta = NewDataset(), false
		} else {
			return nil, parseErrorf("parsing file meta group: %v", err)
		}
	}
	f.MetaDataset = meta

	ts := ImplicitVRLittleEndian
	if sawMeta {
		if e := meta.Find(Tag{0x0002, 0x0010}); e != nil {
			if uids := e.Strings(); len(uids) > 0 {
				ts = LookupTransferSyntax(uids[0])
			}
		}
	} else if !hasPreamble {
		// Raw dataset with no file-meta at all: try implicit-LE, then
		// explicit-LE, then explicit-BE, per the format-detection order.
		ts, err = detectRawDatasetSyntax(dr, entryPos)
		if err != nil {
			return nil, ErrUnrecognizedFormat
		}
	}
	f.TransferSyntax = ts

	ds, cursor, err := parseTopLevelDataset(dr, ts, defaultCharacterRepertoire)
	if err != nil {
		f.Close()
		return nil, parseErrorf("parsing dataset: %v", err)
	}
	f.Dataset = ds
	f.cursor = cursor

	f.computeFlags()
	return f, nil
}

// detectPreamble reports whether the stream begins with a 128-byte preamble
// followed by the "DICM" magic, consuming it if so. If the magic is absent
// the stream is rewound to its starting position.
func detectPreamble(dr *dcmReader) (bool, error) {
	start := dr.Pos()
	buf, err := dr.Bytes(preambleSize + 4)
	if err != nil {
		if seekErr := dr.Seek(start); seekErr != nil {
			return false, seekErr
		}
		return false, nil
	}
	if bytes.Equal(buf[preambleSize:], dicmMagic[:]) {
		return true, nil
	}
	if err := dr.Seek(start); err != nil {
		return false, err
	}
	return false, nil
}

// parseFileMeta reads consecutive group-0x0002 elements, always in explicit
// VR little endian per PS3.10. Returns sawMeta=false (with the stream
// rewound to its entry) if the first element encountered isn't in group 2.
func parseFileMeta(dr *dcmReader, ts TransferSyntax) (*Dataset, bool, error) {
	start := dr.Pos()
	ds := NewDataset()
	first := true
	for {
		pos := dr.Pos()
		tag, err := dr.Tag(ts.ByteOrder)
		if err == io.EOF {
			break
		}
		if err != nil {
			if first {
				dr.Seek(start)
				return nil, false, err
			}
			return nil, false, err
		}
		if tag.Group != 0x0002 {
			if err := dr.Seek(pos); err != nil {
				return nil, false, err
			}
			break
		}
		first = false

		vr, err := ts.readVR(dr, tag)
		if err != nil {
			return nil, false, err
		}
		length, err := ts.readValueLength(dr, vr)
		if err != nil {
			return nil, false, err
		}
		value, _, err := decodeElementValue(dr, ts, tag, vr, length, defaultCharacterRepertoire)
		if err != nil {
			return nil, false, err
		}
		ds.Append(&Element{Tag: tag, VR: vr, Value: value, Length: length})
	}
	if first {
		if err := dr.Seek(start); err != nil {
			return nil, false, err
		}
		return NewDataset(), false, nil
	}
	return ds, true, nil
}

// detectRawDatasetSyntax implements format-detection strategies 2-4 for a
// stream with no preamble and no file-meta group: try implicit VR little
// endian, then explicit VR little endian, then explicit VR big endian,
// accepting the first one whose leading element looks plausible (a
// non-zero group, an element length that does not overrun a sane bound).
func detectRawDatasetSyntax(dr *dcmReader, entryPos int64) (TransferSyntax, error) {
	candidates := []TransferSyntax{ImplicitVRLittleEndian, ExplicitVRLittleEndian, ExplicitVRBigEndian}
	for _, ts := range candidates {
		if err := dr.Seek(entryPos); err != nil {
			return TransferSyntax{}, err
		}
		if looksPlausible(dr, ts) {
			if err := dr.Seek(entryPos); err != nil {
				return TransferSyntax{}, err
			}
			return ts, nil
		}
	}
	return TransferSyntax{}, ErrUnrecognizedFormat
}

func looksPlausible(dr *dcmReader, ts TransferSyntax) bool {
	tag, err := dr.Tag(ts.ByteOrder)
	if err != nil {
		return false
	}
	if tag.Group == 0 && tag.Element == 0 {
		return false
	}
	vr, err := ts.readVR(dr, tag)
	if err != nil {
		return false
	}
	length, err := ts.readValueLength(dr, vr)
	if err != nil {
		return false
	}
	return length == UndefinedLength || length < 0x0FFFFFFF
}

// parseTopLevelDataset reads elements into a Dataset until the stream is
// exhausted or a PixelData header is read, per PS3.5: the value of
// PixelData is left unconsumed so it (and anything following it) can be
// streamed through on Save without being buffered.
func parseTopLevelDataset(dr *dcmReader, ts TransferSyntax, enc encoding.Encoding) (*Dataset, Cursor, error) {
	ds := NewDataset()
	for {
		tag, err := dr.Tag(ts.ByteOrder)
		if err == io.EOF {
			return ds, Cursor{}, nil
		}
		if err != nil {
			return nil, Cursor{}, err
		}

		vr, err := ts.readVR(dr, tag)
		if err != nil {
			return nil, Cursor{}, err
		}
		length, err := ts.readValueLength(dr, vr)
		if err != nil {
			return nil, Cursor{}, err
		}

		if tag == PixelDataTag {
			return ds, Cursor{Position: dr.Pos(), Tag: tag, VR: vr, Length: length, Valid: true}, nil
		}

		value, newEnc, err := decodeElementValue(dr, ts, tag, vr, length, enc)
		if err != nil {
			return nil, Cursor{}, err
		}
		enc = newEnc
		ds.Append(&Element{Tag: tag, VR: vr, Value: value, Length: length})
	}
}

// decodeElementValue reads and decodes an element's value field (or, for a
// sequence, recurses into its items), returning the character-set encoding
// to use for subsequent elements in this dataset scope (updated only when
// tag is SpecificCharacterSetTag).
func decodeElementValue(dr *dcmReader, ts TransferSyntax, tag Tag, vr VR, length uint32, enc encoding.Encoding) (interface{}, encoding.Encoding, error) {
	if vr.Kind == VRKindSequence {
		items, err := parseSequenceValue(dr, ts, length, enc)
		return items, enc, err
	}
	if length == UndefinedLength {
		return nil, enc, parseErrorf("undefined length for non-sequence element %v", tag)
	}

	raw, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, enc, err
	}

	switch vr.Kind {
	case VRKindText:
		strs := decodeTextValue(raw, vr, enc)
		if tag == SpecificCharacterSetTag && len(strs) > 0 {
			if next, cerr := characterSetFor(strs[0]); cerr == nil {
				enc = next
			}
		}
		return strs, enc, nil
	case VRKindUID:
		return decodeUIDValue(raw), enc, nil
	case VRKindBinaryNumber:
		v, err := decodeBinaryNumber(raw, vr, ts.ByteOrder)
		return v, enc, err
	case VRKindTag:
		v, err := decodeTagList(raw, ts.ByteOrder)
		return v, enc, err
	case VRKindBulkData:
		return decodeBulkValue(raw, vr), enc, nil
	default:
		return raw, enc, nil
	}
}

// parseSequenceValue reads the items of a sequence element, whose encoded
// length may itself be definite or 0xFFFFFFFF (undefined, terminated by a
// SequenceDelimitationItem).
func parseSequenceValue(dr *dcmReader, ts TransferSyntax, length uint32, enc encoding.Encoding) ([]*Dataset, error) {
	undefinedOuter := length == UndefinedLength
	var endPos int64
	if !undefinedOuter {
		endPos = dr.Pos() + int64(length)
	}

	var items []*Dataset
	for {
		if !undefinedOuter && dr.Pos() >= endPos {
			return items, nil
		}
		tag, err := dr.Tag(ts.ByteOrder)
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		if tag == TagSequenceDelimitationItem {
			if _, err := dr.UInt32(ts.ByteOrder); err != nil {
				return nil, err
			}
			return items, nil
		}
		if tag != TagItem {
			return nil, parseErrorf("expected item tag in sequence, got %v", tag)
		}
		itemLength, err := dr.UInt32(ts.ByteOrder)
		if err != nil {
			return nil, err
		}
		item, err := parseItemDataset(dr, ts, itemLength, enc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// parseItemDataset reads the elements nested within one sequence item.
func parseItemDataset(dr *dcmReader, ts TransferSyntax, length uint32, enc encoding.Encoding) (*Dataset, error) {
	undefined := length == UndefinedLength
	var endPos int64
	if !undefined {
		endPos = dr.Pos() + int64(length)
	}

	ds := NewDataset()
	for {
		if !undefined && dr.Pos() >= endPos {
			return ds, nil
		}
		tag, err := dr.Tag(ts.ByteOrder)
		if err == io.EOF {
			return ds, nil
		}
		if err != nil {
			return nil, err
		}
		if tag == TagItemDelimitationItem {
			if _, err := dr.UInt32(ts.ByteOrder); err != nil {
				return nil, err
			}
			return ds, nil
		}

		vr, err := ts.readVR(dr, tag)
		if err != nil {
			return nil, err
		}
		elemLength, err := ts.readValueLength(dr, vr)
		if err != nil {
			return nil, err
		}
		value, newEnc, err := decodeElementValue(dr, ts, tag, vr, elemLength, enc)
		if err != nil {
			return nil, err
		}
		enc = newEnc
		ds.Append(&Element{Tag: tag, VR: vr, Value: value, Length: elemLength})
	}
}

func decodeTextValue(raw []byte, vr VR, enc encoding.Encoding) []string {
	s := decodeText(raw, enc)
	if vr == ST || vr == LT {
		return []string{trimSpaceRight(s)}
	}
	parts := splitBackslash(s)
	for i, p := range parts {
		parts[i] = trimSpaceBoth(p)
	}
	return parts
}

func decodeUIDValue(raw []byte) []string {
	parts := splitBackslash(string(raw))
	for i, p := range parts {
		parts[i] = trimFunc(p, func(r rune) bool { return r == 0x00 || r == ' ' })
	}
	return parts
}

func decodeBulkValue(raw []byte, vr VR) interface{} {
	switch vr {
	case UC:
		parts := splitBackslash(string(raw))
		for i, p := range parts {
			parts[i] = trimSpaceRight(p)
		}
		return parts
	case UR, UT:
		return []string{trimSpaceRight(string(raw))}
	default:
		return raw
	}
}

func decodeBinaryNumber(raw []byte, vr VR, order binary.ByteOrder) (interface{}, error) {
	switch vr {
	case SS:
		out := make([]int64, len(raw)/2)
		for i := range out {
			out[i] = int64(int16(order.Uint16(raw[i*2:])))
		}
		return out, nil
	case US:
		out := make([]int64, len(raw)/2)
		for i := range out {
			out[i] = int64(order.Uint16(raw[i*2:]))
		}
		return out, nil
	case SL:
		out := make([]int64, len(raw)/4)
		for i := range out {
			out[i] = int64(int32(order.Uint32(raw[i*4:])))
		}
		return out, nil
	case UL:
		out := make([]int64, len(raw)/4)
		for i := range out {
			out[i] = int64(order.Uint32(raw[i*4:]))
		}
		return out, nil
	case FL:
		out := make([]float64, len(raw)/4)
		for i := range out {
			bits := order.Uint32(raw[i*4:])
			out[i] = float64(math.Float32frombits(bits))
		}
		return out, nil
	case FD:
		out := make([]float64, len(raw)/8)
		for i := range out {
			bits := order.Uint64(raw[i*8:])
			out[i] = math.Float64frombits(bits)
		}
		return out, nil
	default:
		return nil, parseErrorf("unexpected binary-number vr: %v", vr.Name)
	}
}

func decodeTagList(raw []byte, order binary.ByteOrder) ([]Tag, error) {
	out := make([]Tag, len(raw)/4)
	for i := range out {
		out[i] = Tag{
			Group:   order.Uint16(raw[i*4:]),
			Element: order.Uint16(raw[i*4+2:]),
		}
	}
	return out, nil
}

func splitBackslash(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func trimSpaceBoth(s string) string {
	return trimFunc(s, func(r rune) bool { return r == ' ' })
}

func trimSpaceRight(s string) string {
	end := len(s)
	for end > 0 && unicode.IsSpace(rune(s[end-1])) {
		end--
	}
	return s[:end]
}

func trimFunc(s string, pad func(rune) bool) string {
	start, end := 0, len(s)
	for start < end && pad(rune(s[start])) {
		start++
	}
	for end > start && pad(rune(s[end-1])) {
		end--
	}
	return s[start:end]
}

// Close releases the underlying stream, if it implements io.Closer.
// Double-close is a no-op.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	c := f.closer
	f.closer = nil
	return c.Close()
}

// Cursor returns the parser's stop state: the tag/VR/length and stream
// position at which dataset parsing halted (normally PixelData).
func (f *File) Cursor() Cursor {
	return f.cursor
}
