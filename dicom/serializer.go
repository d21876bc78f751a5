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
	"io"
	"math"
	"os"
	"sort"
	"strings"
)

// magicTerminatorTag stops the post-PixelData streaming pass: a small
// number of producers append a non-DICOM trailer after the dataset, and
// this sentinel marks where to give up copying rather than fail.
var magicTerminatorTag = Tag{0xFFFC, 0xFFFC}

// Save writes this File's file-meta and dataset to dest in the given
// target transfer syntax (or the source syntax, if targetSyntaxUID is
// empty), forcing Implicit VR Little Endian when forceImplicitLE is true.
// PixelData and any elements following it are streamed from the original
// source without being buffered. On success, the source's read position is
// restored to where parsing stopped, so the same File can be saved again.
// On any error, dest is left in an indeterminate state; callers writing to
// a file should use SaveToFile, which removes a partial file on failure.
func (f *File) Save(dest io.Writer, targetSyntaxUID string, forceImplicitLE bool) error {
	target := f.resolveTargetSyntax(targetSyntaxUID, forceImplicitLE)

	if err := f.save(dest, target); err != nil {
		f.Close()
		return writeErrorf("%v", err)
	}
	return nil
}

// SaveToFile is Save for the common case of a destination path: it creates
// the file, and removes it if Save fails.
func (f *File) SaveToFile(path string, targetSyntaxUID string, forceImplicitLE bool) error {
	out, err := os.Create(path)
	if err != nil {
		return writeErrorf("creating %s: %v", path, err)
	}

	if err := f.Save(out, targetSyntaxUID, forceImplicitLE); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

func (f *File) resolveTargetSyntax(targetSyntaxUID string, forceImplicitLE bool) TransferSyntax {
	if forceImplicitLE {
		return ImplicitVRLittleEndian
	}
	if targetSyntaxUID == "" {
		return f.TransferSyntax
	}
	return LookupTransferSyntax(targetSyntaxUID)
}

func (f *File) save(dest io.Writer, target TransferSyntax) error {
	dw := newDcmWriter(dest)

	if err := dw.Bytes(make([]byte, preambleSize)); err != nil {
		return fmt.Errorf("writing preamble: %v", err)
	}
	if err := dw.String(string(dicmMagic[:])); err != nil {
		return fmt.Errorf("writing magic: %v", err)
	}

	meta := metaForSave(f.MetaDataset, target.UID)
	if err := writeDataset(dw, ExplicitVRLittleEndian, meta); err != nil {
		return fmt.Errorf("writing file meta: %v", err)
	}

	if err := writeDataset(dw, target, f.Dataset); err != nil {
		return fmt.Errorf("writing dataset: %v", err)
	}

	if !f.cursor.Valid {
		return nil
	}

	dr, err := newDcmReader(f.source)
	if err != nil {
		return fmt.Errorf("opening source for pixel data passthrough: %v", err)
	}
	if err := dr.Seek(f.cursor.Position); err != nil {
		return fmt.Errorf("seeking to cursor: %v", err)
	}

	if err := streamPixelData(dw, dr, f.TransferSyntax, target, f.cursor); err != nil {
		return err
	}
	if err := streamTrailingElements(dw, dr, f.TransferSyntax, target); err != nil {
		return err
	}

	return dr.Seek(f.cursor.Position)
}

// metaForSave builds the file-meta dataset to write: a copy of source,
// minus the group-length element, with TransferSyntaxUID set to the save
// target and the group length recomputed over the result.
func metaForSave(source *Dataset, targetSyntaxUID string) *Dataset {
	meta := NewDataset()
	if source != nil {
		for _, e := range source.Elements {
			if e.Tag == FileMetaInformationGroupLengthTag {
				continue
			}
			if e.Tag == (Tag{0x0002, 0x0010}) {
				continue
			}
			meta.Append(e)
		}
	}
	uidBytes := []byte(targetSyntaxUID)
	if len(uidBytes)%2 != 0 {
		uidBytes = append(uidBytes, 0x00)
	}
	meta.Append(&Element{
		Tag:    Tag{0x0002, 0x0010},
		VR:     UI,
		Value:  []string{targetSyntaxUID},
		Length: uint32(len(uidBytes)),
	})

	groupLength := uint32(0)
	for _, e := range meta.Elements {
		length, err := calculateValueLength(e)
		if err != nil {
			continue
		}
		groupLength += ExplicitVRLittleEndian.elementSize(e.VR, length)
	}
	result := NewDataset()
	result.Append(&Element{Tag: FileMetaInformationGroupLengthTag, VR: UL, Value: []int64{int64(groupLength)}, Length: 4})
	result.Elements = append(result.Elements, meta.Elements...)
	sortDataset(result)
	return result
}

func sortDataset(ds *Dataset) {
	sort.SliceStable(ds.Elements, func(i, j int) bool {
		a, b := ds.Elements[i].Tag, ds.Elements[j].Tag
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Element < b.Element
	})
}

// writeDataset writes ds's elements, in order, under the given syntax.
func writeDataset(dw *dcmWriter, ts TransferSyntax, ds *Dataset) error {
	for _, e := range ds.Elements {
		if err := writeElement(dw, ts, e); err != nil {
			return fmt.Errorf("writing element %v: %v", e.Tag, err)
		}
	}
	return nil
}

func writeElement(dw *dcmWriter, ts TransferSyntax, e *Element) error {
	length, err := calculateValueLength(e)
	if err != nil {
		return fmt.Errorf("calculating length: %v", err)
	}

	if err := dw.Tag(ts.ByteOrder, e.Tag); err != nil {
		return fmt.Errorf("writing tag: %v", err)
	}
	if err := ts.writeVR(dw, e.VR); err != nil {
		return fmt.Errorf("writing vr: %v", err)
	}
	if err := ts.writeValueLength(dw, e.VR, length); err != nil {
		return fmt.Errorf("writing length: %v", err)
	}
	return writeElementValue(dw, ts, e.VR, length, e.Value)
}

// calculateValueLength computes an element's on-disk value length,
// rounding text-family values up to an even byte count. Sequences are
// always written with undefined length and closed with explicit item and
// sequence delimiters, rather than precomputing their encoded size.
func calculateValueLength(e *Element) (uint32, error) {
	switch v := e.Value.(type) {
	case []string:
		n := int64(0)
		for _, s := range v {
			n += int64(len(s))
		}
		if len(v) > 1 {
			n += int64(len(v)) - 1
		}
		if n%2 != 0 {
			n++
		}
		if n > math.MaxUint32 {
			return 0, fmt.Errorf("value too large")
		}
		return uint32(n), nil
	case []int64:
		switch e.VR {
		case SS, US:
			return uint32(len(v)) * 2, nil
		default:
			return uint32(len(v)) * 4, nil
		}
	case []float64:
		switch e.VR {
		case FL:
			return uint32(len(v)) * 4, nil
		default:
			return uint32(len(v)) * 8, nil
		}
	case []Tag:
		return uint32(len(v)) * 4, nil
	case []byte:
		n := len(v)
		if n%2 != 0 {
			n++
		}
		return uint32(n), nil
	case []*Dataset:
		return UndefinedLength, nil
	default:
		return 0, fmt.Errorf("unexpected value type %T", e.Value)
	}
}

func writeElementValue(dw *dcmWriter, ts TransferSyntax, vr VR, length uint32, value interface{}) error {
	switch vr.Kind {
	case VRKindText:
		return writeTextValue(dw, value, ' ')
	case VRKindUID:
		return writeTextValue(dw, value, 0x00)
	case VRKindBinaryNumber:
		return writeBinaryNumber(dw, ts.ByteOrder, vr, value)
	case VRKindTag:
		return writeTagValue(dw, ts.ByteOrder, value)
	case VRKindSequence:
		return writeSequenceValue(dw, ts, value)
	case VRKindBulkData:
		return writeBulkValue(dw, ts.ByteOrder, length, value)
	default:
		return fmt.Errorf("unknown vr kind")
	}
}

func writeTextValue(dw *dcmWriter, value interface{}, pad byte) error {
	strs, ok := value.([]string)
	if !ok {
		return fmt.Errorf("expected []string, got %T", value)
	}
	s := strings.Join(strs, `\`)
	if len(s)%2 != 0 {
		s += string(pad)
	}
	return dw.String(s)
}

func writeBinaryNumber(dw *dcmWriter, order binary.ByteOrder, vr VR, value interface{}) error {
	ints, isInt := value.([]int64)
	floats, isFloat := value.([]float64)
	switch {
	case isInt:
		for _, n := range ints {
			var err error
			switch vr {
			case SS:
				err = dw.UInt16(order, uint16(int16(n)))
			case US:
				err = dw.UInt16(order, uint16(n))
			case SL:
				err = dw.UInt32(order, uint32(int32(n)))
			case UL:
				err = dw.UInt32(order, uint32(n))
			default:
				err = fmt.Errorf("unexpected integer vr %v", vr.Name)
			}
			if err != nil {
				return err
			}
		}
		return nil
	case isFloat:
		for _, n := range floats {
			var err error
			switch vr {
			case FL:
				err = dw.UInt32(order, math.Float32bits(float32(n)))
			case FD:
				buf := make([]byte, 8)
				order.PutUint64(buf, math.Float64bits(n))
				err = dw.Bytes(buf)
			default:
				err = fmt.Errorf("unexpected float vr %v", vr.Name)
			}
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("expected []int64 or []float64, got %T", value)
	}
}

func writeTagValue(dw *dcmWriter, order binary.ByteOrder, value interface{}) error {
	tags, ok := value.([]Tag)
	if !ok {
		return fmt.Errorf("expected []Tag, got %T", value)
	}
	for _, t := range tags {
		if err := dw.Tag(order, t); err != nil {
			return err
		}
	}
	return nil
}

func writeBulkValue(dw *dcmWriter, order binary.ByteOrder, length uint32, value interface{}) error {
	switch v := value.(type) {
	case []byte:
		b := v
		if len(b)%2 != 0 {
			b = append(append([]byte{}, b...), 0x00)
		}
		return dw.Bytes(b)
	case []string:
		return writeTextValue(dw, v, ' ')
	default:
		return fmt.Errorf("unexpected bulk data type %T", value)
	}
}

func writeSequenceValue(dw *dcmWriter, ts TransferSyntax, value interface{}) error {
	items, ok := value.([]*Dataset)
	if !ok {
		return fmt.Errorf("expected []*Dataset, got %T", value)
	}
	for _, item := range items {
		if err := dw.Tag(ts.ByteOrder, TagItem); err != nil {
			return err
		}
		if err := dw.UInt32(ts.ByteOrder, UndefinedLength); err != nil {
			return err
		}
		if err := writeDataset(dw, ts, item); err != nil {
			return err
		}
		if err := dw.Delimiter(ts.ByteOrder, TagItemDelimitationItem); err != nil {
			return err
		}
	}
	return dw.Delimiter(ts.ByteOrder, TagSequenceDelimitationItem)
}
