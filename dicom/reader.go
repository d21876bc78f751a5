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
)

// dcmReader is a wrapper around io.ReadSeeker providing convenience methods
// for parsing tags, numbers, and strings, and for reporting the current
// stream offset so a parse can be resumed or a write can splice in the
// remainder of the source verbatim.
type dcmReader struct {
	r   io.ReadSeeker
	pos int64
}

func newDcmReader(r io.ReadSeeker) (*dcmReader, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locating initial stream position: %v", err)
	}
	return &dcmReader{r: r, pos: pos}, nil
}

// Pos returns the reader's current offset into the underlying stream.
func (dr *dcmReader) Pos() int64 {
	return dr.pos
}

// Seek repositions the underlying stream, used to restore a cursor after a
// Save has streamed pixel data and trailing elements through to a destination.
func (dr *dcmReader) Seek(offset int64) error {
	pos, err := dr.r.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	dr.pos = pos
	return nil
}

func (dr *dcmReader) Tag(order binary.ByteOrder) (Tag, error) {
	group, err := dr.UInt16(order)
	if err != nil {
		return Tag{}, err
	}
	element, err := dr.UInt16(order)
	if err != nil {
		return Tag{}, err
	}
	return Tag{Group: group, Element: element}, nil
}

// Skip advances the input stream by n bytes without buffering them.
func (dr *dcmReader) Skip(n int64) error {
	if n == 0 {
		return nil
	}
	_, err := dr.r.Seek(n, io.SeekCurrent)
	if err != nil {
		return err
	}
	dr.pos += n
	return nil
}

// String returns a string of length n from the input stream.
func (dr *dcmReader) String(n int64) (string, error) {
	b, err := dr.Bytes(n)
	return string(b), err
}

// Bytes returns a byte slice of size n from the input stream.
func (dr *dcmReader) Bytes(n int64) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	got, err := io.ReadFull(dr.r, b)
	dr.pos += int64(got)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UInt32 returns a uint32 from the input stream.
func (dr *dcmReader) UInt32(order binary.ByteOrder) (uint32, error) {
	b, err := dr.Bytes(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// UInt16 returns a uint16 from the input stream.
func (dr *dcmReader) UInt16(order binary.ByteOrder) (uint16, error) {
	b, err := dr.Bytes(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}
