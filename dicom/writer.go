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

// dcmWriter is a wrapper around io.Writer providing convenience methods that
// mirror dcmReader, used by the serializer.
type dcmWriter struct {
	w   io.Writer
	pos int64
}

func newDcmWriter(w io.Writer) *dcmWriter {
	return &dcmWriter{w: w}
}

func (dw *dcmWriter) Tag(order binary.ByteOrder, tag Tag) error {
	if err := dw.UInt16(order, tag.Group); err != nil {
		return err
	}
	return dw.UInt16(order, tag.Element)
}

// Delimiter writes an item/sequence delimitation tag with a zero length field.
func (dw *dcmWriter) Delimiter(order binary.ByteOrder, tag Tag) error {
	if err := dw.Tag(order, tag); err != nil {
		return fmt.Errorf("writing delimiter tag: %v", err)
	}
	if err := dw.UInt32(order, 0); err != nil {
		return fmt.Errorf("writing item length of delimiter: %v", err)
	}
	return nil
}

func (dw *dcmWriter) UInt16(order binary.ByteOrder, v uint16) error {
	buf := make([]byte, 2)
	order.PutUint16(buf, v)
	return dw.Bytes(buf)
}

func (dw *dcmWriter) UInt32(order binary.ByteOrder, v uint32) error {
	buf := make([]byte, 4)
	order.PutUint32(buf, v)
	return dw.Bytes(buf)
}

func (dw *dcmWriter) String(s string) error {
	return dw.Bytes([]byte(s))
}

func (dw *dcmWriter) Bytes(b []byte) error {
	n, err := dw.w.Write(b)
	dw.pos += int64(n)
	return err
}
