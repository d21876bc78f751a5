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

// RawPixelData reads and returns this object's PixelData value verbatim,
// for native (non-encapsulated) transfer syntaxes, restoring the source's
// read position afterward so the File remains usable for Save. It returns
// ErrBadEncapsulation for encapsulated PixelData: decompressing an
// encapsulated frame is a collaborator's job, not this package's.
func (f *File) RawPixelData() ([]byte, error) {
	if !f.cursor.Valid {
		return nil, errors.Wrap(ErrParse, "object has no pixel data")
	}
	if f.cursor.Length == UndefinedLength {
		return nil, errors.Wrap(ErrBadEncapsulation, "pixel data is encapsulated; decode via a collaborator")
	}

	dr, err := newDcmReader(f.source)
	if err != nil {
		return nil, err
	}
	if err := dr.Seek(f.cursor.Position); err != nil {
		return nil, err
	}

	raw, err := dr.Bytes(int64(f.cursor.Length))
	if err != nil {
		return nil, err
	}

	if err := dr.Seek(f.cursor.Position); err != nil {
		return nil, err
	}
	return raw, nil
}
