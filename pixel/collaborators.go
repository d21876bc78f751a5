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

package pixel

import (
	"image"
	"image/jpeg"
	"io"

	"github.com/pkg/errors"

	"github.com/disintegration/imaging"

	"github.com/yaorongge/CTP/dicom"
)

// DefaultScaler resizes with golang.org/x/image/draw-backed filters via
// disintegration/imaging: nearest-neighbor or Catmull-Rom, matching the
// two resampling tiers named in §4.6.
type DefaultScaler struct{}

func (DefaultScaler) Resize(img image.Image, width, height int, method ScaleMethod) image.Image {
	filter := imaging.CatmullRom
	if method == ScaleNearest {
		filter = imaging.NearestNeighbor
	}
	return imaging.Resize(img, width, height, filter)
}

// DefaultJPEGEncoder wraps the standard library's JPEG encoder. A negative
// quality falls back to jpeg.DefaultQuality.
type DefaultJPEGEncoder struct{}

func (DefaultJPEGEncoder) Encode(dst io.Writer, img image.Image, quality int) error {
	opts := &jpeg.Options{Quality: jpeg.DefaultQuality}
	if quality >= 0 {
		opts.Quality = quality
	}
	return jpeg.Encode(dst, img, opts)
}

var (
	rowsTag            = dicom.Tag{Group: 0x0028, Element: 0x0010}
	columnsTag         = dicom.Tag{Group: 0x0028, Element: 0x0011}
	bitsAllocatedTag   = dicom.Tag{Group: 0x0028, Element: 0x0100}
	bitsStoredTag      = dicom.Tag{Group: 0x0028, Element: 0x0101}
	samplesPerPixelTag = dicom.Tag{Group: 0x0028, Element: 0x0002}
)

// NativeFrameDecoder decodes single-channel, non-encapsulated pixel data
// directly from a File's raw PixelData bytes: the common case for
// uncompressed transfer syntaxes. It returns ErrImageRead for encapsulated
// or multi-channel data, which need a format-specific collaborator.
type NativeFrameDecoder struct{}

func (NativeFrameDecoder) DecodeFrame(f *dicom.File, frameIndex int) (*Frame, error) {
	samplesPerPixel := f.GetInt([]dicom.Tag{samplesPerPixelTag}, 1)
	if samplesPerPixel != 1 {
		return nil, errors.Wrap(dicom.ErrImageRead, "native decoder supports single-channel frames only")
	}

	rows := int(f.GetInt([]dicom.Tag{rowsTag}, 0))
	columns := int(f.GetInt([]dicom.Tag{columnsTag}, 0))
	bitsAllocated := int(f.GetInt([]dicom.Tag{bitsAllocatedTag}, 16))
	bitsStored := int(f.GetInt([]dicom.Tag{bitsStoredTag}, int64(bitsAllocated)))
	if rows <= 0 || columns <= 0 || (bitsAllocated != 8 && bitsAllocated != 16) {
		return nil, errors.Wrapf(dicom.ErrImageRead, "unsupported raster %dx%d at %d bits", columns, rows, bitsAllocated)
	}

	raw, err := f.RawPixelData()
	if err != nil {
		return nil, errors.Wrapf(dicom.ErrImageRead, "reading pixel data: %v", err)
	}

	bytesPerSample := bitsAllocated / 8
	frameSize := rows * columns
	byteOffset := frameIndex * frameSize * bytesPerSample
	if byteOffset+frameSize*bytesPerSample > len(raw) {
		return nil, errors.Wrapf(dicom.ErrImageRead, "frame %d out of range for %d pixel data bytes", frameIndex, len(raw))
	}
	frameBytes := raw[byteOffset : byteOffset+frameSize*bytesPerSample]

	samples := make([]uint16, frameSize)
	order := f.TransferSyntax.ByteOrder
	for i := range samples {
		if bytesPerSample == 1 {
			samples[i] = uint16(frameBytes[i])
		} else {
			samples[i] = order.Uint16(frameBytes[i*2:])
		}
	}

	signed := f.GetInt([]dicom.Tag{pixelRepresentationTag}, 0) == 1

	return &Frame{
		Width:      columns,
		Height:     rows,
		BitsStored: bitsStored,
		Signed:     signed,
		Samples:    samples,
	}, nil
}
