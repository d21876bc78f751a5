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

// Package pixel renders a DICOM frame to an 8-bit RGB JPEG using a
// window/level grayscale mapping. It does not decode compressed pixel
// data itself: callers supply a FrameDecoder collaborator that knows how
// to turn a transfer syntax's encoding into raw samples.
package pixel

import (
	"image"
	"io"

	"github.com/yaorongge/CTP/dicom"
)

// Frame is a single decoded grayscale frame: row-major samples at the
// color model's native bit depth, with no window/level applied yet.
type Frame struct {
	Width, Height int
	BitsStored    int
	Signed        bool
	Samples       []uint16
}

// FrameDecoder produces a raw frame from a File's pixel data. Implementations
// own the transfer-syntax-specific decompression this package does not do.
type FrameDecoder interface {
	DecodeFrame(f *dicom.File, frameIndex int) (*Frame, error)
}

// ScaleMethod selects the resampling filter Scaler.Resize applies.
type ScaleMethod int

const (
	// ScaleNearest is used for already-discrete low-bit-depth or
	// oversized frames, where interpolation would smear hard edges.
	ScaleNearest ScaleMethod = iota
	// ScaleBicubic is used otherwise, for smoother downscaled output.
	ScaleBicubic
)

// Scaler resizes a painted RGB raster to the requested output dimensions.
type Scaler interface {
	Resize(img image.Image, width, height int, method ScaleMethod) image.Image
}

// JPEGEncoder writes a painted, scaled raster out as JPEG. quality < 0
// requests the encoder's default quality.
type JPEGEncoder interface {
	Encode(dst io.Writer, img image.Image, quality int) error
}

// nearestDimensionThreshold is the output-dimension cutoff past which
// nearest-neighbor scaling is used regardless of bit depth, per §4.6.
const nearestDimensionThreshold = 1100

// nearestBitsStoredThreshold is the bits-stored cutoff at or below which
// nearest-neighbor scaling is used, per §4.6.
const nearestBitsStoredThreshold = 8
