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
	"bytes"
	"image"
	"image/color"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yaorongge/CTP/dicom"
)

var (
	windowCenterTag         = dicom.Tag{Group: 0x0028, Element: 0x1050}
	windowWidthTag          = dicom.Tag{Group: 0x0028, Element: 0x1051}
	rescaleInterceptTag     = dicom.Tag{Group: 0x0028, Element: 0x1052}
	rescaleSlopeTag         = dicom.Tag{Group: 0x0028, Element: 0x1053}
	presentationLUTShapeTag = dicom.Tag{Group: 0x0028, Element: 0x2050}
	pixelRepresentationTag  = dicom.Tag{Group: 0x0028, Element: 0x0103}
)

// Options configures a single Render call. Width and Height of zero use the
// decoded frame's native dimensions. Quality < 0 requests the encoder's
// default JPEG quality.
type Options struct {
	FrameIndex          int
	Width, Height       int
	WindowCenter        float64
	WindowWidth         float64
	OverrideWindowLevel bool
	Quality             int
}

// Render decodes frameIndex from f, applies the window/level grayscale
// pipeline described in §4.6, and encodes the result as JPEG. When
// opts.OverrideWindowLevel is false, the window center/width are read from
// f's WindowCenter/WindowWidth elements instead of opts.
func Render(f *dicom.File, opts Options, decoder FrameDecoder, scaler Scaler, encoder JPEGEncoder) ([]byte, error) {
	frame, err := decoder.DecodeFrame(f, opts.FrameIndex)
	if err != nil {
		logrus.Warnf("pixel: decoding frame %d: %v, returning absent image", opts.FrameIndex, err)
		return nil, errors.Wrapf(dicom.ErrImageRead, "decoding frame %d: %v", opts.FrameIndex, err)
	}
	if frame.Width <= 0 || frame.Height <= 0 || len(frame.Samples) != frame.Width*frame.Height {
		logrus.Warnf("pixel: decoded frame %dx%d has %d samples, returning absent image", frame.Width, frame.Height, len(frame.Samples))
		return nil, errors.Wrapf(dicom.ErrImageRead, "decoded frame %dx%d has %d samples", frame.Width, frame.Height, len(frame.Samples))
	}

	level, width := opts.WindowCenter, opts.WindowWidth
	if !opts.OverrideWindowLevel {
		level = f.GetFloat([]dicom.Tag{windowCenterTag}, level)
		width = f.GetFloat([]dicom.Tag{windowWidthTag}, width)
	}
	slope := f.GetFloat([]dicom.Tag{rescaleSlopeTag}, 1)
	intercept := f.GetFloat([]dicom.Tag{rescaleInterceptTag}, 0)
	pixelLevel, pixelWidth := rescaleWindow(level, width, slope, intercept)

	signed := f.GetInt([]dicom.Tag{pixelRepresentationTag}, 0) == 1
	inverse := f.GetString([]dicom.Tag{presentationLUTShapeTag}, "") == "INVERSE"

	lutSize := 1 << uint(frame.BitsStored)
	if lutSize <= 0 || lutSize > 1<<20 {
		lutSize = 1 << 16
	}
	lut := buildLUT(lutSize, pixelLevel, pixelWidth, signed && frame.Signed, inverse)

	samplesPerPixel := int(f.GetInt([]dicom.Tag{{Group: 0x0028, Element: 0x0002}}, 1))
	planarConfiguration := int(f.GetInt([]dicom.Tag{{Group: 0x0028, Element: 0x0006}}, 0))
	narrowBitsStored(frame.Samples, frame.BitsStored, samplesPerPixel, planarConfiguration)

	painted := paint(frame, lut)

	width32, height32 := opts.Width, opts.Height
	if width32 <= 0 {
		width32 = frame.Width
	}
	if height32 <= 0 {
		height32 = frame.Height
	}

	method := ScaleBicubic
	if frame.BitsStored <= nearestBitsStoredThreshold || width32 > nearestDimensionThreshold || height32 > nearestDimensionThreshold {
		method = ScaleNearest
	}

	scaled := painted
	if width32 != frame.Width || height32 != frame.Height {
		scaled = scaler.Resize(painted, width32, height32, method)
	}

	var buf bytes.Buffer
	if err := encoder.Encode(&buf, scaled, opts.Quality); err != nil {
		logrus.Warnf("pixel: encoding frame %d: %v, returning absent image", opts.FrameIndex, err)
		return nil, errors.Wrap(dicom.ErrImageRead, err.Error())
	}
	return buf.Bytes(), nil
}

// paint maps each sample through lut into an 8-bit RGB raster.
func paint(frame *Frame, lut []uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for i, sample := range frame.Samples {
		gray := lut[clampIndex(int(sample), len(lut))]
		x, y := i%frame.Width, i/frame.Width
		img.Set(x, y, color.RGBA{R: gray, G: gray, B: gray, A: 255})
	}
	return img
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
