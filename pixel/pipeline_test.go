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
	"errors"
	"image"
	"io"
	"testing"

	"github.com/yaorongge/CTP/dicom"
)

type fakeDecoder struct {
	frame *Frame
	err   error
}

func (d fakeDecoder) DecodeFrame(f *dicom.File, frameIndex int) (*Frame, error) {
	return d.frame, d.err
}

type passthroughScaler struct {
	called bool
	method ScaleMethod
}

func (s *passthroughScaler) Resize(img image.Image, width, height int, method ScaleMethod) image.Image {
	s.called = true
	s.method = method
	return img
}

type markerEncoder struct {
	quality int
	img     image.Image
}

func (e *markerEncoder) Encode(dst io.Writer, img image.Image, quality int) error {
	e.quality = quality
	e.img = img
	_, err := dst.Write([]byte("jpeg"))
	return err
}

func newTestFile(elements ...*dicom.Element) *dicom.File {
	ds := dicom.NewDataset()
	for _, e := range elements {
		ds.Append(e)
	}
	return &dicom.File{Dataset: ds}
}

func TestRenderAppliesWindowLevelFromFile(t *testing.T) {
	f := newTestFile(
		&dicom.Element{Tag: windowCenterTag, VR: dicom.DS, Value: []string{"128"}},
		&dicom.Element{Tag: windowWidthTag, VR: dicom.DS, Value: []string{"100"}},
	)
	frame := &Frame{Width: 2, Height: 1, BitsStored: 8, Samples: []uint16{0, 255}}
	scaler := &passthroughScaler{}
	encoder := &markerEncoder{}

	out, err := Render(f, Options{Quality: -1}, fakeDecoder{frame: frame}, scaler, encoder)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != "jpeg" {
		t.Errorf("unexpected output %q", out)
	}
	if encoder.quality != -1 {
		t.Errorf("quality = %d, want -1 passed through", encoder.quality)
	}
	// With the file's window (center 128, width 100) sample 0 is below the
	// window and maps to black, sample 255 is above it and maps to white.
	if r, _, _, _ := encoder.img.At(0, 0).RGBA(); r != 0 {
		t.Errorf("pixel (0,0) red = %#x, want 0", r)
	}
	if r, _, _, _ := encoder.img.At(1, 0).RGBA(); r != 0xffff {
		t.Errorf("pixel (1,0) red = %#x, want 0xffff", r)
	}
}

func TestRenderUsesNearestForLowBitDepth(t *testing.T) {
	f := newTestFile()
	frame := &Frame{Width: 4, Height: 4, BitsStored: 8, Samples: make([]uint16, 16)}
	scaler := &passthroughScaler{}

	_, err := Render(f, Options{Quality: -1, Width: 8, Height: 8}, fakeDecoder{frame: frame}, scaler, &markerEncoder{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !scaler.called {
		t.Fatal("expected scaler to be invoked for a resize")
	}
	if scaler.method != ScaleNearest {
		t.Errorf("scale method = %v, want ScaleNearest for 8 bits stored", scaler.method)
	}
}

func TestRenderWrapsDecodeError(t *testing.T) {
	f := newTestFile()
	_, err := Render(f, Options{}, fakeDecoder{err: errors.New("boom")}, &passthroughScaler{}, &markerEncoder{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, dicom.ErrImageRead) {
		t.Errorf("error = %v, want it to wrap dicom.ErrImageRead", err)
	}
}

func TestRenderRejectsMismatchedSampleCount(t *testing.T) {
	f := newTestFile()
	frame := &Frame{Width: 4, Height: 4, BitsStored: 8, Samples: make([]uint16, 2)}
	_, err := Render(f, Options{}, fakeDecoder{frame: frame}, &passthroughScaler{}, &markerEncoder{})
	if err == nil {
		t.Fatal("expected an error for a short sample buffer")
	}
}
