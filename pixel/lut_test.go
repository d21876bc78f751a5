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

import "testing"

func TestBuildLUT(t *testing.T) {
	lut := buildLUT(256, 128, 100, false, false)
	if lut[0] != 0 {
		t.Errorf("lut[0] = %d, want 0", lut[0])
	}
	if lut[255] != 255 {
		t.Errorf("lut[255] = %d, want 255", lut[255])
	}
	if lut[128] == 0 || lut[128] == 255 {
		t.Errorf("lut[128] = %d, want a mid-range value", lut[128])
	}
}

func TestBuildLUTInverse(t *testing.T) {
	normal := buildLUT(256, 128, 100, false, false)
	inverse := buildLUT(256, 128, 100, false, true)
	for i := range normal {
		if inverse[i] != 255-normal[i] {
			t.Fatalf("inverse[%d] = %d, want %d", i, inverse[i], 255-normal[i])
		}
	}
}

func TestBuildLUTSigned(t *testing.T) {
	lut := buildLUT(256, 128, 100, true, false)
	for i := 128; i < 256; i++ {
		if lut[i] != 0 {
			t.Errorf("signed lut[%d] = %d, want 0", i, lut[i])
		}
	}
}

func TestRescaleWindow(t *testing.T) {
	level, width := rescaleWindow(100, 50, 2, 10)
	if level != 45 {
		t.Errorf("level = %v, want 45", level)
	}
	if width != 25 {
		t.Errorf("width = %v, want 25", width)
	}
}

func TestRescaleWindowZeroSlope(t *testing.T) {
	level, width := rescaleWindow(100, 50, 0, 0)
	if level != 100 || width != 50 {
		t.Errorf("got (%v, %v), want identity (100, 50) when slope is absent", level, width)
	}
}

func TestNarrowBitsStored(t *testing.T) {
	samples := []uint16{0, 100, 4095, 4096, 65535}
	narrowBitsStored(samples, 12, 1, 0)
	want := []uint16{0, 100, 4095, 4095, 4095}
	for i, v := range samples {
		if v != want[i] {
			t.Errorf("samples[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestNarrowBitsStoredSkipsMultiChannel(t *testing.T) {
	samples := []uint16{65535}
	narrowBitsStored(samples, 12, 3, 0)
	if samples[0] != 65535 {
		t.Errorf("multi-channel frame should be left untouched, got %d", samples[0])
	}
}
