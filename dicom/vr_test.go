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

import "testing"

func TestLookupVR(t *testing.T) {
	testCases := []struct {
		name    string
		want    VR
		wantErr bool
	}{
		{"CS", CS, false},
		{"OB", OB, false},
		{"SQ", SQ, false},
		{"AT", AT, false},
		{"ZZ", VR{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LookupVR(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("LookupVR(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Fatalf("LookupVR(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestHas32BitLength(t *testing.T) {
	testCases := []struct {
		vr   VR
		want bool
	}{
		{OB, true},
		{OW, true},
		{SQ, true},
		{UN, true},
		{CS, false},
		{US, false},
		{UI, false},
		{AT, false},
	}

	for _, tc := range testCases {
		if got := tc.vr.has32BitLength(); got != tc.want {
			t.Errorf("%s.has32BitLength() = %v, want %v", tc.vr.Name, got, tc.want)
		}
	}
}
