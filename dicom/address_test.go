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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAddress(t *testing.T) {
	testCases := []struct {
		name string
		spec string
		want []Tag
	}{
		{"dictionary name", "PatientID", []Tag{{0x0010, 0x0020}}},
		{"hex comma", "0010,0020", []Tag{{0x0010, 0x0020}}},
		{"hex comma short", "10,20", []Tag{{0x0010, 0x0020}}},
		{"hex run", "00100020", []Tag{{0x0010, 0x0020}}},
		{"bracketed", "[0010,0020]", []Tag{{0x0010, 0x0020}}},
		{"parenthesized", "(0010,0020)", []Tag{{0x0010, 0x0020}}},
		{"nested path", "StudyInstanceUID::Rows", []Tag{{0x0020, 0x000D}, {0x0028, 0x0010}}},
		{"empty", "", nil},
		{"unrecognized falls back to zero tag", "NotARealTag", []Tag{{0, 0}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAddress(tc.spec)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ParseAddress(%q) mismatch (-want +got):\n%s", tc.spec, diff)
			}
		})
	}
}

// TestParseAddressEquivalentForms exercises the equivalence property from
// §8: forms that name the same tag must parse identically regardless of
// surface syntax.
func TestParseAddressEquivalentForms(t *testing.T) {
	forms := []string{"0008,0060", "00080060", "(0008,0060)", "[0008,0060]", "Modality"}
	want := []Tag{{0x0008, 0x0060}}
	for _, f := range forms {
		if diff := cmp.Diff(want, ParseAddress(f)); diff != "" {
			t.Errorf("ParseAddress(%q) mismatch (-want +got):\n%s", f, diff)
		}
	}
}
