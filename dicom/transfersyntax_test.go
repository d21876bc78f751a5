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

func TestLookupTransferSyntax(t *testing.T) {
	testCases := []struct {
		uid  string
		want TransferSyntax
	}{
		{ImplicitVRLittleEndianUID, ImplicitVRLittleEndian},
		{ExplicitVRLittleEndianUID, ExplicitVRLittleEndian},
		{ExplicitVRBigEndianUID, ExplicitVRBigEndian},
		{"1.2.3.4.5.unknown", ExplicitVRLittleEndian},
	}

	for _, tc := range testCases {
		t.Run(tc.uid, func(t *testing.T) {
			if got := LookupTransferSyntax(tc.uid); got != tc.want {
				t.Fatalf("LookupTransferSyntax(%q) = %v, want %v", tc.uid, got, tc.want)
			}
		})
	}
}

func TestElementSize(t *testing.T) {
	testCases := []struct {
		name   string
		ts     TransferSyntax
		vr     VR
		length uint32
		want   uint32
	}{
		{"implicit fixed width", ImplicitVRLittleEndian, CS, 4, 12},
		{"explicit short form", ExplicitVRLittleEndian, CS, 4, 12},
		{"explicit long form", ExplicitVRLittleEndian, OB, 10, 22},
		{"undefined length propagates", ExplicitVRLittleEndian, SQ, UndefinedLength, UndefinedLength},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ts.elementSize(tc.vr, tc.length); got != tc.want {
				t.Fatalf("elementSize(%v, %d) = %d, want %d", tc.vr, tc.length, got, tc.want)
			}
		})
	}
}
