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

package predicate

import (
	"testing"

	"github.com/yaorongge/CTP/dicom"
)

// stubResolver answers GetString by exact-matching the joined, "::"-free
// dictionary name against the canonical tag it parses to.
type stubResolver map[string]string

func (s stubResolver) GetString(path []dicom.Tag, def string) string {
	if len(path) != 1 {
		return def
	}
	for name, value := range s {
		tags := dicom.ParseAddress(name)
		if len(tags) == 1 && tags[0] == path[0] {
			return value
		}
	}
	return def
}

func TestEvaluateBasic(t *testing.T) {
	resolver := stubResolver{"PatientName": "JANE^X", "Modality": "CT"}

	tests := []struct {
		name   string
		script string
		want   bool
	}{
		{"equals true", `PatientName.equals("JANE^X")`, true},
		{"equals false", `PatientName.equals("JOHN^Y")`, false},
		{"and both true", `PatientName.equals("JANE^X") * Modality.equals("CT")`, true},
		{"and one false", `PatientName.equals("JANE^X") * Modality.equals("MR")`, false},
		{"or", `PatientName.matches("JOHN.*") + PatientName.matches("JANE.*")`, true},
		{"not", `!Modality.equals("MR")`, true},
		{"grouping", `!(Modality.equals("CT") * PatientName.equals("JOHN^Y"))`, true},
		{"bareword true", `true`, true},
		{"bareword false", `false * true`, false},
		{"comment stripped", "Modality.equals(\"CT\") // trailing remark\n", true},
		{"unknown method logs and is false", `Modality.bogus("CT")`, false},
		{"case sensitive prefix", `Modality.startsWith("c")`, false},
		{"case insensitive prefix", `Modality.startsWithIgnoreCase("c")`, true},
		{"parenthesized tag address", `(0008,0060).equals("CT")`, true},
		{"parenthesized tag address combined", `(0008,0060).equals("CT") * !(0008,0060).equals("MR")`, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(tc.script, resolver)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tc.script, err)
			}
			if got != tc.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tc.script, got, tc.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	resolver := stubResolver{}

	tests := []string{
		`Modality.equals("CT"`,
		`(Modality.equals("CT")`,
		`Modality.equals("CT"))`,
		`Modality.equals("CT") $ true`,
	}
	for _, script := range tests {
		t.Run(script, func(t *testing.T) {
			if _, err := Evaluate(script, resolver); err == nil {
				t.Errorf("Evaluate(%q): expected error, got nil", script)
			}
		})
	}
}

// De Morgan's law must hold for any pair of boolean operands the DSL can
// express, per §8.
func TestEvaluateDeMorgan(t *testing.T) {
	resolver := stubResolver{"PatientName": "JANE^X", "Modality": "CT"}

	a := `PatientName.equals("JANE^X")`
	b := `Modality.equals("CT")`

	for _, pair := range [][2]string{
		{a, b},
		{a, `Modality.equals("MR")`},
		{`PatientName.equals("JOHN^Y")`, b},
		{`PatientName.equals("JOHN^Y")`, `Modality.equals("MR")`},
	} {
		left := "!(" + pair[0] + "+" + pair[1] + ")"
		right := "(!" + pair[0] + ")*(!" + pair[1] + ")"

		lv, err := Evaluate(left, resolver)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", left, err)
		}
		rv, err := Evaluate(right, resolver)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", right, err)
		}
		if lv != rv {
			t.Errorf("De Morgan violated for %v: %v = %v, %v = %v", pair, left, lv, right, rv)
		}
	}
}
