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
	"strconv"
	"strings"
)

// ParseAddress parses a tag-address specification into an ordered list of
// tags, one per level of sequence descent. Accepted forms for each segment:
// a dictionary name ("PatientID"), a hex run ("00100020", "100020"), hex
// with a comma ("0010,0020", "10,20"), any of the above optionally wrapped
// in "[...]" or "(...)" . Segments are joined with "::" to address an
// element nested inside a sequence item: "SQTag::InnerTag::Leaf". An
// unrecognized segment resolves to the zero tag (group 0, element 0).
func ParseAddress(spec string) []Tag {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil
	}
	segments := strings.Split(spec, "::")
	tags := make([]Tag, len(segments))
	for i, seg := range segments {
		tags[i] = parseTagSegment(seg)
	}
	return tags
}

func parseTagSegment(name string) Tag {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}
	}

	if tag, _, err := LookupTagByName(name); err == nil {
		return tag
	}

	unwrapped := unwrapBrackets(name)

	if tag, ok := parseHexCommaTag(unwrapped); ok {
		return tag
	}
	if tag, ok := parseHexRunTag(unwrapped); ok {
		return tag
	}
	return Tag{}
}

func unwrapBrackets(name string) string {
	if len(name) >= 2 {
		if (name[0] == '[' && name[len(name)-1] == ']') || (name[0] == '(' && name[len(name)-1] == ')') {
			return strings.TrimSpace(name[1 : len(name)-1])
		}
	}
	return name
}

// parseHexCommaTag accepts "gggg,eeee" with 0-4 hex digits for the group and
// 1-4 for the element.
func parseHexCommaTag(s string) (Tag, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Tag{}, false
	}
	group, element := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if len(group) > 4 || len(element) == 0 || len(element) > 4 {
		return Tag{}, false
	}
	g, err := parseHex16(group)
	if err != nil {
		return Tag{}, false
	}
	e, err := parseHex16(element)
	if err != nil {
		return Tag{}, false
	}
	return Tag{Group: g, Element: e}, true
}

// parseHexRunTag accepts a contiguous hex string of 1-8 digits: the last 4
// digits are the element, anything before that is the group.
func parseHexRunTag(s string) (Tag, bool) {
	if len(s) == 0 || len(s) > 8 {
		return Tag{}, false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return Tag{}, false
		}
	}
	if len(s) <= 4 {
		e, err := parseHex16(s)
		if err != nil {
			return Tag{}, false
		}
		return Tag{Group: 0, Element: e}, true
	}
	split := len(s) - 4
	g, err := parseHex16(s[:split])
	if err != nil {
		return Tag{}, false
	}
	e, err := parseHex16(s[split:])
	if err != nil {
		return Tag{}, false
	}
	return Tag{Group: g, Element: e}, true
}

func parseHex16(s string) (uint16, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
