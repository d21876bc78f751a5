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
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yaorongge/CTP/dicom"
)

// dispatchMethod applies a recognized operand method to value, comparing it
// literally against arg with no whitespace or padding normalization.
// Unknown methods are logged and evaluate to false, per §4.5.
func dispatchMethod(method, value, arg string) (bool, error) {
	switch method {
	case "equals":
		return value == arg, nil
	case "equalsIgnoreCase":
		return strings.EqualFold(value, arg), nil
	case "matches":
		re, err := regexp.Compile(arg)
		if err != nil {
			return false, dicom.ErrScript
		}
		return re.MatchString(value), nil
	case "contains":
		return strings.Contains(value, arg), nil
	case "containsIgnoreCase":
		return strings.Contains(strings.ToLower(value), strings.ToLower(arg)), nil
	case "startsWith":
		return strings.HasPrefix(value, arg), nil
	case "startsWithIgnoreCase":
		return strings.HasPrefix(strings.ToLower(value), strings.ToLower(arg)), nil
	case "endsWith":
		return strings.HasSuffix(value, arg), nil
	case "endsWithIgnoreCase":
		return strings.HasSuffix(strings.ToLower(value), strings.ToLower(arg)), nil
	default:
		logrus.Warnf("predicate: unknown method %q, evaluating to false", method)
		return false, nil
	}
}
