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

// Package predicate implements the small boolean expression language used
// to filter DICOM objects: operands call string-matching methods on a
// tag's resolved value, combined with +, *, and ! at two precedence
// levels. See dicom.ErrScript for the error this package returns on
// malformed input.
package predicate

// tokenKind tags the variant a token holds; the evaluator switches on this
// rather than performing any type assertion.
type tokenKind int

const (
	tokOperand tokenKind = iota
	tokOperator
	tokLParen
	tokRParen
	tokEnd
	tokUnknown
)

// sentinelOp is pushed onto the operator stack first, below anything the
// script supplies, so popping "until the sentinel" at end-of-input has a
// well-defined stopping point.
const sentinelOp = '?'

// token is the DSL's tagged-variant node. Operand tokens already carry
// their evaluated boolean value: method dispatch against the resolver
// happens while lexing, not while combining, so the combine pass never
// needs to short-circuit to avoid a side effect.
type token struct {
	kind  tokenKind
	op    byte
	value bool
	text  string
}

// precedence reports an operator's binding strength; '*' binds tighter
// than '+', and the sentinel binds loosest of all so it is never popped
// by an incoming real operator.
func precedence(op byte) int {
	switch op {
	case sentinelOp:
		return 0
	case '+':
		return 1
	case '*':
		return 2
	case '!':
		return 3
	default:
		return -1
	}
}
