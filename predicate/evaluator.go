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
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yaorongge/CTP/dicom"
)

// Evaluate parses and runs a predicate script against resolver, returning
// its boolean result. A malformed script (unexpected token, unterminated
// group, missing operand) returns an error wrapping dicom.ErrScript;
// callers that just want a filter predicate should treat any error as
// false, per §4.5.
//
// Evaluation uses two stacks and a sentinel operator of lowest precedence,
// left-associatively popping and applying any operator on top of the
// stack whose precedence is at least that of the incoming one. '!' is
// applied to its operand as soon as that operand is available, since it is
// a prefix unary rather than an infix binary operator.
func Evaluate(script string, resolver Resolver) (bool, error) {
	matched, err := evaluate(script, resolver)
	if err != nil {
		logrus.Warnf("predicate: %q: %v", script, err)
	}
	return matched, err
}

func evaluate(script string, resolver Resolver) (bool, error) {
	lx := newLexer(script, resolver)

	operators := []byte{sentinelOp}
	var operands []bool

	applyTop := func() error {
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]

		if op == '!' {
			if len(operands) < 1 {
				return errors.Wrap(dicom.ErrScript, "! with no operand")
			}
			a := operands[len(operands)-1]
			operands[len(operands)-1] = !a
			return nil
		}

		if len(operands) < 2 {
			return errors.Wrapf(dicom.ErrScript, "%q with fewer than two operands", string(op))
		}
		b := operands[len(operands)-1]
		a := operands[len(operands)-2]
		operands = operands[:len(operands)-2]
		switch op {
		case '+':
			operands = append(operands, a || b)
		case '*':
			operands = append(operands, a && b)
		default:
			return errors.Wrapf(dicom.ErrScript, "unterminated group or unexpected operator %q", string(op))
		}
		return nil
	}

	// resolveUnary applies any pending '!' immediately after an operand
	// becomes available, so "!!x" and "!(a+b)" resolve without waiting on
	// a following binary operator.
	resolveUnary := func() error {
		for len(operators) > 0 && operators[len(operators)-1] == '!' {
			if err := applyTop(); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		tok, err := lx.next()
		if err != nil {
			return false, err
		}

		switch tok.kind {
		case tokEnd:
			for len(operators) > 0 && operators[len(operators)-1] != sentinelOp {
				if err := applyTop(); err != nil {
					return false, err
				}
			}
			if len(operators) == 0 {
				return false, errors.Wrap(dicom.ErrScript, "unterminated group")
			}
			if len(operands) != 1 {
				return false, errors.Wrap(dicom.ErrScript, "malformed expression")
			}
			return operands[0], nil

		case tokUnknown:
			return false, errors.Wrapf(dicom.ErrScript, "unexpected token %q", tok.text)

		case tokOperand:
			operands = append(operands, tok.value)
			if err := resolveUnary(); err != nil {
				return false, err
			}

		case tokLParen:
			operators = append(operators, '(')

		case tokRParen:
			for len(operators) > 0 && operators[len(operators)-1] != '(' {
				if err := applyTop(); err != nil {
					return false, err
				}
			}
			if len(operators) == 0 {
				return false, errors.Wrap(dicom.ErrScript, "unmatched )")
			}
			operators = operators[:len(operators)-1]
			if err := resolveUnary(); err != nil {
				return false, err
			}

		case tokOperator:
			if tok.op == '!' {
				operators = append(operators, '!')
				continue
			}
			for precedence(operators[len(operators)-1]) >= precedence(tok.op) {
				if err := applyTop(); err != nil {
					return false, err
				}
			}
			operators = append(operators, tok.op)
		}
	}
}
