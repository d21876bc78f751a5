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

	"github.com/pkg/errors"

	"github.com/yaorongge/CTP/dicom"
)

// Resolver supplies the operand values a script evaluates against. *dicom.File
// satisfies this directly.
type Resolver interface {
	GetString(path []dicom.Tag, def string) string
}

var (
	wordRE    = regexp.MustCompile(`^\s+`)
	commentRE = regexp.MustCompile(`//[^\n]*`)
	boolRE    = regexp.MustCompile(`^(true|false)\b`)
	// The method name is matched generically, not enumerated: an
	// unrecognized name must still produce an operand token so it reaches
	// dispatchMethod's unknown-method fallback (logged, evaluates false)
	// rather than failing the script as an unexpected token.
	//
	// The identifier alternates between a parenthesized hex tag address
	// (e.g. "(0010,0020)") and every other address form, deliberately
	// excluding '(' / ')' from the generic branch: a bareword or bracketed
	// identifier never contains a paren, so the only way this can match a
	// leading '(' is when what follows really is a tag address, leaving an
	// ordinary grouping paren (wrapping a sub-expression, not an operand)
	// to fall through to the tokLParen case below untouched.
	operandRE = regexp.MustCompile(
		`^(\([0-9A-Fa-f,]+\)|[A-Za-z0-9_:,\[\]]+)\.([A-Za-z][A-Za-z0-9]*)\((?:"([^"]*)")?\)`)
)

// lexer scans a script into tokens, evaluating each operand's method call
// against the resolver as it is produced. This is the "lexing pass" the
// design note refers to: by the time an operand token exists, its value is
// already final, so the combining pass that follows has nothing left that
// could short-circuit.
type lexer struct {
	src      string
	pos      int
	resolver Resolver
}

func newLexer(script string, resolver Resolver) *lexer {
	return &lexer{src: commentRE.ReplaceAllString(script, ""), resolver: resolver}
}

func (l *lexer) next() (token, error) {
	if m := wordRE.FindString(l.src[l.pos:]); m != "" {
		l.pos += len(m)
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEnd}, nil
	}

	rest := l.src[l.pos:]

	// operandRE is tried before '(' is treated as a grouping token, since a
	// parenthesized tag address (e.g. "(0010,0020).equals(...)") starts with
	// the same byte as a grouping paren; only when it doesn't match do '(',
	// ')', and the operators fall through to their own cases.
	if m := operandRE.FindStringSubmatch(rest); m != nil {
		l.pos += len(m[0])
		identifier, method, arg := m[1], m[2], m[3]
		value := l.resolver.GetString(dicom.ParseAddress(identifier), "")
		result, err := dispatchMethod(method, value, arg)
		if err != nil {
			return token{}, errors.Wrapf(dicom.ErrScript, "evaluating %q: %v", m[0], err)
		}
		return token{kind: tokOperand, value: result, text: m[0]}, nil
	}

	switch rest[0] {
	case '(':
		l.pos++
		return token{kind: tokLParen}, nil
	case ')':
		l.pos++
		return token{kind: tokRParen}, nil
	case '+', '*', '!':
		l.pos++
		return token{kind: tokOperator, op: rest[0]}, nil
	}

	if m := boolRE.FindStringSubmatch(rest); m != nil {
		l.pos += len(m[0])
		return token{kind: tokOperand, value: m[1] == "true", text: m[0]}, nil
	}

	unknown := strings.Fields(rest)
	text := rest
	if len(unknown) > 0 {
		text = unknown[0]
	}
	return token{kind: tokUnknown, text: text}, nil
}
