// Copyright Polya Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package exprparse

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/zeta1999/polya/pkg/term"
)

var parser = participle.MustBuild[Comparison](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses s (e.g. "2*x + y <= 3*z") into a term.Comparison ready to
// hand to Blackboard.AssertComparison.
func Parse(s string) (term.Comparison, error) {
	ast, err := parser.ParseString("", s)
	if err != nil {
		return term.Comparison{}, fmt.Errorf("exprparse: %w", err)
	}

	left, err := ast.Left.toTerm()
	if err != nil {
		return term.Comparison{}, err
	}

	right, err := ast.Right.toTerm()
	if err != nil {
		return term.Comparison{}, err
	}

	comp, err := compFromOp(ast.Op)
	if err != nil {
		return term.Comparison{}, err
	}

	// A bare numeric "0" on either side parses to the canonical empty sum,
	// which carries no special meaning to the Blackboard on its own: a
	// comparison against the literal zero is instead expressed with a zero
	// Coeff, so it is rewritten here onto that convention.
	switch {
	case isZero(right):
		return term.Comparison{Left: left, Comp: comp, Coeff: zero(), Right: right}, nil
	case isZero(left):
		return term.Comparison{Left: right, Comp: comp.Reverse(), Coeff: zero(), Right: left}, nil
	default:
		return term.Comparison{Left: left, Comp: comp, Coeff: one(), Right: right}, nil
	}
}

func isZero(t term.Term) bool {
	at, ok := t.(term.AddTerm)
	return ok && len(at.Args) == 0
}

func compFromOp(op string) (term.Comp, error) {
	switch op {
	case "<":
		return term.LT, nil
	case "<=":
		return term.LE, nil
	case ">":
		return term.GT, nil
	case ">=":
		return term.GE, nil
	case "==":
		return term.EQ, nil
	case "!=":
		return term.NE, nil
	default:
		return 0, fmt.Errorf("exprparse: unrecognized comparison operator %q", op)
	}
}
