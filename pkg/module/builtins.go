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
package module

import (
	"math/big"

	"github.com/zeta1999/polya/pkg/blackboard"
	"github.com/zeta1999/polya/pkg/term"
)

// BuiltinsModule asserts the standard sign/bound axioms for a handful of
// uninterpreted functions (sin, cos, floor) the moment it sees them appear as
// a FuncTerm on the Blackboard.  Unlike the original quantified-axiom
// scheme, each bound is asserted directly against the specific application's
// own index: there is no formula/quantifier layer in this core, so a fresh
// axiom instance is asserted per application rather than once universally.
type BuiltinsModule struct {
	seen map[int]bool
}

// NewBuiltinsModule constructs an empty BuiltinsModule.
func NewBuiltinsModule() *BuiltinsModule {
	return &BuiltinsModule{seen: map[int]bool{}}
}

// UpdateBlackboard scans every term definition added since the last call and
// asserts the relevant axiom for any newly seen sin/cos/floor application.
func (m *BuiltinsModule) UpdateBlackboard(bb *blackboard.Blackboard) error {
	for i := 0; i < bb.NumTerms(); i++ {
		if m.seen[i] {
			continue
		}

		ft, ok := bb.TermDef(i).(term.FuncTerm)
		if !ok {
			continue
		}

		m.seen[i] = true

		switch ft.Func {
		case "sin", "cos":
			if err := bb.AssertComparison(boundAbove(i, one())); err != nil {
				return err
			}

			if err := bb.AssertComparison(boundBelow(i, negOne())); err != nil {
				return err
			}
		case "floor":
			if len(ft.Args) != 1 {
				continue
			}

			arg := ft.Args[0].Term

			if err := bb.AssertComparison(term.Comparison{
				Left: term.IVar{Index: i}, Comp: term.LE, Coeff: one(), Right: arg,
			}); err != nil {
				return err
			}

			xMinusOne := term.AddTerm{Args: []term.Addend{
				{Coeff: one(), Term: arg},
				{Coeff: negOne(), Term: term.One{}},
			}}

			if err := bb.AssertComparison(term.Comparison{
				Left: term.IVar{Index: i}, Comp: term.GT, Coeff: one(), Right: xMinusOne,
			}); err != nil {
				return err
			}
		}
	}

	return nil
}

// GetSplitWeight reports that this module never benefits from a case split.
func (m *BuiltinsModule) GetSplitWeight(*blackboard.Blackboard) (int, bool) {
	return 0, false
}

func boundAbove(i int, c *big.Rat) term.Comparison {
	return term.Comparison{Left: term.IVar{Index: i}, Comp: term.LE, Coeff: c, Right: term.One{}}
}

func boundBelow(i int, c *big.Rat) term.Comparison {
	return term.Comparison{Left: term.IVar{Index: i}, Comp: term.GE, Coeff: c, Right: term.One{}}
}

func one() *big.Rat    { return big.NewRat(1, 1) }
func negOne() *big.Rat { return big.NewRat(-1, 1) }
