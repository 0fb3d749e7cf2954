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

// MinimumModule learns facts about applications of a "min" uninterpreted
// function: that the application is at most each of its arguments, and what
// its sign must be given the signs of its arguments.  It does not attempt
// the original's further step of relating min(...) to a scaled multiple of
// some unrelated problem term — that refinement needs a dedicated
// coefficient-range sweep this demonstration module leaves out.
type MinimumModule struct {
	seen map[int]bool
}

// NewMinimumModule constructs an empty MinimumModule.
func NewMinimumModule() *MinimumModule {
	return &MinimumModule{seen: map[int]bool{}}
}

func zeroComp(t term.Term, comp term.Comp) term.Comparison {
	return term.Comparison{Left: t, Comp: comp, Coeff: big.NewRat(0, 1), Right: term.One{}}
}

// addendSign reports the known sign of coeff*t: (1 or -1, true) if known,
// (0, false) if the sign of t is not yet determined.
func addendSign(bb *blackboard.Blackboard, a term.Addend) (int, bool) {
	var termSign int

	switch {
	case mustHold(bb, zeroComp(a.Term, term.GT)):
		termSign = 1
	case mustHold(bb, zeroComp(a.Term, term.LT)):
		termSign = -1
	default:
		return 0, false
	}

	return termSign * a.Coeff.Sign(), true
}

func mustHold(bb *blackboard.Blackboard, c term.Comparison) bool {
	ok, err := bb.ImpliesComparison(c)
	return err == nil && ok
}

// UpdateBlackboard asserts, for every not-yet-processed "min" application,
// that it is at most each of its arguments and, from the arguments' known
// signs, what its own sign must be: positive when every argument is known
// positive, negative as soon as any argument is known negative.
func (m *MinimumModule) UpdateBlackboard(bb *blackboard.Blackboard) error {
	for i := 0; i < bb.NumTerms(); i++ {
		if m.seen[i] {
			continue
		}

		ft, ok := bb.TermDef(i).(term.FuncTerm)
		if !ok || ft.Func != "min" {
			continue
		}

		m.seen[i] = true

		for _, a := range ft.Args {
			c := term.Comparison{Left: term.IVar{Index: i}, Comp: term.LE, Coeff: a.Coeff, Right: a.Term}
			if err := bb.AssertComparison(c); err != nil {
				return err
			}
		}

		if err := m.inferSign(bb, i, ft.Args); err != nil {
			return err
		}
	}

	return nil
}

func (m *MinimumModule) inferSign(bb *blackboard.Blackboard, i int, args []term.Addend) error {
	allPositive, allNonNegative, anyNegative, anyNonPositive := true, true, false, false

	for _, a := range args {
		s, known := addendSign(bb, a)
		if !known {
			allPositive, allNonNegative = false, false

			continue
		}

		if s <= 0 {
			allPositive = false
		}

		if s < 0 {
			allNonNegative = false
			anyNegative = true
		}

		if s <= 0 {
			anyNonPositive = true
		}
	}

	if allPositive {
		return bb.AssertComparison(zeroComp(term.IVar{Index: i}, term.GT))
	}

	if allNonNegative {
		if err := bb.AssertComparison(zeroComp(term.IVar{Index: i}, term.GE)); err != nil {
			return err
		}
	}

	if anyNegative {
		return bb.AssertComparison(zeroComp(term.IVar{Index: i}, term.LT))
	}

	if anyNonPositive {
		return bb.AssertComparison(zeroComp(term.IVar{Index: i}, term.LE))
	}

	return nil
}

// GetSplitWeight reports that this module never benefits from a case split.
func (m *MinimumModule) GetSplitWeight(*blackboard.Blackboard) (int, bool) {
	return 0, false
}
