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
package blackboard

import (
	"math/big"

	"github.com/zeta1999/polya/pkg/geometry"
	"github.com/zeta1999/polya/pkg/term"
)

func zeroComparison(i int, comp term.Comp) term.Comparison {
	return term.Comparison{Left: term.IVar{Index: i}, Comp: comp, Coeff: zero(), Right: term.One{}}
}

func pairComparison(i int, comp term.Comp, coeff *big.Rat, j int) term.Comparison {
	return term.Comparison{Left: term.IVar{Index: i}, Comp: comp, Coeff: coeff, Right: term.IVar{Index: j}}
}

func (bb *Blackboard) announce(i int, comp term.Comp, coeff *big.Rat, j int) {
	if bb.log == nil {
		return
	}

	bb.log.WithFields(map[string]any{"i": i, "j": j}).Debugf("asserting t%d %s %s*t%d", i, comp, coeff.RatString(), j)
}

func (bb *Blackboard) announceZero(i int, comp term.Comp) {
	if bb.log == nil {
		return
	}

	bb.log.WithField("i", i).Debugf("asserting t%d %s 0", i, comp)
}

func (bb *Blackboard) raiseContradiction(i int, comp term.Comp, coeff *big.Rat, j int) error {
	return &ContradictionError{
		Offending: term.Literal{I: i, Comp: comp, Coeff: coeff, J: j},
		Expanded:  renderLiteral(bb, i, comp, coeff, j),
	}
}

func renderLiteral(bb *Blackboard, i int, comp term.Comp, coeff *big.Rat, j int) string {
	left := bb.Term(i)
	var right term.Term = term.One{}

	if j < bb.NumTerms() {
		right = bb.Term(j)
	}

	return term.Canonicalize(term.AddTerm{Args: []term.Addend{
		{Coeff: one(), Term: left},
		{Coeff: new(big.Rat).Neg(coeff), Term: right},
	}}).CanonicalKey() + " " + comp.String() + " 0"
}

// AssertComparison is the single entry point of the assertion engine: it
// canonicalizes c, fast-exits if the fact (or its negation) is already
// known, and otherwise dispatches into the handler for its comparison kind.
// A ContradictionError return is the expected outcome of a successful
// saturation run, not a bug; a StructuralError return indicates a caller
// error (an unrecognized comparison constant).
func (bb *Blackboard) AssertComparison(c term.Comparison) error {
	lit, err := bb.canonicalize(c)
	if err != nil {
		return err
	}

	if bb.Implies(lit.I, lit.Comp, lit.Coeff, lit.J) {
		return nil
	}

	if bb.Implies(lit.I, lit.Comp.Negate(), lit.Coeff, lit.J) {
		return bb.raiseContradiction(lit.I, lit.Comp, lit.Coeff, lit.J)
	}

	if lit.Coeff.Sign() == 0 {
		switch lit.Comp {
		case term.LT, term.LE, term.GT, term.GE:
			return bb.assertZeroInequality(lit.I, lit.Comp)
		case term.EQ:
			return bb.assertZeroEquality(lit.I)
		case term.NE:
			return bb.assertZeroDisequality(lit.I)
		default:
			return newStructuralError("unrecognized comparison constant %v", lit.Comp)
		}
	}

	switch lit.Comp {
	case term.LT, term.LE, term.GT, term.GE:
		return bb.assertInequality(lit.I, lit.Comp, lit.Coeff, lit.J)
	case term.EQ:
		return bb.assertEquality(lit.I, lit.Coeff, lit.J)
	case term.NE:
		return bb.assertDisequality(lit.I, lit.Coeff, lit.J)
	default:
		return newStructuralError("unrecognized comparison constant %v", lit.Comp)
	}
}

// Add interns t without asserting anything: an alias kept for readability at
// call sites that only want a term indexed.
func (bb *Blackboard) Add(t term.Term) (int, error) {
	return bb.AddTerm(t)
}

// Assume is an alias for AssertComparison, read more naturally at call sites
// that are feeding in a saturation run's working hypotheses.
func (bb *Blackboard) Assume(c term.Comparison) error {
	return bb.AssertComparison(c)
}

// assertInequality handles "t_i comp coeff*t_j" with i < j and coeff != 0.
func (bb *Blackboard) assertInequality(i int, comp term.Comp, coeff *big.Rat, j int) error {
	bb.announce(i, comp, coeff, j)

	p := pair{I: i, J: j}
	newComp := geometry.HalfplaneOfComp(comp, coeff)
	oldComps := bb.inequalities[p]

	if i == 0 {
		switch {
		case coeff.Sign() > 0 && (comp == term.LE || comp == term.LT):
			if err := bb.assertZeroInequality(j, term.GT); err != nil {
				return err
			}
		case coeff.Sign() < 0 && (comp == term.LE || comp == term.LT):
			if err := bb.assertZeroInequality(j, term.LT); err != nil {
				return err
			}
		}
	}

	for idx, c := range oldComps {
		if geometry.EqDir(c, newComp) {
			if newComp.Strong && !c.Strong {
				oldComps[idx].Strong = true
				bb.inequalities[p] = oldComps
				bb.tracker.update(p)
			}

			return nil
		}

		if geometry.OppDir(c, newComp) && !newComp.Strong && !c.Strong {
			return bb.AssertComparison(pairComparison(i, term.EQ, coeff, j))
		}
	}

	if newComp.Strong {
		wComp := term.LE
		if comp == term.GT {
			wComp = term.GE
		}

		if bb.Implies(i, wComp, coeff, j) {
			return bb.AssertClause(zeroComparison(i, term.NE), zeroComparison(j, term.NE))
		}
	}

	var newComps []geometry.Halfplane

	switch len(oldComps) {
	case 0:
		newComps = []geometry.Halfplane{newComp}
	case 1:
		if geometry.CompareHP(oldComps[0], newComp) < 0 {
			newComps = []geometry.Halfplane{oldComps[0], newComp}
		} else {
			newComps = []geometry.Halfplane{newComp, oldComps[0]}
		}
	default:
		a, c := oldComps[0], oldComps[1]
		if geometry.CompareHP(a, newComp) > 0 && geometry.CompareHP(c, newComp) > 0 {
			newComps = []geometry.Halfplane{newComp, c}
		} else {
			newComps = []geometry.Halfplane{a, newComp}
		}

		if geometry.CompareHP(newComps[0], newComps[1]) == 0 {
			delete(bb.inequalities, p)
			return bb.assertEquality(i, coeff, j)
		}
	}

	bb.inequalities[p] = newComps
	bb.tracker.update(p)

	if deqs, ok := bb.disequalities[p]; ok {
		kept := map[string]*big.Rat{}

		for key, k := range deqs {
			if !bb.Implies(i, term.NE, k, j) {
				kept[key] = k
			}
		}

		if len(kept) > 0 {
			bb.disequalities[p] = kept
		} else {
			delete(bb.disequalities, p)
		}
	}

	return bb.updateClause(i, j)
}

// assertEquality handles "t_i == coeff*t_j" with i < j and coeff != 0.
func (bb *Blackboard) assertEquality(i int, coeff *big.Rat, j int) error {
	bb.announce(i, term.EQ, coeff, j)

	p := pair{I: i, J: j}
	bb.equalities[p] = coeff
	delete(bb.inequalities, p)
	delete(bb.disequalities, p)
	bb.tracker.update(p)

	return bb.updateClause(i, j)
}

// assertDisequality handles "t_i != coeff*t_j" with i < j and coeff != 0.
func (bb *Blackboard) assertDisequality(i int, coeff *big.Rat, j int) error {
	bb.announce(i, term.NE, coeff, j)

	p := pair{I: i, J: j}
	superseded := false

	for _, c := range bb.inequalities[p] {
		if c.A.Sign() == 0 || c.B.Sign() == 0 {
			continue
		}

		lit := geometry.ToComp(c, i, j)
		if lit.Coeff.Cmp(coeff) != 0 {
			continue
		}

		switch lit.Comp {
		case term.GE:
			if err := bb.assertInequality(i, term.GT, coeff, j); err != nil {
				return err
			}

			superseded = true
		case term.LE:
			if err := bb.assertInequality(i, term.LT, coeff, j); err != nil {
				return err
			}

			superseded = true
		}
	}

	if superseded {
		return nil
	}

	set, ok := bb.disequalities[p]
	if !ok {
		set = map[string]*big.Rat{}
	}

	set[coeff.RatString()] = coeff
	bb.disequalities[p] = set
	bb.tracker.update(p)

	return bb.updateClause(i, j)
}

// assertZeroInequality handles "t_i comp 0" for comp in {LT,LE,GT,GE}.
func (bb *Blackboard) assertZeroInequality(i int, comp term.Comp) error {
	if bb.zeroDisequalities[i] {
		strictSide := term.LT
		if comp == term.GE || comp == term.GT {
			strictSide = term.GT
		}

		delete(bb.zeroDisequalities, i)

		if p, ok := bb.disequalities[pair{I: 0, J: i}]; ok {
			kept := map[string]*big.Rat{}

			for key, k := range p {
				if !compEval(strictSide, k, zero()) {
					kept[key] = k
				}
			}

			if len(kept) > 0 {
				bb.disequalities[pair{I: 0, J: i}] = kept
			} else {
				delete(bb.disequalities, pair{I: 0, J: i})
			}
		}
	}

	bb.announceZero(i, comp)
	bb.tracker.update(i)

	if existing, ok := bb.zeroInequalities[i]; ok {
		if (existing == term.LE || existing == term.GE) && (comp == term.LE || comp == term.GE) {
			delete(bb.zeroInequalities, i)
			return bb.assertZeroEquality(i)
		}
	}

	bb.zeroInequalities[i] = comp

	var queued []term.Comparison

	for j := 0; j < bb.numTerms; j++ {
		if j == i {
			continue
		}

		p := mkPair(i, j)
		oldComps := bb.inequalities[p]

		var newComp geometry.Halfplane
		if i < j {
			newComp = geometry.HalfplaneOfComp(comp, zero())
		} else {
			strong := comp == term.LT || comp == term.GT
			if comp == term.GE || comp == term.GT {
				newComp = geometry.Halfplane{A: zero(), B: one(), Strong: strong}
			} else {
				newComp = geometry.Halfplane{A: zero(), B: new(big.Rat).Neg(one()), Strong: strong}
			}
		}

		strengthened := false

		for idx, c := range oldComps {
			if geometry.EqDir(c, newComp) && !c.Strong && newComp.Strong {
				oldComps[idx].Strong = true
				strengthened = true
			}
		}

		if strengthened {
			bb.inequalities[p] = oldComps
			bb.tracker.update(p)

			continue
		}

		var newComps []geometry.Halfplane

		switch len(oldComps) {
		case 0:
			newComps = []geometry.Halfplane{newComp}
		case 1:
			if geometry.CompareHP(oldComps[0], newComp) < 0 {
				newComps = []geometry.Halfplane{oldComps[0], newComp}
			} else {
				newComps = []geometry.Halfplane{newComp, oldComps[0]}
			}
		default:
			a, c := oldComps[0], oldComps[1]
			if geometry.CompareHP(a, newComp) > 0 && geometry.CompareHP(c, newComp) > 0 {
				newComps = []geometry.Halfplane{newComp, c}
			} else if geometry.CompareHP(newComp, a) > 0 && geometry.CompareHP(newComp, c) > 0 {
				newComps = []geometry.Halfplane{a, newComp}
			} else {
				newComps = oldComps
			}
		}

		bb.inequalities[p] = newComps
		bb.tracker.update(p)

		if bb.Sign(j) != 0 || len(newComps) != 2 {
			continue
		}

		jPositive := geometry.Halfplane{A: zero(), B: one(), Strong: true}
		if i > j {
			jPositive = geometry.Halfplane{A: one(), B: zero(), Strong: true}
		}

		cwA := geometry.CompareHP(jPositive, newComps[0])
		cwB := geometry.CompareHP(jPositive, newComps[1])
		bothStrong := newComps[0].Strong && newComps[1].Strong

		switch {
		case cwA > 0 && cwB < 0:
			if bothStrong {
				queued = append(queued, zeroComparison(j, term.GT))
			} else {
				queued = append(queued, zeroComparison(j, term.GE))
			}
		case cwA < 0 && cwB > 0:
			if bothStrong {
				queued = append(queued, zeroComparison(j, term.LT))
			} else {
				queued = append(queued, zeroComparison(j, term.LE))
			}
		}
	}

	for _, q := range queued {
		if err := bb.AssertComparison(q); err != nil {
			return err
		}
	}

	return bb.updateClause(i)
}

// assertZeroEquality handles "t_i == 0".
func (bb *Blackboard) assertZeroEquality(i int) error {
	for _, k := range bb.zeroEqualities.Values() {
		if err := bb.AssertComparison(pairComparison(i, term.EQ, one(), k)); err != nil {
			return err
		}
	}

	bb.zeroEqualities.Insert(i)
	bb.announceZero(i, term.EQ)

	if err := bb.updateClause(i); err != nil {
		return err
	}

	bb.tracker.update(i)

	return nil
}

// assertZeroDisequality handles "t_i != 0".
func (bb *Blackboard) assertZeroDisequality(i int) error {
	bb.announceZero(i, term.NE)

	if existing, ok := bb.zeroInequalities[i]; ok {
		switch existing {
		case term.LE:
			if err := bb.assertZeroInequality(i, term.LT); err != nil {
				return err
			}
		case term.GE:
			if err := bb.assertZeroInequality(i, term.GT); err != nil {
				return err
			}
		}
	} else {
		bb.zeroDisequalities[i] = true
	}

	if err := bb.updateClause(i); err != nil {
		return err
	}

	bb.tracker.update(i)

	return nil
}
