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

// Sign returns the known strict sign of t_i: 1, -1 or 0 (unknown).
func (bb *Blackboard) Sign(i int) int {
	switch bb.zeroInequalities[i] {
	case term.GT:
		return 1
	case term.LT:
		return -1
	default:
		return 0
	}
}

// WeakSign returns the known non-strict sign of t_i: 1, -1 or 0 (unknown).
func (bb *Blackboard) WeakSign(i int) int {
	switch bb.zeroInequalities[i] {
	case term.GT, term.GE:
		return 1
	case term.LT, term.LE:
		return -1
	default:
		return 0
	}
}

// ImpliesZeroComparison reports whether "t_i comp 0" is already known to
// hold.
func (bb *Blackboard) ImpliesZeroComparison(i int, comp term.Comp) bool {
	if bb.zeroEqualities.Contains(i) {
		return comp == term.LE || comp == term.GE || comp == term.EQ
	}

	switch comp {
	case term.LT, term.GT:
		c, ok := bb.zeroInequalities[i]
		return ok && c == comp
	case term.LE:
		if c, ok := bb.zeroInequalities[i]; ok && (c == term.LE || c == term.LT) {
			return true
		}

		return bb.zeroEqualities.Contains(i)
	case term.GE:
		if c, ok := bb.zeroInequalities[i]; ok && (c == term.GE || c == term.GT) {
			return true
		}

		return bb.zeroEqualities.Contains(i)
	case term.EQ:
		return bb.zeroEqualities.Contains(i)
	case term.NE:
		if bb.zeroDisequalities[i] {
			return true
		}

		c, ok := bb.zeroInequalities[i]

		return ok && (c == term.LT || c == term.GT)
	default:
		return false
	}
}

// Implies reports whether "t_i comp coeff*t_j" is already known to hold,
// without modifying the Blackboard.  It is the single source of truth the
// assertion engine's fast-exit checks are built on: an assertion that Implies
// already holds is a no-op, and one whose negation Implies is a
// contradiction.
func (bb *Blackboard) Implies(i int, comp term.Comp, coeff *big.Rat, j int) bool {
	if coeff.Sign() == 0 {
		return bb.ImpliesZeroComparison(i, comp)
	}

	if i == j {
		c1 := new(big.Rat).Sub(one(), coeff)

		switch c1.Sign() {
		case 1:
			return bb.ImpliesZeroComparison(i, comp)
		case -1:
			return bb.ImpliesZeroComparison(i, comp.Reverse())
		default:
			return comp == term.GE || comp == term.LE || comp == term.EQ
		}
	}

	if i > j {
		coeff2 := new(big.Rat).Inv(coeff)

		comp2 := comp
		if coeff.Sign() > 0 {
			comp2 = comp.Reverse()
		}

		return bb.impliesOrdered(j, comp2, coeff2, i)
	}

	return bb.impliesOrdered(i, comp, coeff, j)
}

// impliesOrdered is Implies' workhorse for the case i < j.
func (bb *Blackboard) impliesOrdered(i int, comp term.Comp, coeff *big.Rat, j int) bool {
	switch comp {
	case term.LT, term.LE, term.GT, term.GE:
		return bb.impliesInequality(i, comp, coeff, j)
	case term.EQ:
		e, ok := bb.equalities[pair{I: i, J: j}]
		return ok && e.Cmp(coeff) == 0
	case term.NE:
		if deqs, ok := bb.disequalities[pair{I: i, J: j}]; ok {
			if _, present := deqs[coeff.RatString()]; present {
				return true
			}
		}

		return bb.impliesOrdered(i, term.GT, coeff, j) || bb.impliesOrdered(i, term.LT, coeff, j)
	default:
		return false
	}
}

func compEval(comp term.Comp, x, y *big.Rat) bool {
	switch comp {
	case term.LT:
		return x.Cmp(y) < 0
	case term.LE:
		return x.Cmp(y) <= 0
	case term.GT:
		return x.Cmp(y) > 0
	case term.GE:
		return x.Cmp(y) >= 0
	case term.EQ:
		return x.Cmp(y) == 0
	case term.NE:
		return x.Cmp(y) != 0
	default:
		return false
	}
}

func (bb *Blackboard) impliesInequality(i int, comp term.Comp, coeff *big.Rat, j int) bool {
	p := pair{I: i, J: j}

	switch {
	case bb.zeroEqualities.Contains(j):
		if bb.zeroEqualities.Contains(i) {
			return comp == term.LE || comp == term.GE
		}

		c, ok := bb.zeroInequalities[i]
		if !ok {
			return false
		}

		return c == comp || (c == term.GT && comp == term.GE) || (c == term.LT && comp == term.LE)

	case bb.zeroEqualities.Contains(i):
		c, ok := bb.zeroInequalities[j]
		if !ok {
			return false
		}

		comp1 := c.Reverse()
		if coeff.Sign() < 0 {
			comp1 = comp1.Reverse()
		}

		return comp1 == comp || (comp1 == term.GT && comp == term.GE) || (comp1 == term.LT && comp == term.LE)

	default:
		if e, ok := bb.equalities[p]; ok {
			if e.Cmp(coeff) == 0 {
				return comp == term.LE || comp == term.GE
			}

			si, sj := bb.Sign(i), bb.Sign(j)

			// The two points of the line t_i = e*t_j with t_j = 1 and t_j = -1,
			// each skipped when it contradicts a known sign of t_i or t_j.
			for _, yj := range [2]int64{1, -1} {
				x := new(big.Rat).Mul(e, big.NewRat(yj, 1))
				if x.Sign()*si < 0 || int(yj)*sj < 0 {
					continue
				}

				y := new(big.Rat).Mul(coeff, big.NewRat(yj, 1))

				if !compEval(comp, x, y) {
					return false
				}
			}

			return true
		}

		newComp := geometry.HalfplaneOfComp(comp, coeff)

		oldComps := bb.inequalities[p]

		for _, c := range oldComps {
			if geometry.EqDir(c, newComp) {
				return c.Strong || !newComp.Strong
			}
		}

		if newComp.Strong {
			nComp := term.GE
			if comp == term.LT {
				nComp = term.LE
			}

			if bb.impliesInequality(i, nComp, coeff, j) &&
				!bb.ImpliesZeroComparison(i, term.NE) && !bb.ImpliesZeroComparison(j, term.NE) &&
				!bb.HasClause(term.Literal{I: i, Comp: term.EQ, Coeff: zero(), J: 0}, term.Literal{I: j, Comp: term.EQ, Coeff: zero(), J: 0}) {
				return false
			}
		}

		if len(oldComps) < 2 {
			return false
		}

		if !oldComps[0].Strong && !oldComps[1].Strong && newComp.Strong {
			return false
		}

		return geometry.CompareHP(newComp, oldComps[0]) > 0 && geometry.CompareHP(oldComps[1], newComp) > 0
	}
}

// ImpliesComparison reports whether the raw comparison c is already known to
// hold, interning any new subterms it mentions as a side effect of naming.
func (bb *Blackboard) ImpliesComparison(c term.Comparison) (bool, error) {
	lit, err := bb.canonicalize(c)
	if err != nil {
		return false, err
	}

	return bb.Implies(lit.I, lit.Comp, lit.Coeff, lit.J), nil
}

// GetHalfplaneComparisons returns the (at most two) half-planes bounding the
// convex cone of known inequalities between t_i and t_j.
func (bb *Blackboard) GetHalfplaneComparisons(i, j int) []geometry.Halfplane {
	if i <= j {
		return append([]geometry.Halfplane(nil), bb.inequalities[pair{I: i, J: j}]...)
	}

	hps := bb.inequalities[pair{I: j, J: i}]
	out := make([]geometry.Halfplane, len(hps))

	for k, h := range hps {
		out[k] = geometry.Flip(h)
	}

	return out
}

// equalityCoeff returns the coefficient e such that "t_i == e*t_j" is known
// to hold, reorienting the stored (smaller-index-first) entry if necessary.
func (bb *Blackboard) equalityCoeff(i, j int) (*big.Rat, bool) {
	if i <= j {
		e, ok := bb.equalities[pair{I: i, J: j}]
		return e, ok
	}

	e, ok := bb.equalities[pair{I: j, J: i}]
	if !ok || e.Sign() == 0 {
		return nil, false
	}

	return new(big.Rat).Inv(e), true
}

// coeffRangeAroundAnchor widens a single known fact "t_i anchorComp anchor*t_j"
// (anchorComp matching sense, possibly strict) into the full range of
// coefficients c for which "t_i sense c*t_j" is implied.  Whether the range
// extends to +-infinity on the free side, and whether it does so strictly,
// depends entirely on the sign of t_j: scaling the anchor fact by a larger
// coefficient only preserves direction when t_j's sign is known.  This is the
// same case split blackboard.py's get_le_range/get_ge_range use for both
// their i==j shortcut and their single-boundary-halfplane case.
func (bb *Blackboard) coeffRangeAroundAnchor(j int, anchor *big.Rat, anchorStrict, isLE bool) geometry.ComparisonRange {
	coeff := geometry.FiniteExtended(anchor)
	sj, wsj := bb.Sign(j), bb.WeakSign(j)

	if isLE {
		switch {
		case sj == 1:
			return geometry.ComparisonRange{Lower: coeff, Upper: geometry.PositiveInfinity, LowerStrict: anchorStrict, InteriorStrong: true}
		case wsj == 1:
			return geometry.ComparisonRange{Lower: coeff, Upper: geometry.PositiveInfinity, LowerStrict: anchorStrict}
		case sj == -1:
			return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: coeff, InteriorStrong: true, UpperStrict: anchorStrict}
		case wsj == -1:
			return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: coeff, UpperStrict: anchorStrict}
		default:
			return geometry.ComparisonRange{Lower: coeff, Upper: coeff, LowerStrict: anchorStrict, UpperStrict: anchorStrict}
		}
	}

	switch {
	case sj == 1:
		return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: coeff, InteriorStrong: true, UpperStrict: anchorStrict}
	case wsj == 1:
		return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: coeff, UpperStrict: anchorStrict}
	case sj == -1:
		return geometry.ComparisonRange{Lower: coeff, Upper: geometry.PositiveInfinity, LowerStrict: anchorStrict, InteriorStrong: true}
	case wsj == -1:
		return geometry.ComparisonRange{Lower: coeff, Upper: geometry.PositiveInfinity, LowerStrict: anchorStrict}
	default:
		return geometry.ComparisonRange{Lower: coeff, Upper: coeff, LowerStrict: anchorStrict, UpperStrict: anchorStrict}
	}
}

// rangeAgainstZero handles "t_i sense c*t_j" when t_j is known to equal 0
// exactly: the right-hand side is 0 regardless of c, so the answer depends
// only on the known sign of t_i, not on c at all.
func (bb *Blackboard) rangeAgainstZero(i int, isLE bool) geometry.ComparisonRange {
	if bb.zeroEqualities.Contains(i) {
		return geometry.FullRange()
	}

	c, ok := bb.zeroInequalities[i]
	if !ok {
		return geometry.EmptyRange()
	}

	strictSign, weakSign := term.LT, term.LE
	if !isLE {
		strictSign, weakSign = term.GT, term.GE
	}

	switch c {
	case strictSign:
		return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: geometry.PositiveInfinity, InteriorStrong: true}
	case weakSign:
		return geometry.FullRange()
	default:
		return geometry.EmptyRange()
	}
}

// rangeWithLeftZero handles "t_i sense c*t_j" when t_i is known to equal 0
// exactly but t_j is not: the range is anchored at c = 0 and extends toward
// whichever side the sign of t_j permits.  c = 0 itself is always valid here,
// since 0 sense 0*t_j reduces to 0 sense 0 regardless of t_j.
func (bb *Blackboard) rangeWithLeftZero(j int, isLE bool) geometry.ComparisonRange {
	c, ok := bb.zeroInequalities[j]
	if !ok {
		return geometry.EmptyRange()
	}

	zero := geometry.FiniteExtendedInt(0)

	if isLE {
		switch c {
		case term.GT:
			return geometry.ComparisonRange{Lower: zero, Upper: geometry.PositiveInfinity, InteriorStrong: true}
		case term.GE:
			return geometry.ComparisonRange{Lower: zero, Upper: geometry.PositiveInfinity}
		case term.LE:
			return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: zero}
		default: // term.LT
			return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: zero, InteriorStrong: true}
		}
	}

	switch c {
	case term.GT:
		return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: zero, InteriorStrong: true}
	case term.GE:
		return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: zero}
	case term.LE:
		return geometry.ComparisonRange{Lower: zero, Upper: geometry.PositiveInfinity}
	default: // term.LT
		return geometry.ComparisonRange{Lower: zero, Upper: geometry.PositiveInfinity, InteriorStrong: true}
	}
}

// rangeBySense builds the coefficient range for which "t_i sense c*t_j"
// holds, where sense is term.LE or term.GE.  It mirrors blackboard.py's
// get_le_range/get_ge_range: the i==j and known-equality cases widen their
// single exact fact by the sign of t_j, the zero-equality cases collapse to a
// sign-of-the-other-term check independent of c, and the general case widens
// whichever stored half-plane already matches the requested sense.  Both
// stored boundary half-planes of a cone can share the requested sense; each
// matching half-plane is then widened independently and the resulting ranges
// are intersected.
func (bb *Blackboard) rangeBySense(i, j int, sense term.Comp) geometry.ComparisonRange {
	isLE := sense == term.LE

	if i == j {
		return bb.coeffRangeAroundAnchor(j, one(), false, isLE)
	}

	if e, ok := bb.equalityCoeff(i, j); ok {
		return bb.coeffRangeAroundAnchor(j, e, false, isLE)
	}

	if bb.zeroEqualities.Contains(j) {
		return bb.rangeAgainstZero(i, isLE)
	}

	if bb.zeroEqualities.Contains(i) {
		return bb.rangeWithLeftZero(j, isLE)
	}

	wantComps := [2]term.Comp{term.LE, term.LT}
	if !isLE {
		wantComps = [2]term.Comp{term.GE, term.GT}
	}

	r := geometry.EmptyRange()
	found := false

	for _, h := range bb.GetHalfplaneComparisons(i, j) {
		if h.A.Sign() == 0 || h.B.Sign() == 0 {
			continue
		}

		lit := geometry.ToComp(h, i, j)
		if lit.Comp != wantComps[0] && lit.Comp != wantComps[1] {
			continue
		}

		candidate := bb.coeffRangeAroundAnchor(j, lit.Coeff, lit.Comp == wantComps[1], isLE)

		if !found {
			r, found = candidate, true
			continue
		}

		r = geometry.Intersect(r, candidate)
	}

	if !found {
		return geometry.EmptyRange()
	}

	return r
}

// GetLeRange returns the range of coefficients c for which "t_i <= c*t_j" is
// known to hold.
func (bb *Blackboard) GetLeRange(i, j int) geometry.ComparisonRange {
	return bb.rangeBySense(i, j, term.LE)
}

// GetGeRange returns the range of coefficients c for which "t_i >= c*t_j" is
// known to hold.
func (bb *Blackboard) GetGeRange(i, j int) geometry.ComparisonRange {
	return bb.rangeBySense(i, j, term.GE)
}

// LeCoeffRange returns the range of coefficients c for which "c*t_i <=
// coeff*t_j" is known to hold.  A positive coeff reduces to a GE query on
// (j, i) scaled by coeff, and a negative coeff reduces to the matching LE
// query, since scaling an inequality by a negative number reverses it.  A
// zero coeff collapses the right-hand side to 0, so "c*t_i <= 0" holds
// exactly when c and t_i's known sign point opposite ways (c <= 0 paired
// with t_i >= 0, or c >= 0 paired with t_i <= 0): the zero here sits on the
// coefficient's own side of the product, unlike rangeAgainstZero/
// rangeWithLeftZero above where the zero term stands in for a whole side of
// the comparison regardless of the scaling coefficient.
func (bb *Blackboard) LeCoeffRange(i, j int, coeff *big.Rat) geometry.ComparisonRange {
	switch coeff.Sign() {
	case 0:
		zero := geometry.FiniteExtendedInt(0)

		if bb.zeroEqualities.Contains(i) {
			return geometry.FullRange()
		}

		switch bb.zeroInequalities[i] {
		case term.GT:
			return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: zero, InteriorStrong: true}
		case term.GE:
			return geometry.ComparisonRange{Lower: geometry.NegativeInfinity, Upper: zero}
		case term.LT:
			return geometry.ComparisonRange{Lower: zero, Upper: geometry.PositiveInfinity, InteriorStrong: true}
		case term.LE:
			return geometry.ComparisonRange{Lower: zero, Upper: geometry.PositiveInfinity}
		default:
			return geometry.EmptyRange()
		}
	case 1:
		return bb.GetGeRange(j, i).Scale(coeff)
	default:
		return bb.GetLeRange(j, i).Scale(coeff)
	}
}

// HasClause reports whether a clause logically equivalent to the given
// literals (after dropping any already known to be false) is already on the
// Blackboard, either verbatim or because it has already been reduced to one
// of its remaining literals.
func (bb *Blackboard) HasClause(literals ...term.Literal) bool {
	reduced, satisfied := bb.evaluateLiterals(literals)
	if satisfied {
		return true
	}

	if len(reduced) == 0 {
		return false
	}

	for _, c := range bb.clauses {
		if clauseMatches(c, reduced) {
			return true
		}
	}

	return false
}

func clauseMatches(c term.Clause, literals []term.Literal) bool {
	if len(c.Literals) != len(literals) {
		return false
	}

	seen := make([]bool, len(c.Literals))

	for _, want := range literals {
		found := false

		for idx, have := range c.Literals {
			if seen[idx] {
				continue
			}

			if have.I == want.I && have.J == want.J && have.Comp == want.Comp && have.Coeff.Cmp(want.Coeff) == 0 {
				seen[idx] = true
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}
