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
package geometry

import "math/big"

// ComparisonRange records the set of coefficients c for which some parametric
// comparison (e.g. t_i <= c*t_j) is known to hold: a closed-or-open interval
// [Lower, Upper] plus three independent strictness bits:
//
//   - LowerStrict: the bound is not achieved at c = Lower itself.
//   - UpperStrict: the bound is not achieved at c = Upper itself.
//   - InteriorStrong: the comparison holds strictly for every c strictly
//     between Lower and Upper, even though the endpoints may be non-strict.
//
// A distinguished Empty value represents the set with no satisfying
// coefficient at all.
type ComparisonRange struct {
	Lower, Upper   Extended
	LowerStrict    bool
	InteriorStrong bool
	UpperStrict    bool
	Empty          bool
}

// EmptyRange returns the distinguished empty range.
func EmptyRange() ComparisonRange {
	return ComparisonRange{Empty: true}
}

// FullRange returns the range containing every coefficient, non-strictly.
func FullRange() ComparisonRange {
	return ComparisonRange{Lower: NegativeInfinity, Upper: PositiveInfinity}
}

// Single returns the degenerate range containing exactly c, non-strictly.
func Single(c *big.Rat) ComparisonRange {
	e := FiniteExtended(c)
	return ComparisonRange{Lower: e, Upper: e}
}

// IsEmpty reports whether r represents the empty set, either explicitly or
// because its bounds have crossed / collapsed under a strict constraint.
func (r ComparisonRange) IsEmpty() bool {
	if r.Empty {
		return true
	}

	switch r.Lower.Cmp(r.Upper) {
	case 1:
		return true
	case 0:
		return r.LowerStrict || r.UpperStrict
	default:
		return false
	}
}

// Contains reports whether c lies within r, respecting strictness.
func (r ComparisonRange) Contains(c *big.Rat) bool {
	if r.IsEmpty() {
		return false
	}

	e := FiniteExtended(c)

	switch r.Lower.Cmp(e) {
	case 1:
		return false
	case 0:
		if r.LowerStrict {
			return false
		}
	}

	switch e.Cmp(r.Upper) {
	case 1:
		return false
	case 0:
		if r.UpperStrict {
			return false
		}
	}

	return true
}

// Intersect computes the componentwise intersection of two ranges.  Each
// bound is taken from the operand that is tighter there, with that operand's
// strictness; where both operands share a bound, it is strict in the result
// if it is strict in either operand.
func Intersect(a, b ComparisonRange) ComparisonRange {
	if a.IsEmpty() || b.IsEmpty() {
		return EmptyRange()
	}

	var r ComparisonRange

	switch a.Lower.Cmp(b.Lower) {
	case 1:
		r.Lower, r.LowerStrict = a.Lower, a.LowerStrict
	case -1:
		r.Lower, r.LowerStrict = b.Lower, b.LowerStrict
	default:
		r.Lower = a.Lower
		r.LowerStrict = a.LowerStrict || b.LowerStrict
	}

	switch a.Upper.Cmp(b.Upper) {
	case -1:
		r.Upper, r.UpperStrict = a.Upper, a.UpperStrict
	case 1:
		r.Upper, r.UpperStrict = b.Upper, b.UpperStrict
	default:
		r.Upper = a.Upper
		r.UpperStrict = a.UpperStrict || b.UpperStrict
	}

	r.InteriorStrong = a.InteriorStrong || b.InteriorStrong

	if r.IsEmpty() {
		return EmptyRange()
	}

	return r
}

// Scale multiplies every endpoint by the nonzero rational k.  Negative k
// reverses the range, swapping the lower and upper bounds (and their
// strictness bits) since multiplying an inequality by a negative number
// flips its direction.
func (r ComparisonRange) Scale(k *big.Rat) ComparisonRange {
	if r.IsEmpty() {
		return EmptyRange()
	}

	lo := r.Lower.Scale(k)
	hi := r.Upper.Scale(k)

	if k.Sign() < 0 {
		return ComparisonRange{
			Lower:          hi,
			Upper:          lo,
			LowerStrict:    r.UpperStrict,
			UpperStrict:    r.LowerStrict,
			InteriorStrong: r.InteriorStrong,
		}
	}

	return ComparisonRange{
		Lower:          lo,
		Upper:          hi,
		LowerStrict:    r.LowerStrict,
		UpperStrict:    r.UpperStrict,
		InteriorStrong: r.InteriorStrong,
	}
}
