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
	"testing"

	"github.com/zeta1999/polya/pkg/term"
	"github.com/zeta1999/polya/pkg/util/assert"
)

// Range soundness: every coefficient inside get_le_range(i,j) must make
// "t_i <= c*t_j" actually implied, and the lower endpoint itself must be
// witnessed whenever it is marked non-strict.
func Test_Query_LeRangeIsSound(t *testing.T) {
	bb := New()
	x, y := term.Var{Name: "x"}, term.Var{Name: "y"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	yi, err := bb.AddTerm(y)
	assert.True(t, err == nil)

	assert.True(t, bb.AssertComparison(gt(y)) == nil)
	assert.True(t, bb.AssertComparison(cmp(x, term.LE, rat(3), y)) == nil)

	r := bb.GetLeRange(xi, yi)
	assert.True(t, !r.IsEmpty())

	samples := []*big.Rat{rat(3), rat(10), big.NewRat(7, 2)}

	for _, c := range samples {
		assert.True(t, r.Contains(c), "range should contain %s", c.RatString())
		assert.True(t, bb.Implies(xi, term.LE, c, yi), "implies should hold for c=%s", c.RatString())
	}

	if !r.Lower.IsFinite() {
		t.Fatal("expected a finite lower bound after asserting x <= 3y")
	}

	if !r.LowerStrict {
		assert.True(t, bb.Implies(xi, term.LE, r.Lower.Rat(), yi))
	}
}

// le_coeff_range(i,j,coeff) is the mirror of get_ge_range(j,i) scaled by
// coeff; exercised here via GetGeRange directly since the coefficient
// reorientation is the part worth checking.
func Test_Query_GeRangeIsSound(t *testing.T) {
	bb := New()
	x, y := term.Var{Name: "x"}, term.Var{Name: "y"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	yi, err := bb.AddTerm(y)
	assert.True(t, err == nil)

	assert.True(t, bb.AssertComparison(gt(y)) == nil)
	assert.True(t, bb.AssertComparison(cmp(x, term.GE, rat(2), y)) == nil)

	r := bb.GetGeRange(xi, yi)
	assert.True(t, !r.IsEmpty())
	assert.True(t, r.Contains(rat(2)))
	assert.True(t, bb.Implies(xi, term.GE, rat(2), yi))
	assert.True(t, bb.Implies(xi, term.GE, rat(0), yi))
}

// An equality collapses the range to the single pivot coefficient.
func Test_Query_RangeCollapsesToPivotUnderEquality(t *testing.T) {
	bb := New()
	x, y := term.Var{Name: "x"}, term.Var{Name: "y"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	yi, err := bb.AddTerm(y)
	assert.True(t, err == nil)

	assert.True(t, bb.AssertComparison(cmp(x, term.EQ, rat(5), y)) == nil)

	r := bb.GetLeRange(xi, yi)
	assert.True(t, r.Contains(rat(5)))
	assert.True(t, !r.Contains(rat(4)))
}

// Without a known sign for x, "x <= c*x" is trivially true at c=1 (it's
// reflexive equality) but is not implied for any c > 1, since that would
// require x >= 0.  The range must pin down exactly the one safe point, not
// the half-line the pre-fix code claimed.
func Test_Query_LeRangeReflexiveWithoutSignPinsToOne(t *testing.T) {
	bb := New()
	x := term.Var{Name: "x"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	r := bb.GetLeRange(xi, xi)
	assert.True(t, !r.IsEmpty())
	assert.True(t, r.Contains(rat(1)))
	assert.True(t, !r.Contains(rat(1000)))
	assert.True(t, !bb.Implies(xi, term.LE, rat(1000), xi))
}

// Once x is known positive, "x <= c*x" holds for every c >= 1, strictly in
// the interior (c > 1) since multiplying a positive number by something
// strictly larger strictly increases it.
func Test_Query_LeRangeReflexiveWithPositiveSign(t *testing.T) {
	bb := New()
	x := term.Var{Name: "x"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	assert.True(t, bb.AssertComparison(gt(x)) == nil)

	r := bb.GetLeRange(xi, xi)
	assert.True(t, !r.IsEmpty())
	assert.True(t, r.Contains(rat(1)))
	assert.True(t, r.Contains(rat(1000)))
	assert.True(t, bb.Implies(xi, term.LE, rat(1000), xi))
	assert.True(t, !r.Contains(big.NewRat(1, 2)))
}

// Equality with a term of unknown sign must not smuggle back the full
// [e,+inf) or (-inf,e] half-line; only the pivot itself is certain.
func Test_Query_EqualityRangeWithoutSignStaysPinned(t *testing.T) {
	bb := New()
	x, y := term.Var{Name: "x"}, term.Var{Name: "y"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	yi, err := bb.AddTerm(y)
	assert.True(t, err == nil)

	assert.True(t, bb.AssertComparison(cmp(x, term.EQ, rat(5), y)) == nil)

	r := bb.GetLeRange(xi, yi)
	assert.True(t, r.Contains(rat(5)))
	assert.True(t, !r.Contains(rat(6)))
	assert.True(t, !bb.Implies(xi, term.LE, rat(6), yi))
}

// le_coeff_range(i,j,coeff) mirrors get_ge_range(j,i) scaled by coeff for
// coeff > 0, flipping to get_le_range for coeff < 0.
func Test_Query_LeCoeffRangeMatchesScaledGeRange(t *testing.T) {
	bb := New()
	x, y := term.Var{Name: "x"}, term.Var{Name: "y"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	yi, err := bb.AddTerm(y)
	assert.True(t, err == nil)

	assert.True(t, bb.AssertComparison(gt(y)) == nil)
	assert.True(t, bb.AssertComparison(cmp(x, term.GE, rat(2), y)) == nil)
	assert.True(t, bb.AssertComparison(cmp(x, term.LE, rat(3), y)) == nil)

	// LeCoeffRange(yi, xi, 3): range of c for which "c*y <= 3*x" is known.
	// GetGeRange(xi,yi) = (-inf,2] (as established in Test_Query_GeRangeIsSound);
	// scaling by 3 gives (-inf,6].
	r := bb.LeCoeffRange(yi, xi, rat(3))
	assert.True(t, r.Contains(rat(6)))
	assert.True(t, !r.Contains(rat(7)))

	// LeCoeffRange(yi, xi, -3): GetLeRange(xi,yi) = [3,+inf) (x <= ky known
	// for k >= 3, since y > 0); scaling by -3 flips and negates to (-inf,-9].
	neg := bb.LeCoeffRange(yi, xi, rat(-3))
	assert.True(t, neg.Contains(rat(-9)))
	assert.True(t, !neg.Contains(rat(-8)))
}

// le_coeff_range(i,j,0) falls back to the sign of t_i alone.
func Test_Query_LeCoeffRangeZeroCoeffUsesSign(t *testing.T) {
	bb := New()
	x, y := term.Var{Name: "x"}, term.Var{Name: "y"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	yi, err := bb.AddTerm(y)
	assert.True(t, err == nil)

	assert.True(t, bb.LeCoeffRange(xi, yi, zero()).IsEmpty())

	assert.True(t, bb.AssertComparison(lt(x)) == nil)

	r := bb.LeCoeffRange(xi, yi, zero())
	assert.True(t, !r.IsEmpty())
	assert.True(t, r.Contains(rat(0)))
	assert.True(t, r.Contains(rat(5)))
	assert.True(t, !r.Contains(big.NewRat(-1, 1)))
}

func Test_Query_ImpliesZeroComparisonReflexiveCases(t *testing.T) {
	bb := New()
	x := term.Var{Name: "x"}

	xi, err := bb.AddTerm(x)
	assert.True(t, err == nil)

	assert.True(t, !bb.ImpliesZeroComparison(xi, term.GT))
	assert.True(t, bb.AssertComparison(gt(x)) == nil)
	assert.True(t, bb.ImpliesZeroComparison(xi, term.GT))
	assert.True(t, bb.ImpliesZeroComparison(xi, term.GE))
	assert.True(t, bb.ImpliesZeroComparison(xi, term.NE))
}
