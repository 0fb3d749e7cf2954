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

import (
	"math/big"
	"testing"

	"github.com/zeta1999/polya/pkg/util/assert"
)

func Test_Range_ContainsRespectsStrictness(t *testing.T) {
	r := ComparisonRange{Lower: FiniteExtendedInt(1), Upper: FiniteExtendedInt(5), LowerStrict: true}

	assert.True(t, !r.Contains(big.NewRat(1, 1)))
	assert.True(t, r.Contains(big.NewRat(5, 1)))
	assert.True(t, r.Contains(big.NewRat(3, 1)))
}

func Test_Range_IntersectNarrowsAndCombinesStrictness(t *testing.T) {
	a := ComparisonRange{Lower: FiniteExtendedInt(0), Upper: FiniteExtendedInt(10)}
	b := ComparisonRange{Lower: FiniteExtendedInt(5), Upper: FiniteExtendedInt(15), LowerStrict: true}

	r := Intersect(a, b)

	assert.Equal(t, "5", r.Lower.String())
	assert.Equal(t, "10", r.Upper.String())
	assert.True(t, r.LowerStrict)
}

func Test_Range_IntersectCanCollapseToEmpty(t *testing.T) {
	a := ComparisonRange{Lower: FiniteExtendedInt(0), Upper: FiniteExtendedInt(1)}
	b := ComparisonRange{Lower: FiniteExtendedInt(1), Upper: FiniteExtendedInt(2), LowerStrict: true}

	r := Intersect(a, b)
	assert.True(t, r.IsEmpty())
}

func Test_Range_ScaleNegativeFlipsBoundsAndStrictness(t *testing.T) {
	r := ComparisonRange{Lower: FiniteExtendedInt(1), Upper: FiniteExtendedInt(4), LowerStrict: true}

	s := r.Scale(big.NewRat(-1, 1))

	assert.Equal(t, "-4", s.Lower.String())
	assert.Equal(t, "-1", s.Upper.String())
	assert.True(t, s.UpperStrict)
	assert.True(t, !s.LowerStrict)
}

func Test_Range_EmptyAlwaysEmpty(t *testing.T) {
	assert.True(t, EmptyRange().IsEmpty())
	assert.True(t, !FullRange().IsEmpty())
}
