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

	"github.com/stretchr/testify/require"

	"github.com/zeta1999/polya/pkg/term"
	"github.com/zeta1999/polya/pkg/util/assert"
)

func Test_HalfplaneOfComp_RoundTripsThroughToComp(t *testing.T) {
	for _, tc := range []struct {
		comp term.Comp
		c    int64
	}{
		{term.LE, 2}, {term.LT, 2}, {term.GE, -3}, {term.GT, -3}, {term.LE, 0}, {term.GE, 0},
	} {
		c := big.NewRat(tc.c, 1)
		h := HalfplaneOfComp(tc.comp, c)

		if h.A.Sign() == 0 || h.B.Sign() == 0 {
			continue // ToComp is undefined for axis-aligned half-planes
		}

		lit := ToComp(h, 1, 2)
		h2 := HalfplaneOfComp(lit.Comp, lit.Coeff)

		require.True(t, EqDir(h, h2), "round-trip should preserve direction")
		assert.Equal(t, h.Strong, h2.Strong)
	}
}

func Test_CompareHP_OppositeDirectionsAreCollinear(t *testing.T) {
	h := Halfplane{A: big.NewRat(1, 1), B: big.NewRat(2, 1)}
	g := Halfplane{A: big.NewRat(-1, 1), B: big.NewRat(-2, 1)}

	assert.Equal(t, 0, CompareHP(h, g))
	assert.True(t, OppDir(h, g))
	assert.True(t, !EqDir(h, g))
}

func Test_CompareHP_MagnitudeIndependent(t *testing.T) {
	h := Halfplane{A: big.NewRat(1, 1), B: big.NewRat(0, 1)}
	g := Halfplane{A: big.NewRat(3, 1), B: big.NewRat(0, 1)}

	assert.Equal(t, 0, CompareHP(h, g))
	assert.True(t, EqDir(h, g))
}

func Test_Flip_SwapsCoefficients(t *testing.T) {
	h := Halfplane{A: big.NewRat(1, 1), B: big.NewRat(-2, 1), Strong: true}
	g := Flip(h)

	assert.Equal(t, h.A.RatString(), g.B.RatString())
	assert.Equal(t, h.B.RatString(), g.A.RatString())
	assert.Equal(t, h.Strong, g.Strong)
}
