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
package term

import (
	"testing"

	"github.com/zeta1999/polya/pkg/util/assert"
)

func Test_Comp_NegateIsInvolution(t *testing.T) {
	for _, c := range []Comp{LT, LE, GT, GE, EQ, NE} {
		assert.Equal(t, c, c.Negate().Negate())
	}
}

func Test_Comp_NegateIsOppositeTruth(t *testing.T) {
	cases := map[Comp]Comp{LT: GE, LE: GT, GT: LE, GE: LT, EQ: NE, NE: EQ}
	for c, want := range cases {
		assert.Equal(t, want, c.Negate())
	}
}

func Test_Comp_ReverseSwapsSides(t *testing.T) {
	cases := map[Comp]Comp{LT: GT, GT: LT, LE: GE, GE: LE, EQ: EQ, NE: NE}
	for c, want := range cases {
		assert.Equal(t, want, c.Reverse())
	}
}

func Test_Clause_UnitAndEmpty(t *testing.T) {
	empty := NewClause()
	assert.True(t, empty.IsEmpty())

	unit := NewClause(Literal{I: 1, Comp: GT, Coeff: rat(0), J: 0})
	assert.True(t, unit.IsUnit())
}

func Test_Literal_NegateFlipsComp(t *testing.T) {
	l := Literal{I: 1, Comp: LT, Coeff: rat(0), J: 0}
	n := l.Negate()
	assert.Equal(t, GE, n.Comp)
	assert.Equal(t, l.I, n.I)
	assert.Equal(t, l.J, n.J)
}
