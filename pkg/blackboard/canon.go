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

	"github.com/zeta1999/polya/pkg/term"
)

// canonicalLiteral is the indexed, normal-form shape of a raw Comparison: "t_i
// comp coeff*t_j", with i <= j whenever coeff != 0.  When coeff == 0, j is
// meaningless and the fact reduces to a zero-comparison on i.
type canonicalLiteral struct {
	I, J  int
	Comp  term.Comp
	Coeff *big.Rat
}

// canonicalize interns both sides of c and reorders/reorients it into
// canonicalLiteral form.  Both the term algebra's structural canonization and
// this index-ordering canonization happen here, matching the contract that
// after canonicalization a fact is always "t_i comp c*t_j" with i <= j, or
// "t_i comp 0".
func (bb *Blackboard) canonicalize(c term.Comparison) (canonicalLiteral, error) {
	coeff := c.Coeff
	if coeff == nil {
		coeff = one()
	}

	li, err := bb.TermName(c.Left)
	if err != nil {
		return canonicalLiteral{}, err
	}

	ri, err := bb.TermName(c.Right)
	if err != nil {
		return canonicalLiteral{}, err
	}

	if coeff.Sign() == 0 {
		return canonicalLiteral{I: li, J: 0, Comp: c.Comp, Coeff: zero()}, nil
	}

	if li <= ri {
		return canonicalLiteral{I: li, J: ri, Comp: c.Comp, Coeff: coeff}, nil
	}

	// Rewrite "t_li comp coeff*t_ri" (li > ri) as "t_ri comp2 coeff2*t_li" so
	// the smaller index is always first.  Dividing by coeff reorients the
	// comparison when coeff < 0; swapping the two sides reorients it again.
	// The two reorientations cancel for coeff < 0 and compose to a single
	// reversal for coeff > 0.
	coeff2 := new(big.Rat).Inv(coeff)

	comp2 := c.Comp
	if coeff.Sign() > 0 {
		comp2 = c.Comp.Reverse()
	}

	return canonicalLiteral{I: ri, J: li, Comp: comp2, Coeff: coeff2}, nil
}

func literalKey(c canonicalLiteral) term.Literal {
	return term.Literal{I: c.I, Comp: c.Comp, Coeff: c.Coeff, J: c.J}
}
