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
	"fmt"
	"math/big"

	"github.com/zeta1999/polya/pkg/term"
)

// Halfplane represents the closed (or, if Strong, strict) half-plane
//
//	{ (x,y) : A*x + B*y >= 0 }   (or > 0 when Strong)
//
// The direction vector (A,B) is never the zero vector.  No canonicalization
// of magnitude is performed: comparisons between half-planes must remain
// magnitude-independent (see CompareHP).
type Halfplane struct {
	A, B   *big.Rat
	Strong bool
}

// HalfplaneOfComp builds the half-plane equivalent of "x comp c*y".  Only
// LT/LE/GT/GE are meaningful here; EQ and NE do not correspond to a single
// half-plane and are handled directly by the assertion/query engine.
func HalfplaneOfComp(comp term.Comp, c *big.Rat) Halfplane {
	switch comp {
	case term.LE, term.LT:
		// x <= c*y  <=>  -x + c*y >= 0
		return Halfplane{A: big.NewRat(-1, 1), B: new(big.Rat).Set(c), Strong: comp == term.LT}
	case term.GE, term.GT:
		// x >= c*y  <=>  x - c*y >= 0
		return Halfplane{A: big.NewRat(1, 1), B: new(big.Rat).Neg(c), Strong: comp == term.GT}
	default:
		panic(fmt.Sprintf("geometry: comparison %s has no half-plane representation", comp))
	}
}

// cross computes the oriented cross product of two direction vectors.
func cross(h, g Halfplane) *big.Rat {
	var t1, t2 big.Rat

	t1.Mul(h.A, g.B)
	t2.Mul(h.B, g.A)
	t1.Sub(&t1, &t2)

	return &t1
}

// dot computes the dot product of two direction vectors.
func dot(h, g Halfplane) *big.Rat {
	var t1, t2 big.Rat

	t1.Mul(h.A, g.A)
	t2.Mul(h.B, g.B)
	t1.Add(&t1, &t2)

	return &t1
}

// EqDir reports whether h and g point in the same direction (parallel, same
// orientation).
func EqDir(h, g Halfplane) bool {
	return cross(h, g).Sign() == 0 && dot(h, g).Sign() > 0
}

// OppDir reports whether h and g are parallel but point in opposite
// directions.
func OppDir(h, g Halfplane) bool {
	return cross(h, g).Sign() == 0 && dot(h, g).Sign() < 0
}

// CompareHP orders two half-planes by the sign of the oriented cross product
// of their direction vectors: positive iff g is counter-clockwise of h within
// the upper half of the rotation from h; 0 when collinear (parallel, same or
// opposite orientation).  This provides the clockwise ordering used to pick
// the two extremal boundaries of a convex cone.
func CompareHP(h, g Halfplane) int {
	return cross(h, g).Sign()
}

// Flip swaps the roles of x and y in a half-plane: A*x+B*y becomes B*x+A*y.
func Flip(h Halfplane) Halfplane {
	return Halfplane{A: h.B, B: h.A, Strong: h.Strong}
}

// ToComp reconstructs the comparison "i comp c*j" equivalent to half-plane h,
// given that h's two coefficients are both nonzero (the only case in which
// the Blackboard ever calls this: axis-aligned half-planes are handled via
// the zero-comparison tables instead).
func ToComp(h Halfplane, i, j int) term.Literal {
	if h.A.Sign() == 0 || h.B.Sign() == 0 {
		panic("geometry: ToComp requires both coefficients to be nonzero")
	}

	var c big.Rat

	c.Neg(h.B)
	c.Quo(&c, h.A)

	var comp term.Comp
	if h.A.Sign() > 0 {
		comp = term.GE
	} else {
		comp = term.LE
	}

	if h.Strong {
		if comp == term.GE {
			comp = term.GT
		} else {
			comp = term.LT
		}
	}

	return term.Literal{I: i, Comp: comp, Coeff: &c, J: j}
}
