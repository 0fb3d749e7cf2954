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

// Package geometry implements the half-plane kernel used to represent convex
// cones of comparisons between pairs of indexed terms, along with the
// extended-rational and coefficient-range arithmetic it depends on.
package geometry

import (
	"fmt"
	"math/big"
)

const (
	finite = iota
	negInf
	posInf
)

// Extended is an exact rational value that may additionally be positive or
// negative infinity.  It follows the same sign-tagged-wrapper shape as an
// arbitrary-precision integer with infinities, generalised here to exact
// rationals since Polya's coefficients are never just integers.
type Extended struct {
	val  big.Rat
	sign uint8
}

// PositiveInfinity represents +∞.
var PositiveInfinity = Extended{sign: posInf}

// NegativeInfinity represents -∞.
var NegativeInfinity = Extended{sign: negInf}

// FiniteExtended wraps a finite rational value.
func FiniteExtended(v *big.Rat) Extended {
	var r big.Rat
	r.Set(v)

	return Extended{val: r, sign: finite}
}

// FiniteExtendedInt wraps a finite integer value.
func FiniteExtendedInt(n int64) Extended {
	return FiniteExtended(big.NewRat(n, 1))
}

// IsFinite reports whether this value is a finite rational.
func (e Extended) IsFinite() bool {
	return e.sign == finite
}

// Rat returns the underlying rational value.  Panics if e is infinite.
func (e Extended) Rat() *big.Rat {
	if e.sign != finite {
		panic("geometry: cannot convert infinity to a finite rational")
	}

	var r big.Rat

	r.Set(&e.val)

	return &r
}

// Cmp compares two extended values: -1, 0 or 1.
func (e Extended) Cmp(o Extended) int {
	switch {
	case e.sign == finite && o.sign == finite:
		return e.val.Cmp(&o.val)
	case e.sign == o.sign:
		return 0
	case e.sign == negInf || o.sign == posInf:
		return -1
	default:
		return 1
	}
}

// Negate returns -e.
func (e Extended) Negate() Extended {
	switch e.sign {
	case posInf:
		return NegativeInfinity
	case negInf:
		return PositiveInfinity
	default:
		var r big.Rat

		r.Neg(&e.val)

		return Extended{val: r, sign: finite}
	}
}

// Scale multiplies e by a finite, nonzero rational k, flipping to the
// opposite infinity when k is negative.
func (e Extended) Scale(k *big.Rat) Extended {
	if e.sign != finite {
		if k.Sign() < 0 {
			return e.Negate()
		}

		return e
	}

	var r big.Rat

	r.Mul(&e.val, k)

	return Extended{val: r, sign: finite}
}

// Min returns the lesser of e and o.
func (e Extended) Min(o Extended) Extended {
	if e.Cmp(o) <= 0 {
		return e
	}

	return o
}

// Max returns the greater of e and o.
func (e Extended) Max(o Extended) Extended {
	if e.Cmp(o) >= 0 {
		return e
	}

	return o
}

func (e Extended) String() string {
	switch e.sign {
	case negInf:
		return "-inf"
	case posInf:
		return "+inf"
	default:
		return e.val.RatString()
	}
}

// GoString supports "%#v" formatting for debugging.
func (e Extended) GoString() string {
	return fmt.Sprintf("Extended(%s)", e.String())
}
