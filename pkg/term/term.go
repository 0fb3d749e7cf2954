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

// Package term implements Polya's algebraic term algebra: the closed sum of
// shapes (One, Var, IVar, AddTerm, MulTerm, FuncTerm) from which every
// hypothesis and goal is built, along with their canonical keys.
package term

import (
	"math/big"
	"strconv"
	"strings"
)

// Term is the closed algebra of expression shapes recognised by the
// Blackboard. Every concrete variant below implements it via an unexported
// marker method, so the set of shapes is sealed to this package's consumers:
// exhaustive switches elsewhere can rely on there being exactly six cases.
type Term interface {
	isTerm()
	// CanonicalKey returns a deterministic structural identifier: two terms
	// produce equal keys iff they are syntactically equal after canonization.
	CanonicalKey() string
}

// One is the distinguished constant 1, always interned at index 0.
type One struct{}

func (One) isTerm() {}

// CanonicalKey implements Term.
func (One) CanonicalKey() string { return "1" }

// Var is an uninterpreted variable, identified by name.
type Var struct {
	Name string
}

func (Var) isTerm() {}

// CanonicalKey implements Term.
func (v Var) CanonicalKey() string { return "v:" + v.Name }

// IVar is a reference to an already-indexed term in some Blackboard.  It is
// only meaningful relative to the Blackboard that produced it.
type IVar struct {
	Index int
}

func (IVar) isTerm() {}

// CanonicalKey implements Term.
func (i IVar) CanonicalKey() string { return "i:" + big.NewInt(int64(i.Index)).String() }

// Addend pairs a nonzero rational coefficient with a subterm, as used by both
// AddTerm (summands) and FuncTerm (scaled arguments).
type Addend struct {
	Coeff *big.Rat
	Term  Term
}

// AddTerm is a sum of scaled subterms: sum_k Coeff_k * Term_k.
type AddTerm struct {
	Args []Addend
}

func (AddTerm) isTerm() {}

// CanonicalKey implements Term.
func (t AddTerm) CanonicalKey() string { return addendsKey("+", t.Args) }

// Factor pairs a subterm with a nonzero integer exponent, as used by MulTerm.
type Factor struct {
	Term Term
	Exp  int
}

// MulTerm is a product of subterms raised to integer exponents: prod_k
// Term_k^Exp_k.
type MulTerm struct {
	Args []Factor
}

func (MulTerm) isTerm() {}

// CanonicalKey implements Term.
func (t MulTerm) CanonicalKey() string {
	var b strings.Builder

	b.WriteString("*(")

	for i, f := range t.Args {
		if i > 0 {
			b.WriteString(",")
		}

		b.WriteString(f.Term.CanonicalKey())
		b.WriteString("^")
		b.WriteString(strconv.Itoa(f.Exp))
	}

	b.WriteString(")")

	return b.String()
}

// FuncTerm is the application of an uninterpreted function to a fixed-order
// list of scaled arguments.
type FuncTerm struct {
	Func string
	Args []Addend
}

func (FuncTerm) isTerm() {}

// CanonicalKey implements Term.
func (t FuncTerm) CanonicalKey() string { return t.Func + addendsKey(":", t.Args) }

func addendsKey(tag string, args []Addend) string {
	var b strings.Builder

	b.WriteString(tag)
	b.WriteString("(")

	for i, a := range args {
		if i > 0 {
			b.WriteString(",")
		}

		b.WriteString(a.Coeff.RatString())
		b.WriteString("*")
		b.WriteString(a.Term.CanonicalKey())
	}

	b.WriteString(")")

	return b.String()
}
