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
	"math/big"
	"sort"
)

// Canonicalize reduces a term to its canonical shape: nested sums/products of
// the same kind are flattened, like subterms are merged by summing
// coefficients (or exponents), zero-coefficient / zero-exponent entries are
// dropped, and sibling entries are ordered by their subterm's canonical key.
// Two terms canonicalize to the same value (same CanonicalKey) iff they are
// structurally equal modulo this normalisation.
//
// Canonicalize does not touch IVar leaves: substituting IVars for their
// definitions (expansion) is the Blackboard's job, not the term algebra's.
func Canonicalize(t Term) Term {
	switch v := t.(type) {
	case One, Var, IVar:
		return v
	case AddTerm:
		return canonicalizeAdd(v)
	case MulTerm:
		return canonicalizeMul(v)
	case FuncTerm:
		args := make([]Addend, len(v.Args))
		for i, a := range v.Args {
			args[i] = Addend{Coeff: a.Coeff, Term: Canonicalize(a.Term)}
		}

		return FuncTerm{Func: v.Func, Args: args}
	default:
		panic("term: unrecognized term variant")
	}
}

func canonicalizeAdd(t AddTerm) Term {
	merged := map[string]*big.Rat{}
	order := map[string]Term{}

	var flatten func(coeff *big.Rat, sub Term)
	flatten = func(coeff *big.Rat, sub Term) {
		sub = Canonicalize(sub)

		if inner, ok := sub.(AddTerm); ok {
			for _, a := range inner.Args {
				c := new(big.Rat).Mul(coeff, a.Coeff)
				flatten(c, a.Term)
			}

			return
		}

		key := sub.CanonicalKey()
		if existing, ok := merged[key]; ok {
			existing.Add(existing, coeff)
		} else {
			merged[key] = new(big.Rat).Set(coeff)
			order[key] = sub
		}
	}

	for _, a := range t.Args {
		flatten(a.Coeff, a.Term)
	}

	keys := make([]string, 0, len(merged))

	for k, c := range merged {
		if c.Sign() != 0 {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	if len(keys) == 0 {
		return AddTerm{}
	}

	if len(keys) == 1 {
		c := merged[keys[0]]
		if c.Cmp(big.NewRat(1, 1)) == 0 {
			return order[keys[0]]
		}
	}

	args := make([]Addend, len(keys))
	for i, k := range keys {
		args[i] = Addend{Coeff: merged[k], Term: order[k]}
	}

	return AddTerm{Args: args}
}

func canonicalizeMul(t MulTerm) Term {
	merged := map[string]int{}
	order := map[string]Term{}

	var flatten func(exp int, sub Term)
	flatten = func(exp int, sub Term) {
		sub = Canonicalize(sub)

		if _, ok := sub.(One); ok {
			return
		}

		if inner, ok := sub.(MulTerm); ok {
			for _, f := range inner.Args {
				flatten(exp*f.Exp, f.Term)
			}

			return
		}

		key := sub.CanonicalKey()
		merged[key] += exp
		order[key] = sub
	}

	for _, f := range t.Args {
		flatten(f.Exp, f.Term)
	}

	keys := make([]string, 0, len(merged))

	for k, e := range merged {
		if e != 0 {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	if len(keys) == 0 {
		return One{}
	}

	if len(keys) == 1 && merged[keys[0]] == 1 {
		return order[keys[0]]
	}

	args := make([]Factor, len(keys))
	for i, k := range keys {
		args[i] = Factor{Term: order[k], Exp: merged[k]}
	}

	return MulTerm{Args: args}
}
