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
package exprparse

import (
	"fmt"
	"math/big"

	"github.com/zeta1999/polya/pkg/term"
)

func one() *big.Rat  { return big.NewRat(1, 1) }
func zero() *big.Rat { return big.NewRat(0, 1) }

// toTerm converts a parsed Expr into a term.Term, building an AddTerm out of
// its signed summands.
func (e *Expr) toTerm() (term.Term, error) {
	addends := make([]term.Addend, 0, 1+len(e.Rest))

	first, err := e.First.toAddend()
	if err != nil {
		return nil, err
	}

	addends = append(addends, first)

	for _, st := range e.Rest {
		a, err := st.toAddend()
		if err != nil {
			return nil, err
		}

		addends = append(addends, a)
	}

	if len(addends) == 1 && addends[0].Coeff.Cmp(one()) == 0 {
		return addends[0].Term, nil
	}

	return term.Canonicalize(term.AddTerm{Args: addends}), nil
}

func (st *SignedTerm) toAddend() (term.Addend, error) {
	a, err := st.Term.toAddend()
	if err != nil {
		return term.Addend{}, err
	}

	if st.Sign == "-" {
		a.Coeff = new(big.Rat).Neg(a.Coeff)
	}

	return a, nil
}

func (t *Term) toAddend() (term.Addend, error) {
	if t.Group != nil {
		sub, err := t.Group.toTerm()
		if err != nil {
			return term.Addend{}, err
		}

		return term.Addend{Coeff: one(), Term: sub}, nil
	}

	switch {
	case t.Coeff != nil && t.Ident != nil:
		c, ok := new(big.Rat).SetString(*t.Coeff)
		if !ok {
			return term.Addend{}, fmt.Errorf("exprparse: invalid numeric literal %q", *t.Coeff)
		}

		return term.Addend{Coeff: c, Term: term.Var{Name: *t.Ident}}, nil

	case t.Coeff != nil:
		c, ok := new(big.Rat).SetString(*t.Coeff)
		if !ok {
			return term.Addend{}, fmt.Errorf("exprparse: invalid numeric literal %q", *t.Coeff)
		}

		return term.Addend{Coeff: c, Term: term.One{}}, nil

	case t.Ident != nil:
		return term.Addend{Coeff: one(), Term: term.Var{Name: *t.Ident}}, nil

	default:
		return term.Addend{}, fmt.Errorf("exprparse: empty term")
	}
}
