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
	"github.com/zeta1999/polya/pkg/geometry"
	"github.com/zeta1999/polya/pkg/term"
)

// expandTerm substitutes every IVar leaf of t with its fully expanded
// definition.
func (bb *Blackboard) expandTerm(t term.Term) term.Term {
	return term.ExpandIVars(t, func(i int) term.Term { return bb.terms[i] })
}

// HasName reports whether t (after canonization and expansion) already has
// an assigned index, without creating one.
func (bb *Blackboard) HasName(t term.Term) (int, bool) {
	c := term.Canonicalize(t)
	if i, ok := bb.termNames[c.CanonicalKey()]; ok {
		return i, true
	}

	e := term.Canonicalize(bb.expandTerm(c))
	if i, ok := bb.termNames[e.CanonicalKey()]; ok {
		return i, true
	}

	return -1, false
}

// TermName returns the index of t, assigning a new one (and recursively
// indexing any unnamed subterms) if t is not already known.  Invariant I1
// (indices reference only smaller indices) and I4 (a new index appears in no
// table entry until registration completes) are maintained by constructing
// the new definition, inserting into termNames, and only then seeding the
// baseline half-planes against existing sign facts.
func (bb *Blackboard) TermName(t term.Term) (int, error) {
	t = term.Canonicalize(t)

	if iv, ok := t.(term.IVar); ok {
		return iv.Index, nil
	}

	expanded := term.Canonicalize(bb.expandTerm(t))

	if iv, ok := expanded.(term.IVar); ok {
		return iv.Index, nil
	}

	key := expanded.CanonicalKey()
	if i, ok := bb.termNames[key]; ok {
		return i, nil
	}

	var newDef term.Term

	switch v := expanded.(type) {
	case term.Var:
		newDef = v
	case term.AddTerm:
		args := make([]term.Addend, len(v.Args))

		for idx, a := range v.Args {
			sub, err := bb.TermName(a.Term)
			if err != nil {
				return -1, err
			}

			args[idx] = term.Addend{Coeff: a.Coeff, Term: term.IVar{Index: sub}}
		}

		newDef = term.AddTerm{Args: args}
	case term.MulTerm:
		args := make([]term.Factor, len(v.Args))

		for idx, f := range v.Args {
			sub, err := bb.TermName(f.Term)
			if err != nil {
				return -1, err
			}

			args[idx] = term.Factor{Term: term.IVar{Index: sub}, Exp: f.Exp}
		}

		newDef = term.MulTerm{Args: args}
	case term.FuncTerm:
		args := make([]term.Addend, len(v.Args))

		for idx, a := range v.Args {
			sub, err := bb.TermName(a.Term)
			if err != nil {
				return -1, err
			}

			args[idx] = term.Addend{Coeff: a.Coeff, Term: term.IVar{Index: sub}}
		}

		newDef = term.FuncTerm{Func: v.Func, Args: args}
	default:
		return -1, newStructuralError("cannot create name for term %#v", expanded)
	}

	i := bb.numTerms
	bb.termDefs = append(bb.termDefs, newDef)
	bb.terms = append(bb.terms, expanded)
	bb.termNames[key] = i
	bb.numTerms++

	if bb.log != nil {
		bb.log.WithField("index", i).Debugf("defining t%d := %#v", i, newDef)
	}

	// Baseline registration: every existing index j with a known sign vs 0
	// gets a seeded half-plane "t_j comp 0" in the (j, i) plane, independent
	// of t_i (j is always < i here).
	for j, comp := range bb.zeroInequalities {
		hp := geometry.HalfplaneOfComp(comp, zero())
		bb.inequalities[pair{I: j, J: i}] = []geometry.Halfplane{hp}
	}

	return i, nil
}

// AddTerm interns t (and any necessary subterms) without asserting any
// comparison.
func (bb *Blackboard) AddTerm(t term.Term) (int, error) {
	return bb.TermName(term.Canonicalize(t))
}
