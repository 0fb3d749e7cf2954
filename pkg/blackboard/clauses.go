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

import "github.com/zeta1999/polya/pkg/term"

// evaluateLiterals re-evaluates a set of literals against the current
// tables: a literal already Implied drops the whole clause (satisfied), a
// literal whose negation is Implied is dropped from the disjunction (it can
// never be satisfied), and everything else is kept as still-undetermined.
func (bb *Blackboard) evaluateLiterals(literals []term.Literal) (kept []term.Literal, satisfied bool) {
	kept = make([]term.Literal, 0, len(literals))

	for _, l := range literals {
		if bb.Implies(l.I, l.Comp, l.Coeff, l.J) {
			return nil, true
		}

		if bb.Implies(l.I, l.Comp.Negate(), l.Coeff, l.J) {
			continue
		}

		kept = append(kept, l)
	}

	return kept, false
}

// AssertClause asserts a disjunction of comparisons, interning any subterms
// they mention.  A clause already satisfied is a no-op; a clause that
// reduces to empty is a ContradictionError; a clause that reduces to a
// single literal is asserted outright via AssertComparison.
func (bb *Blackboard) AssertClause(comparisons ...term.Comparison) error {
	literals := make([]term.Literal, 0, len(comparisons))

	for _, c := range comparisons {
		lit, err := bb.canonicalize(c)
		if err != nil {
			return err
		}

		literals = append(literals, literalKey(lit))
	}

	return bb.assertClauseLiterals(literals)
}

func (bb *Blackboard) assertClauseLiterals(literals []term.Literal) error {
	kept, satisfied := bb.evaluateLiterals(literals)
	if satisfied {
		return nil
	}

	if len(kept) == 0 {
		return bb.raiseEmptyClauseContradiction()
	}

	if len(kept) == 1 {
		l := kept[0]
		return bb.assertLiteral(l)
	}

	clause := term.NewClause(kept...)

	for _, c := range bb.clauses {
		if clauseMatches(c, kept) {
			return nil
		}
	}

	bb.clauses = append(bb.clauses, clause)

	return nil
}

// assertLiteral re-expresses an indexed Literal as a raw Comparison over
// IVars and asserts it.
func (bb *Blackboard) assertLiteral(l term.Literal) error {
	return bb.AssertComparison(term.Comparison{
		Left:  term.IVar{Index: l.I},
		Comp:  l.Comp,
		Coeff: l.Coeff,
		Right: term.IVar{Index: l.J},
	})
}

// updateClause re-evaluates every clause currently on the Blackboard: this is
// called after any assertion that could have made a literal true or false.
// It proceeds in two explicit phases so that clauses are never mutated while
// being iterated: first collect what each clause reduces to, then act on the
// collected results (dropping satisfied clauses, raising on an empty one,
// and asserting any that reduce to a single literal).
func (bb *Blackboard) updateClause(_ ...int) error {
	type outcome struct {
		kept      []term.Literal
		satisfied bool
	}

	outcomes := make([]outcome, len(bb.clauses))

	for idx, c := range bb.clauses {
		kept, satisfied := bb.evaluateLiterals(c.Literals)
		outcomes[idx] = outcome{kept: kept, satisfied: satisfied}
	}

	var (
		remaining []term.Clause
		units     []term.Literal
	)

	for _, o := range outcomes {
		if o.satisfied {
			continue
		}

		if len(o.kept) == 0 {
			return bb.raiseEmptyClauseContradiction()
		}

		if len(o.kept) == 1 {
			units = append(units, o.kept[0])
			continue
		}

		remaining = append(remaining, term.NewClause(o.kept...))
	}

	bb.clauses = remaining

	for _, l := range units {
		if err := bb.assertLiteral(l); err != nil {
			return err
		}
	}

	return nil
}

func (bb *Blackboard) raiseEmptyClauseContradiction() error {
	return &ContradictionError{
		Offending: term.Literal{I: -1, Comp: term.NE, Coeff: zero(), J: -1},
		Expanded:  "a disjunction was reduced to the empty clause: every disjunct is already known false",
	}
}
