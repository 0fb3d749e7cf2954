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

// Package blackboard implements Polya's shared fact database: a canonical
// term registry, a non-redundant geometric fact base over pairs of indexed
// terms, a contradiction-detecting assertion engine, and an incremental
// update tracker consumed by external reasoning modules.
package blackboard

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/zeta1999/polya/pkg/geometry"
	"github.com/zeta1999/polya/pkg/term"
	"github.com/zeta1999/polya/pkg/util/collection/set"
)

// pair is an ordered (i, j) index key, always stored with i < j.
type pair struct {
	I, J int
}

// Blackboard is the shared fact database described by this package.  It is
// not safe for concurrent use: every mutating call must come from the same
// logical thread (the outer saturation driver), per the single-threaded
// cooperative scheduling model reasoning modules are built against.
type Blackboard struct {
	numTerms  int
	termDefs  []term.Term       // term_defs[i]: definition, leaves are IVars < i
	terms     []term.Term       // terms[i]: fully expanded, for display only
	termNames map[string]int    // canonical key -> index

	zeroInequalities  map[int]term.Comp
	zeroEqualities    *set.SortedSet[int]
	zeroDisequalities map[int]bool

	equalities    map[pair]*big.Rat
	inequalities  map[pair][]geometry.Halfplane
	disequalities map[pair]map[string]*big.Rat

	clauses []term.Clause

	tracker *tracker

	log *logrus.Logger
}

// New constructs an empty Blackboard, with index 0 already interned as the
// constant 1 (known positive).
func New() *Blackboard {
	bb := &Blackboard{
		numTerms:          1,
		termDefs:          []term.Term{term.One{}},
		terms:             []term.Term{term.One{}},
		termNames:         map[string]int{term.One{}.CanonicalKey(): 0},
		zeroInequalities:  map[int]term.Comp{0: term.GT},
		zeroEqualities:    set.NewSortedSet[int](),
		zeroDisequalities: map[int]bool{},
		equalities:        map[pair]*big.Rat{},
		inequalities:      map[pair][]geometry.Halfplane{},
		disequalities:     map[pair]map[string]*big.Rat{},
		log:               logrus.StandardLogger(),
	}
	bb.tracker = newTracker(bb)

	return bb
}

// SetLogger overrides the logger used for assertion/query diagnostics.
func (bb *Blackboard) SetLogger(log *logrus.Logger) {
	bb.log = log
}

// NumTerms returns the number of interned terms, including index 0 (the
// constant 1).
func (bb *Blackboard) NumTerms() int {
	return bb.numTerms
}

// Term returns the fully expanded term at index i, for display purposes.
func (bb *Blackboard) Term(i int) term.Term {
	return bb.terms[i]
}

// TermDef returns the one-level definition of the term at index i, whose
// leaves are IVars referencing strictly smaller indices (invariant I1).
// Reasoning modules use this to recognize structural shapes (e.g. a
// FuncTerm with a particular function name) without walking a fully
// expanded term.
func (bb *Blackboard) TermDef(i int) term.Term {
	return bb.termDefs[i]
}

func mkPair(i, j int) pair {
	if i <= j {
		return pair{I: i, J: j}
	}

	return pair{I: j, J: i}
}

func zero() *big.Rat { return big.NewRat(0, 1) }

func one() *big.Rat { return big.NewRat(1, 1) }
