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
	"fmt"
	"sort"
	"strings"

	"github.com/zeta1999/polya/pkg/geometry"
	"github.com/zeta1999/polya/pkg/term"
)

// EqualityFact is a single reported "t_i == coeff*t_j" entry.
type EqualityFact struct {
	I, J  int
	Coeff string
}

// InequalityFact is a single reported boundary half-plane between t_i, t_j.
type InequalityFact struct {
	I, J    int
	Literal term.Literal
}

// DisequalityFact is a single reported "t_i != coeff*t_j" entry.
type DisequalityFact struct {
	I, J  int
	Coeff string
}

// GetEqualities enumerates every known pairwise equality, including the
// zero-equalities (reported against index 0).
func (bb *Blackboard) GetEqualities() []EqualityFact {
	facts := make([]EqualityFact, 0, len(bb.equalities)+len(bb.zeroEqualities.Values()))

	for p, c := range bb.equalities {
		facts = append(facts, EqualityFact{I: p.I, J: p.J, Coeff: c.RatString()})
	}

	for _, i := range bb.zeroEqualities.Values() {
		facts = append(facts, EqualityFact{I: i, J: 0, Coeff: "0"})
	}

	sort.Slice(facts, func(a, b int) bool {
		if facts[a].I != facts[b].I {
			return facts[a].I < facts[b].I
		}

		return facts[a].J < facts[b].J
	})

	return facts
}

// GetInequalities enumerates every known boundary half-plane, converted back
// to a readable Literal where both sides carry a coefficient, plus the
// zero-inequalities (reported against index 0 using the coefficient 0).
func (bb *Blackboard) GetInequalities() []InequalityFact {
	facts := make([]InequalityFact, 0, len(bb.inequalities)+len(bb.zeroInequalities))

	for p, hps := range bb.inequalities {
		for _, h := range hps {
			if h.A.Sign() == 0 || h.B.Sign() == 0 {
				continue
			}

			facts = append(facts, InequalityFact{I: p.I, J: p.J, Literal: geometry.ToComp(h, p.I, p.J)})
		}
	}

	for i, comp := range bb.zeroInequalities {
		facts = append(facts, InequalityFact{I: i, J: 0, Literal: term.Literal{I: i, Comp: comp, Coeff: zero(), J: 0}})
	}

	sort.Slice(facts, func(a, b int) bool {
		if facts[a].I != facts[b].I {
			return facts[a].I < facts[b].I
		}

		return facts[a].J < facts[b].J
	})

	return facts
}

// GetDisequalities enumerates every known pairwise disequality, including
// zero-disequalities (reported against index 0).
func (bb *Blackboard) GetDisequalities() []DisequalityFact {
	facts := make([]DisequalityFact, 0, len(bb.disequalities)+len(bb.zeroDisequalities))

	for p, set := range bb.disequalities {
		for _, c := range set {
			facts = append(facts, DisequalityFact{I: p.I, J: p.J, Coeff: c.RatString()})
		}
	}

	for i := range bb.zeroDisequalities {
		facts = append(facts, DisequalityFact{I: i, J: 0, Coeff: "0"})
	}

	sort.Slice(facts, func(a, b int) bool {
		if facts[a].I != facts[b].I {
			return facts[a].I < facts[b].I
		}

		return facts[a].J < facts[b].J
	})

	return facts
}

// InfoDump renders every indexed term and every known fact about it, for
// interactive or CLI diagnostics.
func (bb *Blackboard) InfoDump() string {
	var sb strings.Builder

	for i := 0; i < bb.numTerms; i++ {
		fmt.Fprintf(&sb, "t%d := %s\n", i, bb.Term(i).CanonicalKey())
	}

	sb.WriteString("\nequalities:\n")

	for _, f := range bb.GetEqualities() {
		fmt.Fprintf(&sb, "  t%d == %s*t%d\n", f.I, f.Coeff, f.J)
	}

	sb.WriteString("\ninequalities:\n")

	for _, f := range bb.GetInequalities() {
		fmt.Fprintf(&sb, "  t%d %s %s*t%d\n", f.Literal.I, f.Literal.Comp, f.Literal.Coeff.RatString(), f.Literal.J)
	}

	sb.WriteString("\ndisequalities:\n")

	for _, f := range bb.GetDisequalities() {
		fmt.Fprintf(&sb, "  t%d != %s*t%d\n", f.I, f.Coeff, f.J)
	}

	if len(bb.clauses) > 0 {
		sb.WriteString("\nclauses:\n")

		for _, c := range bb.clauses {
			parts := make([]string, len(c.Literals))

			for i, l := range c.Literals {
				parts[i] = fmt.Sprintf("t%d %s %s*t%d", l.I, l.Comp, l.Coeff.RatString(), l.J)
			}

			fmt.Fprintf(&sb, "  %s\n", strings.Join(parts, " OR "))
		}
	}

	return sb.String()
}
