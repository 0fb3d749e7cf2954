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

// ExpandIVars replaces every IVar leaf in t with lookup(index), recursively.
// It performs a purely structural substitution — it does not re-flatten or
// merge the result, since the replaced subterm may introduce new
// opportunities for Canonicalize to combine like terms that substitution
// itself must not pre-empt.
func ExpandIVars(t Term, lookup func(index int) Term) Term {
	switch v := t.(type) {
	case One, Var:
		return v
	case IVar:
		return lookup(v.Index)
	case AddTerm:
		args := make([]Addend, len(v.Args))
		for i, a := range v.Args {
			args[i] = Addend{Coeff: a.Coeff, Term: ExpandIVars(a.Term, lookup)}
		}

		return AddTerm{Args: args}
	case MulTerm:
		args := make([]Factor, len(v.Args))
		for i, f := range v.Args {
			args[i] = Factor{Term: ExpandIVars(f.Term, lookup), Exp: f.Exp}
		}

		return MulTerm{Args: args}
	case FuncTerm:
		args := make([]Addend, len(v.Args))
		for i, a := range v.Args {
			args[i] = Addend{Coeff: a.Coeff, Term: ExpandIVars(a.Term, lookup)}
		}

		return FuncTerm{Func: v.Func, Args: args}
	default:
		panic("term: unrecognized term variant")
	}
}
