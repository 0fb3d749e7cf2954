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

	"github.com/zeta1999/polya/pkg/term"
)

// ContradictionError is raised when an assertion is inconsistent with facts
// already on the Blackboard, or when a clause is reduced to empty.  It is the
// expected, successful termination signal of a saturation run: the driver
// should check for it with errors.As, not treat it as a bug.
type ContradictionError struct {
	// Offending is the comparison that triggered the contradiction, expressed
	// over indexed terms.
	Offending term.Literal
	// Expanded renders the same comparison with indices substituted by their
	// fully expanded definitions, for human consumption.
	Expanded string
}

func (e *ContradictionError) Error() string {
	if e.Offending.I < 0 {
		return "contradiction: " + e.Expanded
	}

	return fmt.Sprintf("contradiction: t%d %s %s*t%d\n  := %s",
		e.Offending.I, e.Offending.Comp, e.Offending.Coeff.RatString(), e.Offending.J, e.Expanded)
}

// StructuralError indicates a caller bug: an untyped/unrecognized term or
// comparison constant was passed to the core, or an internal invariant was
// violated.  Unlike ContradictionError, it is never an expected outcome.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Message
}

func newStructuralError(format string, args ...any) *StructuralError {
	return &StructuralError{Message: fmt.Sprintf(format, args...)}
}
