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

// Package module defines the interface reasoning modules implement to
// contribute facts to a shared Blackboard during a saturation run, plus a
// couple of demonstration modules built against it.
package module

import "github.com/zeta1999/polya/pkg/blackboard"

// Module contributes derived facts to a Blackboard.  A saturation driver
// calls UpdateBlackboard repeatedly, round-robin across its modules, until
// none of them report new info for any module's tracker id (or a
// ContradictionError ends the run early).
type Module interface {
	// UpdateBlackboard inspects bb (typically via its own tracker id, to
	// skip work already done) and asserts any new facts it can derive.
	UpdateBlackboard(bb *blackboard.Blackboard) error

	// GetSplitWeight estimates how useful a case split would be to this
	// module's progress, or returns (0, false) if it has no opinion.
	// Drivers use this to prioritize which case split to try first when
	// saturation alone cannot resolve a goal.
	GetSplitWeight(bb *blackboard.Blackboard) (weight int, ok bool)
}
