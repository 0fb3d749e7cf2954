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

// tracker lets external modules query for only the information that has
// changed since they last asked.  Modules never interact with a tracker
// directly; they go through Blackboard.Identify/HasNewInfo/GetNewInfo.
type tracker struct {
	bb      *Blackboard
	nextID  int
	updates map[int]map[any]bool
}

func newTracker(bb *Blackboard) *tracker {
	return &tracker{bb: bb, updates: map[int]map[any]bool{}}
}

// identify allocates and returns a fresh module id.
func (t *tracker) identify() int {
	id := t.nextID
	t.nextID++

	return id
}

// hasNewInfo reports whether module has unread updates.  A module that has
// never called getNewInfo is considered to always have new info, so its
// first read can bootstrap from the full current state.
func (t *tracker) hasNewInfo(module int) bool {
	if s, ok := t.updates[module]; ok {
		return len(s) > 0
	}

	return true
}

// getNewInfo drains and returns module's pending update set.  The first call
// for a given module bootstraps with every key currently known to the
// Blackboard, rather than an empty set.
func (t *tracker) getNewInfo(module int) []any {
	if s, ok := t.updates[module]; ok {
		keys := make([]any, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}

		t.updates[module] = map[any]bool{}

		return keys
	}

	keys := t.bb.allFactKeys()
	t.updates[module] = map[any]bool{}

	return keys
}

// update broadcasts key to every subscriber's pending set.
func (t *tracker) update(key any) {
	for m := range t.updates {
		t.updates[m][key] = true
	}
}

// allFactKeys enumerates every key (index or pair) currently present in any
// comparison table, used to bootstrap a module's first read.
func (bb *Blackboard) allFactKeys() []any {
	keys := make([]any, 0)

	for i := range bb.zeroInequalities {
		keys = append(keys, i)
	}

	for _, i := range bb.zeroEqualities.Values() {
		keys = append(keys, i)
	}

	for i := range bb.zeroDisequalities {
		keys = append(keys, i)
	}

	for p := range bb.equalities {
		keys = append(keys, p)
	}

	for p := range bb.inequalities {
		keys = append(keys, p)
	}

	for p := range bb.disequalities {
		keys = append(keys, p)
	}

	return keys
}

// Identify allocates a fresh module id for use with HasNewInfo/GetNewInfo.
func (bb *Blackboard) Identify() int {
	return bb.tracker.identify()
}

// HasNewInfo reports whether module has unread updates.
func (bb *Blackboard) HasNewInfo(module int) bool {
	return bb.tracker.hasNewInfo(module)
}

// GetNewInfo drains and returns module's pending updates: a mix of ints
// (zero-fact indices) and pair values (binary-fact index pairs).
func (bb *Blackboard) GetNewInfo(module int) []any {
	return bb.tracker.getNewInfo(module)
}
