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
package set

import (
	"testing"
)

func Test_SortedSet_Insert(t *testing.T) {
	set := NewSortedSet[uint]()
	//
	for _, v := range []uint{5, 1, 3, 1, 9, 3} {
		set.Insert(v)
	}
	//
	if got := set.Values(); len(got) != 4 {
		t.Errorf("expected 4 unique elements, got %v", got)
	}
	//
	for _, v := range []uint{1, 3, 5, 9} {
		if !set.Contains(v) {
			t.Errorf("missing element %d", v)
		}
	}
	//
	if set.Contains(2) {
		t.Errorf("unexpected element 2")
	}
}

func Test_SortedSet_InsertSorted(t *testing.T) {
	left := NewSortedSet[uint]()
	right := NewSortedSet[uint]()
	//
	for _, v := range []uint{1, 4, 7} {
		left.Insert(v)
	}
	//
	for _, v := range []uint{4, 5, 9} {
		right.Insert(v)
	}
	//
	left.InsertSorted(right)
	//
	for _, v := range []uint{1, 4, 5, 7, 9} {
		if !left.Contains(v) {
			t.Errorf("missing element %d after merge", v)
		}
	}
	//
	if n := len(left.Values()); n != 5 {
		t.Errorf("expected 5 elements after merge, got %d", n)
	}
}

func Test_SortedSet_Remove(t *testing.T) {
	set := NewSortedSet[uint]()
	//
	for _, v := range []uint{2, 4, 6} {
		set.Insert(v)
	}
	//
	if !set.Remove(4) {
		t.Errorf("expected removal of 4 to succeed")
	}
	//
	if set.Contains(4) {
		t.Errorf("4 still present after removal")
	}
	//
	if set.Remove(100) {
		t.Errorf("removal of absent element should fail")
	}
}

func Test_SortedSet_Values(t *testing.T) {
	set := NewSortedSet[uint]()
	//
	for _, v := range []uint{3, 1, 2} {
		set.Insert(v)
	}
	//
	got := set.Values()
	want := []uint{1, 2, 3}
	//
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	//
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}
