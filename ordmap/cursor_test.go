// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
//

package ordmap

import "testing"

func newFilledMap(n int) *Map[int, int] {
	m := New[int, int](comparator)
	for i := 0; i < n; i++ {
		m.Insert(i*2, i)
	}
	return m
}

func TestAdvanceToIsNoOpWhenAlreadySatisfied(t *testing.T) {
	m := newFilledMap(10)
	cur, _ := m.Cursor()
	if !cur.AdvanceTo(-5) {
		t.Fatalf("AdvanceTo should succeed")
	}
	k, _ := cur.Focus()
	if k != 0 {
		t.Fatalf("AdvanceTo(-5) on fresh cursor should stay at 0, got %d", k)
	}
}

func TestAdvanceToLandsOnFirstGreaterOrEqual(t *testing.T) {
	m := newFilledMap(10) // keys 0,2,4,...,18
	cur, _ := m.Cursor()
	if !cur.AdvanceTo(5) {
		t.Fatalf("AdvanceTo(5) should succeed")
	}
	if k, _ := cur.Focus(); k != 6 {
		t.Fatalf("AdvanceTo(5).Focus() key = %d, want 6", k)
	}
}

func TestAdvanceToExhaustion(t *testing.T) {
	m := newFilledMap(5) // keys 0,2,4,6,8
	cur, _ := m.Cursor()
	if cur.AdvanceTo(100) {
		t.Fatalf("AdvanceTo(100) should report exhaustion")
	}
}

func TestAdvanceZeroIsNoOp(t *testing.T) {
	m := newFilledMap(5)
	cur, _ := m.Cursor()
	if !cur.Advance(0) {
		t.Fatalf("Advance(0) should succeed")
	}
	if k, _ := cur.Focus(); k != 0 {
		t.Fatalf("Advance(0) should stay at rank 0, got key %d", k)
	}
}

func TestAdvancePastEnd(t *testing.T) {
	m := newFilledMap(5)
	cur, _ := m.Cursor()
	if cur.Advance(5) {
		t.Fatalf("Advance(5) over a 5-element map should report exhaustion")
	}
}

func TestAdvanceToOnSingleElementMap(t *testing.T) {
	m := New[int, int](comparator)
	m.Insert(42, 1)
	cur, ok := m.Cursor()
	if !ok {
		t.Fatalf("Cursor() should be present")
	}
	if !cur.AdvanceTo(42) {
		t.Fatalf("AdvanceTo(42) should succeed")
	}
	if cur.AdvanceTo(43) {
		t.Fatalf("AdvanceTo(43) should report exhaustion")
	}
}
