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

func leaves(n int) []*node[int, int] {
	out := make([]*node[int, int], n)
	for i := range out {
		out[i] = singleton(i, i*10)
	}
	return out
}

func checkBuilt(t *testing.T, n *node[int, int], wantSize int, wantMinKey int) {
	t.Helper()
	depth := -1
	if err := n.checkInvariants(comparator, &depth, 0); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	if n.size != wantSize {
		t.Errorf("size = %d, want %d", n.size, wantSize)
	}
	if n.minKey != wantMinKey {
		t.Errorf("minKey = %d, want %d", n.minKey, wantMinKey)
	}
}

func TestSingleton(t *testing.T) {
	n := singleton(5, 50)
	if n.kind != kindLeaf || n.size != 1 || n.minKey != 5 || n.val != 50 {
		t.Fatalf("unexpected singleton: %+v", n)
	}
}

func TestBranch2And3(t *testing.T) {
	ls := leaves(3)
	checkBuilt(t, branch2(ls[0], ls[1]), 2, 0)
	checkBuilt(t, branch3(ls[0], ls[1], ls[2]), 3, 0)
}

func TestBranch4Through7(t *testing.T) {
	ls4 := leaves(4)
	checkBuilt(t, branch4(ls4[0], ls4[1], ls4[2], ls4[3]), 4, 0)

	ls5 := leaves(5)
	checkBuilt(t, branch5(ls5[0], ls5[1], ls5[2], ls5[3], ls5[4]), 5, 0)

	ls6 := leaves(6)
	checkBuilt(t, branch6(ls6[0], ls6[1], ls6[2], ls6[3], ls6[4], ls6[5]), 6, 0)

	ls7 := leaves(7)
	checkBuilt(t, branch7(ls7[0], ls7[1], ls7[2], ls7[3], ls7[4], ls7[5], ls7[6]), 7, 0)
}

func TestCheckInvariantsCatchesBadPartitioning(t *testing.T) {
	// children out of order: right child's minKey is not greater than left's.
	bad := &node[int, int]{
		kind:     kindBranch2,
		children: []*node[int, int]{singleton(5, 5), singleton(3, 3)},
		minKey:   5,
		size:     2,
	}
	depth := -1
	if err := bad.checkInvariants(comparator, &depth, 0); err == nil {
		t.Fatalf("expected partitioning violation to be detected")
	}
}

func TestCheckInvariantsCatchesUnevenDepth(t *testing.T) {
	bad := branch2(singleton(1, 1), branch2(singleton(2, 2), singleton(3, 3)))
	depth := -1
	if err := bad.checkInvariants(comparator, &depth, 0); err == nil {
		t.Fatalf("expected uneven depth to be detected")
	}
}

func TestForEachVisitsInOrder(t *testing.T) {
	n := branch3(
		branch2(singleton(1, 1), singleton(2, 2)),
		singleton(3, 3),
		branch2(singleton(4, 4), singleton(5, 5)),
	)
	var got []int
	n.forEach(func(k, v int) { got = append(got, k) })
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("forEach order = %v, want %v", got, want)
		}
	}
}
