// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ordmap

import "github.com/go-ordseq/ordseq/common"

// Map is an ordered associative container backed by a 2-3 tree. It
// supports lookup and removal by key, positional access by rank, and a
// navigable cursor over the sorted sequence, all in O(log n). Map is
// not safe for concurrent use; a zero Map{} without a Comparator is not
// usable, use New.
type Map[K, V any] struct {
	root *node[K, V]
	cmp  common.Comparator[K]
}

// New creates an empty Map ordered by cmp.
func New[K, V any](cmp common.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{cmp: cmp}
}

// Len returns the number of keys currently stored.
func (m *Map[K, V]) Len() int {
	if m.root == nil {
		return 0
	}
	return m.root.size
}

// IsEmpty reports whether the map holds no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Lookup returns the value stored for k, and whether it was found.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	var zero V
	if m.root == nil {
		return zero, false
	}
	cur := newCursor(m.root, m.cmp)
	if !cur.AdvanceTo(k) {
		return zero, false
	}
	key, val := cur.Focus()
	if m.cmp.Compare(&key, &k) == 0 {
		return val, true
	}
	return zero, false
}

// Index returns the key and value at rank i (0-based position in the
// sorted sequence), and whether i was in range.
func (m *Map[K, V]) Index(i int) (K, V, bool) {
	var zeroK K
	var zeroV V
	if m.root == nil || i < 0 || i >= m.root.size {
		return zeroK, zeroV, false
	}
	cur := newCursor(m.root, m.cmp)
	if !cur.Advance(i) {
		return zeroK, zeroV, false
	}
	k, v := cur.Focus()
	return k, v, true
}

// Insert inserts (k, v). If k is already present, its value is replaced.
func (m *Map[K, V]) Insert(k K, v V) {
	if m.root == nil {
		m.root = singleton(k, v)
		return
	}
	res := m.root.insert(m.cmp, k, v)
	if res.kind == insertSameDepth {
		m.root = res.sameDepth
	} else {
		m.root = branch2(res.left, res.right)
	}
}

// Remove deletes k, returning its value and whether it was present.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	var zero V
	if m.root == nil {
		return zero, false
	}
	res, val, ok := m.root.remove(m.cmp, k)
	if res.kind == removeEmpty {
		m.root = nil
	} else {
		m.root = res.node
	}
	return val, ok
}

// Cursor returns a cursor positioned at the leftmost leaf, or false if
// the map is empty.
func (m *Map[K, V]) Cursor() (*Cursor[K, V], bool) {
	if m.root == nil {
		var zero *Cursor[K, V]
		return zero, false
	}
	return newCursor(m.root, m.cmp), true
}

// checkInvariants verifies the structural invariants of the whole map.
// It is a test/diagnostic helper, not part of the public surface.
func (m *Map[K, V]) checkInvariants() error {
	if m.root == nil {
		return nil
	}
	depth := -1
	return m.root.checkInvariants(m.cmp, &depth, 0)
}

// forEach visits every key/value pair in ascending key order. It is an
// internal helper used by property tests; it is intentionally not
// exported, since the public surface is limited to
// New/Len/IsEmpty/Lookup/Index/Insert/Remove/Cursor plus the cursor ops
// and the Footprint diagnostic.
func (m *Map[K, V]) forEach(f func(k K, v V)) {
	if m.root == nil {
		return
	}
	m.root.forEach(f)
}

// Footprint walks the tree once and reports its memory consumption,
// tallied by node kind (see Footprint in footprint.go).
func (m *Map[K, V]) Footprint() Footprint {
	var f Footprint
	if m.root != nil {
		m.root.tally(&f)
	}
	return f
}
