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

// slot tags which child of an ancestor a cursor frame is currently
// positioned at (Branch2Left/Right, Branch3Left/Middle/Right), playing
// the "remember where we were in the parent" role needed to resume
// descent without recomputing the path from the root, generalized here
// to unrestricted forward movement by key or by rank.
type slot int

const (
	slotBranch2Left slot = iota
	slotBranch2Right
	slotBranch3Left
	slotBranch3Middle
	slotBranch3Right
)

// frame records one ancestor on the path from the root to the cursor's
// focus leaf, plus the slot currently occupied at that ancestor.
type frame[K, V any] struct {
	node *node[K, V]
	slot slot
}

// Cursor is a zipper: a focus leaf plus the spine of ancestor frames
// needed to resume descent from that leaf. It borrows the tree for its
// lifetime: the map must not be mutated while any cursor is alive.
type Cursor[K, V any] struct {
	cmp   common.Comparator[K]
	stack []frame[K, V]
	key   K
	val   V
}

// newCursor builds a cursor positioned at the leftmost leaf of root,
// pushing a "left slot" frame at every level along the way.
func newCursor[K, V any](root *node[K, V], cmp common.Comparator[K]) *Cursor[K, V] {
	c := &Cursor[K, V]{cmp: cmp}
	cur := root
	for cur.kind != kindLeaf {
		switch cur.kind {
		case kindBranch2:
			c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch2Left})
			cur = cur.children[0]
		case kindBranch3:
			c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch3Left})
			cur = cur.children[0]
		}
	}
	c.key, c.val = cur.key, cur.val
	return c
}

// Focus returns the key and value at the cursor's current position.
func (c *Cursor[K, V]) Focus() (K, V) {
	return c.key, c.val
}

// nextSlotAndChild returns the slot that follows s at n, and the child
// occupying it. ok is false when s is already the last slot at n (there
// is nothing further to try at this ancestor).
func nextSlotAndChild[K, V any](n *node[K, V], s slot) (next slot, child *node[K, V], ok bool) {
	switch n.kind {
	case kindBranch2:
		if s == slotBranch2Left {
			return slotBranch2Right, n.children[1], true
		}
		return 0, nil, false
	case kindBranch3:
		switch s {
		case slotBranch3Left:
			return slotBranch3Middle, n.children[1], true
		case slotBranch3Middle:
			return slotBranch3Right, n.children[2], true
		default:
			return 0, nil, false
		}
	default:
		panic("ordmap: nextSlotAndChild called on a leaf")
	}
}

// AdvanceTo repositions the cursor at the first leaf whose key is >= k.
// It is a no-op if the current focus already satisfies that. It reports
// false if no such leaf exists (iteration exhausted), in which case the
// cursor is left in an unspecified position and must not be used further.
func (c *Cursor[K, V]) AdvanceTo(k K) bool {
	if c.cmp.Compare(&c.key, &k) >= 0 {
		return true
	}

	for {
		if len(c.stack) == 0 {
			return false
		}
		top := &c.stack[len(c.stack)-1]

		for {
			next, child, ok := nextSlotAndChild(top.node, top.slot)
			if !ok {
				break
			}
			top.slot = next
			// child can hold a key >= k unless the sibling after it
			// already starts at or below k.
			if _, after, more := nextSlotAndChild(top.node, next); !more || c.cmp.Compare(&after.minKey, &k) > 0 {
				c.descendByKey(child, k)
				if c.cmp.Compare(&c.key, &k) >= 0 {
					return true
				}
				// Landed on the largest key below k; keep scanning forward.
				return c.AdvanceTo(k)
			}
		}

		c.stack = c.stack[:len(c.stack)-1]
	}
}

// descendByKey pushes frames walking down from cur to a leaf, at each
// level picking the rightmost child whose minKey <= k, or the leftmost
// child if none qualifies. It lands on the largest key <= k in cur's
// subtree, or on its leftmost leaf when every key there is > k.
func (c *Cursor[K, V]) descendByKey(cur *node[K, V], k K) {
	for cur.kind != kindLeaf {
		switch cur.kind {
		case kindBranch2:
			a, b := cur.children[0], cur.children[1]
			if c.cmp.Compare(&b.minKey, &k) > 0 {
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch2Left})
				cur = a
			} else {
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch2Right})
				cur = b
			}
		case kindBranch3:
			a, b, cc := cur.children[0], cur.children[1], cur.children[2]
			switch {
			case c.cmp.Compare(&b.minKey, &k) > 0:
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch3Left})
				cur = a
			case c.cmp.Compare(&cc.minKey, &k) > 0:
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch3Middle})
				cur = b
			default:
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch3Right})
				cur = cc
			}
		}
	}
	c.key, c.val = cur.key, cur.val
}

// Advance moves the cursor forward by n leaves in sequence order. It
// reports false if fewer than n leaves remain (walked past the end), in
// which case the cursor must not be used further.
func (c *Cursor[K, V]) Advance(n int) bool {
	if n == 0 {
		return true
	}
	n--

	for {
		if len(c.stack) == 0 {
			return false
		}
		top := &c.stack[len(c.stack)-1]

		for {
			next, child, ok := nextSlotAndChild(top.node, top.slot)
			if !ok {
				break
			}
			if n < child.size {
				top.slot = next
				c.descendByRank(child, n)
				return true
			}
			n -= child.size
			top.slot = next
		}

		c.stack = c.stack[:len(c.stack)-1]
	}
}

// descendByRank pushes frames walking down from cur to the leaf at rank
// n within cur's subtree (0-based), passing over children whose size is
// too small and subtracting their size from n.
func (c *Cursor[K, V]) descendByRank(cur *node[K, V], n int) {
	for cur.kind != kindLeaf {
		switch cur.kind {
		case kindBranch2:
			a, b := cur.children[0], cur.children[1]
			if n < a.size {
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch2Left})
				cur = a
			} else {
				n -= a.size
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch2Right})
				cur = b
			}
		case kindBranch3:
			a, b, cc := cur.children[0], cur.children[1], cur.children[2]
			if n < a.size {
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch3Left})
				cur = a
				continue
			}
			n -= a.size
			if n < b.size {
				c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch3Middle})
				cur = b
				continue
			}
			n -= b.size
			c.stack = append(c.stack, frame[K, V]{node: cur, slot: slotBranch3Right})
			cur = cc
		}
	}
	c.key, c.val = cur.key, cur.val
}
