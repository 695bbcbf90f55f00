// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ordmap implements an in-memory, ordered associative container
// backed by a 2-3 tree. It supports lookup and removal by key, positional
// access by rank, and a navigable cursor over the sorted sequence, all in
// O(log n).
package ordmap

import (
	"fmt"

	"github.com/go-ordseq/ordseq/common"
)

// kind tags the arity of a tree node. Go has no sum types, so an
// exhaustive type switch on kind stands in for pattern matching on the
// variant.
type kind int

const (
	kindLeaf kind = iota
	kindBranch2
	kindBranch3
)

// node is an immutable value: once built, minKey and size are never
// mutated. Every rebalancing step produces new nodes.
type node[K, V any] struct {
	kind kind

	// leaf payload
	key K
	val V

	// branch payload (len(children) == 2 or 3, matching kind)
	children []*node[K, V]

	minKey K
	size   int
}

// singleton builds a leaf node holding one key/value pair.
func singleton[K, V any](k K, v V) *node[K, V] {
	return &node[K, V]{kind: kindLeaf, key: k, val: v, minKey: k, size: 1}
}

// branch2 builds a 2-branch from two equal-depth children, computing
// minKey and size from the children.
func branch2[K, V any](a, b *node[K, V]) *node[K, V] {
	return &node[K, V]{
		kind:     kindBranch2,
		children: []*node[K, V]{a, b},
		minKey:   a.minKey,
		size:     a.size + b.size,
	}
}

// branch3 builds a 3-branch from three equal-depth children.
func branch3[K, V any](a, b, c *node[K, V]) *node[K, V] {
	return &node[K, V]{
		kind:     kindBranch3,
		children: []*node[K, V]{a, b, c},
		minKey:   a.minKey,
		size:     a.size + b.size + c.size,
	}
}

// branch4..branch7 assemble a balanced two-level subtree from 4-7
// equal-depth nodes, used only by delete-time rebalancing when a merge
// of two or three siblings needs to absorb an underflowed node. The
// output is one level taller than the inputs.

func branch4[K, V any](a, b, c, d *node[K, V]) *node[K, V] {
	return branch2(branch2(a, b), branch2(c, d))
}

func branch5[K, V any](a, b, c, d, e *node[K, V]) *node[K, V] {
	return branch2(branch2(a, b), branch3(c, d, e))
}

func branch6[K, V any](a, b, c, d, e, f *node[K, V]) *node[K, V] {
	return branch2(branch3(a, b, c), branch3(d, e, f))
}

func branch7[K, V any](a, b, c, d, e, f, g *node[K, V]) *node[K, V] {
	return branch3(branch2(a, b), branch2(c, d), branch3(e, f, g))
}

// left returns the first child of a branch node.
func (n *node[K, V]) left() *node[K, V] { return n.children[0] }

// mid returns the middle child of a branch3 node.
func (n *node[K, V]) mid() *node[K, V] { return n.children[1] }

// right returns the last child of a branch node.
func (n *node[K, V]) right() *node[K, V] { return n.children[len(n.children)-1] }

// checkInvariants verifies that every leaf in the subtree rooted at n is
// at the same depth, that branch arity is 2 or 3, that cached size and
// minKey are consistent with the children, and that children partition
// the key space in ascending order. depth is the expected leaf depth
// (-1 means "not yet observed"); it is threaded through recursive calls
// and updated on the first leaf visited.
func (n *node[K, V]) checkInvariants(cmp common.Comparator[K], depth *int, level int) error {
	switch n.kind {
	case kindLeaf:
		if *depth == -1 {
			*depth = level
		} else if *depth != level {
			return fmt.Errorf("leaf at wrong depth: %d != %d", level, *depth)
		}
		if n.size != 1 {
			return fmt.Errorf("leaf size must be 1, got %d", n.size)
		}
		return nil
	case kindBranch2, kindBranch3:
		if len(n.children) != 2 && len(n.children) != 3 {
			return fmt.Errorf("branch arity out of range: %d", len(n.children))
		}
		sum := 0
		for _, c := range n.children {
			if err := c.checkInvariants(cmp, depth, level+1); err != nil {
				return err
			}
			sum += c.size
		}
		if sum != n.size {
			return fmt.Errorf("size mismatch: cached %d, computed %d", n.size, sum)
		}
		if cmp.Compare(&n.children[0].minKey, &n.minKey) != 0 {
			return fmt.Errorf("minKey mismatch: cached %v, leftmost %v", n.minKey, n.children[0].minKey)
		}
		for i := 0; i+1 < len(n.children); i++ {
			if err := n.checkPartition(cmp, i); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown node kind %d", n.kind)
	}
}

// checkPartition verifies that every key under children[i] is strictly
// less than children[i+1].minKey. It only checks the boundary via the
// rightmost key of children[i], which is sufficient because sortedness
// within each child is already verified recursively.
func (n *node[K, V]) checkPartition(cmp common.Comparator[K], i int) error {
	rightmost := n.children[i].rightmostKey()
	if cmp.Compare(&rightmost, &n.children[i+1].minKey) >= 0 {
		return fmt.Errorf("partitioning violated at child %d: %v >= %v", i, rightmost, n.children[i+1].minKey)
	}
	return nil
}

func (n *node[K, V]) rightmostKey() K {
	cur := n
	for cur.kind != kindLeaf {
		cur = cur.right()
	}
	return cur.key
}

// forEach visits every leaf of the subtree in ascending key order.
func (n *node[K, V]) forEach(f func(k K, v V)) {
	if n.kind == kindLeaf {
		f(n.key, n.val)
		return
	}
	for _, c := range n.children {
		c.forEach(f)
	}
}
