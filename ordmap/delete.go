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

// removeKind tags the outcome of a recursive remove.
type removeKind int

const (
	removeSameDepth removeKind = iota
	removeUnderflow
	removeEmpty
)

// removeResult is the return of the recursive remove helper.
type removeResult[K, V any] struct {
	kind removeKind
	node *node[K, V] // valid for sameDepth and underflow
}

// remove deletes k from the subtree rooted at n, returning the outcome
// together with the removed value (ok is false if k was not present).
func (n *node[K, V]) remove(cmp common.Comparator[K], k K) (removeResult[K, V], V, bool) {
	switch n.kind {
	case kindLeaf:
		if cmp.Compare(&n.key, &k) == 0 {
			return removeResult[K, V]{kind: removeEmpty}, n.val, true
		}
		var zero V
		return removeResult[K, V]{kind: removeSameDepth, node: n}, zero, false

	case kindBranch2:
		return n.removeBranch2(cmp, k)

	case kindBranch3:
		return n.removeBranch3(cmp, k)

	default:
		panic("ordmap: remove on node of unknown kind")
	}
}

func (n *node[K, V]) removeBranch2(cmp common.Comparator[K], k K) (removeResult[K, V], V, bool) {
	left, right := n.left(), n.right()

	if cmp.Compare(&k, &right.minKey) < 0 {
		sub, val, ok := left.remove(cmp, k)
		switch sub.kind {
		case removeEmpty:
			return removeResult[K, V]{kind: removeUnderflow, node: right}, val, ok
		case removeSameDepth:
			return removeResult[K, V]{kind: removeSameDepth, node: branch2(sub.node, right)}, val, ok
		default: // removeUnderflow
			newLeft := sub.node
			switch right.kind {
			case kindBranch2:
				rl, rr := right.children[0], right.children[1]
				return removeResult[K, V]{kind: removeUnderflow, node: branch3(newLeft, rl, rr)}, val, ok
			case kindBranch3:
				rl, rm, rr := right.children[0], right.children[1], right.children[2]
				return removeResult[K, V]{kind: removeSameDepth, node: branch4(newLeft, rl, rm, rr)}, val, ok
			default:
				panic("ordmap: underflow sibling is a leaf; uniform-depth invariant violated")
			}
		}
	}

	sub, val, ok := right.remove(cmp, k)
	switch sub.kind {
	case removeEmpty:
		return removeResult[K, V]{kind: removeUnderflow, node: left}, val, ok
	case removeSameDepth:
		return removeResult[K, V]{kind: removeSameDepth, node: branch2(left, sub.node)}, val, ok
	default: // removeUnderflow
		newRight := sub.node
		switch left.kind {
		case kindBranch2:
			ll, lr := left.children[0], left.children[1]
			return removeResult[K, V]{kind: removeUnderflow, node: branch3(ll, lr, newRight)}, val, ok
		case kindBranch3:
			ll, lm, lr := left.children[0], left.children[1], left.children[2]
			return removeResult[K, V]{kind: removeSameDepth, node: branch4(ll, lm, lr, newRight)}, val, ok
		default:
			panic("ordmap: underflow sibling is a leaf; uniform-depth invariant violated")
		}
	}
}

func (n *node[K, V]) removeBranch3(cmp common.Comparator[K], k K) (removeResult[K, V], V, bool) {
	a, b, c := n.children[0], n.children[1], n.children[2]

	switch {
	case cmp.Compare(&k, &b.minKey) < 0:
		sub, val, ok := a.remove(cmp, k)
		switch sub.kind {
		case removeEmpty:
			return removeResult[K, V]{kind: removeSameDepth, node: branch2(b, c)}, val, ok
		case removeSameDepth:
			return removeResult[K, V]{kind: removeSameDepth, node: branch3(sub.node, b, c)}, val, ok
		default:
			return removeResult[K, V]{kind: removeSameDepth, node: merge1(sub.node, b, c)}, val, ok
		}

	case cmp.Compare(&k, &c.minKey) < 0:
		sub, val, ok := b.remove(cmp, k)
		switch sub.kind {
		case removeEmpty:
			return removeResult[K, V]{kind: removeSameDepth, node: branch2(a, c)}, val, ok
		case removeSameDepth:
			return removeResult[K, V]{kind: removeSameDepth, node: branch3(a, sub.node, c)}, val, ok
		default:
			return removeResult[K, V]{kind: removeSameDepth, node: merge2(a, sub.node, c)}, val, ok
		}

	default:
		sub, val, ok := c.remove(cmp, k)
		switch sub.kind {
		case removeEmpty:
			return removeResult[K, V]{kind: removeSameDepth, node: branch2(a, b)}, val, ok
		case removeSameDepth:
			return removeResult[K, V]{kind: removeSameDepth, node: branch3(a, b, sub.node)}, val, ok
		default:
			return removeResult[K, V]{kind: removeSameDepth, node: merge3(a, b, sub.node)}, val, ok
		}
	}
}

// merge1 reabsorbs an underflowed new-leftmost child u together with its
// two full-height siblings x, y, picking the branchN builder that matches
// the siblings' arities.
func merge1[K, V any](u, x, y *node[K, V]) *node[K, V] {
	switch {
	case x.kind == kindBranch2 && y.kind == kindBranch2:
		return branch5(u, x.children[0], x.children[1], y.children[0], y.children[1])
	case x.kind == kindBranch2 && y.kind == kindBranch3:
		return branch6(u, x.children[0], x.children[1], y.children[0], y.children[1], y.children[2])
	case x.kind == kindBranch3 && y.kind == kindBranch2:
		return branch6(u, x.children[0], x.children[1], x.children[2], y.children[0], y.children[1])
	case x.kind == kindBranch3 && y.kind == kindBranch3:
		return branch7(u, x.children[0], x.children[1], x.children[2], y.children[0], y.children[1], y.children[2])
	default:
		panic("ordmap: merge1 called with a leaf sibling; uniform-depth invariant violated")
	}
}

// merge2 reabsorbs an underflowed new-middle child u together with its
// full-height left and right siblings x, y.
func merge2[K, V any](x, u, y *node[K, V]) *node[K, V] {
	switch {
	case x.kind == kindBranch2 && y.kind == kindBranch2:
		return branch5(x.children[0], x.children[1], u, y.children[0], y.children[1])
	case x.kind == kindBranch2 && y.kind == kindBranch3:
		return branch6(x.children[0], x.children[1], u, y.children[0], y.children[1], y.children[2])
	case x.kind == kindBranch3 && y.kind == kindBranch2:
		return branch6(x.children[0], x.children[1], x.children[2], u, y.children[0], y.children[1])
	case x.kind == kindBranch3 && y.kind == kindBranch3:
		return branch7(x.children[0], x.children[1], x.children[2], u, y.children[0], y.children[1], y.children[2])
	default:
		panic("ordmap: merge2 called with a leaf sibling; uniform-depth invariant violated")
	}
}

// merge3 reabsorbs an underflowed new-rightmost child u together with its
// two full-height siblings x, y.
func merge3[K, V any](x, y, u *node[K, V]) *node[K, V] {
	switch {
	case x.kind == kindBranch2 && y.kind == kindBranch2:
		return branch5(x.children[0], x.children[1], y.children[0], y.children[1], u)
	case x.kind == kindBranch2 && y.kind == kindBranch3:
		return branch6(x.children[0], x.children[1], y.children[0], y.children[1], y.children[2], u)
	case x.kind == kindBranch3 && y.kind == kindBranch2:
		return branch6(x.children[0], x.children[1], x.children[2], y.children[0], y.children[1], u)
	case x.kind == kindBranch3 && y.kind == kindBranch3:
		return branch7(x.children[0], x.children[1], x.children[2], y.children[0], y.children[1], y.children[2], u)
	default:
		panic("ordmap: merge3 called with a leaf sibling; uniform-depth invariant violated")
	}
}
