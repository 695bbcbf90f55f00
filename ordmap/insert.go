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

// insertKind tags the outcome of a recursive insert.
type insertKind int

const (
	insertSameDepth insertKind = iota
	insertOverflow
)

// insertResult is the return of the recursive insert helper: either the
// subtree was rebuilt at the same height (sameDepth holds the new root),
// or it outgrew a single node and is returned as two same-height siblings
// for the caller to absorb (left/right hold the overflow pair).
type insertResult[K, V any] struct {
	kind       insertKind
	sameDepth  *node[K, V]
	left       *node[K, V]
	right      *node[K, V]
}

// insert inserts (k, v) into the subtree rooted at n. A duplicate key
// replaces the existing value rather than splitting the leaf, since
// admitting two leaves with the same key would violate the
// strictly-ascending-keys invariant.
func (n *node[K, V]) insert(cmp common.Comparator[K], k K, v V) insertResult[K, V] {
	switch n.kind {
	case kindLeaf:
		if cmp.Compare(&k, &n.key) == 0 {
			return insertResult[K, V]{kind: insertSameDepth, sameDepth: singleton(k, v)}
		}
		left, right := singleton(k, v), n
		if cmp.Compare(&right.key, &left.key) < 0 {
			left, right = right, left
		}
		return insertResult[K, V]{kind: insertOverflow, left: left, right: right}

	case kindBranch2:
		l, r := n.left(), n.right()
		if cmp.Compare(&k, &r.minKey) < 0 {
			res := l.insert(cmp, k, v)
			if res.kind == insertSameDepth {
				return insertResult[K, V]{kind: insertSameDepth, sameDepth: branch2(res.sameDepth, r)}
			}
			return insertResult[K, V]{kind: insertSameDepth, sameDepth: branch3(res.left, res.right, r)}
		}
		res := r.insert(cmp, k, v)
		if res.kind == insertSameDepth {
			return insertResult[K, V]{kind: insertSameDepth, sameDepth: branch2(l, res.sameDepth)}
		}
		return insertResult[K, V]{kind: insertSameDepth, sameDepth: branch3(l, res.left, res.right)}

	case kindBranch3:
		a, b, c := n.children[0], n.children[1], n.children[2]
		switch {
		case cmp.Compare(&k, &b.minKey) < 0:
			res := a.insert(cmp, k, v)
			if res.kind == insertSameDepth {
				return insertResult[K, V]{kind: insertSameDepth, sameDepth: branch3(res.sameDepth, b, c)}
			}
			return insertResult[K, V]{
				kind:  insertOverflow,
				left:  branch2(res.left, res.right),
				right: branch2(b, c),
			}
		case cmp.Compare(&k, &c.minKey) < 0:
			res := b.insert(cmp, k, v)
			if res.kind == insertSameDepth {
				return insertResult[K, V]{kind: insertSameDepth, sameDepth: branch3(a, res.sameDepth, c)}
			}
			return insertResult[K, V]{
				kind:  insertOverflow,
				left:  branch2(a, res.left),
				right: branch2(res.right, c),
			}
		default:
			res := c.insert(cmp, k, v)
			if res.kind == insertSameDepth {
				return insertResult[K, V]{kind: insertSameDepth, sameDepth: branch3(a, b, res.sameDepth)}
			}
			return insertResult[K, V]{
				kind:  insertOverflow,
				left:  branch2(a, b),
				right: branch2(res.left, res.right),
			}
		}

	default:
		panic("ordmap: insert on node of unknown kind")
	}
}
