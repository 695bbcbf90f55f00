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

import (
	"fmt"
	"unsafe"
)

// Footprint summarizes the memory consumed by a Map's tree. Every node
// in this container is one of exactly three kinds (leaf, 2-branch,
// 3-branch), so unlike a generic named-child memory report the
// accounting here is a flat per-kind tally rather than a recursively
// nested tree of named children: there is no need to name "child0" vs
// "child1" when the shape itself already pins every node's arity to 2
// or 3.
type Footprint struct {
	Leaves   int
	Branch2s int
	Branch3s int
	Bytes    uintptr
}

// tally walks the subtree rooted at n, adding its node count and byte
// size to f.
func (n *node[K, V]) tally(f *Footprint) {
	f.Bytes += unsafe.Sizeof(*n)
	switch n.kind {
	case kindLeaf:
		f.Leaves++
	case kindBranch2:
		f.Branch2s++
	case kindBranch3:
		f.Branch3s++
	}
	for _, c := range n.children {
		c.tally(f)
	}
}

// String renders the footprint as a single-line summary.
func (f Footprint) String() string {
	return fmt.Sprintf("%d leaves, %d 2-branches, %d 3-branches, %d bytes",
		f.Leaves, f.Branch2s, f.Branch3s, f.Bytes)
}
