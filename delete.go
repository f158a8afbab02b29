// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

import (
	"github.com/bitmark-inc/intree/fault"
)

// Delete - detach the value referenced by an iterator
//
// re-links the value's sub-trees (splicing in the in-order successor
// when both children are present), decrements the count, rebalances
// from the physical removal point up to the origin and returns the
// detached value with its link reset to the zero state.
//
// Deleting End, the zero iterator or an iterator belonging to a
// different tree is a programmer error reported through fault
func (tree *Tree[T, ID]) Delete(it Iterator[T, ID]) *T {
	lk := it.link
	if nil == lk {
		fault.Panic("intree: delete of the zero iterator")
	}
	if nil == lk.up {
		fault.Panic("intree: delete of the end iterator")
	}
	if !tree.contains(lk) {
		fault.Panic("intree: delete of a foreign iterator")
	}

	value := lk.owner

	// q is where the physical removal happens; fromLeft records which
	// branch of q loses height
	q := lk.up
	fromLeft := lk == q.left

	switch {
	case nil == lk.right:
		if nil != lk.left {
			lk.left.up = q
		}
		if fromLeft {
			q.left = lk.left
		} else {
			q.right = lk.left
		}

	case nil == lk.left:
		lk.right.up = q
		if fromLeft {
			q.left = lk.right
		} else {
			q.right = lk.right
		}

	default:
		// two children: splice the in-order successor into this position
		s := firstLink(lk.right)
		if s.up == lk {
			// the successor is the immediate right child and keeps its
			// own right sub-tree; its right branch is the one that
			// shrank once it moves up
			q = s
			fromLeft = false
		} else {
			q = s.up
			fromLeft = true
			q.left = s.right
			if nil != s.right {
				s.right.up = q
			}
			s.right = lk.right
			s.right.up = s
		}
		s.left = lk.left
		s.left.up = s
		s.balance = lk.balance
		hoist(lk, s)
	}

	lk.up = nil
	lk.left = nil
	lk.right = nil
	lk.owner = nil
	lk.balance = 0
	tree.count -= 1

	tree.shrunk(q, fromLeft)

	return value
}

// Clear - detach every value
//
// an iterative post-order unlink: every reached link is reset to the
// zero state, the values themselves are untouched
func (tree *Tree[T, ID]) Clear() {
	p := tree.origin.left
	for nil != p {
		if nil != p.left {
			p = p.left
		} else if nil != p.right {
			p = p.right
		} else {
			up := p.up
			if p == up.left {
				up.left = nil
			} else {
				up.right = nil
			}
			p.up = nil
			p.owner = nil
			p.balance = 0
			if up == &tree.origin {
				break
			}
			p = up
		}
	}
	tree.count = 0
}

// delete: propagate a height decrease at q upward toward the origin
//
// unlike insertion a rotation here does not always restore the old
// sub-tree height, so up to one rotation per level may be needed
func (tree *Tree[T, ID]) shrunk(q *Link[T, ID], fromLeft bool) {
	for &tree.origin != q {
		var h bool
		if fromLeft {
			q, h = tree.balanceLeft(q)
		} else {
			q, h = tree.balanceRight(q)
		}
		if !h {
			return
		}
		fromLeft = q == q.up.left
		q = q.up
	}
}

// delete: tree balancer, the left branch of p has shrunk
//
// returns the new sub-tree root (already re-linked under the parent)
// and whether the whole sub-tree lost height
func (tree *Tree[T, ID]) balanceLeft(p *Link[T, ID]) (*Link[T, ID], bool) {
	if -1 == p.balance {
		p.balance = 0
		return p, true
	}
	if 0 == p.balance {
		p.balance = 1
		return p, false
	}

	// balance == +1, rebalance
	p1 := p.right
	if p1.balance >= 0 {
		// single RR rotation
		p.right = p1.left
		if nil != p.right {
			p.right.up = p
		}
		p1.left = p
		hoist(p, p1)

		if 0 == p1.balance {
			p.balance = 1
			p1.balance = -1
			return p1, false
		}
		p.balance = 0
		p1.balance = 0
		return p1, true
	}

	// double RL rotation
	p2 := p1.left
	p1.left = p2.right
	if nil != p1.left {
		p1.left.up = p1
	}
	p2.right = p1
	p.right = p2.left
	if nil != p.right {
		p.right.up = p
	}
	p2.left = p
	hoist(p, p2)
	p1.up = p2

	if 1 == p2.balance {
		p.balance = -1
	} else {
		p.balance = 0
	}
	if -1 == p2.balance {
		p1.balance = 1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2, true
}

// delete: tree balancer, the right branch of p has shrunk
func (tree *Tree[T, ID]) balanceRight(p *Link[T, ID]) (*Link[T, ID], bool) {
	if 1 == p.balance {
		p.balance = 0
		return p, true
	}
	if 0 == p.balance {
		p.balance = -1
		return p, false
	}

	// balance == -1, rebalance
	p1 := p.left
	if p1.balance <= 0 {
		// single LL rotation
		p.left = p1.right
		if nil != p.left {
			p.left.up = p
		}
		p1.right = p
		hoist(p, p1)

		if 0 == p1.balance {
			p.balance = -1
			p1.balance = 1
			return p1, false
		}
		p.balance = 0
		p1.balance = 0
		return p1, true
	}

	// double LR rotation
	p2 := p1.right
	p1.right = p2.left
	if nil != p1.right {
		p1.right.up = p1
	}
	p2.left = p1
	p.left = p2.right
	if nil != p.left {
		p.left.up = p
	}
	p2.right = p
	hoist(p, p2)
	p1.up = p2

	if -1 == p2.balance {
		p.balance = 1
	} else {
		p.balance = 0
	}
	if 1 == p2.balance {
		p1.balance = -1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2, true
}
