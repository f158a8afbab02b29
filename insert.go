// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

import (
	"github.com/bitmark-inc/intree/fault"
)

// FindOrInsert - locate a key or attach a new value at its position
//
// a zero comparison returns the existing position and false without
// calling factory: duplicate keys never coexist and the matched value
// is preserved.  On an empty slot factory is called; a nil result
// refuses the insert and leaves the tree byte-for-byte unchanged,
// returning (End, false).  Otherwise the produced value's link is
// wired in, the count incremented and the insertion path rebalanced,
// returning the new position and true.
func (tree *Tree[T, ID]) FindOrInsert(cmp CompareFunc[T], factory FactoryFunc[T]) (Iterator[T, ID], bool) {
	parent := &tree.origin
	toRight := false
	p := tree.origin.left
	for nil != p {
		s := cmp(p.owner)
		if 0 == s {
			return Iterator[T, ID]{link: p}, false
		}
		parent = p
		toRight = s > 0
		if toRight {
			p = p.right
		} else {
			p = p.left
		}
	}

	value := factory()
	if nil == value {
		return tree.End(), false // refused, not an error
	}

	lk := tree.hook(value)
	if nil == lk {
		fault.Panic("intree: link hook returned nil")
	}
	if nil != lk.up {
		fault.Panic("intree: value is already linked into a tree")
	}

	lk.owner = value
	lk.left = nil
	lk.right = nil
	lk.balance = 0
	lk.up = parent
	if toRight {
		parent.right = lk
	} else {
		parent.left = lk
	}
	tree.count += 1

	tree.grown(lk)

	return Iterator[T, ID]{link: lk}, true
}

// insert: walk back up the insertion path adjusting balance factors
//
// at the first ancestor that leaves {-1,0,+1} a single or double
// rotation restores the pre-insertion height of that sub-tree, so at
// most one rotation happens and propagation then stops; it also stops
// at any ancestor whose balance factor reaches zero
func (tree *Tree[T, ID]) grown(p *Link[T, ID]) {
	for q := p.up; &tree.origin != q; q = p.up {

		if p == q.left {
			// left branch has grown
			if 1 == q.balance {
				q.balance = 0
				return
			}
			if 0 == q.balance {
				q.balance = -1
				p = q
				continue
			}
			// balance == -1, rebalance
			p1 := q.left
			if -1 == p1.balance {
				// single LL rotation
				q.left = p1.right
				if nil != q.left {
					q.left.up = q
				}
				p1.right = q
				hoist(q, p1)

				q.balance = 0
				p1.balance = 0
			} else {
				// double LR rotation
				p2 := p1.right
				p1.right = p2.left
				if nil != p1.right {
					p1.right.up = p1
				}
				p2.left = p1
				q.left = p2.right
				if nil != q.left {
					q.left.up = q
				}
				p2.right = q
				hoist(q, p2)
				p1.up = p2

				if 1 == p2.balance {
					p1.balance = -1
				} else {
					p1.balance = 0
				}
				if -1 == p2.balance {
					q.balance = 1
				} else {
					q.balance = 0
				}
				p2.balance = 0
			}
			return
		}

		// right branch has grown
		if -1 == q.balance {
			q.balance = 0
			return
		}
		if 0 == q.balance {
			q.balance = 1
			p = q
			continue
		}
		// balance == +1, rebalance
		p1 := q.right
		if 1 == p1.balance {
			// single RR rotation
			q.right = p1.left
			if nil != q.right {
				q.right.up = q
			}
			p1.left = q
			hoist(q, p1)

			q.balance = 0
			p1.balance = 0
		} else {
			// double RL rotation
			p2 := p1.left
			p1.left = p2.right
			if nil != p1.left {
				p1.left.up = p1
			}
			p2.right = p1
			q.right = p2.left
			if nil != q.right {
				q.right.up = q
			}
			p2.left = q
			hoist(q, p2)
			p1.up = p2

			if -1 == p2.balance {
				p1.balance = 1
			} else {
				p1.balance = 0
			}
			if 1 == p2.balance {
				q.balance = -1
			} else {
				q.balance = 0
			}
			p2.balance = 0
		}
		return
	}
}
