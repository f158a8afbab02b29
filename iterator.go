// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

// Iterator - a reference to one position of a tree
//
// the zero Iterator references nothing: HasValue is false, Next and
// Prev return it unchanged and it never compares equal to any
// position a tree hands out.  Iterators compare with == by link
// identity.  Any structural mutation of the tree invalidates all
// live iterators except the one returned by the mutating call.
type Iterator[T any, ID any] struct {
	link *Link[T, ID]
}

// HasValue - false only for the zero iterator
//
// note that End has a value: it is a valid, exhausted position
func (it Iterator[T, ID]) HasValue() bool {
	return nil != it.link
}

// Value - the value stored at this position
//
// the result aliases the caller-owned value, it is never a copy; nil
// at End and for the zero iterator
func (it Iterator[T, ID]) Value() *T {
	if nil == it.link {
		return nil
	}
	return it.link.owner
}

// Next - the position with the next highest key
//
// a pure link walk: descend to the leftmost node of the right
// sub-tree when there is one, otherwise climb while the node is a
// right child.  Next of End is End.
func (it Iterator[T, ID]) Next() Iterator[T, ID] {
	p := it.link
	if nil == p || nil == p.up {
		return it // zero iterator, or already at the origin
	}
	if nil != p.right {
		return Iterator[T, ID]{link: firstLink(p.right)}
	}
	for p == p.up.right {
		p = p.up
	}
	// the root is the left child of the origin, so the climb always
	// terminates and yields the origin once the walk is exhausted
	return Iterator[T, ID]{link: p.up}
}

// Prev - the position with the next lowest key
//
// symmetric to Next; Prev of End is the highest position, so End can
// be decremented to reach the last value.  Prev of First is End.
func (it Iterator[T, ID]) Prev() Iterator[T, ID] {
	p := it.link
	if nil == p {
		return it
	}
	if nil == p.up {
		// at the origin: step down to the maximum
		if nil == p.left {
			return it // empty tree
		}
		return Iterator[T, ID]{link: lastLink(p.left)}
	}
	if nil != p.left {
		return Iterator[T, ID]{link: lastLink(p.left)}
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	if nil == p.up {
		return Iterator[T, ID]{link: p} // climbed off the first value
	}
	return Iterator[T, ID]{link: p.up}
}

// BalanceFactor - the stored height difference at this position
//
// right sub-tree height minus left sub-tree height; zero at End and
// for the zero iterator
func (it Iterator[T, ID]) BalanceFactor() int {
	if nil == it.link {
		return 0
	}
	return it.link.balance
}

// Child - descend to the left (false) or right (true) child
//
// the zero iterator when no such child exists; Child of End descends
// into the root on the left side
func (it Iterator[T, ID]) Child(right bool) Iterator[T, ID] {
	if nil == it.link {
		return it
	}
	if right {
		return Iterator[T, ID]{link: it.link.right}
	}
	return Iterator[T, ID]{link: it.link.left}
}

// Parent - climb one level; End from the root, the zero iterator
// from End
func (it Iterator[T, ID]) Parent() Iterator[T, ID] {
	if nil == it.link {
		return it
	}
	return Iterator[T, ID]{link: it.link.up}
}
