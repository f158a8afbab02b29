// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

import (
	"github.com/bitmark-inc/intree/fault"
)

// CompareFunc - three way comparison of a sought key against a
// candidate value already in the tree
//
// must return the sign of sought − candidate: negative to descend
// left, positive to descend right, zero on a match.  The ordering
// must be a strict total order and stay consistent for the duration
// of one structural operation.
type CompareFunc[T any] func(candidate *T) int

// FactoryFunc - produce the value to attach when a key is absent
//
// returning nil abstains: the tree stays untouched and the insert is
// reported as refused, which is a normal outcome and not an error
type FactoryFunc[T any] func() *T

// Tree - holds the origin link of one intrusive index
//
// the origin is the sentinel above the root: its left slot is the
// root node and its nil parent slot marks the end of traversal.  A
// Tree must not be copied after first use since attached links point
// back into it.
type Tree[T any, ID any] struct {
	origin Link[T, ID]
	hook   func(*T) *Link[T, ID]
	count  int
}

// New - create an initially empty tree
//
// hook extracts the embedded link for this tree's tag from a value;
// a nil hook is a programmer error
func New[T any, ID any](hook func(*T) *Link[T, ID]) *Tree[T, ID] {
	if nil == hook {
		fault.Panic("intree: nil link hook")
	}
	return &Tree[T, ID]{
		hook:  hook,
		count: 0,
	}
}

// IsEmpty - true if tree contains no values
func (tree *Tree[T, ID]) IsEmpty() bool {
	return nil == tree.origin.left
}

// Count - number of values currently in the tree
func (tree *Tree[T, ID]) Count() int {
	return tree.count
}

// End - the one-past-the-last position
//
// also returned by Find for a missing key and by First/Last on an
// empty tree; it never aliases a stored value
func (tree *Tree[T, ID]) End() Iterator[T, ID] {
	return Iterator[T, ID]{link: &tree.origin}
}

// internal: re-link the new root of a rotated sub-tree under the old
// root's parent; the origin needs no special case as the whole tree
// hangs off its left slot like any other child
func hoist[T any, ID any](old *Link[T, ID], top *Link[T, ID]) {
	up := old.up
	top.up = up
	if old == up.left {
		up.left = top
	} else {
		up.right = top
	}
	old.up = top
}

// internal: climb to the owning origin
func (tree *Tree[T, ID]) contains(lk *Link[T, ID]) bool {
	p := lk
	for nil != p.up {
		p = p.up
	}
	return p == &tree.origin
}
