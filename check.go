// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

import (
	"fmt"
)

// CheckLinks - verify parent pointers, owner back references, the
// origin invariants and the maintained count
//
// prints the first failure found; intended for tests and the dump
// tool, not for production paths
func (tree *Tree[T, ID]) CheckLinks() bool {
	o := &tree.origin
	if nil != o.up || nil != o.right || nil != o.owner {
		fmt.Printf("origin corrupt: up: %p  right: %p  owner: %p\n", o.up, o.right, o.owner)
		return false
	}
	n := countLinks(o.left, o)
	if n < 0 {
		return false
	}
	if n != tree.count {
		fmt.Printf("count mismatch: counted: %d  stored: %d\n", n, tree.count)
		return false
	}
	return true
}

// internal: consistency scan, returns the node count or -1 on failure
func countLinks[T any, ID any](p *Link[T, ID], up *Link[T, ID]) int {
	if nil == p {
		return 0
	}
	if p.up != up {
		fmt.Printf("fail at link: %p   actual up: %p  expected: %p\n", p, p.up, up)
		return -1
	}
	if nil == p.owner {
		fmt.Printf("fail at link: %p   no owner\n", p)
		return -1
	}
	l := countLinks(p.left, p)
	if l < 0 {
		return -1
	}
	r := countLinks(p.right, p)
	if r < 0 {
		return -1
	}
	return l + r + 1
}

// CheckBalance - verify the AVL invariants
//
// recomputes every sub-tree height, checking that each stored balance
// factor equals the live right−left difference and stays inside
// {-1,0,+1}, and that an in-order walk is strictly increasing under
// cmp
func (tree *Tree[T, ID]) CheckBalance(cmp func(a *T, b *T) int) bool {
	ok := true
	checkHeight(tree.origin.left, &ok)
	if !ok {
		return false
	}

	var prev *T
	for it := tree.First(); it != tree.End(); it = it.Next() {
		v := it.Value()
		if nil != prev && cmp(prev, v) >= 0 {
			fmt.Printf("order fail at value: %p\n", v)
			return false
		}
		prev = v
	}
	return true
}

// internal: height of a sub-tree, flagging balance violations
func checkHeight[T any, ID any](p *Link[T, ID], ok *bool) int {
	if nil == p {
		return 0
	}
	hl := checkHeight(p.left, ok)
	hr := checkHeight(p.right, ok)
	b := hr - hl
	if b < -1 || b > 1 || b != p.balance {
		fmt.Printf("balance fail at link: %p   stored: %+d  actual: %+d\n", p, p.balance, b)
		*ok = false
	}
	if hr > hl {
		return 1 + hr
	}
	return 1 + hl
}
