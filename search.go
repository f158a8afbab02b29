// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

// Find - locate a specific key
//
// descends from the root following the sign of cmp; returns End when
// no value matches
func (tree *Tree[T, ID]) Find(cmp CompareFunc[T]) Iterator[T, ID] {
	p := tree.origin.left
	for nil != p {
		s := cmp(p.owner)
		switch {
		case s < 0:
			p = p.left
		case s > 0:
			p = p.right
		default:
			return Iterator[T, ID]{link: p}
		}
	}
	return tree.End()
}

// First - iterator to the value with the lowest key, or End on an
// empty tree
func (tree *Tree[T, ID]) First() Iterator[T, ID] {
	p := tree.origin.left
	if nil == p {
		return tree.End()
	}
	return Iterator[T, ID]{link: firstLink(p)}
}

// Last - iterator to the value with the highest key, or End on an
// empty tree
func (tree *Tree[T, ID]) Last() Iterator[T, ID] {
	p := tree.origin.left
	if nil == p {
		return tree.End()
	}
	return Iterator[T, ID]{link: lastLink(p)}
}

// internal: lowest link in a non-empty sub-tree
func firstLink[T any, ID any](p *Link[T, ID]) *Link[T, ID] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest link in a non-empty sub-tree
func lastLink[T any, ID any](p *Link[T, ID]) *Link[T, ID] {
	for nil != p.right {
		p = p.right
	}
	return p
}
