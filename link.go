// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

// Link - the structural state for one tree membership, embedded
// inside the stored value
//
// The tag type parameter has no runtime representation: it only makes
// Link[T, A] and Link[T, B] distinct types so that a value can embed
// one field per membership and each tree instance is bound to exactly
// one of them at compile time.
//
// The zero Link is the detached state; no initialisation is needed
// and there is nothing to tear down.  The tree resets all fields when
// a value is attached and again when it is detached, so a previously
// removed value can be reused freely.
type Link[T any, ID any] struct {
	up      *Link[T, ID] // parent node, nil only while detached and on the origin
	left    *Link[T, ID] // left sub-tree
	right   *Link[T, ID] // right sub-tree
	owner   *T           // the value this link is embedded in
	balance int          // -1, 0, +1
}

// IsLinked - true while the link is attached to some tree
func (lk *Link[T, ID]) IsLinked() bool {
	return nil != lk.up
}
