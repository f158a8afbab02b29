// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

import (
	"github.com/bitmark-inc/intree/fault"
)

// NewFromSlice - build a tree over externally owned values
//
// cmp is a two argument ordering: the sign of a − b.  Values are
// attached one at a time with find-or-insert semantics, so later
// duplicates under cmp are discarded, not overwritten; nil entries
// are skipped like a refusing factory.
func NewFromSlice[T any, ID any](hook func(*T) *Link[T, ID], cmp func(a *T, b *T) int, items []*T) *Tree[T, ID] {
	tree := New[T, ID](hook)
	for _, item := range items {
		if nil == item {
			continue
		}
		item := item
		tree.FindOrInsert(
			func(candidate *T) int { return cmp(item, candidate) },
			func() *T { return item },
		)
	}
	return tree
}

// NewFromRange - build a tree from the [first, last) span of an
// existing index over the same value type
//
// the source index may use any tag, so a second membership can be
// built directly from a walk of a first one.  An invalid pair — a
// zero iterator, or last not reachable from first before the source
// index runs out — is reported through fault as an invalid iterator
// range.
func NewFromRange[T any, ID any, SrcID any](hook func(*T) *Link[T, ID], cmp func(a *T, b *T) int, first Iterator[T, SrcID], last Iterator[T, SrcID]) *Tree[T, ID] {
	if !first.HasValue() || !last.HasValue() {
		fault.Panic(fault.ErrIteratorRangeInvalid.Error())
	}

	// the span must close before the source index is exhausted,
	// otherwise its computed length would be negative
	for it := first; it != last; it = it.Next() {
		if nil == it.link.up {
			fault.Panic(fault.ErrIteratorRangeInvalid.Error())
		}
	}

	tree := New[T, ID](hook)
	for it := first; it != last; it = it.Next() {
		item := it.Value()
		tree.FindOrInsert(
			func(candidate *T) int { return cmp(item, candidate) },
			func() *T { return item },
		)
	}
	return tree
}
