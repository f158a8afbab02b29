// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package intree - an intrusive AVL balanced tree with parent
// pointers to allow iteration through the nodes
//
// The tree does not allocate nodes: all structural state lives in a
// Link field embedded inside the stored value, so find and insert
// never touch the heap.  One value may carry several links, each with
// a distinct tag type, and so belong to that many independent trees
// at the same time.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Values must not be copied or moved while any of their links is
// attached to a tree, as link identity is the address of the value.
// The tree never owns a value: detaching only resets the link and
// hands the value back to the caller.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
package intree
