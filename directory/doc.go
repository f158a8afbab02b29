// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - a bounded peer directory over two intrusive
// indexes
//
// Each entry carries two links: one membership ordered by name for
// lookup and one ordered by last-seen time for expiry.  Entries live
// in a fixed arena sized at creation, so a full directory refuses
// further additions instead of allocating; refusal is a normal
// outcome, not an error.
//
// Not thread safe: callers needing concurrent access must serialise
// externally, as with the underlying trees.
package directory
