// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and the panic channel
//
// Provides a single instance of each error to allow easy comparison
// without having to resort to partial string matches, plus the
// logging panic used to report programmer misuse of a tree
// (deleting end or a foreign iterator, an invalid iterator range)
package fault
