// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree on
// standard output and return its maximum depth
//
// display renders one stored value; balance factors are shown so an
// unbalanced tree is visible at a glance
func (tree *Tree[T, ID]) Print(display func(*T) string) int {
	return tree.Fprint(os.Stdout, display)
}

// Fprint - as Print but to an explicit writer
func (tree *Tree[T, ID]) Fprint(w io.Writer, display func(*T) string) int {
	return printLink(w, tree.origin.left, "", root, display)
}

// internal print - returns the maximum depth of the sub-tree
func printLink[T any, ID any](w io.Writer, p *Link[T, ID], prefix string, br branch, display func(*T) string) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printLink(w, p.right, prefix+t, right, display)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "*" // the origin
	if nil != p.up.owner {
		up = display(p.up.owner)
	}
	fmt.Fprintf(w, "%q ^%s %+2d\n", display(p.owner), up, p.balance)
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printLink(w, p.left, prefix+t, left, display)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
