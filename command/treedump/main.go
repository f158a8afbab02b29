// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/intree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// the single index tag used by the tool
type byKey struct{}

// one key read from the input
type record struct {
	key  string
	link intree.Link[record, byKey]
}

func hook(r *record) *intree.Link[record, byKey] {
	return &r.link
}

func compare(a *record, b *record) int {
	return strings.Compare(a.key, b.key)
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'c'},
		{Long: "dot", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--check] [--dot] [key-file]", program)
	}

	// ------------------
	// start of real main
	// ------------------

	in := os.Stdin
	if len(arguments) > 0 {
		f, err := os.Open(arguments[0])
		if err != nil {
			exitwithstatus.Message("%s: open error: %s", program, err)
		}
		defer f.Close()
		in = f
	}

	items, err := readKeys(in)
	if err != nil {
		exitwithstatus.Message("%s: read error: %s", program, err)
	}

	tree := intree.NewFromSlice(hook, compare, items)

	if len(options["verbose"]) > 0 {
		fmt.Printf("keys read: %d  unique: %d\n", len(items), tree.Count())
	}

	if len(options["check"]) > 0 {
		if !tree.CheckLinks() {
			exitwithstatus.Message("%s: link check failed", program)
		}
		if !tree.CheckBalance(compare) {
			exitwithstatus.Message("%s: balance check failed", program)
		}
		if len(options["verbose"]) > 0 {
			fmt.Printf("checks passed\n")
		}
	}

	if len(options["dot"]) > 0 {
		dumpDot(os.Stdout, tree)
		return
	}

	depth := tree.Print(func(r *record) string { return r.key })
	if len(options["verbose"]) > 0 {
		fmt.Printf("depth: %d\n", depth)
	}
}

// read one key per line, skipping blanks
func readKeys(in io.Reader) ([]*record, error) {
	items := make([]*record, 0, 256)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if "" == key {
			continue
		}
		items = append(items, &record{key: key})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return items, nil
}

// emit the tree as a graphviz digraph, balance factors on the labels
func dumpDot(w io.Writer, tree *intree.Tree[record, byKey]) {
	fmt.Fprintf(w, "digraph tree {\n")
	fmt.Fprintf(w, "  node [shape=record];\n")
	root := tree.End().Child(false)
	if root.HasValue() {
		dotNode(w, root)
	}
	fmt.Fprintf(w, "}\n")
}

func dotNode(w io.Writer, it intree.Iterator[record, byKey]) {
	key := it.Value().key
	fmt.Fprintf(w, "  %q [label=\"{%s|%+d}\"];\n", key, key, it.BalanceFactor())

	for _, right := range []bool{false, true} {
		child := it.Child(right)
		if !child.HasValue() {
			continue
		}
		side := "l"
		if right {
			side = "r"
		}
		fmt.Fprintf(w, "  %q -> %q [label=%q];\n", key, child.Value().key, side)
		dotNode(w, child)
	}
}
