// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intree_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/intree"
)

// tags for the two independent memberships a thing can hold
type primary struct{}
type alternate struct{}

// a value with two embedded links
type thing struct {
	name string
	pri  intree.Link[thing, primary]
	alt  intree.Link[thing, alternate]
}

func priHook(v *thing) *intree.Link[thing, primary] {
	return &v.pri
}

func altHook(v *thing) *intree.Link[thing, alternate] {
	return &v.alt
}

func compareThings(a *thing, b *thing) int {
	return strings.Compare(a.name, b.name)
}

func newTree() *intree.Tree[thing, primary] {
	return intree.New(priHook)
}

// insert one already constructed value; false when the key is
// already present
func insert(tree *intree.Tree[thing, primary], v *thing) bool {
	_, added := tree.FindOrInsert(
		func(candidate *thing) int { return strings.Compare(v.name, candidate.name) },
		func() *thing { return v },
	)
	return added
}

func find(tree *intree.Tree[thing, primary], name string) intree.Iterator[thing, primary] {
	return tree.Find(func(candidate *thing) int {
		return strings.Compare(name, candidate.name)
	})
}

// check both invariant sets, dumping the tree on failure
func checkTree(t *testing.T, tree *intree.Tree[thing, primary]) {
	t.Helper()
	if !tree.CheckLinks() {
		depth := tree.Print(func(v *thing) string { return v.name })
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent links")
	}
	if !tree.CheckBalance(compareThings) {
		depth := tree.Print(func(v *thing) string { return v.name })
		t.Logf("depth: %d", depth)
		t.Fatal("balance invariant broken")
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// build, delete a prefix, verify, delete the remainder, verify empty;
// repeated for every possible split point
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := newTree()
		for _, name := range addList {
			insert(tree, &thing{name: name})
		}

		checkTree(t, tree)

	delete_items:
		for _, name := range addList[:i] {
			if _, ok := alreadyDeleted[name]; ok {
				continue delete_items
			}
			alreadyDeleted[name] = struct{}{}
			dv := tree.Delete(find(tree, name))
			if dv.name != name {
				t.Fatalf("delete returned: %q  expected: %q", dv.name, name)
			}
			checkTree(t, tree)
		}

	delete_remainder:
		for _, name := range addList[i:] {
			if _, ok := alreadyDeleted[name]; ok {
				continue delete_remainder
			}
			alreadyDeleted[name] = struct{}{}
			dv := tree.Delete(find(tree, name))
			if dv.name != name {
				t.Fatalf("delete returned: %q  expected: %q", dv.name, name)
			}
		}
		if !tree.IsEmpty() {
			t.Errorf("remainder: remaining nodes")
			depth := tree.Print(func(v *thing) string { return v.name })
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newTree()
	for _, name := range addList {
		unique[name] = struct{}{}
		insert(tree, &thing{name: name})
	}

	expected := make([]string, 0, len(unique))
	for name := range unique {
		expected = append(expected, name)
	}
	sort.Strings(expected)

	p := tree.First()
	if p == tree.End() {
		t.Fatal("no first item")
	}

	n := 0
	for i := 0; p != tree.End(); i += 1 {
		if p.Value().name != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Value().name, expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if p == tree.End() {
		t.Fatal("no last item")
	}

	n = 0
	for i := len(expected) - 1; p != tree.End(); i -= 1 {
		if p.Value().name != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Value().name, expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// delete remainder
	for _, name := range expected {
		tree.Delete(find(tree, name))
	}

	if !tree.IsEmpty() {
		t.Fatal("remainder: remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// insert 0…30 in interleaved order checking balance at every step
func TestInterleavedInsert(t *testing.T) {

	order := make([]int, 0, 31)
	for i := 1; i < 28; i += 2 {
		order = append(order, i, i-1)
	}
	order = append(order, 30, 29, 28)
	if 31 != len(order) {
		t.Fatalf("bad order length: %d", len(order))
	}

	tree := newTree()
	for _, k := range order {
		added := insert(tree, &thing{name: fmt.Sprintf("%02d", k)})
		if !added {
			t.Fatalf("insert %d: not added", k)
		}
		checkTree(t, tree)
	}

	if 31 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: 31", tree.Count())
	}

	i := 0
	for it := tree.First(); it != tree.End(); it = it.Next() {
		expected := fmt.Sprintf("%02d", i)
		if it.Value().name != expected {
			t.Fatalf("in-order item: actual: %q  expected: %q", it.Value().name, expected)
		}
		i += 1
	}
	if 31 != i {
		t.Fatalf("in-order count: actual: %d  expected: 31", i)
	}
}

// a second insert of an existing key must preserve the first value
func TestNoDuplicates(t *testing.T) {
	tree := newTree()

	first := &thing{name: "0500"}
	if !insert(tree, first) {
		t.Fatal("initial insert failed")
	}

	second := &thing{name: "0500"}
	it, added := tree.FindOrInsert(
		func(candidate *thing) int { return strings.Compare(second.name, candidate.name) },
		func() *thing { return second },
	)
	if added {
		t.Fatal("duplicate insert reported as added")
	}
	if it.Value() != first {
		t.Fatal("duplicate insert did not return the existing value")
	}
	if 1 != tree.Count() {
		t.Fatalf("count changed by duplicate insert: %d", tree.Count())
	}
}

// a constantly negative comparator descends left forever and a
// constantly positive one right forever: both must end at End
func TestFindConstantComparator(t *testing.T) {
	tree := newTree()
	for _, name := range []string{"5", "3", "8", "1", "4", "7", "9"} {
		insert(tree, &thing{name: name})
	}

	alwaysBefore := tree.Find(func(candidate *thing) int { return -1 })
	if alwaysBefore != tree.End() {
		t.Fatal("constantly negative comparator did not return End")
	}

	alwaysAfter := tree.Find(func(candidate *thing) int { return 1 })
	if alwaysAfter != tree.End() {
		t.Fatal("constantly positive comparator did not return End")
	}
}

// a refusing factory on an empty tree must leave it empty
func TestFactoryRefusal(t *testing.T) {
	tree := newTree()

	it, added := tree.FindOrInsert(
		func(candidate *thing) int { return -1 },
		func() *thing { return nil },
	)
	if added {
		t.Fatal("refused insert reported as added")
	}
	if it != tree.End() {
		t.Fatal("refused insert did not return End")
	}
	if !tree.IsEmpty() {
		t.Fatal("refused insert modified the tree")
	}
	if 0 != tree.Count() {
		t.Fatalf("refused insert changed count: %d", tree.Count())
	}
}

// one set of values in two independent indexes: mutating one index
// must not disturb the other
func TestTwoTags(t *testing.T) {

	arena := make([]thing, 5)
	names := []string{"delta", "alpha", "echo", "bravo", "charlie"}
	for i, name := range names {
		arena[i].name = name
	}

	byName := newTree()
	byReverse := intree.New(altHook)

	reverse := func(s string) string {
		b := []byte(s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b)
	}

	for i := range arena {
		v := &arena[i]
		insert(byName, v)
		byReverse.FindOrInsert(
			func(candidate *thing) int {
				return strings.Compare(reverse(v.name), reverse(candidate.name))
			},
			func() *thing { return v },
		)
	}

	if byName.Count() != byReverse.Count() {
		t.Fatalf("index counts differ: %d vs %d", byName.Count(), byReverse.Count())
	}

	// remove "alpha" from the name index only
	byName.Delete(find(byName, "alpha"))

	if 4 != byName.Count() {
		t.Fatalf("name index count: actual: %d  expected: 4", byName.Count())
	}
	if 5 != byReverse.Count() {
		t.Fatalf("reverse index count: actual: %d  expected: 5", byReverse.Count())
	}

	stillThere := byReverse.Find(func(candidate *thing) int {
		return strings.Compare(reverse("alpha"), reverse(candidate.name))
	})
	if stillThere == byReverse.End() {
		t.Fatal("other index lost its membership")
	}
	if "alpha" != stillThere.Value().name {
		t.Fatalf("other index found: %q", stillThere.Value().name)
	}

	// and a value never added to the name index again is re-insertable
	if !insert(byName, &arena[1]) {
		t.Fatal("detached value could not be re-inserted")
	}
	if 5 != byName.Count() {
		t.Fatalf("name index count after re-insert: %d", byName.Count())
	}
}

func TestClear(t *testing.T) {
	arena := make([]thing, 50)
	tree := newTree()
	for i := range arena {
		arena[i].name = fmt.Sprintf("%04d", i*37%100)
		insert(tree, &arena[i])
	}

	tree.Clear()

	if !tree.IsEmpty() {
		t.Fatal("tree not empty after clear")
	}
	if 0 != tree.Count() {
		t.Fatalf("count not zero after clear: %d", tree.Count())
	}

	// every link must be back in the detached state
	for i := range arena {
		if arena[i].pri.IsLinked() {
			t.Fatalf("value %d still linked after clear", i)
		}
	}

	// and the values must be reusable
	for i := range arena {
		insert(tree, &arena[i])
	}
	checkTree(t, tree)
}

// a large random tree, deleted in random order
func TestRandom(t *testing.T) {

	const size = 1000

	tree := newTree()
	names := make([]string, 0, size)
	present := make(map[string]struct{})

	for i := 0; i < size; i += 1 {
		buffer := make([]byte, 8)
		_, err := rand.Read(buffer)
		if nil != err {
			t.Fatalf("random read failed: %s", err)
		}
		name := fmt.Sprintf("%016x", binary.BigEndian.Uint64(buffer))
		if _, ok := present[name]; ok {
			continue
		}
		present[name] = struct{}{}
		names = append(names, name)
		if !insert(tree, &thing{name: name}) {
			t.Fatalf("insert %q: not added", name)
		}
	}

	checkTree(t, tree)

	if len(names) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(names))
	}

	for i, name := range names {
		dv := tree.Delete(find(tree, name))
		if dv.name != name {
			t.Fatalf("delete returned: %q  expected: %q", dv.name, name)
		}
		if 0 == i%97 {
			checkTree(t, tree)
		}
	}

	if !tree.IsEmpty() {
		t.Fatal("remaining nodes")
	}
}

// misuse of Delete must be caught by the diagnostic panic
func TestDeleteMisuse(t *testing.T) {
	tree := newTree()
	insert(tree, &thing{name: "resident"})

	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if nil == recover() {
				t.Fatalf("%s: no panic", name)
			}
		}()
		f()
	}

	expectPanic("end", func() {
		tree.Delete(tree.End())
	})
	expectPanic("zero", func() {
		var zero intree.Iterator[thing, primary]
		tree.Delete(zero)
	})
	expectPanic("foreign", func() {
		other := newTree()
		insert(other, &thing{name: "stranger"})
		tree.Delete(other.First())
	})

	if 1 != tree.Count() {
		t.Fatalf("tree modified by rejected delete: %d", tree.Count())
	}
}
