// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/intree"
	"github.com/bitmark-inc/intree/fault"
)

// tags for the two memberships of an entry
type byName struct{}
type byAge struct{}

// Entry - one directory record
//
// the links give it simultaneous membership of the name and the age
// index; an Entry must not be copied while either link is attached
type Entry struct {
	Name     string
	Address  string
	LastSeen time.Time

	nameLink intree.Link[Entry, byName]
	ageLink  intree.Link[Entry, byAge]
}

// Directory - a bounded set of entries indexed by name and by age
type Directory struct {
	log   *logger.L
	arena []Entry
	free  []*Entry
	names *intree.Tree[Entry, byName]
	ages  *intree.Tree[Entry, byAge]
}

// New - create a directory holding at most limit entries
func New(log *logger.L, limit int) *Directory {
	d := &Directory{
		log:   log,
		arena: make([]Entry, limit),
		free:  make([]*Entry, 0, limit),
		names: intree.New(func(e *Entry) *intree.Link[Entry, byName] { return &e.nameLink }),
		ages:  intree.New(func(e *Entry) *intree.Link[Entry, byAge] { return &e.ageLink }),
	}
	for i := limit - 1; i >= 0; i -= 1 {
		d.free = append(d.free, &d.arena[i])
	}
	return d
}

// Count - number of live entries
func (d *Directory) Count() int {
	return d.names.Count()
}

// Capacity - the fixed arena size
func (d *Directory) Capacity() int {
	return len(d.arena)
}

// name ordering for the lookup index
func compareName(name string, candidate *Entry) int {
	return strings.Compare(name, candidate.Name)
}

// age ordering: last-seen time, then name to break ties so the
// ordering stays a strict total order
func compareAge(seen time.Time, name string, candidate *Entry) int {
	if seen.Before(candidate.LastSeen) {
		return -1
	}
	if seen.After(candidate.LastSeen) {
		return 1
	}
	return strings.Compare(name, candidate.Name)
}

// Add - insert a new entry or refresh an existing one
//
// returns true only when a new entry was created; a full directory
// drops the addition (the tree factory abstains) and returns false
// with no error
func (d *Directory) Add(name string, address string, seen time.Time) (bool, error) {
	if "" == name {
		return false, fault.ErrEntryNameIsRequired
	}

	it, added := d.names.FindOrInsert(
		func(candidate *Entry) int { return compareName(name, candidate) },
		func() *Entry {
			n := len(d.free)
			if 0 == n {
				return nil
			}
			e := d.free[n-1]
			d.free = d.free[:n-1]
			*e = Entry{
				Name:     name,
				Address:  address,
				LastSeen: seen,
			}
			return e
		},
	)

	if !added {
		if it == d.names.End() {
			d.log.Warnf("full: dropped: %q", name)
			return false, nil
		}
		// refresh the existing entry in place
		e := it.Value()
		e.Address = address
		d.reseat(e, seen)
		return false, nil
	}

	e := it.Value()
	d.ages.FindOrInsert(
		func(candidate *Entry) int { return compareAge(seen, name, candidate) },
		func() *Entry { return e },
	)
	d.log.Infof("added: %q at %q", name, address)
	return true, nil
}

// Lookup - fetch an entry by name; nil when absent
func (d *Directory) Lookup(name string) *Entry {
	it := d.names.Find(func(candidate *Entry) int {
		return compareName(name, candidate)
	})
	if it == d.names.End() {
		return nil
	}
	return it.Value()
}

// Touch - record that a named entry was just seen
func (d *Directory) Touch(name string, seen time.Time) error {
	e := d.Lookup(name)
	if nil == e {
		return fault.ErrEntryNotFound
	}
	d.reseat(e, seen)
	return nil
}

// Remove - drop a named entry from both indexes
func (d *Directory) Remove(name string) error {
	e := d.Lookup(name)
	if nil == e {
		return fault.ErrEntryNotFound
	}
	d.remove(e)
	return nil
}

// Expire - drop every entry last seen before the cutoff
//
// walks the age index from its oldest end and stops at the first
// entry that is recent enough; returns the number dropped
func (d *Directory) Expire(cutoff time.Time) int {
	n := 0
	for {
		it := d.ages.First()
		if it == d.ages.End() {
			break
		}
		e := it.Value()
		if !e.LastSeen.Before(cutoff) {
			break
		}
		d.remove(e)
		n += 1
	}
	if n > 0 {
		d.log.Infof("expired: %d entries", n)
	}
	return n
}

// Oldest - the entry not seen for the longest time; nil when empty
func (d *Directory) Oldest() *Entry {
	it := d.ages.First()
	if it == d.ages.End() {
		return nil
	}
	return it.Value()
}

// internal: position of an entry in the age index
func (d *Directory) ageOf(e *Entry) intree.Iterator[Entry, byAge] {
	return d.ages.Find(func(candidate *Entry) int {
		return compareAge(e.LastSeen, e.Name, candidate)
	})
}

// internal: move an entry to its new age position; the key observed
// by the age comparator only changes while the entry is detached
func (d *Directory) reseat(e *Entry, seen time.Time) {
	if !seen.After(e.LastSeen) {
		return
	}
	d.ages.Delete(d.ageOf(e))
	e.LastSeen = seen
	d.ages.FindOrInsert(
		func(candidate *Entry) int { return compareAge(seen, e.Name, candidate) },
		func() *Entry { return e },
	)
	d.log.Debugf("touched: %q", e.Name)
}

// internal: detach from both indexes and recycle the arena slot
func (d *Directory) remove(e *Entry) {
	d.ages.Delete(d.ageOf(e))
	d.names.Delete(d.names.Find(func(candidate *Entry) int {
		return compareName(e.Name, candidate)
	}))
	d.log.Debugf("removed: %q", e.Name)
	*e = Entry{}
	d.free = append(d.free, e)
}
