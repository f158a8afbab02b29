// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/intree/fault"
)

// on-file form of one entry
type storeEntry struct {
	Name     string
	Address  string
	LastSeen uint64
}

// Backup - write every entry to a JSON snapshot file
//
// an empty directory writes nothing and leaves any previous snapshot
// in place
func (d *Directory) Backup(fileName string) error {
	if 0 == d.Count() {
		return nil
	}

	list := make([]storeEntry, 0, d.Count())
	for it := d.names.First(); it != d.names.End(); it = it.Next() {
		e := it.Value()
		list = append(list, storeEntry{
			Name:     e.Name,
			Address:  e.Address,
			LastSeen: uint64(e.LastSeen.Unix()),
		})
	}

	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(list); nil != err {
		return err
	}
	d.log.Infof("backup: %d entries to %q", len(list), fileName)
	return nil
}

// Restore - merge entries from a snapshot written by Backup
//
// a missing file is not an error; entries beyond the arena capacity
// are dropped the same way live additions are
func (d *Directory) Restore(fileName string) error {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var list []storeEntry
	if err := json.Unmarshal(data, &list); nil != err {
		d.log.Errorf("restore: %q: %s", fileName, err)
		return fault.ErrBackupFileCorrupt
	}

	n := 0
	for _, s := range list {
		added, err := d.Add(s.Name, s.Address, time.Unix(int64(s.LastSeen), 0))
		if nil != err {
			return err
		}
		if added {
			n += 1
		}
	}
	d.log.Infof("restore: %d entries from %q", n, fileName)
	return nil
}
