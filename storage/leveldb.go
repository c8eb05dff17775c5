// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/meridianfx/tradechain/fault"
)

// LevelDB - Backend implementation over goleveldb
//
// guarded commits serialise on an internal mutex so the read of the
// guarded key and the batch write form one atomic step; unguarded
// reads run concurrently against the database snapshot
type LevelDB struct {
	sync.Mutex // held across every Commit, guarded or not
	db         *leveldb.DB
}

// OpenLevelDB - open or create a file backed store
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if nil != err {
		return nil, fault.StoreError{Err: err}
	}
	return &LevelDB{db: db}, nil
}

// OpenMemory - a disposable in-memory store for tests
func OpenMemory() (*LevelDB, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, fault.StoreError{Err: err}
	}
	return &LevelDB{db: db}, nil
}

// Get - read one value
func (store *LevelDB) Get(key []byte) ([]byte, error) {
	value, err := store.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrRecordNotFound
	}
	if nil != err {
		return nil, fault.StoreError{Err: err}
	}
	return value, nil
}

// Has - check a key without reading its value
func (store *LevelDB) Has(key []byte) (bool, error) {
	ok, err := store.db.Has(key, nil)
	if nil != err {
		return false, fault.StoreError{Err: err}
	}
	return ok, nil
}

// Commit - atomic multi-put with optional compare-and-swap guard
func (store *LevelDB) Commit(writes []Write, guard *CompareAndSwap) error {
	store.Lock()
	defer store.Unlock()

	batch := new(leveldb.Batch)

	if nil != guard {
		current, err := store.db.Get(guard.Key, nil)
		if leveldb.ErrNotFound == err {
			current = nil
		} else if nil != err {
			return fault.StoreError{Err: err}
		}

		if nil == guard.Expected {
			if nil != current {
				return fault.ErrConcurrentAppend
			}
		} else if !bytes.Equal(guard.Expected, current) {
			return fault.ErrConcurrentAppend
		}

		batch.Put(guard.Key, guard.Value)
	}

	for _, write := range writes {
		batch.Put(write.Key, write.Value)
	}

	err := store.db.Write(batch, nil)
	if nil != err {
		return fault.StoreError{Err: err}
	}
	return nil
}

// Scan - visit all keys under a prefix in order
func (store *LevelDB) Scan(prefix []byte, fn func(key []byte, value []byte) bool) error {
	iter := store.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are only valid until the next step
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		if !fn(key, value) {
			break
		}
	}

	err := iter.Error()
	if nil != err {
		return fault.StoreError{Err: err}
	}
	return nil
}

// Close - release the database
func (store *LevelDB) Close() error {
	err := store.db.Close()
	if nil != err {
		return fault.StoreError{Err: err}
	}
	return nil
}
