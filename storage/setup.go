// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/meridianfx/tradechain/fault"
)

// CurrentSchemaVersion - on-disk layout version
const CurrentSchemaVersion = 1

// metadata pool key holding the layout version
var versionKey = []byte("schema_version")

// Store - the partitioned physical store
//
// the handle is acquired once at service construction and shared by
// all coordinator operations; two stores over the same backend are
// interchangeable
type Store struct {
	backend  Backend
	log      *logger.L
	Objects  *ObjectPool
	Chains   *PoolHandle
	Metadata *PoolHandle
}

// NewStore - wrap a backend, checking the schema version
//
// an empty store is stamped with the current version; a version
// mismatch refuses to open so a newer layout is never corrupted
func NewStore(backend Backend) (*Store, error) {
	log := logger.New("storage")

	store := &Store{
		backend:  backend,
		log:      log,
		Objects:  NewObjectPool(backend),
		Chains:   NewPool(backend, ChainPrefix),
		Metadata: NewPool(backend, MetadataPrefix),
	}

	versionValue, err := store.Metadata.Get(versionKey)
	if fault.ErrRecordNotFound == err {
		stamp := make([]byte, 8)
		binary.BigEndian.PutUint64(stamp, CurrentSchemaVersion)
		err = store.Metadata.Put(versionKey, stamp)
		if nil != err {
			return nil, err
		}
		log.Infof("stamped new store with schema version: %d", CurrentSchemaVersion)
		return store, nil
	}
	if nil != err {
		return nil, err
	}

	if 8 != len(versionValue) {
		log.Criticalf("corrupt schema version record: %x", versionValue)
		return nil, fault.ErrWrongSchemaVersion
	}

	version := binary.BigEndian.Uint64(versionValue)
	switch {
	case version > CurrentSchemaVersion:
		log.Criticalf("store schema version: %d > current version: %d", version, CurrentSchemaVersion)
		return nil, fault.ErrDatabaseVersionTooNew
	case version < CurrentSchemaVersion:
		log.Criticalf("store schema version: %d < current version: %d", version, CurrentSchemaVersion)
		return nil, fault.ErrDatabaseVersionTooOld
	}

	return store, nil
}

// Open - open or create a file backed store
func Open(path string) (*Store, error) {
	backend, err := OpenLevelDB(path)
	if nil != err {
		return nil, err
	}
	store, err := NewStore(backend)
	if nil != err {
		backend.Close()
		return nil, err
	}
	return store, nil
}

// OpenEphemeral - an in-memory store for tests
func OpenEphemeral() (*Store, error) {
	backend, err := OpenMemory()
	if nil != err {
		return nil, err
	}
	store, err := NewStore(backend)
	if nil != err {
		backend.Close()
		return nil, err
	}
	return store, nil
}

// Backend - the underlying backend, for composing commits
func (store *Store) Backend() Backend {
	return store.backend
}

// Close - release the underlying store
func (store *Store) Close() error {
	return store.backend.Close()
}
