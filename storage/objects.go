// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/meridianfx/tradechain/digest"
	"github.com/meridianfx/tradechain/fault"
)

// ObjectPool - the content addressed object store
//
// keys are the SHA-256 digest of the stored bytes, so a put is
// idempotent; the same digest with differing bytes cannot occur with
// an honest encoder but is detected and refused
type ObjectPool struct {
	pool *PoolHandle
}

// NewObjectPool - bind the object prefix of a backend
func NewObjectPool(backend Backend) *ObjectPool {
	return &ObjectPool{
		pool: NewPool(backend, ObjectPrefix),
	}
}

// Get - read the bytes of one object
func (objects *ObjectPool) Get(d digest.Digest) ([]byte, error) {
	return objects.pool.Get(d[:])
}

// Has - check an object exists
func (objects *ObjectPool) Has(d digest.Digest) (bool, error) {
	return objects.pool.Has(d[:])
}

// Stage - idempotent insert, deferred to a later Commit
//
// returns no writes if the object is already stored with identical
// bytes; fault.ErrHashCollision if stored with different bytes
func (objects *ObjectPool) Stage(d digest.Digest, data []byte) ([]Write, error) {
	existing, err := objects.Get(d)
	if fault.ErrRecordNotFound == err {
		return []Write{objects.pool.StagedPut(d[:], data)}, nil
	}
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(existing, data) {
		return nil, fault.ErrHashCollision
	}
	return nil, nil
}

// Put - immediate idempotent insert of a single object
func (objects *ObjectPool) Put(d digest.Digest, data []byte) error {
	writes, err := objects.Stage(d, data)
	if nil != err {
		return err
	}
	if 0 == len(writes) {
		return nil
	}
	return objects.pool.backend.Commit(writes, nil)
}
