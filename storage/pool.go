// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// one byte key prefixes partitioning the physical store
const (
	ObjectPrefix   byte = 0x01 // content hash -> encoded object
	ChainPrefix    byte = 0x02 // trade id -> list of witness hashes
	MetadataPrefix byte = 0x03 // store level metadata
)

// PoolHandle - access to one prefix partition of the store
type PoolHandle struct {
	prefix  byte
	backend Backend
}

// NewPool - bind a prefix to a backend
func NewPool(backend Backend, prefix byte) *PoolHandle {
	return &PoolHandle{
		prefix:  prefix,
		backend: backend,
	}
}

// prepend the prefix onto the key
func (pool *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = pool.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
func (pool *PoolHandle) Get(key []byte) ([]byte, error) {
	return pool.backend.Get(pool.prefixKey(key))
}

// Has - check if a key exists
func (pool *PoolHandle) Has(key []byte) (bool, error) {
	return pool.backend.Has(pool.prefixKey(key))
}

// StagedPut - a Write for this pool, for inclusion in a Commit
func (pool *PoolHandle) StagedPut(key []byte, value []byte) Write {
	return Write{
		Key:   pool.prefixKey(key),
		Value: value,
	}
}

// Guard - a CompareAndSwap for one key of this pool
func (pool *PoolHandle) Guard(key []byte, expected []byte, value []byte) *CompareAndSwap {
	return &CompareAndSwap{
		Key:      pool.prefixKey(key),
		Expected: expected,
		Value:    value,
	}
}

// Put - immediate unguarded write of a single key
func (pool *PoolHandle) Put(key []byte, value []byte) error {
	return pool.backend.Commit([]Write{pool.StagedPut(key, value)}, nil)
}

// Scan - visit all keys of this pool in order, prefix stripped
func (pool *PoolHandle) Scan(fn func(key []byte, value []byte) bool) error {
	return pool.backend.Scan([]byte{pool.prefix}, func(key []byte, value []byte) bool {
		return fn(key[1:], value)
	})
}
