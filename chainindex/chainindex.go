// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainindex - the per-trade ordered list of witness hashes
//
// the index row is the serialisation point for a single trade: an
// append only succeeds when the list still has the length the caller
// observed, which implements optimistic concurrency control without
// any external mutex
package chainindex

import (
	"github.com/meridianfx/tradechain/digest"
	"github.com/meridianfx/tradechain/fault"
	"github.com/meridianfx/tradechain/identifier"
	"github.com/meridianfx/tradechain/storage"
)

// Index - maps trade id to its ordered witness hash list
type Index struct {
	pool    *storage.PoolHandle
	backend storage.Backend
}

// New - bind the chain prefix of a store
func New(store *storage.Store) *Index {
	return &Index{
		pool:    store.Chains,
		backend: store.Backend(),
	}
}

// the stored value is the plain concatenation of 32 byte digests

func encodeList(hashes []digest.Digest) []byte {
	buffer := make([]byte, 0, len(hashes)*digest.Length)
	for _, h := range hashes {
		buffer = append(buffer, h[:]...)
	}
	return buffer
}

func decodeList(buffer []byte) ([]digest.Digest, error) {
	if 0 != len(buffer)%digest.Length {
		return nil, fault.ErrCorruptChainIndex
	}
	hashes := make([]digest.Digest, len(buffer)/digest.Length)
	for i := range hashes {
		copy(hashes[i][:], buffer[i*digest.Length:])
	}
	return hashes, nil
}

// Load - the full ordered hash list for one trade
func (index *Index) Load(tradeId identifier.TradeId) ([]digest.Digest, error) {
	buffer, err := index.pool.Get(tradeId.PayloadBytes())
	if fault.ErrRecordNotFound == err {
		return nil, fault.ErrUnknownTrade
	}
	if nil != err {
		return nil, err
	}
	return decodeList(buffer)
}

// Has - check a chain exists for the trade id
func (index *Index) Has(tradeId identifier.TradeId) (bool, error) {
	return index.pool.Has(tradeId.PayloadBytes())
}

// Append - optimistic append of one witness hash
//
// succeeds only if the list length still equals expectedLength at
// commit time, otherwise fails with fault.ErrConcurrentAppend; the
// extra writes commit in the same atomic batch so a witness can
// never appear without its referenced objects
func (index *Index) Append(tradeId identifier.TradeId, witnessHash digest.Digest, expectedLength int, extra []storage.Write) error {
	key := tradeId.PayloadBytes()

	current, err := index.pool.Get(key)
	if fault.ErrRecordNotFound == err {
		current = nil
	} else if nil != err {
		return err
	}

	if 0 != len(current)%digest.Length {
		return fault.ErrCorruptChainIndex
	}
	if len(current)/digest.Length != expectedLength {
		return fault.ErrConcurrentAppend
	}

	newValue := make([]byte, 0, len(current)+digest.Length)
	newValue = append(newValue, current...)
	newValue = append(newValue, witnessHash[:]...)

	guard := index.pool.Guard(key, current, newValue)
	return index.backend.Commit(extra, guard)
}

// Trades - enumerate every trade id with a chain
func (index *Index) Trades() ([]identifier.TradeId, error) {
	trades := []identifier.TradeId{}
	var scanError error

	err := index.pool.Scan(func(key []byte, value []byte) bool {
		id, err := identifier.FromPayload(identifier.TradePrefix, key)
		if nil != err {
			scanError = fault.ErrCorruptChainIndex
			return false
		}
		trades = append(trades, identifier.TradeId{Identifier: id})
		return true
	})
	if nil != err {
		return nil, err
	}
	if nil != scanError {
		return nil, scanError
	}
	return trades, nil
}
