// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coordinator - the service surface over the trade store
//
// every action is: load the chain, derive the current state, check
// the proposed action, then append exactly one witness under the
// chain index's optimistic guard; a lost race reloads and retries up
// to the configured limit, so concurrent actors serialise per trade
// without any lock
//
// decoded records are cached by content address; a content addressed
// record can never change, so the cache needs no invalidation beyond
// expiry
package coordinator

import (
	"time"

	"github.com/bitmark-inc/logger"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/chainindex"
	"github.com/meridianfx/tradechain/derivation"
	"github.com/meridianfx/tradechain/digest"
	"github.com/meridianfx/tradechain/fault"
	"github.com/meridianfx/tradechain/identifier"
	"github.com/meridianfx/tradechain/storage"
	"github.com/meridianfx/tradechain/traderecord"
)

// defaults applied by New for zero valued options
const (
	DefaultRetryLimit  = 8
	DefaultCacheExpiry = time.Minute
)

// cache key prefixes keep the two record types apart
const (
	witnessKeyPrefix = "witness:"
	detailsKeyPrefix = "details:"
)

// Options - tuning knobs for a coordinator
type Options struct {
	RetryLimit  int           // attempts per action under contention
	CacheExpiry time.Duration // lifetime of decoded record cache entries
}

// Coordinator - the single entry point for trade actions and queries
type Coordinator struct {
	store      *storage.Store
	index      *chainindex.Index
	cache      *gocache.Cache
	log        *logger.L
	retryLimit int
}

// New - bind a coordinator to an open store
func New(store *storage.Store, options Options) *Coordinator {
	retryLimit := options.RetryLimit
	if retryLimit <= 0 {
		retryLimit = DefaultRetryLimit
	}
	cacheExpiry := options.CacheExpiry
	if cacheExpiry <= 0 {
		cacheExpiry = DefaultCacheExpiry
	}

	return &Coordinator{
		store:      store,
		index:      chainindex.New(store),
		cache:      gocache.New(cacheExpiry, 2*cacheExpiry),
		log:        logger.New("coordinator"),
		retryLimit: retryLimit,
	}
}

// witness - decoded witness by content address, cache first
func (coord *Coordinator) witness(h digest.Digest) (*traderecord.Witness, error) {
	key := witnessKeyPrefix + h.String()
	if cached, ok := coord.cache.Get(key); ok {
		if witness, ok := cached.(*traderecord.Witness); ok {
			return witness, nil
		}
	}

	data, err := coord.store.Objects.Get(h)
	if nil != err {
		return nil, err
	}
	witness, err := traderecord.UnpackWitness(data)
	if nil != err {
		return nil, err
	}
	coord.cache.Set(key, witness, gocache.DefaultExpiration)
	return witness, nil
}

// resolveDetails - decoded trade details by content address, cache first
//
// satisfies derivation.DetailsResolver
func (coord *Coordinator) resolveDetails(h digest.Digest) (*traderecord.TradeDetails, error) {
	key := detailsKeyPrefix + h.String()
	if cached, ok := coord.cache.Get(key); ok {
		if details, ok := cached.(*traderecord.TradeDetails); ok {
			return details, nil
		}
	}

	data, err := coord.store.Objects.Get(h)
	if nil != err {
		return nil, err
	}
	details, err := traderecord.UnpackTradeDetails(data)
	if nil != err {
		return nil, err
	}
	coord.cache.Set(key, details, gocache.DefaultExpiration)
	return details, nil
}

// loadLinks - the full decoded chain of one trade
func (coord *Coordinator) loadLinks(tradeId identifier.TradeId) ([]derivation.Link, error) {
	hashes, err := coord.index.Load(tradeId)
	if nil != err {
		return nil, err
	}

	links := make([]derivation.Link, len(hashes))
	for i, h := range hashes {
		witness, err := coord.witness(h)
		if nil != err {
			return nil, err
		}
		links[i] = derivation.Link{
			Witness: witness,
			Digest:  h,
		}
	}
	return links, nil
}

// proposal - the kind specific payload of one appended witness
type proposal struct {
	actor       identifier.UserId
	detailsHash *digest.Digest
	strike      *decimal.Decimal
	extra       []storage.Write
}

// appendWitness - the common load/derive/check/append cycle
//
// propose runs after the legality check with the freshly derived
// state and performs the action's own authorisation and payload
// construction; it runs once per attempt so a retry always reasons
// about the state that beat it
func (coord *Coordinator) appendWitness(tradeId identifier.TradeId, kind traderecord.WitnessKind, propose func(result *derivation.Result) (*proposal, error)) error {

	for attempt := 0; attempt < coord.retryLimit; attempt += 1 {

		links, err := coord.loadLinks(tradeId)
		if nil != err {
			return err
		}

		result, err := derivation.Derive(links, coord.resolveDetails)
		if nil != err {
			return err
		}

		if !result.IsLegal(kind) {
			return fault.TransitionError{
				From:   result.Phase.String(),
				Action: kind.String(),
				Index:  result.ChainLength,
			}
		}

		prop, err := propose(result)
		if nil != err {
			return err
		}

		prevHash := links[len(links)-1].Digest
		witness := &traderecord.Witness{
			TradeId:     tradeId,
			Sequence:    uint64(len(links)),
			PrevHash:    &prevHash,
			Timestamp:   traderecord.Now(),
			Kind:        kind,
			Actor:       prop.actor,
			DetailsHash: prop.detailsHash,
			Strike:      prop.strike,
		}

		packed, err := witness.Pack()
		if nil != err {
			return err
		}
		witnessHash := packed.Digest()

		writes, err := coord.store.Objects.Stage(witnessHash, packed)
		if nil != err {
			return err
		}
		writes = append(writes, prop.extra...)

		err = coord.index.Append(tradeId, witnessHash, len(links), writes)
		if fault.ErrConcurrentAppend == err {
			coord.log.Warnf("lost append race on trade: %s attempt: %d", tradeId, attempt)
			continue
		}
		if nil != err {
			return err
		}

		coord.cache.Set(witnessKeyPrefix+witnessHash.String(), witness, gocache.DefaultExpiration)
		coord.log.Infof("%s witness appended to trade: %s at: %d", kind, tradeId, len(links))
		return nil
	}

	coord.log.Errorf("retry limit exhausted on trade: %s", tradeId)
	return fault.ErrConcurrentAppend
}
