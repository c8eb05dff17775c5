// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traderecord

import (
	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/currency"
)

// Builder - accumulates trade details field by field
//
// Build reports all missing fields at once rather than failing on
// the first
type Builder struct {
	details TradeDetails
}

// NewBuilder - an empty draft
func NewBuilder() *Builder {
	return &Builder{}
}

// TradingEntity - our side of the contract, an opaque address
func (builder *Builder) TradingEntity(entity string) *Builder {
	builder.details.TradingEntity = entity
	return builder
}

// CounterParty - the other side of the contract, an opaque address
func (builder *Builder) CounterParty(party string) *Builder {
	builder.details.CounterParty = party
	return builder
}

// Direction - buy or sell
func (builder *Builder) Direction(direction Direction) *Builder {
	builder.details.Direction = direction
	return builder
}

// Notional - currency and amount in minor units
func (builder *Builder) Notional(c currency.Currency, amount uint64) *Builder {
	builder.details.NotionalCurrency = c
	builder.details.NotionalAmount = amount
	return builder
}

// Underlying - currency and amount in minor units
func (builder *Builder) Underlying(c currency.Currency, amount uint64) *Builder {
	builder.details.UnderlyingCurrency = c
	builder.details.UnderlyingAmount = amount
	return builder
}

// TradeDate - when the contract was agreed
func (builder *Builder) TradeDate(timestamp TimeStamp) *Builder {
	builder.details.TradeDate = timestamp
	return builder
}

// ValueDate - when the contract takes effect
func (builder *Builder) ValueDate(timestamp TimeStamp) *Builder {
	builder.details.ValueDate = timestamp
	return builder
}

// DeliveryDate - when the currencies are exchanged
func (builder *Builder) DeliveryDate(timestamp TimeStamp) *Builder {
	builder.details.DeliveryDate = timestamp
	return builder
}

// Strike - optional realised rate, normally only present after execution
func (builder *Builder) Strike(rate decimal.Decimal) *Builder {
	builder.details.Strike = &rate
	return builder
}

// Build - validate and return the immutable record
//
// an incomplete draft fails with InvalidDetailsError listing every
// missing field
func (builder *Builder) Build() (*TradeDetails, error) {
	details := builder.details // copy so further builder use cannot alias
	details.Version = SchemaVersion
	details.Tag = TradeDetailsTag

	err := details.Validate()
	if nil != err {
		return nil, err
	}
	return &details, nil
}
