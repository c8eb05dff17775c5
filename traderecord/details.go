// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traderecord

import (
	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/codec"
	"github.com/meridianfx/tradechain/currency"
	"github.com/meridianfx/tradechain/fault"
)

// TradeDetails - the economic description of a forward contract
//
// there is no identifier field: the record's identity is the content
// address of its encoding, and one or more Submit/Update witnesses
// reference that address
type TradeDetails struct {
	Version            uint64            `cbor:"0,keyasint" json:"version"`
	Tag                TagType           `cbor:"1,keyasint" json:"-"`
	TradingEntity      string            `cbor:"2,keyasint" json:"tradingEntity"`
	CounterParty       string            `cbor:"3,keyasint" json:"counterParty"`
	Direction          Direction         `cbor:"4,keyasint" json:"direction"`
	NotionalCurrency   currency.Currency `cbor:"5,keyasint" json:"notionalCurrency"`
	NotionalAmount     uint64            `cbor:"6,keyasint" json:"notionalAmount,string"`
	UnderlyingCurrency currency.Currency `cbor:"7,keyasint" json:"underlyingCurrency"`
	UnderlyingAmount   uint64            `cbor:"8,keyasint" json:"underlyingAmount,string"`
	TradeDate          TimeStamp         `cbor:"9,keyasint" json:"tradeDate"`
	ValueDate          TimeStamp         `cbor:"10,keyasint" json:"valueDate"`
	DeliveryDate       TimeStamp         `cbor:"11,keyasint" json:"deliveryDate"`
	Strike             *decimal.Decimal  `cbor:"12,keyasint,omitempty" json:"strike,omitempty"`
}

// Validate - check all validity invariants of a complete record
//
// trade date <= value date <= delivery date, the two currencies
// differ and both amounts are positive
func (details *TradeDetails) Validate() error {
	missing := details.missingFields()
	if 0 != len(missing) {
		return fault.InvalidDetailsError{Missing: missing}
	}

	if err := details.Direction.Validate(); nil != err {
		return fault.InvalidDetailsError{Reason: err}
	}
	if err := details.NotionalCurrency.ValidateSettled(); nil != err {
		return fault.InvalidDetailsError{Reason: err}
	}
	if err := details.UnderlyingCurrency.ValidateSettled(); nil != err {
		return fault.InvalidDetailsError{Reason: err}
	}
	if details.NotionalCurrency == details.UnderlyingCurrency {
		return fault.InvalidDetailsError{Reason: fault.ErrSameCurrency}
	}
	if 0 == details.NotionalAmount || 0 == details.UnderlyingAmount {
		return fault.InvalidDetailsError{Reason: fault.ErrNotPositiveAmount}
	}
	if err := details.ValidateDates(); nil != err {
		return err
	}
	if nil != details.Strike && !details.Strike.IsPositive() {
		return fault.InvalidDetailsError{Reason: fault.ErrNotPositiveStrike}
	}
	return nil
}

// ValidateDates - check only the date ordering invariant
//
// re-run at execution time against the currently referenced details
func (details *TradeDetails) ValidateDates() error {
	if details.TradeDate > details.ValueDate || details.ValueDate > details.DeliveryDate {
		return fault.InvalidDetailsError{Reason: fault.ErrDateOrdering}
	}
	return nil
}

func (details *TradeDetails) missingFields() []string {
	missing := []string{}
	if "" == details.TradingEntity {
		missing = append(missing, "trading entity")
	}
	if "" == details.CounterParty {
		missing = append(missing, "counter party")
	}
	if DirectionNothing == details.Direction {
		missing = append(missing, "direction")
	}
	if currency.Nothing == details.NotionalCurrency {
		missing = append(missing, "notional currency")
	}
	if 0 == details.NotionalAmount {
		missing = append(missing, "notional amount")
	}
	if currency.Nothing == details.UnderlyingCurrency {
		missing = append(missing, "underlying currency")
	}
	if 0 == details.UnderlyingAmount {
		missing = append(missing, "underlying amount")
	}
	if 0 == details.TradeDate {
		missing = append(missing, "trade date")
	}
	if 0 == details.ValueDate {
		missing = append(missing, "value date")
	}
	if 0 == details.DeliveryDate {
		missing = append(missing, "delivery date")
	}
	return missing
}

// Pack - validate and encode the record
func (details *TradeDetails) Pack() (Packed, error) {
	details.Version = SchemaVersion
	details.Tag = TradeDetailsTag

	err := details.Validate()
	if nil != err {
		return nil, err
	}

	buffer, err := codec.Encode(details)
	if nil != err {
		return nil, err
	}
	return Packed(buffer), nil
}

// UnpackTradeDetails - strict decode of a stored record
func UnpackTradeDetails(buffer []byte) (*TradeDetails, error) {
	details := &TradeDetails{}
	err := codec.Decode(buffer, details)
	if nil != err {
		return nil, err
	}
	if SchemaVersion != details.Version {
		return nil, fault.ErrWrongSchemaVersion
	}
	if TradeDetailsTag != details.Tag {
		return nil, fault.ErrWrongRecordTag
	}
	err = details.Validate()
	if nil != err {
		return nil, err
	}
	return details, nil
}
