// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/meridianfx/tradechain/fault"
)

// TradeId - identifier with the "trade" prefix
type TradeId struct {
	Identifier
}

// UserId - identifier with the "user" prefix
type UserId struct {
	Identifier
}

// NewTradeId - generate a fresh trade identifier
func NewTradeId() (TradeId, error) {
	id, err := New(TradePrefix)
	if nil != err {
		return TradeId{}, err
	}
	return TradeId{Identifier: id}, nil
}

// NewUserId - generate a fresh user identifier
func NewUserId() (UserId, error) {
	id, err := New(UserPrefix)
	if nil != err {
		return UserId{}, err
	}
	return UserId{Identifier: id}, nil
}

// ParseTradeId - parse a wire form string, requiring the trade prefix
func ParseTradeId(s string) (TradeId, error) {
	id, err := Parse(s)
	if nil != err {
		return TradeId{}, err
	}
	if TradePrefix != id.prefix {
		return TradeId{}, fault.ErrIdentifierUnknownPrefix
	}
	return TradeId{Identifier: id}, nil
}

// ParseUserId - parse a wire form string, requiring the user prefix
func ParseUserId(s string) (UserId, error) {
	id, err := Parse(s)
	if nil != err {
		return UserId{}, err
	}
	if UserPrefix != id.prefix {
		return UserId{}, fault.ErrIdentifierUnknownPrefix
	}
	return UserId{Identifier: id}, nil
}

// MarshalCBOR - encode as the wire form string
func (id TradeId) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id.String())
}

// UnmarshalCBOR - decode from the wire form string
func (id *TradeId) UnmarshalCBOR(buffer []byte) error {
	var s string
	err := cbor.Unmarshal(buffer, &s)
	if nil != err {
		return err
	}
	parsed, err := ParseTradeId(s)
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}

// MarshalCBOR - encode as the wire form string
func (id UserId) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id.String())
}

// UnmarshalCBOR - decode from the wire form string
func (id *UserId) UnmarshalCBOR(buffer []byte) error {
	var s string
	err := cbor.Unmarshal(buffer, &s)
	if nil != err {
		return err
	}
	parsed, err := ParseUserId(s)
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText - wire form for JSON and logs
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - parse wire form
func (id *Identifier) UnmarshalText(s []byte) error {
	parsed, err := Parse(string(s))
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}
