// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traderecord

import (
	"fmt"
	"strings"

	"github.com/meridianfx/tradechain/fault"
)

// Direction - which side of the forward the trading entity takes
type Direction uint64

// possible direction values
const (
	DirectionNothing Direction = iota // this must be the first value
	Buy              Direction = iota
	Sell             Direction = iota
	maximumDirection Direction = iota // this must be the last value
)

// String - convert a direction to its string form
func (direction Direction) String() string {
	switch direction {
	case DirectionNothing:
		return ""
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		panic(fmt.Sprintf("invalid direction enumeration: %d", direction))
	}
}

// MarshalText - convert a direction into JSON
func (direction Direction) MarshalText() ([]byte, error) {
	if direction >= maximumDirection {
		return nil, fault.ErrInvalidDirection
	}
	return []byte(direction.String()), nil
}

// UnmarshalText - convert direction string from JSON
func (direction *Direction) UnmarshalText(s []byte) error {
	switch strings.ToLower(string(s)) {
	case "":
		*direction = DirectionNothing
	case "buy":
		*direction = Buy
	case "sell":
		*direction = Sell
	default:
		return fault.ErrInvalidDirection
	}
	return nil
}

// Validate - check the enumeration holds a real direction
func (direction Direction) Validate() error {
	if Buy != direction && Sell != direction {
		return fault.ErrInvalidDirection
	}
	return nil
}
