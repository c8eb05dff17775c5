// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"strings"

	"github.com/meridianfx/tradechain/fault"
)

// Currency - currency enumeration
type Currency uint64

// possible currency values
const (
	Nothing      Currency = iota // this must be the first value
	USD          Currency = iota
	EUR          Currency = iota
	GBP          Currency = iota
	JPY          Currency = iota
	CHF          Currency = iota
	AUD          Currency = iota
	maximumValue Currency = iota // this must be the last value
	First        Currency = Nothing + 1
	Last         Currency = maximumValue - 1
	Count        int      = int(Last) // count of currencies
)

// internal conversion
func toString(c Currency) ([]byte, error) {
	switch c {
	case Nothing:
		return []byte{}, nil
	case USD:
		return []byte("USD"), nil
	case EUR:
		return []byte("EUR"), nil
	case GBP:
		return []byte("GBP"), nil
	case JPY:
		return []byte("JPY"), nil
	case CHF:
		return []byte("CHF"), nil
	case AUD:
		return []byte("AUD"), nil
	default:
		return []byte{}, fault.ErrInvalidCurrency
	}
}

// convert a string to a currency
func fromString(in string) (Currency, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "usd", "dollar", "us dollar":
		return USD, nil
	case "eur", "euro":
		return EUR, nil
	case "gbp", "pound", "sterling":
		return GBP, nil
	case "jpy", "yen":
		return JPY, nil
	case "chf", "franc", "swiss franc":
		return CHF, nil
	case "aud", "australian dollar":
		return AUD, nil
	default:
		return Nothing, fault.ErrInvalidCurrency
	}
}

// String - convert a currency to its string symbol
func (currency Currency) String() string {
	s, err := toString(currency)
	if nil != err {
		panic(fmt.Sprintf("invalid currency enumeration: %d", currency))
	}
	return string(s)
}

// GoString - convert both enum value and symbol, for debugging
func (currency Currency) GoString() string {
	return fmt.Sprintf("<Currency#%d:%q>", uint64(currency), currency.String())
}

// Scan - convert a currency string
func (currency *Currency) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}

	c, err := fromString(string(token))
	if nil != err {
		return err
	}

	*currency = c
	return nil
}

// ValidateSettled - check the enumeration holds a real currency
//
// Nothing is not valid for trade details
func (currency Currency) ValidateSettled() error {
	if currency < First || currency > Last {
		return fault.ErrInvalidCurrency
	}
	return nil
}
