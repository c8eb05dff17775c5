// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/meridianfx/tradechain/currency"
	"github.com/meridianfx/tradechain/fault"
)

type currencyTest struct {
	str string
	c   currency.Currency
	j   string
}

var valid = []currencyTest{
	{"usd", currency.USD, `"USD"`},
	{"USD", currency.USD, `"USD"`},
	{"dollar", currency.USD, `"USD"`},
	{"eur", currency.EUR, `"EUR"`},
	{"EUR", currency.EUR, `"EUR"`},
	{"Euro", currency.EUR, `"EUR"`},
	{"gbp", currency.GBP, `"GBP"`},
	{"Sterling", currency.GBP, `"GBP"`},
	{"jpy", currency.JPY, `"JPY"`},
	{"Yen", currency.JPY, `"JPY"`},
	{"chf", currency.CHF, `"CHF"`},
	{"Franc", currency.CHF, `"CHF"`},
	{"aud", currency.AUD, `"AUD"`},
}

var invalid = []string{
	"389749837598",
	"null",
	"BTC",
	"usdollar",
}

func TestValidString(t *testing.T) {
	for index, test := range valid {

		var c currency.Currency
		n, err := fmt.Sscan(test.str, &c)
		if nil != err {
			t.Fatalf("%d: string to currency error: %s", index, err)
		}

		if 1 != n {
			t.Fatalf("%d: scanned %d items expected to scan 1", index, n)
		}

		if c != test.c {
			t.Errorf("%d: %q converted to: %#v  expected: %#v", index, test.str, c, test.c)
		}

		buffer, err := json.Marshal(c)
		if nil != err {
			t.Fatalf("%d: currency to JSON error: %s", index, err)
		}

		if test.j != string(buffer) {
			t.Errorf("%d: JSON: %s  expected: %s", index, buffer, test.j)
		}

		var back currency.Currency
		err = json.Unmarshal(buffer, &back)
		if nil != err {
			t.Fatalf("%d: JSON to currency error: %s", index, err)
		}

		if back != test.c {
			t.Errorf("%d: JSON round trip: %#v  expected: %#v", index, back, test.c)
		}
	}
}

func TestInvalidString(t *testing.T) {
	for index, s := range invalid {
		var c currency.Currency
		_, err := fmt.Sscan(s, &c)
		if fault.ErrInvalidCurrency != err {
			t.Errorf("%d: scan %q error: %v  expected: %v", index, s, err, fault.ErrInvalidCurrency)
		}
	}
}

func TestValidateSettled(t *testing.T) {
	if err := currency.Nothing.ValidateSettled(); fault.ErrInvalidCurrency != err {
		t.Errorf("nothing validated as settled currency")
	}
	if err := currency.Currency(1000).ValidateSettled(); fault.ErrInvalidCurrency != err {
		t.Errorf("out of range value validated as settled currency")
	}
	for c := currency.First; c <= currency.Last; c += 1 {
		if err := c.ValidateSettled(); nil != err {
			t.Errorf("%s failed settled validation: %v", c, err)
		}
	}
}
