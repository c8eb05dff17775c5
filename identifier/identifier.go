// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/google/uuid"

	"github.com/meridianfx/tradechain/fault"
)

// PayloadLength - number of bytes in an identifier payload
//
// the payload is a version-7 UUID: a 48 bit millisecond timestamp
// followed by 74 bits of randomness, so identifiers generated by one
// process sort by creation time
const PayloadLength = 16

// human readable prefixes in use
const (
	TradePrefix = "trade"
	UserPrefix  = "user"
)

// the wire form is: <prefix> '_' <bech32 data and checksum>
const separator = '_'

// Identifier - a prefixed time-ordered identifier
//
// equality is byte equality of the 128 bit payload plus the prefix;
// the zero value is not a valid identifier
type Identifier struct {
	prefix  string
	payload [PayloadLength]byte
}

// New - generate a fresh identifier for a registered prefix
func New(prefix string) (Identifier, error) {
	if !registeredPrefix(prefix) {
		return Identifier{}, fault.ErrIdentifierUnknownPrefix
	}

	u, err := uuid.NewV7()
	if nil != err {
		return Identifier{}, err
	}

	id := Identifier{prefix: prefix}
	copy(id.payload[:], u[:])
	return id, nil
}

// Parse - convert a wire form string back into an identifier
//
// the returned error distinguishes: unknown prefix, bad separator,
// bad charset, failed checksum and wrong payload length
func Parse(s string) (Identifier, error) {
	i := strings.IndexByte(s, separator)
	if i <= 0 || i == len(s)-1 {
		return Identifier{}, fault.ErrIdentifierBadSeparator
	}

	prefix := s[:i]
	body := s[i+1:]

	if !registeredPrefix(prefix) {
		return Identifier{}, fault.ErrIdentifierUnknownPrefix
	}

	hrp, data, err := bech32.Decode(prefix + "1" + body)
	if nil != err {
		return Identifier{}, classifyBech32Error(err)
	}
	if hrp != prefix {
		return Identifier{}, fault.ErrIdentifierUnknownPrefix
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if nil != err {
		return Identifier{}, fault.ErrIdentifierBadCharset
	}
	if PayloadLength != len(payload) {
		return Identifier{}, fault.ErrIdentifierWrongLength
	}

	id := Identifier{prefix: prefix}
	copy(id.payload[:], payload)
	return id, nil
}

// FromPayload - reconstruct an identifier from its raw 16 byte payload
func FromPayload(prefix string, payload []byte) (Identifier, error) {
	if !registeredPrefix(prefix) {
		return Identifier{}, fault.ErrIdentifierUnknownPrefix
	}
	if PayloadLength != len(payload) {
		return Identifier{}, fault.ErrIdentifierWrongLength
	}
	id := Identifier{prefix: prefix}
	copy(id.payload[:], payload)
	return id, nil
}

// String - the wire form
func (id Identifier) String() string {
	data, err := bech32.ConvertBits(id.payload[:], 8, 5, true)
	if nil != err {
		return ""
	}
	s, err := bech32.Encode(id.prefix, data)
	if nil != err {
		return ""
	}
	// swap the standard bech32 separator for the wire one
	return id.prefix + string(separator) + s[len(id.prefix)+1:]
}

// GoString - wire form with a type marker for %#v
func (id Identifier) GoString() string {
	return "<id:" + id.String() + ">"
}

// Prefix - the human readable prefix
func (id Identifier) Prefix() string {
	return id.prefix
}

// PayloadBytes - copy of the raw 128 bit payload
func (id Identifier) PayloadBytes() []byte {
	buffer := make([]byte, PayloadLength)
	copy(buffer, id.payload[:])
	return buffer
}

// IsZero - true for the zero value
func (id Identifier) IsZero() bool {
	return "" == id.prefix
}

func registeredPrefix(prefix string) bool {
	switch prefix {
	case TradePrefix, UserPrefix:
		return true
	default:
		return false
	}
}

func classifyBech32Error(err error) error {
	var checksum bech32.ErrInvalidChecksum
	if errors.As(err, &checksum) {
		return fault.ErrIdentifierBadChecksum
	}

	var nonCharset bech32.ErrNonCharsetChar
	var mixedCase bech32.ErrMixedCase
	var invalidCharacter bech32.ErrInvalidCharacter
	if errors.As(err, &nonCharset) || errors.As(err, &mixedCase) || errors.As(err, &invalidCharacter) {
		return fault.ErrIdentifierBadCharset
	}

	var separatorIndex bech32.ErrInvalidSeparatorIndex
	if errors.As(err, &separatorIndex) {
		return fault.ErrIdentifierBadSeparator
	}

	return fault.ErrIdentifierBadCharset
}
