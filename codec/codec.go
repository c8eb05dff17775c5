// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/meridianfx/tradechain/digest"
)

// the shared encode/decode modes, built once at package load
//
// encoding is deterministic for a given logical value within this
// implementation; cross-implementation hash stability is NOT a
// contract of this codec
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic("codec: cannot create encode mode: " + err.Error())
	}

	// strict schema: unknown map keys and trailing bytes are rejected
	decOptions := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	decMode, err = decOptions.DecMode()
	if nil != err {
		panic("codec: cannot create decode mode: " + err.Error())
	}
}

// Encode - canonical binary encoding of a record
func Encode(record interface{}) ([]byte, error) {
	return encMode.Marshal(record)
}

// Decode - strict decoding of a record
//
// rejects trailing bytes, unknown map keys, duplicate map keys and
// indefinite-length items
func Decode(buffer []byte, record interface{}) error {
	return decMode.Unmarshal(buffer, record)
}

// EncodeWithDigest - encode a record and return its content address
//
// the digest is SHA-256 over the encoded bytes and is the object's
// identifier in the store
func EncodeWithDigest(record interface{}) (digest.Digest, []byte, error) {
	buffer, err := Encode(record)
	if nil != err {
		return digest.Digest{}, nil, err
	}
	return digest.NewDigest(buffer), buffer, nil
}
