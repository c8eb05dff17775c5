// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traderecord

import (
	"github.com/meridianfx/tradechain/digest"
)

// TagType - type code for records
//
// every stored record carries its tag so that the decoder can reject
// a record of the wrong type
type TagType uint64

// enumerate the possible record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	TradeDetailsTag = TagType(iota) // economic description of a forward
	WitnessTag      = TagType(iota) // one link of a trade's chain

	// this item must be last
	InvalidTag = TagType(iota)
)

// SchemaVersion - current record schema
//
// the version is the first field of every encoded record; forward
// compatibility is by explicit version bump, never by ignoring
// unknown fields
const SchemaVersion = 1

// Packed - packed records are just a byte slice
type Packed []byte

// Digest - the content address of a packed record
func (record Packed) Digest() digest.Digest {
	return digest.NewDigest(record)
}
