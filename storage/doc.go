// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintains the on-disk data store
//
//	***** Key layout *****
//
// a single physical ordered key-value store is partitioned into
// pools by a one byte key prefix:
//
//	0x01 || sha256(32 bytes)     -> encoded object bytes
//	0x02 || trade id (16 bytes)  -> encoded list of witness hashes
//	0x03 || "schema_version"     -> big endian uint64, currently 1
//
// the object pool is content addressed and append only: an object is
// never modified or deleted once written, and writing the same hash
// twice with the same bytes is a silent no-op
//
//	***** Atomicity *****
//
// all writes of a single operation commit through one Commit call so
// that a witness can never become visible without the details it
// references; an optional compare-and-swap guard on one key provides
// the per-trade serialisation point
package storage
