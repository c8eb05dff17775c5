// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBlockedActionOnTerminalTrade = InvalidError("blocked action on terminal trade")
	ErrChainEmpty                   = InvalidError("chain is empty")
	ErrConcurrentAppend             = ProcessError("concurrent append to trade chain")
	ErrCorruptChainIndex            = ProcessError("chain index record is corrupt")
	ErrDatabaseVersionTooNew        = ProcessError("database schema version is newer than supported")
	ErrDatabaseVersionTooOld        = ProcessError("database schema version is older than supported")
	ErrDateOrdering                 = InvalidError("dates must satisfy: trade date <= value date <= delivery date")
	ErrHashCollision                = ProcessError("hash collision: identical digest with differing bytes")
	ErrIdentifierBadCharset         = InvalidError("identifier contains invalid characters")
	ErrIdentifierBadChecksum        = InvalidError("identifier checksum verification failed")
	ErrIdentifierBadSeparator       = InvalidError("identifier separator is missing or misplaced")
	ErrIdentifierUnknownPrefix      = InvalidError("identifier prefix is not recognised")
	ErrIdentifierWrongLength        = InvalidError("identifier payload has wrong length")
	ErrInvalidCurrency              = InvalidError("invalid currency")
	ErrInvalidDirection             = InvalidError("invalid direction")
	ErrInvalidWitnessKind           = InvalidError("invalid witness kind")
	ErrInvalidWitnessPayload        = InvalidError("witness payload does not match its kind")
	ErrNotDigest                    = InvalidError("not a digest")
	ErrNotPositiveAmount            = InvalidError("amount must be positive")
	ErrNotPositiveStrike            = InvalidError("strike must be positive")
	ErrRecordNotFound               = NotFoundError("record not found")
	ErrSameCurrency                 = InvalidError("notional and underlying currencies must differ")
	ErrTradeAlreadyExists           = ExistsError("trade id already has a chain")
	ErrUnknownTrade                 = NotFoundError("no chain exists for trade id")
	ErrWrongRecordTag               = InvalidError("record tag does not match expected type")
	ErrWrongSchemaVersion           = InvalidError("record schema version is not supported")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
