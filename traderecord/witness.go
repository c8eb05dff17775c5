// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traderecord

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/codec"
	"github.com/meridianfx/tradechain/digest"
	"github.com/meridianfx/tradechain/fault"
	"github.com/meridianfx/tradechain/identifier"
)

// WitnessKind - the action a witness attests to
//
// this is a closed enumeration: the state derivation fold depends on
// its exhaustiveness, so it must not be opened for extension
type WitnessKind uint64

// possible witness kinds
const (
	KindNothing WitnessKind = iota // this must be the first value
	KindSubmit  WitnessKind = iota // initial witness only
	KindUpdate  WitnessKind = iota // replaces the current details pointer
	KindApprove WitnessKind = iota // by the designated approver
	KindCancel  WitnessKind = iota // legal in any non-terminal state
	KindSend    WitnessKind = iota // dispatch to counter-party
	KindExecute WitnessKind = iota // records the realised strike
	KindBook    WitnessKind = iota // terminal booking
	maximumKind WitnessKind = iota // this must be the last value
)

// String - convert a witness kind to its string form
func (kind WitnessKind) String() string {
	switch kind {
	case KindNothing:
		return ""
	case KindSubmit:
		return "Submit"
	case KindUpdate:
		return "Update"
	case KindApprove:
		return "Approve"
	case KindCancel:
		return "Cancel"
	case KindSend:
		return "Send"
	case KindExecute:
		return "Execute"
	case KindBook:
		return "Book"
	default:
		panic(fmt.Sprintf("invalid witness kind enumeration: %d", kind))
	}
}

// Validate - check the enumeration holds a real kind
func (kind WitnessKind) Validate() error {
	if kind <= KindNothing || kind >= maximumKind {
		return fault.ErrInvalidWitnessKind
	}
	return nil
}

// Witness - one immutable link of a trade's chain
//
// the content address is over the entire encoding, so the prev hash
// field makes each chain a hash linked list
type Witness struct {
	Version     uint64             `cbor:"0,keyasint" json:"version"`
	Tag         TagType            `cbor:"1,keyasint" json:"-"`
	TradeId     identifier.TradeId `cbor:"2,keyasint" json:"tradeId"`
	Sequence    uint64             `cbor:"3,keyasint" json:"sequence"`
	PrevHash    *digest.Digest     `cbor:"4,keyasint,omitempty" json:"prevHash,omitempty"`
	Timestamp   TimeStamp          `cbor:"5,keyasint" json:"timestamp"`
	Kind        WitnessKind        `cbor:"6,keyasint" json:"kind"`
	Actor       identifier.UserId  `cbor:"7,keyasint" json:"actor"`
	DetailsHash *digest.Digest     `cbor:"8,keyasint,omitempty" json:"detailsHash,omitempty"`
	Approver    *identifier.UserId `cbor:"9,keyasint,omitempty" json:"approver,omitempty"`
	Address     string             `cbor:"10,keyasint,omitempty" json:"address,omitempty"`
	Strike      *decimal.Decimal   `cbor:"11,keyasint,omitempty" json:"strike,omitempty"`
}

// Validate - structural checks independent of any chain context
//
// each kind has an exact payload shape; extra or missing payload
// fields are rejected so a stored witness can never be ambiguous
func (witness *Witness) Validate() error {
	if witness.TradeId.IsZero() || witness.Actor.IsZero() {
		return fault.ErrInvalidWitnessPayload
	}

	err := witness.Kind.Validate()
	if nil != err {
		return err
	}

	// linkage shape: only the initial witness has no predecessor
	if 0 == witness.Sequence {
		if KindSubmit != witness.Kind || nil != witness.PrevHash {
			return fault.ErrInvalidWitnessPayload
		}
	} else {
		if KindSubmit == witness.Kind || nil == witness.PrevHash {
			return fault.ErrInvalidWitnessPayload
		}
	}

	wantDetails := false
	wantApprover := false
	wantStrike := false

	switch witness.Kind {
	case KindSubmit:
		wantDetails = true
		wantApprover = true
	case KindUpdate:
		wantDetails = true
	case KindExecute:
		wantStrike = true
	case KindApprove, KindCancel, KindSend, KindBook:
		// actor only
	}

	if wantDetails != (nil != witness.DetailsHash) {
		return fault.ErrInvalidWitnessPayload
	}
	if wantApprover != (nil != witness.Approver) {
		return fault.ErrInvalidWitnessPayload
	}
	if wantStrike != (nil != witness.Strike) {
		return fault.ErrInvalidWitnessPayload
	}
	if !wantApprover && "" != witness.Address {
		return fault.ErrInvalidWitnessPayload
	}

	if wantApprover && witness.Approver.IsZero() {
		return fault.ErrInvalidWitnessPayload
	}
	if wantStrike && !witness.Strike.IsPositive() {
		return fault.ErrNotPositiveStrike
	}
	return nil
}

// Pack - validate and encode the record
func (witness *Witness) Pack() (Packed, error) {
	witness.Version = SchemaVersion
	witness.Tag = WitnessTag

	err := witness.Validate()
	if nil != err {
		return nil, err
	}

	buffer, err := codec.Encode(witness)
	if nil != err {
		return nil, err
	}
	return Packed(buffer), nil
}

// UnpackWitness - strict decode of a stored record
func UnpackWitness(buffer []byte) (*Witness, error) {
	witness := &Witness{}
	err := codec.Decode(buffer, witness)
	if nil != err {
		return nil, err
	}
	if SchemaVersion != witness.Version {
		return nil, fault.ErrWrongSchemaVersion
	}
	if WitnessTag != witness.Tag {
		return nil, fault.ErrWrongRecordTag
	}
	err = witness.Validate()
	if nil != err {
		return nil, err
	}
	return witness, nil
}
