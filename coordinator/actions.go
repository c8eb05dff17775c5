// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/derivation"
	"github.com/meridianfx/tradechain/fault"
	"github.com/meridianfx/tradechain/identifier"
	"github.com/meridianfx/tradechain/traderecord"
)

// Submit - create a new trade with its initial witness
//
// generates a fresh trade id; the details object and the submit
// witness commit in one atomic batch so the chain can never reference
// a missing object
func (coord *Coordinator) Submit(builder *traderecord.Builder, requester identifier.UserId, approver identifier.UserId, address string) (identifier.TradeId, error) {

	details, err := builder.Build()
	if nil != err {
		return identifier.TradeId{}, err
	}
	packedDetails, err := details.Pack()
	if nil != err {
		return identifier.TradeId{}, err
	}
	detailsHash := packedDetails.Digest()

	tradeId, err := identifier.NewTradeId()
	if nil != err {
		return identifier.TradeId{}, err
	}

	exists, err := coord.index.Has(tradeId)
	if nil != err {
		return identifier.TradeId{}, err
	}
	if exists {
		return identifier.TradeId{}, fault.ErrTradeAlreadyExists
	}

	witness := &traderecord.Witness{
		TradeId:     tradeId,
		Sequence:    0,
		Timestamp:   traderecord.Now(),
		Kind:        traderecord.KindSubmit,
		Actor:       requester,
		DetailsHash: &detailsHash,
		Approver:    &approver,
		Address:     address,
	}
	packedWitness, err := witness.Pack()
	if nil != err {
		return identifier.TradeId{}, err
	}
	witnessHash := packedWitness.Digest()

	writes, err := coord.store.Objects.Stage(detailsHash, packedDetails)
	if nil != err {
		return identifier.TradeId{}, err
	}
	witnessWrites, err := coord.store.Objects.Stage(witnessHash, packedWitness)
	if nil != err {
		return identifier.TradeId{}, err
	}
	writes = append(writes, witnessWrites...)

	err = coord.index.Append(tradeId, witnessHash, 0, writes)
	if fault.ErrConcurrentAppend == err {
		// fresh id with a non-empty chain: another submit won
		return identifier.TradeId{}, fault.ErrTradeAlreadyExists
	}
	if nil != err {
		return identifier.TradeId{}, err
	}

	coord.log.Infof("trade submitted: %s by: %s", tradeId, requester)
	return tradeId, nil
}

// Update - replace the referenced details, invalidating any approval
//
// only the original requester may edit; the phase is checked first,
// so in a phase where an update is legal any other actor fails with
// an authorisation error, and in any other phase every actor gets a
// transition error
func (coord *Coordinator) Update(tradeId identifier.TradeId, builder *traderecord.Builder, editor identifier.UserId) error {

	details, err := builder.Build()
	if nil != err {
		return err
	}
	packedDetails, err := details.Pack()
	if nil != err {
		return err
	}
	detailsHash := packedDetails.Digest()

	return coord.appendWitness(tradeId, traderecord.KindUpdate, func(result *derivation.Result) (*proposal, error) {
		if editor != result.Requester {
			return nil, fault.AuthorisationError{
				Expected: result.Requester.String(),
				Actual:   editor.String(),
			}
		}
		extra, err := coord.store.Objects.Stage(detailsHash, packedDetails)
		if nil != err {
			return nil, err
		}
		return &proposal{
			actor:       editor,
			detailsHash: &detailsHash,
			extra:       extra,
		}, nil
	})
}

// Approve - accept the currently referenced details
//
// only the approver designated at submission may approve
func (coord *Coordinator) Approve(tradeId identifier.TradeId, actor identifier.UserId) error {
	return coord.appendWitness(tradeId, traderecord.KindApprove, func(result *derivation.Result) (*proposal, error) {
		if actor != result.Approver {
			return nil, fault.AuthorisationError{
				Expected: result.Approver.String(),
				Actual:   actor.String(),
			}
		}
		return &proposal{actor: actor}, nil
	})
}

// Cancel - abort the trade, legal from any non-terminal phase
func (coord *Coordinator) Cancel(tradeId identifier.TradeId, actor identifier.UserId) error {
	return coord.appendWitness(tradeId, traderecord.KindCancel, func(result *derivation.Result) (*proposal, error) {
		return &proposal{actor: actor}, nil
	})
}

// Send - dispatch an approved trade to the counter-party
func (coord *Coordinator) Send(tradeId identifier.TradeId, actor identifier.UserId) error {
	return coord.appendWitness(tradeId, traderecord.KindSend, func(result *derivation.Result) (*proposal, error) {
		return &proposal{actor: actor}, nil
	})
}

// Execute - record the realised strike rate
//
// the date ordering of the referenced details is re-checked here so
// an execute witness that could never fold is refused before it is
// written
func (coord *Coordinator) Execute(tradeId identifier.TradeId, actor identifier.UserId, strike decimal.Decimal) error {
	return coord.appendWitness(tradeId, traderecord.KindExecute, func(result *derivation.Result) (*proposal, error) {
		if !strike.IsPositive() {
			return nil, fault.ErrNotPositiveStrike
		}
		details, err := coord.resolveDetails(result.CurrentDetails)
		if nil != err {
			return nil, err
		}
		if err := details.ValidateDates(); nil != err {
			return nil, err
		}
		return &proposal{
			actor:  actor,
			strike: &strike,
		}, nil
	})
}

// Book - final settlement entry, the chain accepts nothing after it
func (coord *Coordinator) Book(tradeId identifier.TradeId, actor identifier.UserId) error {
	return coord.appendWitness(tradeId, traderecord.KindBook, func(result *derivation.Result) (*proposal, error) {
		return &proposal{actor: actor}, nil
	})
}
