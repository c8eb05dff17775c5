// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/derivation"
	"github.com/meridianfx/tradechain/digest"
	"github.com/meridianfx/tradechain/identifier"
	"github.com/meridianfx/tradechain/traderecord"
)

// TradeView - the derived state of one trade plus its current details
type TradeView struct {
	TradeId      identifier.TradeId        `json:"tradeId"`
	Phase        derivation.Phase          `json:"phase"`
	Details      *traderecord.TradeDetails `json:"details"`
	DetailsHash  digest.Digest             `json:"detailsHash"`
	Requester    identifier.UserId         `json:"requester"`
	Approver     identifier.UserId         `json:"approver"`
	Strike       *decimal.Decimal          `json:"strike,omitempty"`
	ChainLength  int                       `json:"chainLength"`
	LegalActions []traderecord.WitnessKind `json:"legalActions"`
}

// Read - derive and return the current state of a trade
func (coord *Coordinator) Read(tradeId identifier.TradeId) (*TradeView, error) {
	links, err := coord.loadLinks(tradeId)
	if nil != err {
		return nil, err
	}

	result, err := derivation.Derive(links, coord.resolveDetails)
	if nil != err {
		return nil, err
	}

	details, err := coord.resolveDetails(result.CurrentDetails)
	if nil != err {
		return nil, err
	}

	return &TradeView{
		TradeId:      tradeId,
		Phase:        result.Phase,
		Details:      details,
		DetailsHash:  result.CurrentDetails,
		Requester:    result.Requester,
		Approver:     result.Approver,
		Strike:       result.Strike,
		ChainLength:  result.ChainLength,
		LegalActions: result.LegalActions,
	}, nil
}

// History - the full ordered witness list of one trade
//
// the returned records are shallow copies: a caller reassigning a
// field cannot disturb the decoded record cache, but the pointer
// fields (PrevHash, DetailsHash, Approver, Strike) share their
// targets with the cached records
func (coord *Coordinator) History(tradeId identifier.TradeId) ([]traderecord.Witness, error) {
	links, err := coord.loadLinks(tradeId)
	if nil != err {
		return nil, err
	}

	history := make([]traderecord.Witness, len(links))
	for i, link := range links {
		history[i] = *link.Witness
	}
	return history, nil
}

// Trades - every trade id known to the store
func (coord *Coordinator) Trades() ([]identifier.TradeId, error) {
	return coord.index.Trades()
}
