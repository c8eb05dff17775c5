// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - the pure chain to state computation
//
// trades carry no stored status: the workflow state is a fold over
// the trade's witness chain, so a stored status can never disagree
// with the history
//
// derivation runs in two passes: an integrity pass that rejects a
// corrupted or tampered chain with a single uniform error naming the
// failing index, then a fold pass that replays the transition rules
// of the workflow exactly once
//
// the function performs no I/O and has no randomness; object
// resolution is through a caller supplied lookup so two independent
// derivations of the same chain always yield identical results
package derivation

import (
	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/digest"
	"github.com/meridianfx/tradechain/fault"
	"github.com/meridianfx/tradechain/identifier"
	"github.com/meridianfx/tradechain/traderecord"
)

// Link - one decoded witness together with its content address
//
// the digest is computed from the stored bytes, not re-derived from
// the decoded form, so linkage verification does not depend on
// encoder stability
type Link struct {
	Witness *traderecord.Witness
	Digest  digest.Digest
}

// DetailsResolver - lookup of a referenced trade details record
//
// must be pure for the duration of one derivation; returns
// fault.ErrRecordNotFound for an unresolvable hash
type DetailsResolver func(digest.Digest) (*traderecord.TradeDetails, error)

// Result - the derived state of one trade
type Result struct {
	Phase          Phase
	CurrentDetails digest.Digest
	Requester      identifier.UserId
	Approver       identifier.UserId
	Strike         *decimal.Decimal
	ChainLength    int
	LegalActions   []traderecord.WitnessKind
}

// IsLegal - check one action against the derived legal set
func (result *Result) IsLegal(kind traderecord.WitnessKind) bool {
	for _, action := range result.LegalActions {
		if kind == action {
			return true
		}
	}
	return false
}

// Derive - compute the current state of a chain
//
// integrity failures return ChainInvalidError naming the first bad
// index; fold failures return TransitionError naming the first
// witness that violates the workflow rules
func Derive(links []Link, resolve DetailsResolver) (*Result, error) {
	resolved, err := verifyIntegrity(links, resolve)
	if nil != err {
		return nil, err
	}
	return fold(links, resolved)
}

// integrity pass
//
// verify: chain non-empty; first kind is Submit; sequence numbers
// form 0..n-1; each prev hash matches the predecessor's content
// address; every referenced details hash resolves
func verifyIntegrity(links []Link, resolve DetailsResolver) (map[digest.Digest]*traderecord.TradeDetails, error) {

	if 0 == len(links) {
		return nil, fault.ChainInvalidError{Index: 0, Reason: fault.ErrChainEmpty.Error()}
	}

	resolved := map[digest.Digest]*traderecord.TradeDetails{}
	tradeId := links[0].Witness.TradeId

	for i, link := range links {
		witness := link.Witness

		if err := witness.Validate(); nil != err {
			return nil, fault.ChainInvalidError{Index: i, Reason: err.Error()}
		}

		if witness.TradeId != tradeId {
			return nil, fault.ChainInvalidError{Index: i, Reason: "trade id differs from chain head"}
		}

		if uint64(i) != witness.Sequence {
			return nil, fault.ChainInvalidError{Index: i, Reason: "sequence number out of order"}
		}

		if 0 == i {
			if traderecord.KindSubmit != witness.Kind {
				return nil, fault.ChainInvalidError{Index: i, Reason: "first witness is not a submit"}
			}
		} else {
			if nil == witness.PrevHash || *witness.PrevHash != links[i-1].Digest {
				return nil, fault.ChainInvalidError{Index: i, Reason: "previous hash does not match predecessor"}
			}
		}

		if nil != witness.DetailsHash {
			h := *witness.DetailsHash
			if _, ok := resolved[h]; !ok {
				details, err := resolve(h)
				if nil != err {
					return nil, fault.ChainInvalidError{Index: i, Reason: "referenced details unresolvable: " + err.Error()}
				}
				resolved[h] = details
			}
		}
	}

	return resolved, nil
}

// fold pass
//
// walk the witnesses in order applying the transition rules; the
// first witness that violates a rule stops the fold
func fold(links []Link, resolved map[digest.Digest]*traderecord.TradeDetails) (*Result, error) {

	var phase Phase
	var currentDetails digest.Digest
	var requester identifier.UserId
	var approver identifier.UserId
	var strike *decimal.Decimal

	for i, link := range links {
		witness := link.Witness

		fail := func() error {
			return fault.TransitionError{
				From:   phase.String(),
				Action: witness.Kind.String(),
				Index:  i,
			}
		}

		if 0 == i {
			// structural checks already guarantee a submit here
			phase = PendingApproval
			currentDetails = *witness.DetailsHash
			requester = witness.Actor
			approver = *witness.Approver
			continue
		}

		if phase.IsTerminal() {
			return nil, fail()
		}

		switch witness.Kind {

		case traderecord.KindUpdate:
			switch phase {
			case PendingApproval, NeedsReApproval, Approved:
				if witness.Actor != requester {
					return nil, fail()
				}
				// any update invalidates a prior approval
				phase = NeedsReApproval
				currentDetails = *witness.DetailsHash
			default:
				return nil, fail()
			}

		case traderecord.KindApprove:
			switch phase {
			case PendingApproval, NeedsReApproval:
				if witness.Actor != approver {
					return nil, fail()
				}
				phase = Approved
			default:
				return nil, fail()
			}

		case traderecord.KindSend:
			if Approved != phase {
				return nil, fail()
			}
			phase = SentToCounterParty

		case traderecord.KindExecute:
			if SentToCounterParty != phase {
				return nil, fail()
			}
			// the date invariant must still hold on the
			// currently referenced details
			details := resolved[currentDetails]
			if err := details.ValidateDates(); nil != err {
				return nil, fail()
			}
			phase = Executed
			strike = witness.Strike

		case traderecord.KindBook:
			if Executed != phase {
				return nil, fail()
			}
			phase = Booked

		case traderecord.KindCancel:
			phase = Cancelled

		default:
			return nil, fail()
		}
	}

	return &Result{
		Phase:          phase,
		CurrentDetails: currentDetails,
		Requester:      requester,
		Approver:       approver,
		Strike:         strike,
		ChainLength:    len(links),
		LegalActions:   legalActions(phase),
	}, nil
}
