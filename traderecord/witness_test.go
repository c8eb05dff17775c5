// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traderecord_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/meridianfx/tradechain/digest"
	"github.com/meridianfx/tradechain/fault"
	"github.com/meridianfx/tradechain/identifier"
	"github.com/meridianfx/tradechain/traderecord"
)

func makeActors(t *testing.T) (identifier.TradeId, identifier.UserId, identifier.UserId) {
	t.Helper()
	trade, err := identifier.NewTradeId()
	if nil != err {
		t.Fatalf("new trade id error: %v", err)
	}
	requester, err := identifier.NewUserId()
	if nil != err {
		t.Fatalf("new user id error: %v", err)
	}
	approver, err := identifier.NewUserId()
	if nil != err {
		t.Fatalf("new user id error: %v", err)
	}
	return trade, requester, approver
}

func detailsDigest(t *testing.T) digest.Digest {
	t.Helper()
	details, err := completeBuilder().Build()
	if nil != err {
		t.Fatalf("build error: %v", err)
	}
	packed, err := details.Pack()
	if nil != err {
		t.Fatalf("pack error: %v", err)
	}
	return packed.Digest()
}

func TestSubmitWitnessRoundTrip(t *testing.T) {
	trade, requester, approver := makeActors(t)
	detailsHash := detailsDigest(t)

	witness := &traderecord.Witness{
		TradeId:     trade,
		Sequence:    0,
		Timestamp:   traderecord.Now(),
		Kind:        traderecord.KindSubmit,
		Actor:       requester,
		DetailsHash: &detailsHash,
		Approver:    &approver,
		Address:     "meridian-london",
	}

	packed, err := witness.Pack()
	if nil != err {
		t.Fatalf("pack error: %v", err)
	}

	back, err := traderecord.UnpackWitness(packed)
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}

	if back.TradeId != witness.TradeId ||
		back.Sequence != witness.Sequence ||
		back.Kind != witness.Kind ||
		back.Actor != witness.Actor ||
		*back.DetailsHash != *witness.DetailsHash ||
		*back.Approver != *witness.Approver ||
		back.Address != witness.Address {
		t.Errorf("round trip: %#v expected %#v", back, witness)
	}

	// packing the decoded record must reproduce the content address
	repacked, err := back.Pack()
	if nil != err {
		t.Fatalf("repack error: %v", err)
	}
	if repacked.Digest() != packed.Digest() {
		t.Errorf("digest: %s expected: %s", repacked.Digest(), packed.Digest())
	}
}

func TestExecuteWitnessStrike(t *testing.T) {
	trade, requester, _ := makeActors(t)
	prev := digest.NewDigest([]byte("previous witness"))
	strike := decimal.RequireFromString("1.0850")

	witness := &traderecord.Witness{
		TradeId:   trade,
		Sequence:  3,
		PrevHash:  &prev,
		Timestamp: traderecord.Now(),
		Kind:      traderecord.KindExecute,
		Actor:     requester,
		Strike:    &strike,
	}

	packed, err := witness.Pack()
	if nil != err {
		t.Fatalf("pack error: %v", err)
	}
	back, err := traderecord.UnpackWitness(packed)
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}
	if !back.Strike.Equal(strike) {
		t.Errorf("strike: %s expected: %s", back.Strike, strike)
	}

	zero := decimal.Zero
	witness.Strike = &zero
	_, err = witness.Pack()
	if fault.ErrNotPositiveStrike != err {
		t.Errorf("zero strike pack error: %v expected: %v", err, fault.ErrNotPositiveStrike)
	}
}

func TestWitnessPayloadShapes(t *testing.T) {
	trade, requester, approver := makeActors(t)
	detailsHash := detailsDigest(t)
	prev := digest.NewDigest([]byte("previous witness"))
	strike := decimal.RequireFromString("1.0850")

	testData := []struct {
		name    string
		witness traderecord.Witness
	}{
		{"submit without details", traderecord.Witness{
			TradeId: trade, Sequence: 0, Timestamp: traderecord.Now(),
			Kind: traderecord.KindSubmit, Actor: requester, Approver: &approver,
		}},
		{"submit without approver", traderecord.Witness{
			TradeId: trade, Sequence: 0, Timestamp: traderecord.Now(),
			Kind: traderecord.KindSubmit, Actor: requester, DetailsHash: &detailsHash,
		}},
		{"submit at non-zero sequence", traderecord.Witness{
			TradeId: trade, Sequence: 1, PrevHash: &prev, Timestamp: traderecord.Now(),
			Kind: traderecord.KindSubmit, Actor: requester,
			DetailsHash: &detailsHash, Approver: &approver,
		}},
		{"non-submit at sequence zero", traderecord.Witness{
			TradeId: trade, Sequence: 0, Timestamp: traderecord.Now(),
			Kind: traderecord.KindApprove, Actor: approver,
		}},
		{"non-first without prev hash", traderecord.Witness{
			TradeId: trade, Sequence: 2, Timestamp: traderecord.Now(),
			Kind: traderecord.KindCancel, Actor: requester,
		}},
		{"approve with details payload", traderecord.Witness{
			TradeId: trade, Sequence: 1, PrevHash: &prev, Timestamp: traderecord.Now(),
			Kind: traderecord.KindApprove, Actor: approver, DetailsHash: &detailsHash,
		}},
		{"send with strike payload", traderecord.Witness{
			TradeId: trade, Sequence: 2, PrevHash: &prev, Timestamp: traderecord.Now(),
			Kind: traderecord.KindSend, Actor: approver, Strike: &strike,
		}},
		{"update without details", traderecord.Witness{
			TradeId: trade, Sequence: 1, PrevHash: &prev, Timestamp: traderecord.Now(),
			Kind: traderecord.KindUpdate, Actor: requester,
		}},
		{"missing actor", traderecord.Witness{
			TradeId: trade, Sequence: 1, PrevHash: &prev, Timestamp: traderecord.Now(),
			Kind: traderecord.KindCancel,
		}},
	}

	for _, test := range testData {
		w := test.witness
		_, err := w.Pack()
		if nil == err {
			t.Errorf("%s: pack succeeded", test.name)
		}
	}
}

func TestUnpackRejectsWrongTag(t *testing.T) {
	details, err := completeBuilder().Build()
	if nil != err {
		t.Fatalf("build error: %v", err)
	}
	packed, err := details.Pack()
	if nil != err {
		t.Fatalf("pack error: %v", err)
	}

	_, err = traderecord.UnpackWitness(packed)
	if nil == err {
		t.Fatal("unpack witness accepted a details record")
	}
}

func TestDetailsRoundTrip(t *testing.T) {
	details, err := completeBuilder().Build()
	if nil != err {
		t.Fatalf("build error: %v", err)
	}

	packed, err := details.Pack()
	if nil != err {
		t.Fatalf("pack error: %v", err)
	}

	back, err := traderecord.UnpackTradeDetails(packed)
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}

	repacked, err := back.Pack()
	if nil != err {
		t.Fatalf("repack error: %v", err)
	}
	if repacked.Digest() != packed.Digest() {
		t.Errorf("digest: %s expected: %s", repacked.Digest(), packed.Digest())
	}
}
