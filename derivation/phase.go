// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"fmt"

	"github.com/meridianfx/tradechain/traderecord"
)

// Phase - the workflow state derived from a chain
//
// never stored: the authoritative record is the witness chain and
// the phase is recomputed from it on every read
type Phase uint64

// possible phase values
const (
	Draft              Phase = iota // pre-submission, only exists off chain
	PendingApproval    Phase = iota
	NeedsReApproval    Phase = iota
	Approved           Phase = iota
	SentToCounterParty Phase = iota
	Executed           Phase = iota
	Booked             Phase = iota // terminal
	Cancelled          Phase = iota // terminal
)

// String - convert a phase to its string form
func (phase Phase) String() string {
	switch phase {
	case Draft:
		return "Draft"
	case PendingApproval:
		return "PendingApproval"
	case NeedsReApproval:
		return "NeedsReApproval"
	case Approved:
		return "Approved"
	case SentToCounterParty:
		return "SentToCounterParty"
	case Executed:
		return "Executed"
	case Booked:
		return "Booked"
	case Cancelled:
		return "Cancelled"
	default:
		panic(fmt.Sprintf("invalid phase enumeration: %d", phase))
	}
}

// IsTerminal - no action is ever legal after a terminal phase
func (phase Phase) IsTerminal() bool {
	return Booked == phase || Cancelled == phase
}

// legalActions - the witness kinds acceptable in a phase
func legalActions(phase Phase) []traderecord.WitnessKind {
	switch phase {
	case PendingApproval, NeedsReApproval:
		return []traderecord.WitnessKind{
			traderecord.KindUpdate,
			traderecord.KindApprove,
			traderecord.KindCancel,
		}
	case Approved:
		return []traderecord.WitnessKind{
			traderecord.KindUpdate,
			traderecord.KindSend,
			traderecord.KindCancel,
		}
	case SentToCounterParty:
		return []traderecord.WitnessKind{
			traderecord.KindExecute,
			traderecord.KindCancel,
		}
	case Executed:
		return []traderecord.WitnessKind{
			traderecord.KindBook,
			traderecord.KindCancel,
		}
	default:
		return []traderecord.WitnessKind{}
	}
}
