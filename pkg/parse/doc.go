// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package parse maps raw inbound X12 text onto canonical business
documents. One parser per transaction set:

	PurchaseOrder       850  purchase order
	PurchaseOrderChange 860  purchase order change request
	Remittance          820  payment order / remittance advice
	CarrierStatus       214  transportation carrier shipment status
	ReturnAuthorization 180  return merchandise authorization
	FunctionalAck       997  functional acknowledgment

Parsing is a single forward pass over the tokenized segment stream with
tag dispatch. Loop-sensitive segments thread an explicit accumulator
through the scan: a name segment sets the current party so the address
segments that follow know who they describe, and multi-segment line
items stay pending until the next item-start tag or the end of the
stream flushes them. The accumulator is local to one invocation.

Item identifiers use a qualifier scan with a positional fallback: the
element after a known qualifier token wins whenever the qualifier is
present, and the fixed position is only consulted when it is not.
Real-world documents shift optional elements, so position alone is not
trustworthy for these fields.

Parsers never fail. Unrecognized tags are skipped, keeping the scan
forward-compatible with extension segments, and recognized segments
that arrive short leave their fields empty. Judging whether the parsed
result is complete is the caller's concern.
*/
package parse
