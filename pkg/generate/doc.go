// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package generate renders canonical business documents as outbound X12
interchanges. One generator per transaction set:

	PurchaseOrders      850  purchase order (batch of transaction sets)
	PurchaseOrderChange 860  purchase order change request
	WarehouseOrder      940  warehouse shipping order
	FunctionalAck       997  functional acknowledgment
	POAcknowledgment    855  purchase order acknowledgment
	ShipNotice          856  advance ship notice
	Invoice             810  invoice
	InventoryAdvice     846  inventory inquiry/advice

Every generator is a pure function from (document, sender, receiver) to
wire text. All share one algorithm shape: interchange and group headers,
the transaction set with its beginning segment, party loops, line items,
a totals segment counting the type's business units, then the trailers.
Envelope counts and control numbers come from the x12.Builder, never from
generator arithmetic.

Generators never fail. A document missing optional data degrades by
omitting the dependent segment: a party without a street address gets no
N3, and one without the full city/state/postal triple gets no N4.
Required-field checking happens upstream, before a document reaches this
package.
*/
package generate
