// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gox12 implements a bidirectional translator between business
documents and ANSI X12 EDI interchanges.

# Overview

go-x12 generates outbound X12 transaction sets from typed business
documents and parses inbound X12 text into the same canonical document
shapes. The supported sets cover the retail order-to-cash loop:
purchase orders (850), order changes (860), warehouse shipping orders
(940), functional acknowledgments (997), PO acknowledgments (855),
advance ship notices (856), invoices (810), inventory advice (846),
payment remittance (820), carrier status (214), and return
authorizations (180).

# Package Structure

The library is organized into the following packages:

	github.com/sirosfoundation/go-x12/pkg/x12       - Segments, envelope builder, control numbers
	github.com/sirosfoundation/go-x12/pkg/document  - Canonical business document types and validation
	github.com/sirosfoundation/go-x12/pkg/generate  - Outbound transaction set generators
	github.com/sirosfoundation/go-x12/pkg/parse     - Inbound transaction set parsers
	github.com/sirosfoundation/go-x12/pkg/translate - Dispatching service with transaction logging

The cmd directory carries two binaries: x12d, the HTTP translation
daemon, and x12ctl, a command line translator.

# Quick Start

To generate a warehouse shipping order:

	import (
	    "github.com/sirosfoundation/go-x12/pkg/document"
	    "github.com/sirosfoundation/go-x12/pkg/generate"
	)

	order := &document.WarehouseOrder{
	    PONumber: "PO-2025-001",
	    ShipTo: document.Address{
	        Name: "Acme Logistics",
	        City: "Tech City", State: "CA", Zip: "90210",
	    },
	    Items: []document.ShipmentItem{
	        {SKU: "WIDGET-01", Quantity: 10},
	    },
	}
	text := generate.WarehouseOrder(order, "ACME", "WAREHOUSE")

To parse an inbound acknowledgment:

	import "github.com/sirosfoundation/go-x12/pkg/parse"

	ack := parse.FunctionalAck(rawText)
	if ack.Accepted() {
	    // group was accepted
	}

# Wire Format

Segments join elements with * and terminate with ~. Generated
interchanges place one segment per line for readability; parsers accept
both the single-line and line-wrapped forms. Envelope counts and
control numbers (SE/ST, GE/GS, IEA/ISA) are computed by the builder and
always satisfy the X12 chain invariants.
*/
package gox12
