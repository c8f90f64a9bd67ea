// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package x12 provides the low-level primitives for reading and writing
ANSI X12 interchanges: the positional Segment record, a tokenizer for
inbound text, and the envelope Builder used by every outbound generator.

# Wire Format

An X12 interchange is a flat stream of segments. Each segment is a tag
followed by positional elements, joined with the element separator and
closed with the segment terminator:

	BEG*00*NE*PO-2025-001**20251027~

A missing optional element is an empty string occupying its position.
Dropping it instead would shift every later element and corrupt the
record, so Segment never omits positions.

# Envelope Structure

Segments travel inside a three-level envelope:

	ISA ... interchange header
	  GS ... functional group header
	    ST ... transaction set header
	      (business segments)
	    SE ... transaction set trailer (segment count, control number)
	  GE ... group trailer (set count, control number)
	IEA ... interchange trailer (group count, control number)

The Builder computes every trailer's count and echoed control number
from its own counters. Callers never supply them, which keeps the
envelope self-consistent by construction.

# Control Numbers

Control numbers come from a ControlSource threaded into the Builder:

	b := x12.NewBuilder(x12.WithControls(x12.NewSequentialControls(1)))

FixedControls reproduces the placeholder numbering used in test
deployments; SequentialControls hands out unique numbers per interchange.
*/
package x12
