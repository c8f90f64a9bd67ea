// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package translate dispatches translation requests to the generate and
parse packages and logs every translation to the transaction store.

Direction is inferred from the payload alone: a text payload opening
with the ISA interchange header tag is inbound and routes to a parser;
anything else is outbound and routes to a generator. Exactly one
generator or parser executes per call.

The store write after a translation is fire-and-forget. It never blocks
the caller and its failure is reported to the operational log, not
propagated; [Service.Flush] waits for in-flight writes during shutdown.
*/
package translate
