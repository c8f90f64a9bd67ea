// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package document defines the canonical typed business documents the
translation engine exchanges: purchase orders, order changes, warehouse
shipping orders, acknowledgments, ship notices, invoices, inventory
advices, remittances, carrier statuses, and return authorizations.

Each transaction set has exactly one canonical shape. Upstream systems
with legacy shapes convert before this boundary; generators and parsers
never branch on document variants.

Transaction kinds and directions are closed enumerations. Dispatch code
switches exhaustively over TransactionType, so adding a transaction set
is a compile-visible change rather than a silently ignored string.

Validate methods check the required-field shape a generator relies on
and report every offending field path at once:

	if err := po.Validate(); err != nil {
	    var verr *ValidationError
	    if errors.As(err, &verr) {
	        for _, f := range verr.Fields {
	            fmt.Println(f.Path, f.Message)
	        }
	    }
	}

Validation stops at shape: generators degrade gracefully on missing
optional data, so only fields whose absence would make the output
meaningless are required.
*/
package document
