package generate

import (
	"fmt"
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// PurchaseOrders renders a batch of purchase orders as one 850
// interchange. Each transaction set in the batch becomes its own ST/SE
// pair inside a single functional group; a set without an explicit
// control number gets its 1-based position, zero-padded.
func PurchaseOrders(batch *document.PurchaseOrderBatch, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypePurchaseOrder.FunctionalID(), sender, receiver)

	for i := range batch.TransactionSets {
		po := &batch.TransactionSets[i]

		control := po.ControlNumber
		if control == "" {
			control = fmt.Sprintf("%04d", i+1)
		}
		b.AddTransactionHeaderWithControl(string(document.TypePurchaseOrder), control)
		addPurchaseOrderBody(b, po)
		b.AddTransactionTrailer()
	}

	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}

func addPurchaseOrderBody(b *x12.Builder, po *document.PurchaseOrder) {
	poType := po.POType
	if poType == "" {
		poType = defaultPOType
	}
	b.AddSegment("BEG", "00", poType, po.PONumber, "", dateOr(po.Date, b.Now()))

	for _, party := range po.Parties {
		addPartyLoop(b, party.Role, party.Address)
	}

	for i, item := range po.Items {
		b.AddSegment("PO1",
			lineNumber(item.LineNumber, i),
			quantity(item.Quantity),
			uomOr(item.UOM),
			price(item.Price),
			"",
			x12.QualifierVendorPart,
			item.SKU,
		)
	}

	// CTT counts business lines, not emitted segments.
	b.AddSegment("CTT", strconv.Itoa(len(po.Items)))
}
