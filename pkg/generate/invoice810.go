package generate

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// Invoice renders an invoice as a 810 interchange. The TDS total is the
// implied-two-decimal N2 encoding: the amount multiplied by one hundred,
// rounded, and stringified. That is a fixed rule of the element type,
// not a configurable precision.
func Invoice(inv *document.Invoice, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypeInvoice.FunctionalID(), sender, receiver)
	b.AddTransactionHeader(string(document.TypeInvoice))

	date := dateOr(inv.InvoiceDate, b.Now())
	b.AddSegment("BIG", date, inv.InvoiceNumber, date, inv.PONumber)

	// The supplier remits to itself: the interchange sender is the
	// remit-to party.
	b.AddSegment("N1", string(document.RoleRemitTo), sender)

	for i, item := range inv.Items {
		b.AddSegment("IT1",
			strconv.Itoa(i+1),
			quantity(item.Quantity),
			uomOr(item.UOM),
			money(item.UnitPrice),
			"PE", // price per each
			x12.QualifierVendorPart,
			item.SKU,
		)
	}

	b.AddSegment("TDS", pennies(inv.TotalAmount))
	b.AddSegment("CTT", strconv.Itoa(len(inv.Items)))
	b.AddTransactionTrailer()
	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}
