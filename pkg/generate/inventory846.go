package generate

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// InventoryAdvice renders an inventory advice as a 846 interchange. Each
// advised line is a LIN/QTY pair; QTY qualifier 33 reports quantity
// available for sale.
func InventoryAdvice(adv *document.InventoryAdvice, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypeInventoryAdvice.FunctionalID(), sender, receiver)
	b.AddTransactionHeader(string(document.TypeInventoryAdvice))

	// BIA: original distributor inventory report.
	b.AddSegment("BIA", "00", "DD", adv.AdviceNumber, dateOr(adv.Date, b.Now()))

	for _, item := range adv.Items {
		b.AddSegment("LIN", "", x12.QualifierVendorPart, item.SKU)
		b.AddSegment("QTY", "33", quantity(item.Quantity), defaultUOM)
	}

	b.AddSegment("CTT", strconv.Itoa(len(adv.Items)))
	b.AddTransactionTrailer()
	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}
