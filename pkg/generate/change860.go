package generate

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// PurchaseOrderChange renders a purchase order change request as a 860
// interchange. The ship-to loop is emitted only when the change carries a
// new destination.
func PurchaseOrderChange(change *document.PurchaseOrderChange, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypePurchaseOrderChange.FunctionalID(), sender, receiver)
	b.AddTransactionHeader(string(document.TypePurchaseOrderChange))

	changeType := change.ChangeType
	if changeType == "" {
		changeType = "04" // change, as opposed to 01 cancel
	}
	b.AddSegment("BCH",
		changeType,
		defaultPOType,
		change.PONumber,
		change.ChangeOrderNumber,
		dateOr(change.ChangeDate, b.Now()),
	)

	if change.ShipTo != nil {
		addPartyLoop(b, document.RoleShipTo, *change.ShipTo)
	}

	for i, item := range change.Items {
		b.AddSegment("POC",
			lineNumber(item.LineNumber, i),
			string(item.ChangeCode),
			quantity(item.Quantity),
			"0",
			defaultUOM,
			price(item.Price),
			"",
			x12.QualifierVendorPart,
			item.SKU,
		)
	}

	b.AddSegment("CTT", strconv.Itoa(len(change.Items)))
	b.AddTransactionTrailer()
	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}
