package generate

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// WarehouseOrder renders a warehouse shipping order as a 940
// interchange, instructing a third-party warehouse to ship against a
// purchase order.
func WarehouseOrder(order *document.WarehouseOrder, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypeWarehouseOrder.FunctionalID(), sender, receiver)
	b.AddTransactionHeader(string(document.TypeWarehouseOrder))

	// W05: shipment identification, status N = new order.
	b.AddSegment("W05", "N", order.PONumber)

	addPartyLoop(b, document.RoleShipTo, order.ShipTo)

	for _, item := range order.Items {
		b.AddSegment("W01",
			quantity(item.Quantity),
			uomOr(item.UOM),
			"",
			x12.QualifierVendorPart,
			item.SKU,
		)
	}

	b.AddSegment("CTT", strconv.Itoa(len(order.Items)))
	b.AddTransactionTrailer()
	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}
