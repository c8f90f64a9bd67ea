package generate

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// Hierarchical level codes for the 856 HL chain.
const (
	hlShipment = "S"
	hlOrder    = "O"
	hlItem     = "I"
)

// ShipNotice renders an advance ship notice as a 856 interchange. The
// body is a three-level hierarchy: one shipment level carrying carrier,
// tracking, and ship-to detail; one order level referencing the purchase
// order; and one item level per shipped line. Each HL segment's parent
// element references the immediately enclosing level, and the CTT totals
// segment counts HL segments rather than items.
func ShipNotice(asn *document.ShipNotice, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypeShipNotice.FunctionalID(), sender, receiver)
	b.AddTransactionHeader(string(document.TypeShipNotice))

	date := compactDate(asn.ShipDate)
	clock := compactTime(asn.ShipDate)
	b.AddSegment("BSN", "00", asn.ShipmentID, date, clock)

	hlCount := 0
	nextHL := func() string {
		hlCount++
		return strconv.Itoa(hlCount)
	}

	// Shipment level.
	shipmentID := nextHL()
	b.AddSegment("HL", shipmentID, "", hlShipment)
	// TD5: routing by standard carrier alpha code, motor transport.
	b.AddSegment("TD5", "B", "2", asn.Carrier, "M")
	// REF CN: carrier's pro/tracking reference.
	b.AddSegment("REF", "CN", asn.TrackingNumber)
	// DTM 011: shipped.
	b.AddSegment("DTM", "011", date, clock)
	addPartyLoop(b, document.RoleShipTo, asn.ShipTo)

	// Order level.
	orderID := nextHL()
	b.AddSegment("HL", orderID, shipmentID, hlOrder)
	b.AddSegment("PRF", asn.PONumber)

	// Item levels.
	for _, item := range asn.Items {
		b.AddSegment("HL", nextHL(), orderID, hlItem)
		b.AddSegment("LIN", "", x12.QualifierVendorPart, item.SKU)
		b.AddSegment("SN1", "", quantity(item.Quantity), uomOr(item.UOM))
	}

	// For the 856 the countable unit is the hierarchical level.
	b.AddSegment("CTT", strconv.Itoa(hlCount))
	b.AddTransactionTrailer()
	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}
