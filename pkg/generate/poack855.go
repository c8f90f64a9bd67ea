package generate

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// bakStatusCode maps the canonical acknowledgment status onto the BAK02
// wire code.
func bakStatusCode(status document.AckStatus) string {
	switch status {
	case document.AckRejected:
		return "RD"
	case document.AckAcceptedWithChanges:
		return "AC"
	default:
		return "AT"
	}
}

// itemStatusCode maps a line item status onto the ACK01 wire code.
func itemStatusCode(status document.ItemAckStatus) string {
	switch status {
	case document.ItemRejected:
		return "IR"
	case document.ItemBackordered:
		return "IB"
	default:
		return "IA"
	}
}

// POAcknowledgment renders a purchase order acknowledgment as a 855
// interchange. Each acknowledged line is a PO1/ACK pair mirroring the
// ordered item and its disposition.
func POAcknowledgment(ack *document.POAcknowledgment, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypePOAcknowledgment.FunctionalID(), sender, receiver)
	b.AddTransactionHeader(string(document.TypePOAcknowledgment))

	b.AddSegment("BAK", "00", bakStatusCode(ack.Status), ack.PONumber, dateOr(ack.Date, b.Now()))

	for i, item := range ack.Items {
		b.AddSegment("PO1",
			strconv.Itoa(i+1),
			"",
			quantity(item.Quantity),
			defaultUOM,
			"", "",
			x12.QualifierVendorPart,
			item.SKU,
		)
		b.AddSegment("ACK", itemStatusCode(item.Status), quantity(item.Quantity), defaultUOM)
	}

	b.AddSegment("CTT", strconv.Itoa(len(ack.Items)))
	b.AddTransactionTrailer()
	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}
