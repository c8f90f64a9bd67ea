package parse

import (
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// ReturnAuthorization reads an inbound 180 return merchandise
// authorization. Each returned line spans a LIN/QTY/PID run: LIN opens
// a pending item with its identifier, and the quantity and reason code
// attach to it as they arrive. The next LIN or the end of the stream
// flushes the pending item.
func ReturnAuthorization(raw string) *document.ReturnAuthorization {
	ra := &document.ReturnAuthorization{}
	var pending *document.ReturnItem
	flush := func() {
		if pending != nil && pending.SKU != "" {
			ra.Items = append(ra.Items, *pending)
		}
		pending = nil
	}

	for _, seg := range x12.Tokenize(raw) {
		switch seg.Tag {
		case "BGN":
			ra.RMANumber = seg.Element(2)
		case "REF":
			if seg.Element(1) == "PO" {
				ra.OrderNumber = seg.Element(2)
			}
		case "N1":
			switch document.PartyRole(seg.Element(1)) {
			case document.RoleBuyer, document.RoleRemitter:
				ra.Customer = document.CustomerRef{
					Name: seg.Element(2),
					ID:   seg.Element(4),
				}
			}
		case "LIN":
			flush()
			pending = &document.ReturnItem{SKU: itemID(seg, 3)}
		case "QTY":
			if pending != nil {
				pending.Quantity = toFloat(seg.Element(2))
			}
		case "PID":
			if pending != nil {
				pending.ReasonCode = seg.Element(5)
			}
		}
	}
	flush()
	return ra
}
