package parse

import (
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// PurchaseOrder reads an inbound 850 into a canonical purchase order.
// Address segments attach to the most recent N1 party; an N3 or N4
// arriving before any N1 is dropped.
func PurchaseOrder(raw string) *document.PurchaseOrder {
	po := &document.PurchaseOrder{}
	var current *document.Party

	for _, seg := range x12.Tokenize(raw) {
		switch seg.Tag {
		case "ST":
			po.ControlNumber = seg.Element(2)
		case "BEG":
			po.POType = seg.Element(2)
			po.PONumber = seg.Element(3)
			po.Date = isoDate(seg.Element(5))
		case "N1":
			po.Parties = append(po.Parties, document.Party{
				Role: document.PartyRole(seg.Element(1)),
				Address: document.Address{
					Name: seg.Element(2),
					Code: seg.Element(4),
				},
			})
			current = &po.Parties[len(po.Parties)-1]
		case "N3":
			if current != nil {
				current.Address1 = seg.Element(1)
				current.Address2 = seg.Element(2)
			}
		case "N4":
			if current != nil {
				current.City = seg.Element(1)
				current.State = seg.Element(2)
				current.Zip = seg.Element(3)
				current.Country = seg.Element(4)
			}
		case "PO1":
			po.Items = append(po.Items, document.OrderItem{
				LineNumber: toInt(seg.Element(1)),
				Quantity:   toFloat(seg.Element(2)),
				UOM:        seg.Element(3),
				Price:      toFloat(seg.Element(4)),
				SKU:        itemID(seg, 7),
			})
		}
	}
	return po
}
