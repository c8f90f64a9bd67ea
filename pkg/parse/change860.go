package parse

import (
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// PurchaseOrderChange reads an inbound 860. A POC line with no vendor
// part qualifier and an empty positional identifier still yields an
// item, carrying the UNKNOWN sentinel so the change is not silently
// dropped. When the partner omits the change order number the PO number
// with a -CHANGE suffix stands in.
func PurchaseOrderChange(raw string) *document.PurchaseOrderChange {
	chg := &document.PurchaseOrderChange{ChangeType: "04"}
	var loop document.PartyRole

	for _, seg := range x12.Tokenize(raw) {
		switch seg.Tag {
		case "BCH":
			if t := seg.Element(1); t == "01" || t == "04" {
				chg.ChangeType = t
			}
			chg.PONumber = seg.Element(3)
			chg.ChangeOrderNumber = seg.Element(4)
			if d := seg.Element(5); d != "" {
				chg.ChangeDate = isoDate(d)
			}
		case "N1":
			loop = document.PartyRole(seg.Element(1))
			if loop == document.RoleShipTo {
				chg.ShipTo = &document.Address{
					Name: seg.Element(2),
					Code: seg.Element(4),
				}
			}
		case "N3":
			if loop == document.RoleShipTo && chg.ShipTo != nil {
				chg.ShipTo.Address1 = seg.Element(1)
				chg.ShipTo.Address2 = seg.Element(2)
			}
		case "N4":
			if loop == document.RoleShipTo && chg.ShipTo != nil {
				chg.ShipTo.City = seg.Element(1)
				chg.ShipTo.State = seg.Element(2)
				chg.ShipTo.Zip = seg.Element(3)
				chg.ShipTo.Country = seg.Element(4)
			}
		case "POC":
			sku, ok := seg.ValueAfter(x12.QualifierVendorPart)
			if !ok {
				if sku = seg.Element(9); sku == "" {
					sku = "UNKNOWN"
				}
			}
			code := document.ChangeCode(seg.Element(2))
			if !code.Valid() {
				code = document.ChangeModify
			}
			chg.Items = append(chg.Items, document.ChangeItem{
				LineNumber: toInt(seg.Element(1)),
				ChangeCode: code,
				Quantity:   toFloat(seg.Element(3)),
				Price:      toFloat(seg.Element(6)),
				SKU:        sku,
			})
		}
	}

	if chg.ChangeOrderNumber == "" && chg.PONumber != "" {
		chg.ChangeOrderNumber = chg.PONumber + "-CHANGE"
	}
	return chg
}
