package parse

import (
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// CarrierStatus reads an inbound 214 shipment status. Each scan event
// spans an AT7/MS1 pair: the AT7 opens a pending detail with the status
// code, and the MS1 that follows fills in the location. A new AT7 or
// the end of the stream flushes whatever is pending, so a status event
// the carrier sent without a location still surfaces. The first dated
// AT7 also stamps the shipment-level status date and time.
func CarrierStatus(raw string) *document.CarrierStatus {
	cs := &document.CarrierStatus{}
	var pending *document.StatusDetail
	flush := func() {
		if pending != nil {
			cs.Details = append(cs.Details, *pending)
			pending = nil
		}
	}

	for _, seg := range x12.Tokenize(raw) {
		switch seg.Tag {
		case "B10":
			cs.ShipmentID = seg.Element(2)
			if cs.ShipmentID == "" {
				cs.ShipmentID = seg.Element(1)
			}
			cs.CarrierCode = seg.Element(3)
		case "AT7":
			flush()
			pending = &document.StatusDetail{Code: seg.Element(1)}
			if cs.StatusDate == "" && seg.Element(5) != "" {
				cs.StatusDate = isoDate(seg.Element(5))
				cs.StatusTime = seg.Element(6)
			}
		case "MS1":
			if pending != nil {
				pending.City = seg.Element(1)
				pending.State = seg.Element(2)
			}
		}
	}
	flush()
	return cs
}
