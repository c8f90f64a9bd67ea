package parse

import (
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// FunctionalAck reads an inbound 997. AK1 names the functional group
// being acknowledged and AK9 carries the verdict. Wire codes collapse
// onto the canonical tri-state: A accepted, E accepted with changes,
// anything else rejected.
func FunctionalAck(raw string) *document.FunctionalAck {
	ack := &document.FunctionalAck{Status: document.AckRejected}

	for _, seg := range x12.Tokenize(raw) {
		switch seg.Tag {
		case "AK1":
			ack.FunctionalID = seg.Element(1)
			ack.ControlNumber = seg.Element(2)
		case "AK9":
			switch seg.Element(1) {
			case "A":
				ack.Status = document.AckAccepted
			case "E":
				ack.Status = document.AckAcceptedWithChanges
			default:
				ack.Status = document.AckRejected
			}
			ack.IncludedSets = toInt(seg.Element(2))
		}
	}
	return ack
}
