package generate

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// ackStatusCode maps the canonical acknowledgment status onto the AK901
// wire code.
func ackStatusCode(status document.AckStatus) string {
	switch status {
	case document.AckAcceptedWithChanges:
		return "E" // accepted with errors noted
	case document.AckRejected:
		return "R"
	default:
		return "A"
	}
}

// FunctionalAck renders a 997 acknowledging a previously received
// functional group. The 997 carries no line items; its AK9 element
// counts stand in for the totals segment other sets emit.
func FunctionalAck(ack *document.FunctionalAck, sender, receiver string, opts ...x12.Option) string {
	b := x12.NewBuilder(opts...)
	b.AddInterchangeHeader(sender, receiver)
	b.AddGroupHeader(document.TypeFunctionalAck.FunctionalID(), sender, receiver)
	b.AddTransactionHeader(string(document.TypeFunctionalAck))

	functionalID := ack.FunctionalID
	if functionalID == "" {
		functionalID = document.TypeWarehouseOrder.FunctionalID()
	}
	b.AddSegment("AK1", functionalID, ack.ControlNumber)

	sets := ack.IncludedSets
	if sets == 0 {
		sets = 1
	}
	n := strconv.Itoa(sets)
	b.AddSegment("AK9", ackStatusCode(ack.Status), n, n, n)

	b.AddTransactionTrailer()
	b.AddGroupTrailer()
	b.AddInterchangeTrailer()
	return b.String()
}
