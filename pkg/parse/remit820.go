package parse

import (
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// Remittance reads an inbound 820 payment order. The BPR monetary
// amount is the payment total, the TRN trace number is the payment
// reference, and each RMR with an IV qualifier records one invoice the
// payment covers.
func Remittance(raw string) *document.Remittance {
	rem := &document.Remittance{}

	for _, seg := range x12.Tokenize(raw) {
		switch seg.Tag {
		case "BPR":
			rem.TotalAmount = toFloat(seg.Element(2))
			if d := seg.Element(16); len(d) == 8 {
				rem.PaymentDate = isoDate(d)
			}
		case "TRN":
			if seg.Element(1) == "1" {
				rem.PaymentNumber = seg.Element(2)
			}
		case "N1":
			if document.PartyRole(seg.Element(1)) == document.RolePayer {
				rem.Payer = seg.Element(2)
			}
		case "RMR":
			if seg.Element(1) != "IV" {
				continue
			}
			rem.Invoices = append(rem.Invoices, document.PaidInvoice{
				InvoiceNumber: seg.Element(2),
				AmountPaid:    toFloat(seg.Element(4)),
			})
		}
	}
	return rem
}
