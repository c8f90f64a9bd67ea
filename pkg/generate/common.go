package generate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

const (
	defaultUOM    = "EA"
	defaultPOType = "NE" // new order

	// locationQualifier is the N103 code for a mutually-assigned
	// location number.
	locationQualifier = "92"
)

// compactDate reduces an ISO date or timestamp to CCYYMMDD by
// truncation. This is format policy, not calendar math: non-ISO input
// produces garbage, by the same truncation the envelope dates use.
func compactDate(iso string) string {
	if len(iso) > 10 {
		iso = iso[:10]
	}
	return strings.ReplaceAll(iso, "-", "")
}

// compactTime extracts HHMM from an ISO timestamp, or "" when the input
// carries no time portion.
func compactTime(iso string) string {
	if len(iso) < 16 {
		return ""
	}
	return strings.ReplaceAll(iso[11:16], ":", "")
}

// dateOr returns the compacted ISO date, defaulting to the clock date.
func dateOr(iso string, now time.Time) string {
	if iso == "" {
		return now.Format("20060102")
	}
	return compactDate(iso)
}

// quantity renders a quantity without trailing zeros.
func quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// price renders a unit price without forcing a decimal width.
func price(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// money renders an amount with exactly two decimals.
func money(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

// pennies renders an amount as an implied-two-decimal integer, the N2
// encoding X12 monetary summary elements use: 10.00 becomes 1000.
func pennies(amount float64) string {
	return strconv.FormatInt(int64(math.Round(amount*100)), 10)
}

// uomOr returns the unit of measure, defaulting to each.
func uomOr(u string) string {
	if u == "" {
		return defaultUOM
	}
	return u
}

// lineNumber returns the assigned line number, or the 1-based position
// when the document did not carry one.
func lineNumber(assigned, index int) string {
	if assigned > 0 {
		return strconv.Itoa(assigned)
	}
	return strconv.Itoa(index + 1)
}

// addPartyLoop emits the N1 loop for one party: the name segment, then
// the address line only when street data is present, then the geographic
// segment only when the full city/state/postal triple is present.
// Partial geography is dropped, never emitted with blanks.
func addPartyLoop(b *x12.Builder, role document.PartyRole, addr document.Address) {
	idQualifier := ""
	if addr.Code != "" {
		idQualifier = locationQualifier
	}
	b.AddSegment("N1", string(role), addr.Name, idQualifier, addr.Code)

	if addr.Address1 != "" {
		b.AddSegment("N3", addr.Address1, addr.Address2)
	}
	if addr.HasGeography() {
		b.AddSegment("N4", addr.City, addr.State, addr.Zip, addr.Country)
	}
}
