package parse

import (
	"strconv"
	"strings"

	"github.com/sirosfoundation/go-x12/pkg/x12"
)

// toFloat reads a numeric element leniently. Missing or malformed
// values come back as zero; inbound partners are not trusted to send
// clean numbers.
func toFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func toInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// isoDate expands a compact CCYYMMDD element to YYYY-MM-DD. Anything
// that is not eight digits passes through untouched so the caller still
// sees what the partner sent.
func isoDate(s string) string {
	if len(s) != 8 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return s[:4] + "-" + s[4:6] + "-" + s[6:]
}

// itemID resolves an item identifier with qualifier precedence: the
// element following the vendor part qualifier wins when the qualifier
// is present anywhere in the segment, and the fixed position is only
// used when it is not.
func itemID(seg x12.Segment, fallbackPos int) string {
	if v, ok := seg.ValueAfter(x12.QualifierVendorPart); ok {
		return v
	}
	return seg.Element(fallbackPos)
}
