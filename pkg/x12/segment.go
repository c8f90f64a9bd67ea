package x12

import "strings"

// Wire format constants. The separator and terminator are configuration
// points of the format, not per-call variables: every known trading
// partner profile this engine targets uses the standard pair.
const (
	ElementSeparator  = "*"
	SegmentTerminator = "~"
)

// Common element qualifiers.
const (
	// QualifierVendorPart marks a vendor-assigned item number ("VN").
	QualifierVendorPart = "VN"
	// QualifierUPC marks a UPC item number ("UP").
	QualifierUPC = "UP"
	// QualifierBuyerPart marks a buyer-assigned item number ("BP").
	QualifierBuyerPart = "BP"
)

// Segment is a single positional X12 record: a tag plus ordered elements.
// Elements are stored by position; optional values that are absent occupy
// their position as empty strings.
type Segment struct {
	Tag      string
	Elements []string
}

// NewSegment builds a segment from a tag and its ordered elements.
func NewSegment(tag string, elements ...string) Segment {
	return Segment{Tag: tag, Elements: elements}
}

// Element returns the element at the given X12 reference position
// (1-based, so Element(1) is the first element after the tag). Positions
// beyond the end of a short segment read as empty strings; structurally
// short segments are a lenience case, not an error.
func (s Segment) Element(pos int) string {
	if pos < 1 || pos > len(s.Elements) {
		return ""
	}
	return s.Elements[pos-1]
}

// ValueAfter scans the elements for the given qualifier token and returns
// the element that follows it. The boolean reports whether the qualifier
// was found; when it is, the returned value wins over any positional
// fallback even if it is empty.
func (s Segment) ValueAfter(qualifier string) (string, bool) {
	for i, el := range s.Elements {
		if el == qualifier {
			if i+1 < len(s.Elements) {
				return s.Elements[i+1], true
			}
			return "", true
		}
	}
	return "", false
}

// String renders the segment in wire form: TAG*el1*el2~
func (s Segment) String() string {
	if len(s.Elements) == 0 {
		return s.Tag + SegmentTerminator
	}
	return s.Tag + ElementSeparator + strings.Join(s.Elements, ElementSeparator) + SegmentTerminator
}

// Tokenize normalizes raw X12 text into segments. It strips newlines so
// both single-line and human-wrapped interchanges parse identically,
// splits on the segment terminator, trims whitespace, and drops empty
// fragments. Unrecognized content is preserved as-is for the caller's
// tag dispatch to skip.
func Tokenize(raw string) []Segment {
	raw = strings.ReplaceAll(raw, "\r", "")
	raw = strings.ReplaceAll(raw, "\n", "")

	parts := strings.Split(raw, SegmentTerminator)
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ElementSeparator)
		segments = append(segments, Segment{Tag: fields[0], Elements: fields[1:]})
	}
	return segments
}
