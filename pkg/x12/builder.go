package x12

import (
	"fmt"
	"strings"
	"time"
)

// Interchange envelope constants.
const (
	interchangeVersion = "00401"
	groupVersion       = "004010"
	agencyCode         = "X"
	idQualifierMutual  = "ZZ"

	// UsageProduction and UsageTest are the ISA15 usage indicator values.
	UsageProduction = "P"
	UsageTest       = "T"
)

// Builder assembles one X12 interchange: envelope headers and trailers
// around an arbitrary sequence of business segments. It is a structural
// accumulator, not a validator; it guarantees the count and control
// number chain across ISA/GS/ST/SE/GE/IEA but never inspects content.
//
// A Builder is for a single interchange and is not safe for concurrent
// use. Generators create one per call.
type Builder struct {
	segments []string

	ctrl  ControlNumbers
	now   time.Time
	usage string

	txnSegments int    // segments since the current ST, ST included
	txnControl  string // ST02 of the open transaction set
	groupSets   int    // ST/SE pairs in the current group
	groups      int    // GS/GE pairs in the interchange
}

// Option configures a Builder.
type Option func(*Builder)

// WithControls draws this interchange's control numbers from src instead
// of the fixed placeholders.
func WithControls(src ControlSource) Option {
	return func(b *Builder) { b.ctrl = src.Next() }
}

// WithClock fixes the timestamp used for envelope dates, for reproducible
// output.
func WithClock(t time.Time) Option {
	return func(b *Builder) { b.now = t.UTC() }
}

// WithUsage sets the ISA15 usage indicator (UsageProduction or UsageTest).
func WithUsage(indicator string) Option {
	return func(b *Builder) { b.usage = indicator }
}

// NewBuilder creates an empty Builder for one interchange.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		ctrl:  FixedControls{}.Next(),
		now:   time.Now().UTC(),
		usage: UsageProduction,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Controls returns the control numbers assigned to this interchange.
func (b *Builder) Controls() ControlNumbers {
	return b.ctrl
}

// Now returns the timestamp this interchange's envelope dates are derived
// from, so generators can default business dates off the same clock.
func (b *Builder) Now() time.Time {
	return b.now
}

// AddSegment appends one positional business segment and counts it toward
// the open transaction set. Elements are emitted exactly as given; pass
// empty strings for absent optional positions.
func (b *Builder) AddSegment(tag string, elements ...string) *Builder {
	b.segments = append(b.segments, NewSegment(tag, elements...).String())
	b.txnSegments++
	return b
}

// AddInterchangeHeader emits the ISA segment. Sender and receiver are
// space-padded to the fixed 15-character ISA field width. The interchange
// date uses a two-digit year.
func (b *Builder) AddInterchangeHeader(sender, receiver string) *Builder {
	seg := NewSegment("ISA",
		"00", strings.Repeat(" ", 10),
		"00", strings.Repeat(" ", 10),
		idQualifierMutual, fmt.Sprintf("%-15s", sender),
		idQualifierMutual, fmt.Sprintf("%-15s", receiver),
		b.now.Format("060102"), b.now.Format("1504"),
		"U", interchangeVersion, b.ctrl.Interchange,
		"0", b.usage, ">",
	)
	b.segments = append(b.segments, seg.String())
	return b
}

// AddGroupHeader emits the GS segment with the given functional
// identifier code and opens a new functional group. The group date uses
// a four-digit year.
func (b *Builder) AddGroupHeader(functionalID, sender, receiver string) *Builder {
	seg := NewSegment("GS",
		functionalID, sender, receiver,
		b.now.Format("20060102"), b.now.Format("1504"),
		b.ctrl.Group, agencyCode, groupVersion,
	)
	b.segments = append(b.segments, seg.String())
	b.groups++
	b.groupSets = 0
	return b
}

// AddTransactionHeader emits the ST segment for the given transaction set
// identifier code and resets the segment count for the new set.
func (b *Builder) AddTransactionHeader(setID string) *Builder {
	return b.AddTransactionHeaderWithControl(setID, b.ctrl.Transaction)
}

// AddTransactionHeaderWithControl is AddTransactionHeader with an
// explicit ST02 control number, for batches that carry per-set numbers.
func (b *Builder) AddTransactionHeaderWithControl(setID, control string) *Builder {
	b.txnSegments = 0
	b.txnControl = control
	return b.AddSegment("ST", setID, control)
}

// AddTransactionTrailer emits the SE segment. The segment count is
// derived from the Builder's own counter and covers everything from the
// ST through the SE itself; the control number echoes the matching ST.
func (b *Builder) AddTransactionTrailer() *Builder {
	b.txnSegments++ // the SE counts itself
	seg := NewSegment("SE", fmt.Sprintf("%d", b.txnSegments), b.txnControl)
	b.segments = append(b.segments, seg.String())
	b.groupSets++
	return b
}

// AddGroupTrailer emits the GE segment: the number of transaction sets
// in the group and the echoed group control number.
func (b *Builder) AddGroupTrailer() *Builder {
	seg := NewSegment("GE", fmt.Sprintf("%d", b.groupSets), b.ctrl.Group)
	b.segments = append(b.segments, seg.String())
	return b
}

// AddInterchangeTrailer emits the IEA segment: the number of functional
// groups and the echoed interchange control number.
func (b *Builder) AddInterchangeTrailer() *Builder {
	seg := NewSegment("IEA", fmt.Sprintf("%d", b.groups), b.ctrl.Interchange)
	b.segments = append(b.segments, seg.String())
	return b
}

// String renders the interchange with one segment per line. X12 itself
// does not require the newlines; they keep the output readable and are
// stripped again by Tokenize.
func (b *Builder) String() string {
	return strings.Join(b.segments, "\n")
}
