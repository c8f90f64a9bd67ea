package x12

import (
	"fmt"
	"sync/atomic"
)

// ControlNumbers is one interchange's worth of control numbers: the ISA13
// interchange number, the GS06 group number, and the ST02 transaction
// number. Trailers echo these values; the Builder handles the echoing.
type ControlNumbers struct {
	Interchange string
	Group       string
	Transaction string
}

// ControlSource hands out control numbers for a new interchange. A source
// is consulted once per Builder, so one Builder never mixes numbering.
type ControlSource interface {
	Next() ControlNumbers
}

// FixedControls always returns the same placeholder numbers. It matches
// the constants trading partners expect in test-indicator interchanges
// and keeps generated output byte-stable for comparison.
type FixedControls struct{}

// Next returns the placeholder control numbers.
func (FixedControls) Next() ControlNumbers {
	return ControlNumbers{
		Interchange: "000000001",
		Group:       "1",
		Transaction: "0001",
	}
}

// SequentialControls hands out monotonically increasing control numbers.
// It is safe for concurrent use; each interchange gets a unique value.
type SequentialControls struct {
	counter atomic.Uint64
}

// NewSequentialControls returns a source whose first interchange uses the
// given starting number.
func NewSequentialControls(start uint64) *SequentialControls {
	s := &SequentialControls{}
	if start > 0 {
		s.counter.Store(start - 1)
	}
	return s
}

// Next returns the next set of control numbers. The same sequence value
// feeds all three envelope levels, padded to each element's width.
func (s *SequentialControls) Next() ControlNumbers {
	n := s.counter.Add(1)
	return ControlNumbers{
		Interchange: fmt.Sprintf("%09d", n),
		Group:       fmt.Sprintf("%d", n),
		Transaction: fmt.Sprintf("%04d", n),
	}
}
