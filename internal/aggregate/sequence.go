package aggregate

import "fmt"

// Sequence hands out the 8-digit, 1-based record sequence numbers required
// by Publication 1220. A Sequence is scoped to a single conversion run and
// must not be shared across concurrent conversions; Run creates its own.
type Sequence struct {
	counter int
}

// NewSequence returns a Sequence starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next increments the counter and returns it zero-padded to 8 digits.
func (s *Sequence) Next() string {
	s.counter++
	return fmt.Sprintf("%08d", s.counter)
}

// Current returns the last number handed out, 0 if none yet.
func (s *Sequence) Current() int {
	return s.counter
}
