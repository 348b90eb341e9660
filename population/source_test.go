package population

import "fmt"

// sequence replays fixed draws and panics when exhausted so tests catch
// unexpected extra draws
type sequence struct {
	values []float64
	pos    int
}

func newSequence(values ...float64) *sequence {
	return &sequence{values: values}
}

func (s *sequence) Float64() float64 {
	if s.pos >= len(s.values) {
		panic(fmt.Sprintf("sequence exhausted after %d draws", len(s.values)))
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

func (s *sequence) remaining() int {
	return len(s.values) - s.pos
}
