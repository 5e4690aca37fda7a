package search

// Sequencer stamps outgoing search requests so that only the response to
// the newest one is applied. A slow response to an older query arriving
// after a newer one is dropped.
type Sequencer struct {
	issued uint64
}

// Next returns the sequence number for a new request.
func (s *Sequencer) Next() uint64 {
	s.issued++
	return s.issued
}

// Accept reports whether the response stamped seq belongs to the newest
// issued request.
func (s *Sequencer) Accept(seq uint64) bool {
	return seq != 0 && seq == s.issued
}
