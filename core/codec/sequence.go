package codec

import "sync/atomic"

// Sequence issues per-session packet sequence numbers. The zero value is
// ready to use and the first call to Next returns 1.
//
// The wire field is 16 bits; the counter itself is wider and Next truncates,
// so 65535 is followed by 0.
type Sequence struct {
	n atomic.Uint32
}

// Next returns the next sequence number. Safe for concurrent use.
func (s *Sequence) Next() uint16 {
	return uint16(s.n.Add(1))
}
