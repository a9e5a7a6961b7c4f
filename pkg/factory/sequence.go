package factory

import "sync/atomic"

// Sequence is a monotonically increasing counter owned by the root of a
// factory lineage.
type Sequence struct {
	n atomic.Int64
}

// Next increments the counter and returns the new value. The first call
// returns 1.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}
