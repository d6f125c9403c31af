package service

import (
	"sync"
	"time"
)

// IDSource hands out record ids derived from the wall clock in milliseconds.
// Ids are strictly increasing even when several are issued in the same millisecond.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	return &IDSource{now: now}
}

// Next returns max(now in ms, previous id + 1).
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
