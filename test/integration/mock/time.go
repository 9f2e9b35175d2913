package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. After SetCurrentTime it keeps ticking from the
// given instant.
type Time struct {
	mu               sync.Mutex
	currentStartTime time.Time
	updatedAt        time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{
		currentStartTime: now,
		updatedAt:        now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}
