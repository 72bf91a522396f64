package ports

import (
	"context"
	"time"
)

type ObservationRecord struct {
	ID         int64
	Version    string
	Phase      string
	CapturedAt time.Time
	Payload    []byte
}

// ObservationWindow bounds captured_at to [From, Until). A zero bound is open.
type ObservationWindow struct {
	From  time.Time
	Until time.Time
}

// Contains reports whether t falls inside the window.
func (w ObservationWindow) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.Until.IsZero() && !t.Before(w.Until) {
		return false
	}
	return true
}

type ObservationRepository interface {
	Append(ctx context.Context, rec ObservationRecord) error
	// ListRecent returns up to limit records inside window, newest first.
	// The window is applied before the limit. It returns ErrNotFound when
	// no record matches.
	ListRecent(ctx context.Context, window ObservationWindow, limit int) ([]ObservationRecord, error)
}
