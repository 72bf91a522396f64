package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"battlebridge/internal/app/observe"
	"battlebridge/internal/app/ports"
)

// Recorder persists served snapshots as JSON documents.
type Recorder struct {
	Repo ports.ObservationRepository
	Now  func() time.Time
}

func (r Recorder) Record(ctx context.Context, snap observe.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("journal: encode snapshot: %w", err)
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return r.Repo.Append(ctx, ports.ObservationRecord{
		Version:    string(snap.Version),
		Phase:      snap.Phase,
		CapturedAt: now().UTC(),
		Payload:    payload,
	})
}
