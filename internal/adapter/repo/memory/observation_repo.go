package memory

import (
	"context"
	"sort"

	"battlebridge/internal/app/ports"
)

type ObservationRepo struct {
	store *Store
}

func NewObservationRepo(store *Store) ObservationRepo {
	return ObservationRepo{store: store}
}

func (r ObservationRepo) Append(_ context.Context, rec ports.ObservationRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	rec.ID = r.store.nextID
	rec.Payload = append([]byte(nil), rec.Payload...)
	r.store.observations = append(r.store.observations, rec)
	if limit := r.store.observationCap; limit > 0 && len(r.store.observations) > limit {
		drop := len(r.store.observations) - limit
		r.store.observations = append([]ports.ObservationRecord(nil), r.store.observations[drop:]...)
	}
	return nil
}

func (r ObservationRepo) ListRecent(_ context.Context, window ports.ObservationWindow, limit int) ([]ports.ObservationRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.ObservationRecord, 0, len(r.store.observations))
	for _, rec := range r.store.observations {
		if window.Contains(rec.CapturedAt) {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CapturedAt.Equal(out[j].CapturedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	for i := range out {
		out[i].Payload = append([]byte(nil), out[i].Payload...)
	}
	return out, nil
}

var _ ports.ObservationRepository = ObservationRepo{}
