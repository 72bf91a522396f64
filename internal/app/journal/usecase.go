package journal

import (
	"context"
	"errors"
	"time"

	"battlebridge/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid journal request")

const (
	defaultLimit = 50
	maxLimit     = 500
)

type UseCase struct {
	Repo ports.ObservationRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || req.CapturedFrom < 0 || req.CapturedTo < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.CapturedFrom > 0 && req.CapturedTo > 0 && req.CapturedFrom > req.CapturedTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	records, err := u.Repo.ListRecent(ctx, windowOf(req), limit)
	if err != nil {
		return Response{}, err
	}
	out := make([]Observation, 0, len(records))
	for _, rec := range records {
		out = append(out, Observation{
			ID:         rec.ID,
			Version:    rec.Version,
			Phase:      rec.Phase,
			CapturedAt: rec.CapturedAt,
			Snapshot:   rec.Payload,
		})
	}
	return Response{Observations: out}, nil
}

// windowOf maps the inclusive unix-second bounds of a request onto a
// half-open repository window.
func windowOf(req Request) ports.ObservationWindow {
	var w ports.ObservationWindow
	if req.CapturedFrom > 0 {
		w.From = time.Unix(req.CapturedFrom, 0)
	}
	if req.CapturedTo > 0 {
		w.Until = time.Unix(req.CapturedTo+1, 0)
	}
	return w
}
