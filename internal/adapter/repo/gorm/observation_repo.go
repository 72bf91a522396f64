package gormrepo

import (
	"context"

	"battlebridge/internal/adapter/repo/gorm/model"
	"battlebridge/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ObservationRepo struct {
	db *gorm.DB
}

func NewObservationRepo(db *gorm.DB) ObservationRepo {
	return ObservationRepo{db: db}
}

func (r ObservationRepo) Append(ctx context.Context, rec ports.ObservationRecord) error {
	row := model.BridgeObservation{
		SchemaVersion: rec.Version,
		Phase:         rec.Phase,
		CapturedAt:    rec.CapturedAt,
		Payload:       string(rec.Payload),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r ObservationRepo) ListRecent(ctx context.Context, window ports.ObservationWindow, limit int) ([]ports.ObservationRecord, error) {
	rows := []model.BridgeObservation{}
	query := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "captured_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if !window.From.IsZero() {
		query = query.Where("captured_at >= ?", window.From)
	}
	if !window.Until.IsZero() {
		query = query.Where("captured_at < ?", window.Until)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.ObservationRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.ObservationRecord{
			ID:         row.ID,
			Version:    row.SchemaVersion,
			Phase:      row.Phase,
			CapturedAt: row.CapturedAt,
			Payload:    []byte(row.Payload),
		})
	}
	return out, nil
}

var _ ports.ObservationRepository = ObservationRepo{}
