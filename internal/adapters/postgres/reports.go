package postgres

import (
	"context"
	"encoding/json"
	"time"

	"securereport/internal/domain"
)

// Row mapping is explicit on both sides of the boundary: the jsonb media
// column and the two coordinate columns are converted here, never leaked as
// raw driver types into the domain.

const reportColumns = `id, anonymous_user_id, category, description, longitude, latitude, address_reference, media, status, created_at, updated_at`

func (db *DB) Insert(ctx context.Context, r *domain.Report) error {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	media, err := json.Marshal(r.Media)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO reports (id, anonymous_user_id, category, description, longitude, latitude, address_reference, media, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, r.ID, r.AnonymousUserID, string(r.Category), r.Description,
		r.Location.Coordinates[0], r.Location.Coordinates[1],
		r.AddressReference, media, string(r.Status), r.CreatedAt, r.UpdatedAt)
	return translate(err)
}

func (db *DB) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	row := db.Pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	r, err := scanReport(row)
	if err != nil {
		return nil, translate(err)
	}
	return r, nil
}

func (db *DB) ListByUser(ctx context.Context, anonymousUserID string) ([]domain.Report, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	rows, err := db.Pool.Query(ctx, `
		SELECT `+reportColumns+` FROM reports
		WHERE anonymous_user_id = $1
		ORDER BY created_at DESC
	`, anonymousUserID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	return collectReports(rows)
}

func (db *DB) ListAll(ctx context.Context) ([]domain.Report, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	rows, err := db.Pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	return collectReports(rows)
}

// UpdateStatus is a single UPDATE ... RETURNING so competing callers
// serialize in the database and never observe a torn status/updated_at pair.
func (db *DB) UpdateStatus(ctx context.Context, id string, status domain.Status, now time.Time) (*domain.Report, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	row := db.Pool.QueryRow(ctx, `
		UPDATE reports SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+reportColumns+`
	`, id, string(status), now)
	r, err := scanReport(row)
	if err != nil {
		return nil, translate(err)
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var (
		r        domain.Report
		category string
		status   string
		lng, lat float64
		media    []byte
	)
	if err := row.Scan(&r.ID, &r.AnonymousUserID, &category, &r.Description,
		&lng, &lat, &r.AddressReference, &media, &status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.Category = domain.Category(category)
	r.Status = domain.Status(status)
	r.Location = domain.NewLocationPoint(lng, lat)
	r.Media = []domain.MediaItem{}
	if len(media) > 0 {
		if err := json.Unmarshal(media, &r.Media); err != nil {
			return nil, err
		}
	}
	if r.Media == nil {
		r.Media = []domain.MediaItem{}
	}
	return &r, nil
}

type reportRows interface {
	rowScanner
	Next() bool
	Err() error
}

func collectReports(rows reportRows) ([]domain.Report, error) {
	out := []domain.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return out, nil
}
