package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"journalfetch/internal/preference"
)

// PreferencePostgres is a PostgreSQL implementation of preference.Store.
// It uses database/sql with parameterized queries against the preferences table.
type PreferencePostgres struct {
	db *sql.DB
}

// NewPreferencePostgres creates a new PreferencePostgres store.
func NewPreferencePostgres(db *sql.DB) *PreferencePostgres {
	return &PreferencePostgres{db: db}
}

var _ preference.Store = (*PreferencePostgres)(nil)

// GetSuppressPopup reads the dontShowPopup row; a missing row means false.
func (r *PreferencePostgres) GetSuppressPopup(ctx context.Context) (bool, error) {
	const q = `SELECT value FROM preferences WHERE key = $1`

	var value string
	if err := r.db.QueryRowContext(ctx, q, preference.KeyDontShowPopup).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", preference.ErrPreferenceIO, err)
	}
	return preference.ParseFlag(value), nil
}

// SetSuppressPopup upserts the dontShowPopup row.
func (r *PreferencePostgres) SetSuppressPopup(ctx context.Context, suppress bool) error {
	const q = `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, q, preference.KeyDontShowPopup, preference.FormatFlag(suppress)); err != nil {
		return fmt.Errorf("%w: %w", preference.ErrPreferenceIO, err)
	}
	return nil
}
