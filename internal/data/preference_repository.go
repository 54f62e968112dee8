package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotInteger is returned by GetInt when the stored value does not parse as an integer.
var ErrNotInteger = errors.New("preference is not an integer")

// PreferenceRepository handles database operations for application preferences.
type PreferenceRepository struct {
	DB *sqlx.DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// Get returns the value stored under key. found is false when the key is unset.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (value string, found bool, err error) {
	err = r.DB.GetContext(ctx, &value, `SELECT value FROM preferences WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil // Not found is not an error
		}
		return "", false, fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return value, true, nil
}

// GetInt returns the integer stored under key. found is false when the key is unset.
func (r *PreferenceRepository) GetInt(ctx context.Context, key string) (int, bool, error) {
	raw, found, err := r.Get(ctx, key)
	if err != nil || !found {
		return 0, found, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %q=%q: %v", ErrNotInteger, key, raw, err)
	}
	return n, true, nil
}

// Set stores value under key, replacing any previous value.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.DB.ExecContext(ctx, upsertPreferenceQuery, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}
