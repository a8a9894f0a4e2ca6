package util

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

var (
	ErrEmptyUpdate      = errors.New("no updatable field provided")
	ErrColumnNotAllowed = errors.New("column is not updatable")
)

// TouchUpdatedAt keeps updated_at strictly increasing even when two writes
// land within the same clock tick.
const TouchUpdatedAt = "updated_at = GREATEST(current_timestamp, updated_at + interval '1 microsecond')"

// BuildPartialUpdate builds an UPDATE that sets only the columns present in
// changes. A nil value sets the column to NULL. updated_at is never taken from
// changes and is always refreshed.
func BuildPartialUpdate[E any](
	db bun.IDB,
	model *E,
	id int64,
	changes map[string]any,
	allowed []string,
) (*bun.UpdateQuery, error) {
	permitted := make(map[string]struct{}, len(allowed))
	for _, column := range allowed {
		permitted[column] = struct{}{}
	}
	for column := range changes {
		if column == "updated_at" {
			continue
		}
		if _, ok := permitted[column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotAllowed, column)
		}
	}

	query := db.NewUpdate().Model(model)
	applied := 0
	// allow-list order keeps the SET clause stable
	for _, column := range allowed {
		value, ok := changes[column]
		if !ok {
			continue
		}
		query = query.Set("? = ?", bun.Ident(column), value)
		applied++
	}
	if applied == 0 {
		return nil, ErrEmptyUpdate
	}

	return query.
		Set(TouchUpdatedAt).
		Where("id = ?", id).
		Returning("*"), nil
}

// PartialUpdate applies changes to the row with the given id and returns the
// updated row. A missing row yields sql.ErrNoRows.
func PartialUpdate[E any](
	ctx context.Context,
	db bun.IDB,
	id int64,
	changes map[string]any,
	allowed []string,
) (*E, error) {
	model := new(E)
	query, err := BuildPartialUpdate(db, model, id, changes, allowed)
	if err != nil {
		return nil, err
	}
	if err := query.Scan(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}
