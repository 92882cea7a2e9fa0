package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type syncStateRepo struct {
	db *sql.DB
	q  queries
}

func (r *syncStateRepo) Get(ctx context.Context) (*SyncState, error) {
	state, err := r.get(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.db.ExecContext(ctx, r.q.insertSyncState); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return &SyncState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return state, nil
}

func (r *syncStateRepo) get(ctx context.Context) (*SyncState, error) {
	var state SyncState
	err := r.db.QueryRowContext(ctx, r.q.getSyncState).Scan(
		&state.BackfillComplete,
		&state.BackfillWatermark,
		&state.LastSync,
	)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *syncStateRepo) MarkBackfillComplete(ctx context.Context) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, r.q.markBackfillComplete); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *syncStateRepo) UpdateBackfillWatermark(ctx context.Context, watermark time.Time) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, r.q.updateBackfillWatermark, watermark); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *syncStateRepo) UpdateLastSync(ctx context.Context, syncTime time.Time) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, r.q.updateLastSync, syncTime); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *syncStateRepo) ensure(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.q.insertSyncState); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
