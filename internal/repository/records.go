package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
)

type recordRepo struct {
	db *sql.DB
	q  queries
}

func (r *recordRepo) Upsert(ctx context.Context, record *health.DailyRecord) error {
	var sourcesJSON *string
	if len(record.Sources) > 0 {
		data, err := go_json.Marshal(record.Sources)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		s := string(data)
		sourcesJSON = &s
	}

	_, err := r.db.ExecContext(ctx, r.q.upsertRecord,
		record.Day,
		record.SleepMinutes,
		record.HRVMilli,
		record.RestingHeartRate,
		record.Steps,
		record.ActiveEnergyKcal,
		record.WorkoutMinutes,
		record.WorkoutCount,
		sourcesJSON,
	)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *recordRepo) UpsertBatch(ctx context.Context, records []health.DailyRecord) error {
	for i := range records {
		if err := r.Upsert(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *recordRepo) Get(ctx context.Context, day string) (*health.DailyRecord, error) {
	row := r.db.QueryRowContext(ctx, r.q.getRecord, day)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return record, nil
}

func (r *recordRepo) GetRange(ctx context.Context, start, end string) ([]health.DailyRecord, error) {
	rows, err := r.db.QueryContext(ctx, r.q.getRange, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []health.DailyRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return records, nil
}

func (r *recordRepo) Delete(ctx context.Context, day string) error {
	if _, err := r.db.ExecContext(ctx, r.q.deleteRecord, day); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*health.DailyRecord, error) {
	var (
		record      health.DailyRecord
		sourcesJSON *string
	)
	err := row.Scan(
		&record.Day,
		&record.SleepMinutes,
		&record.HRVMilli,
		&record.RestingHeartRate,
		&record.Steps,
		&record.ActiveEnergyKcal,
		&record.WorkoutMinutes,
		&record.WorkoutCount,
		&sourcesJSON,
	)
	if err != nil {
		return nil, err
	}

	if sourcesJSON != nil {
		var sources map[health.Metric]string
		if err := go_json.Unmarshal([]byte(*sourcesJSON), &sources); err != nil {
			return nil, err
		}
		record.Sources = sources
	}

	return &record, nil
}
