package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
	"github.com/mohamadkhanafer/fitnessapp/internal/storage"
)

type Repository struct {
	Records   DailyRecordRepository
	SyncState SyncStateRepository
}

func New(db *sql.DB, dialect storage.Dialect) *Repository {
	q := queriesFor(dialect)
	return &Repository{
		Records:   &recordRepo{db: db, q: q},
		SyncState: &syncStateRepo{db: db, q: q},
	}
}

type DailyRecordRepository interface {
	Upsert(ctx context.Context, record *health.DailyRecord) error
	UpsertBatch(ctx context.Context, records []health.DailyRecord) error
	Get(ctx context.Context, day string) (*health.DailyRecord, error)

	// GetRange returns records with start <= day <= end, ascending by
	// day. Days with no stored record are simply missing from the
	// result.
	GetRange(ctx context.Context, start, end string) ([]health.DailyRecord, error)
	Delete(ctx context.Context, day string) error
}

type SyncState struct {
	BackfillComplete  bool
	BackfillWatermark *time.Time
	LastSync          *time.Time
}

type SyncStateRepository interface {
	Get(ctx context.Context) (*SyncState, error)
	MarkBackfillComplete(ctx context.Context) error
	UpdateBackfillWatermark(ctx context.Context, watermark time.Time) error
	UpdateLastSync(ctx context.Context, syncTime time.Time) error
}
