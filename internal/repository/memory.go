package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
)

// memoryStore is a mutex-guarded in-memory history. The mutex is the
// serialization point for all access, so concurrent syncs and reads
// never race. Used by tests and as a no-database fallback.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]health.DailyRecord
	state   SyncState
}

// NewMemory returns a Repository backed entirely by process memory.
func NewMemory() *Repository {
	s := &memoryStore{records: make(map[string]health.DailyRecord)}
	return &Repository{
		Records:   &memoryRecordRepo{s: s},
		SyncState: &memorySyncStateRepo{s: s},
	}
}

type memoryRecordRepo struct {
	s *memoryStore
}

var _ DailyRecordRepository = (*memoryRecordRepo)(nil)

func (r *memoryRecordRepo) Upsert(_ context.Context, record *health.DailyRecord) error {
	r.s.mu.Lock()
	r.s.records[record.Day] = *record
	r.s.mu.Unlock()
	return nil
}

func (r *memoryRecordRepo) UpsertBatch(ctx context.Context, records []health.DailyRecord) error {
	for i := range records {
		if err := r.Upsert(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryRecordRepo) Get(_ context.Context, day string) (*health.DailyRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	record, ok := r.s.records[day]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *memoryRecordRepo) GetRange(_ context.Context, start, end string) ([]health.DailyRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var records []health.DailyRecord
	for day, record := range r.s.records {
		if day >= start && day <= end {
			records = append(records, record)
		}
	}
	slices.SortFunc(records, func(a, b health.DailyRecord) int {
		return strings.Compare(a.Day, b.Day)
	})
	return records, nil
}

func (r *memoryRecordRepo) Delete(_ context.Context, day string) error {
	r.s.mu.Lock()
	delete(r.s.records, day)
	r.s.mu.Unlock()
	return nil
}

type memorySyncStateRepo struct {
	s *memoryStore
}

var _ SyncStateRepository = (*memorySyncStateRepo)(nil)

func (r *memorySyncStateRepo) Get(_ context.Context) (*SyncState, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	state := r.s.state
	return &state, nil
}

func (r *memorySyncStateRepo) MarkBackfillComplete(_ context.Context) error {
	r.s.mu.Lock()
	r.s.state.BackfillComplete = true
	r.s.mu.Unlock()
	return nil
}

func (r *memorySyncStateRepo) UpdateBackfillWatermark(_ context.Context, watermark time.Time) error {
	r.s.mu.Lock()
	r.s.state.BackfillWatermark = &watermark
	r.s.mu.Unlock()
	return nil
}

func (r *memorySyncStateRepo) UpdateLastSync(_ context.Context, syncTime time.Time) error {
	r.s.mu.Lock()
	r.s.state.LastSync = &syncTime
	r.s.mu.Unlock()
	return nil
}
