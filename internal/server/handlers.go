package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
	"github.com/mohamadkhanafer/fitnessapp/internal/insights"
	"github.com/mohamadkhanafer/fitnessapp/internal/storage"
	"github.com/mohamadkhanafer/fitnessapp/internal/version"
	"github.com/mohamadkhanafer/fitnessapp/internal/xerrors"
	"github.com/mohamadkhanafer/fitnessapp/internal/xhttp"
	"github.com/mohamadkhanafer/fitnessapp/internal/xslog"
)

const (
	defaultWindowDays = insights.DefaultWindowDays
	defaultThreshold  = insights.DefaultBaselineThreshold

	maxWindowDays = 365
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	xhttp.WriteOK(w, healthResponse{Status: "ok", Version: version.Get()})
}

type recordsResponse struct {
	Days    int                  `json:"days"`
	Records []health.DailyRecord `json:"records"`
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := s.windowParam(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	records, err := s.sync.Window(ctx, days)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(
			xerrors.WithMessage("failed to load records"),
			xerrors.WithCause(err),
		))
		return
	}

	xhttp.WriteOK(w, recordsResponse{Days: days, Records: records})
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	day := r.PathValue("day")
	if _, err := time.Parse(health.DayLayout, day); err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(
			xerrors.WithMessage("invalid day (expected YYYY-MM-DD)"),
		))
		return
	}

	record, err := s.repo.Records.Get(ctx, day)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(
			xerrors.WithMessage("failed to load record"),
			xerrors.WithCause(err),
		))
		return
	}
	if record == nil {
		xerrors.WriteError(ctx, w, xerrors.NotFound(
			xerrors.WithMessage("no record for "+day),
		))
		return
	}

	xhttp.WriteOK(w, record)
}

type baselinesResponse struct {
	Days      int                `json:"days"`
	Threshold int                `json:"threshold"`
	Baselines health.BaselineSet `json:"baselines"`
}

func (s *Server) handleBaselines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := s.windowParam(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	records, err := s.sync.Window(ctx, days)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(
			xerrors.WithMessage("failed to load records"),
			xerrors.WithCause(err),
		))
		return
	}

	xhttp.WriteOK(w, baselinesResponse{
		Days:      days,
		Threshold: s.threshold,
		Baselines: insights.ComputeBaselines(records, s.threshold),
	})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	days, err := s.windowParam(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	records, err := s.sync.Window(ctx, days)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(
			xerrors.WithMessage("failed to load records"),
			xerrors.WithCause(err),
		))
		return
	}
	if len(records) == 0 {
		xerrors.WriteError(ctx, w, xerrors.NotFound(
			xerrors.WithMessage("no records available"),
		))
		return
	}

	today := records[len(records)-1].Day
	if snap := s.cachedSnapshot(ctx, today); snap != nil {
		xhttp.WriteOK(w, snap)
		return
	}

	snap := insights.Compute(records, s.threshold)
	if snap == nil {
		xerrors.WriteError(ctx, w, xerrors.NotFound(
			xerrors.WithMessage("no records available"),
		))
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snap); err != nil {
			logger.WarnContext(ctx, "failed to cache snapshot",
				xslog.Error(err),
				xslog.Day(snap.Day),
			)
		}
	}

	xhttp.WriteOK(w, snap)
}

type syncResponse struct {
	Days   int    `json:"days"`
	Status string `json:"status"`
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	days, err := s.windowParam(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	if err := s.sync.Sync(ctx, days); err != nil {
		xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(
			xerrors.WithMessage("sync failed"),
			xerrors.WithCause(err),
		))
		return
	}

	if s.cache != nil {
		today := s.sync.Today()
		if err := s.cache.Invalidate(ctx, today); err != nil && !errors.Is(err, storage.ErrNotFound) {
			logger.WarnContext(ctx, "failed to invalidate snapshot cache",
				xslog.Error(err),
				xslog.Day(today),
			)
		}
	}

	xhttp.WriteOK(w, syncResponse{Days: days, Status: "ok"})
}

// cachedSnapshot returns the cached snapshot for day, or nil on miss,
// cache errors, or when no cache is configured.
func (s *Server) cachedSnapshot(ctx context.Context, day string) *insights.Snapshot {
	if s.cache == nil {
		return nil
	}

	snap, err := s.cache.Get(ctx, day)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		xslog.FromContext(ctx).WarnContext(ctx, "snapshot cache read failed",
			xslog.Error(err),
			xslog.Day(day),
		)
		return nil
	}
	return snap
}

// windowParam parses the optional days query parameter, falling back to
// the configured window size.
func (s *Server) windowParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return s.windowDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > maxWindowDays {
		return 0, xerrors.BadRequest(
			xerrors.WithMessage("invalid days parameter (must be 1-365)"),
		)
	}
	return days, nil
}
