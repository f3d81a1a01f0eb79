package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taninigeria-aa/mda-hr/internal/domain/promotion"
	"github.com/taninigeria-aa/mda-hr/internal/platform/config"
	"github.com/taninigeria-aa/mda-hr/internal/platform/metrics"
)

const JobFactsRefresh = "facts_refresh"

// Service runs background work through a single worker and records every
// run in the job_runs table.
type Service struct {
	DB         *pgxpool.Pool
	Cfg        config.Config
	Promotions *promotion.Service
	Collector  *metrics.Collector
	queue      chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, cfg config.Config, promotions *promotion.Service, collector *metrics.Collector) *Service {
	return &Service{
		DB:         db,
		Cfg:        cfg,
		Promotions: promotions,
		Collector:  collector,
		queue:      make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.FactsRefreshInterval > 0 {
		go s.scheduleFactsRefresh(ctx, s.Cfg.FactsRefreshInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1,$2)
    RETURNING id
  `, j.Type, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	if s.Collector != nil {
		s.Collector.RecordJob(err != nil)
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, details_json = $2, completed_at = now()
      WHERE id = $3
    `, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return details, err
}

func (s *Service) scheduleFactsRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EnqueueFactsRefresh()
		}
	}
}

// EnqueueFactsRefresh recomputes the cached derived facts for the whole
// workforce. Facts drift as calendar time passes even when no record
// changes, so this runs on a schedule as well as on demand.
func (s *Service) EnqueueFactsRefresh() {
	s.Enqueue(JobFactsRefresh, func(ctx context.Context) (any, error) {
		refreshed, err := s.Promotions.RefreshAllFacts(ctx, time.Now().UTC())
		return map[string]any{"employeesRefreshed": refreshed}, err
	})
}
