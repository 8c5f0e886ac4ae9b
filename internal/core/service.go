package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/config"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/rules"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"
)

// maxStoredRuns bounds the in-memory run registry. Old runs are evicted
// first; the registry only exists so the operator can re-download a report
// without re-uploading.
const maxStoredRuns = 50

// Service runs workbook validations and keeps finished runs around for
// report downloads. Each run is independent: the workbook is loaded,
// checked and discarded with no shared mutable state between runs.
type Service struct {
	cfg     *config.Config
	limiter *RunLimiter
	cache   *resultCache // nil when caching is disabled

	mu       sync.RWMutex
	runs     map[string]*Result
	runOrder []string
}

// NewService creates a Service from configuration.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		limiter: NewRunLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		runs:    make(map[string]*Result),
	}
	if cfg.Cache.Enabled {
		s.cache = newResultCache(cfg.Cache.MaxEntries)
	}
	return s
}

// Validate loads the uploaded workbook bytes, verifies the required sheets
// and runs the rule engine. On success the run is registered under a fresh
// run ID for later report download.
//
// Load failures surface as *xlsx.LoadError, absent sheets as
// *xlsx.MissingSheetsError. A workbook with zero issues is a success with
// an empty record list.
func (s *Service) Validate(ctx context.Context, fileName string, data []byte) (*Result, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	start := time.Now()
	records, cached, err := s.run(data)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		FileName:  fileName,
		Records:   records,
		Cached:    cached,
		Duration:  time.Since(start),
		CreatedAt: time.Now(),
	}
	s.store(result)

	slog.Info("validation run finished",
		"run_id", result.RunID,
		"file", fileName,
		"issues", result.IssueCount(),
		"cached", cached,
		"duration", result.Duration,
	)
	return result, nil
}

// run executes load + sheet check + rule engine, consulting the cache
// first when enabled.
func (s *Service) run(data []byte) ([]rules.ErrorRecord, bool, error) {
	var key string
	if s.cache != nil {
		key = ContentKey(data)
		if records, ok := s.cache.get(key); ok {
			return records, true, nil
		}
	}

	wb, err := xlsx.Parse(data)
	if err != nil {
		return nil, false, err
	}
	if err := xlsx.CheckRequiredSheets(wb, rules.RequiredSheets); err != nil {
		return nil, false, err
	}

	records := rules.Run(wb)
	if s.cache != nil {
		s.cache.put(key, records)
	}
	return records, false, nil
}

// Run returns a previously finished run by ID.
func (s *Service) Run(runID string) (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[runID]
	return r, ok
}

// LimiterStatus returns the current run limiter state for monitoring.
func (s *Service) LimiterStatus() RunLimiterStatus {
	return s.limiter.Status()
}

// WaitForRuns blocks until in-flight validations finish, for graceful
// shutdown.
func (s *Service) WaitForRuns(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

func (s *Service) store(r *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.runOrder) >= maxStoredRuns {
		oldest := s.runOrder[0]
		s.runOrder = s.runOrder[1:]
		delete(s.runs, oldest)
	}
	s.runs[r.RunID] = r
	s.runOrder = append(s.runOrder, r.RunID)
}
