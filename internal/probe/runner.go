// Package probe checks a running server against the reference dataset.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/scouthub/internal/domain/search"
	"github.com/okian/scouthub/internal/domain/types"
	"github.com/okian/scouthub/pkg/logger"
)

// Report is the outcome of a probe run.
type Report struct {
	RunID    string
	Boards   []types.Leaderboard
	Searches map[string]search.Results
	Checks   []Check
	Duration time.Duration
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// Run checks health, fetches every leaderboard and search concurrently and
// verifies the responses. The report is returned even when a check fails.
func Run(ctx context.Context, config *Config) (*Report, error) {
	config.normalize()
	start := time.Now()
	report := &Report{
		RunID:    uuid.NewString(),
		Searches: make(map[string]search.Results, len(config.Queries)),
	}
	log := logger.Get().Named("probe")
	log.Info(ctx, "starting probe",
		logger.String("baseURL", config.BaseURL),
		logger.String("runID", report.RunID),
		logger.Int("queries", len(config.Queries)))

	client := newHTTPClient(config.BaseURL, report.RunID, config.Timeout)

	if err := checkHealth(ctx, client); err != nil {
		return report, err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var boards []types.Leaderboard
		if err := client.getJSON(gctx, "/leaderboards", &boards); err != nil {
			return fmt.Errorf("leaderboards: %w", err)
		}
		mu.Lock()
		report.Boards = boards
		mu.Unlock()
		return nil
	})
	for _, q := range config.Queries {
		q := q
		g.Go(func() error {
			var res search.Results
			if err := client.getJSON(gctx, "/search?q="+url.QueryEscape(q), &res); err != nil {
				return fmt.Errorf("search %q: %w", q, err)
			}
			mu.Lock()
			report.Searches[q] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	report.Checks = verify(report)
	report.Duration = time.Since(start)

	failed := report.Failed()
	for _, c := range failed {
		log.Warn(ctx, "check failed", logger.String("check", c.Name), logger.String("detail", c.Detail))
	}
	log.Info(ctx, "probe completed",
		logger.Int("checks", len(report.Checks)),
		logger.Int("failed", len(failed)),
		logger.Duration("duration", report.Duration))

	if len(failed) > 0 {
		return report, fmt.Errorf("%d of %d checks: %w", len(failed), len(report.Checks), ErrMismatch)
	}
	return report, nil
}

// checkHealth verifies the service is up. /healthz answers with the
// Prometheus exposition, so any 200 counts.
func checkHealth(ctx context.Context, client *httpClient) error {
	if _, err := client.get(ctx, "/healthz"); err != nil {
		if errors.Is(err, ErrUnexpectedStatus) {
			return fmt.Errorf("%w: %w", ErrUnhealthy, err)
		}
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	return nil
}
