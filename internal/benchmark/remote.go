package benchmark

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"resumatch/internal/config"
	"resumatch/internal/errors"
)

// maxTableBytes bounds how much of a remote response is read.
const maxTableBytes = 1 << 20

// RemoteProvider serves benchmark tables fetched from a remote service. The
// fetch is guarded by a circuit breaker; while no table has been fetched, or
// after the source goes away, reads fall back to the static tables.
type RemoteProvider struct {
	url             string
	client          *http.Client
	refreshInterval time.Duration
	cb              *gobreaker.CircuitBreaker[Table]
	static          *Static
	logger          *errors.Logger

	mu      sync.RWMutex
	table   Table
	fetched bool

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewRemoteProvider creates a remote benchmark provider from configuration.
// Call Start to begin periodic refreshes.
func NewRemoteProvider(cfg config.RemoteBenchmarksConfig, logger *errors.Logger) *RemoteProvider {
	return &RemoteProvider{
		url:             cfg.URL,
		client:          &http.Client{Timeout: cfg.Timeout},
		refreshInterval: cfg.RefreshInterval,
		cb:              newTableBreaker(cfg.CircuitBreaker, logger),
		static:          NewStatic(),
		logger:          logger,
		stopChan:        make(chan struct{}),
	}
}

// newTableBreaker creates the circuit breaker guarding table fetches, or nil
// when the breaker is disabled
func newTableBreaker(cfg config.CircuitBreakerConfig, logger *errors.Logger) *gobreaker.CircuitBreaker[Table] {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "benchmark-remote",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
					"max_requests", cfg.MaxRequests,
					"failure_threshold", cfg.FailureThreshold)
			}
		},
	}

	return gobreaker.NewCircuitBreaker[Table](settings)
}

// Start fetches the table once and begins the periodic refresh loop. The
// initial fetch failure is logged, not fatal; the static tables cover until
// the source recovers.
func (p *RemoteProvider) Start(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil && p.logger != nil {
		p.logger.LogError(err, "Initial benchmark fetch failed, serving static tables")
	}

	go p.refreshLoop(ctx)
}

// Stop terminates the refresh loop
func (p *RemoteProvider) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}

func (p *RemoteProvider) refreshLoop(ctx context.Context) {
	interval := p.refreshInterval
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil && p.logger != nil {
				p.logger.Warn("Benchmark refresh failed", "error", err)
			}
		case <-p.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Refresh fetches the benchmark table through the circuit breaker and swaps
// it in. A failed refresh keeps the last good table.
func (p *RemoteProvider) Refresh(ctx context.Context) error {
	table, err := p.execute(func() (Table, error) {
		return p.fetch(ctx)
	})
	if err != nil {
		return errors.NewNetworkError(errors.ErrCodeBenchmarkFailed,
			"Failed to fetch benchmark table", err).WithContext("url", p.url)
	}

	p.mu.Lock()
	p.table = table
	p.fetched = true
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Info("Benchmark table refreshed",
			"url", p.url,
			"weight_industries", len(table.Weights),
			"reference_industries", len(table.References))
	}
	return nil
}

// execute runs fn with circuit breaker protection
func (p *RemoteProvider) execute(fn func() (Table, error)) (Table, error) {
	if p.cb == nil {
		// If breaker is disabled/nil, just execute the function directly
		return fn()
	}
	return p.cb.Execute(fn)
}

func (p *RemoteProvider) fetch(ctx context.Context) (Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Table{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Table{}, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("Failed to close benchmark response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return Table{}, fmt.Errorf("benchmark service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTableBytes))
	if err != nil {
		return Table{}, err
	}

	return parseTable(data)
}

func (p *RemoteProvider) Weights(industry string) Weights {
	p.mu.RLock()
	w, ok := p.table.Weights[normalize(industry)]
	p.mu.RUnlock()
	if ok {
		return w
	}
	return p.static.Weights(industry)
}

func (p *RemoteProvider) Reference(industry string) Reference {
	p.mu.RLock()
	r, ok := p.table.References[normalize(industry)]
	p.mu.RUnlock()
	if ok {
		return r
	}
	return p.static.Reference(industry)
}

func (p *RemoteProvider) Canonical(industry string) string {
	name := normalize(industry)
	p.mu.RLock()
	_, ok := p.table.Weights[name]
	p.mu.RUnlock()
	if ok {
		return name
	}
	return p.static.Canonical(industry)
}

// GetStats returns circuit breaker statistics for the stats endpoint
func (p *RemoteProvider) GetStats() map[string]any {
	if p.cb == nil {
		return map[string]any{
			"enabled": false,
		}
	}

	return map[string]any{
		"name":    p.cb.Name(),
		"state":   p.cb.State().String(),
		"counts":  p.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy returns true if the circuit breaker is in closed state
func (p *RemoteProvider) IsHealthy() bool {
	if p.cb == nil {
		return true // If no circuit breaker, consider it healthy
	}
	return p.cb.State() == gobreaker.StateClosed
}
