// Package service owns the loaded country collection and answers the
// queries the HTTP API needs.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/fifastats/internal/adapters/loader"
	"github.com/okian/fifastats/internal/domain/stats"
	"github.com/okian/fifastats/internal/domain/types"
	"github.com/okian/fifastats/pkg/logger"
	"github.com/okian/fifastats/pkg/metrics"
)

// Service serves queries over the current collection. Reload swaps in a
// freshly loaded collection; a collection is never mutated once built.
type Service struct {
	mu sync.RWMutex

	// Configuration
	dataPath string
	charset  string
	sheet    string

	// State
	collection *stats.Collection
	loadedAt   time.Time
	started    bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPath sets the dataset file to load.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithCharset sets the text encoding used for CSV datasets.
func WithCharset(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.charset = name
		}
	}
}

// WithSheet selects the workbook sheet for spreadsheet datasets.
func WithSheet(name string) Option {
	return func(s *Service) {
		s.sheet = name
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Nothing is loaded until Start.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath: "AllTimeRankingByCountry.csv",
		charset:  "utf-8",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset. Calling it on a started service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting stats service", logger.String("data_path", s.dataPath))

	c, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.swap(c)
	s.started = true

	s.logger.Info(ctx, "stats service started", logger.Int("countries", c.Len()))
	return nil
}

// Stop releases the collection. A stopped service answers ErrNotStarted.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.collection = nil
	s.started = false
	metrics.UpdateDatasetRecords(0)
	s.logger.Info(context.Background(), "stats service stopped")
}

// Reload reads the dataset again and replaces the served collection. On
// failure the previous collection stays in place. A Stop that lands while
// the file is being read wins and Reload reports ErrNotStarted.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return ErrNotStarted
	}

	// Load outside the lock so readers are not blocked by file I/O.
	c, err := s.load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "reload failed, keeping previous dataset", logger.Error(err))
		return err
	}

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.swap(c)
	s.mu.Unlock()

	s.logger.Info(ctx, "dataset reloaded", logger.Int("countries", c.Len()))
	return nil
}

func (s *Service) load(ctx context.Context) (*stats.Collection, error) {
	c, err := loader.LoadCollection(ctx, s.dataPath,
		loader.WithCharset(s.charset),
		loader.WithSheet(s.sheet),
		loader.WithLogger(s.logger.Named("loader")),
	)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.dataPath, err)
	}
	return c, nil
}

// swap must be called with mu held for writing.
func (s *Service) swap(c *stats.Collection) {
	s.collection = c
	s.loadedAt = time.Now()
	metrics.UpdateDatasetRecords(c.Len())
	metrics.MarkDatasetLoaded()
}

func (s *Service) current() (*stats.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.collection, nil
}

// Collection returns the collection currently served.
func (s *Service) Collection() (*stats.Collection, error) {
	return s.current()
}

// Country returns the summary of the first country named exactly name.
func (s *Service) Country(ctx context.Context, name string) (types.CountrySummary, error) {
	c, err := s.current()
	if err != nil {
		return types.CountrySummary{}, err
	}

	start := time.Now()
	rec, ok := c.FindByName(name)
	observe("find_by_name", ok, start)
	if !ok {
		s.logger.Debug(ctx, "country not found", logger.String("name", name))
		return types.CountrySummary{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return rec.Summary(), nil
}

// Countries returns every summary in dataset order.
func (s *Service) Countries(ctx context.Context) ([]types.CountrySummary, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}

	records := c.Records()
	out := make([]types.CountrySummary, len(records))
	for i, r := range records {
		out[i] = r.Summary()
	}
	return out, nil
}

// Top returns the leading country for m.
func (s *Service) Top(ctx context.Context, m stats.Metric) (types.CountrySummary, error) {
	m, err := stats.ParseMetric(string(m))
	if err != nil {
		return types.CountrySummary{}, err
	}
	c, err := s.current()
	if err != nil {
		return types.CountrySummary{}, err
	}

	query := "top_by_" + string(m)
	start := time.Now()
	rec, ok := c.TopBy(m)
	observe(query, ok, start)
	if !ok {
		return types.CountrySummary{}, ErrEmpty
	}
	s.logger.Debug(ctx, "top query", logger.String("metric", string(m)), logger.String("country", rec.Name()))
	return rec.Summary(), nil
}

func observe(query string, hit bool, start time.Time) {
	metrics.RecordQuery(query, hit)
	metrics.RecordQueryLatency(query, float64(time.Since(start).Microseconds())/1000)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]interface{}{
		"started":  s.started,
		"dataPath": s.dataPath,
		"charset":  s.charset,
	}
	if s.sheet != "" {
		out["sheet"] = s.sheet
	}
	if s.started {
		out["countries"] = s.collection.Len()
		out["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	}
	return out
}
