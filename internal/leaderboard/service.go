// Package leaderboard validates score submissions, tags them with the
// submitter's region and keeps the append-only score table.
package leaderboard

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/geo"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// DefaultSize is the number of rows returned by Top.
const DefaultSize = 50

// Store is the persistence the service needs. *storage.Store implements it.
type Store interface {
	SaveScore(ctx context.Context, e storage.Entry) (int64, error)
	TopScores(ctx context.Context, limit int) ([]storage.Entry, error)
	AllScores(ctx context.Context) ([]storage.Entry, error)
	Stats(ctx context.Context) (storage.Stats, error)
}

// Row is a public leaderboard line.
type Row struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	Score  int    `json:"score"`
}

// Service is safe for concurrent use.
type Service struct {
	store      Store
	locator    geo.Locator
	geoTimeout time.Duration
	size       int
	logger     *log.Logger

	mu        sync.RWMutex
	listeners []func(Row)
}

// Option configures a Service.
type Option func(*Service)

// WithLocator geolocates submitters with loc, each lookup bounded by timeout.
func WithLocator(loc geo.Locator, timeout time.Duration) Option {
	return func(s *Service) {
		s.locator = loc
		s.geoTimeout = timeout
	}
}

// WithSize sets the number of rows returned by Top.
func WithSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.size = n
		}
	}
}

// WithLogger sets the logger used for geolocation and storage failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a service over store. Without WithLocator every row is
// recorded with region geo.Unknown.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		locator: geo.Disabled{},
		size:    DefaultSize,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnSubmit registers fn to be called with every accepted row.
func (s *Service) OnSubmit(fn func(Row)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Submit validates sub, resolves the region of ip and appends a row.
// Validation failures return *ValidationError and write nothing; storage
// failures return *StorageError.
func (s *Service) Submit(ctx context.Context, sub Submission, ip string) (Row, error) {
	if err := sub.Validate(); err != nil {
		return Row{}, err
	}

	row := Row{
		Name:   strings.TrimSpace(sub.Name),
		Score:  sub.Score,
		Region: geo.RegionOrUnknown(ctx, s.locator, ip, s.geoTimeout, s.logger),
	}

	_, err := s.store.SaveScore(ctx, storage.Entry{
		Name:   row.Name,
		Score:  row.Score,
		IP:     ip,
		Region: row.Region,
	})
	if err != nil {
		s.logger.Error("cannot save score", "name", row.Name, "score", row.Score, "err", err)
		return Row{}, &StorageError{Op: "save", Err: err}
	}

	s.logger.Info("score submitted", "name", row.Name, "score", row.Score, "region", row.Region)

	s.mu.RLock()
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(row)
	}

	return row, nil
}

// Top returns the best rows, highest score first.
func (s *Service) Top(ctx context.Context) ([]Row, error) {
	entries, err := s.store.TopScores(ctx, s.size)
	if err != nil {
		return nil, &StorageError{Op: "top", Err: err}
	}
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{Name: e.Name, Region: e.Region, Score: e.Score})
	}
	return rows, nil
}

// All returns every stored row, most recent first.
func (s *Service) All(ctx context.Context) ([]storage.Entry, error) {
	entries, err := s.store.AllScores(ctx)
	if err != nil {
		return nil, &StorageError{Op: "all", Err: err}
	}
	return entries, nil
}

// Stats returns aggregates over all rows.
func (s *Service) Stats(ctx context.Context) (storage.Stats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return stats, &StorageError{Op: "stats", Err: err}
	}
	return stats, nil
}
