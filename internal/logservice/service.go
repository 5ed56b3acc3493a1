// Package logservice implements the generic collect/list/analyze
// operations shared by the three communication services.
package logservice

import (
	"context"
	"fmt"
	"time"

	"github.com/haldor/keepintouch/internal/apperr"
	"github.com/haldor/keepintouch/internal/insight"
	"github.com/haldor/keepintouch/internal/models"
	"github.com/haldor/keepintouch/internal/storage"
)

// Service coordinates schema validation, the record store, and the
// insight analyzer for one service.
type Service struct {
	store    storage.Store
	schema   models.Schema
	analyzer *insight.Analyzer
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock used by the analyzer (for tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.analyzer = insight.New(s.schema.Verb, now)
	}
}

// NewService creates a Service for the given schema.
func NewService(store storage.Store, schema models.Schema, opts ...Option) *Service {
	s := &Service{
		store:    store,
		schema:   schema,
		analyzer: insight.New(schema.Verb, time.Now),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schema returns the service's record schema.
func (s *Service) Schema() models.Schema {
	return s.schema
}

// Collect validates rec against the schema and appends it to the
// store. Validation failures wrap apperr.ErrInvalidRecord; the record
// is stored exactly as submitted, extra fields included.
func (s *Service) Collect(_ context.Context, rec models.Record) error {
	if err := s.schema.Validate(rec); err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrInvalidRecord, err)
	}
	if _, err := s.store.Append(rec); err != nil {
		return err
	}
	return nil
}

// List returns the full record log in insertion order.
func (s *Service) List(_ context.Context) ([]models.Record, error) {
	recs, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return nonNilSlice(recs), nil
}

// Analyze runs the inactivity analysis over the current log.
func (s *Service) Analyze(_ context.Context) ([]string, error) {
	recs, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return s.analyzer.Analyze(recs)
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
