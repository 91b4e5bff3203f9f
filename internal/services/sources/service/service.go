// Package service aggregates external source lookups into one fact check pass
package service

import (
	"context"
	"sync"
	"time"

	"credscan/internal/platform/logger"
	"credscan/internal/services/sources/domain"
	"credscan/internal/services/sources/provider"
)

// DefaultTimeout bounds each provider lookup
const DefaultTimeout = 5 * time.Second

// Config controls provider lookup behavior
type Config struct {
	// Timeout applies per provider, not to the whole pass
	Timeout time.Duration

	// DisableMock turns off the canned fallback when no provider returns records
	DisableMock bool
}

// Service fans content out to every configured provider and merges the results
type Service struct {
	providers []domain.Provider
	cfg       Config
}

// New constructs the checker service
// zero providers is valid, the pass then always falls back to mock records
func New(providers []domain.Provider, cfg Config) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Service{providers: providers, cfg: cfg}
}

// CheckFacts runs every provider concurrently under its own timeout
// provider failures are logged and skipped, they never fail the pass
// results keep configuration order so responses stay stable across runs
func (s *Service) CheckFacts(ctx context.Context, text string) (domain.Result, error) {
	slots := make([][]domain.Source, len(s.providers))

	var wg sync.WaitGroup
	for i, p := range s.providers {
		wg.Add(1)
		go func(i int, p domain.Provider) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
			defer cancel()

			srcs, err := p.Lookup(pctx, text)
			if err != nil {
				logger.C(ctx).Warn().Err(err).Str("provider", p.Name()).Msg("source lookup failed")
				return
			}
			slots[i] = srcs
		}(i, p)
	}
	wg.Wait()

	var all []domain.Source
	for _, srcs := range slots {
		all = append(all, srcs...)
	}

	if len(all) == 0 && !s.cfg.DisableMock {
		all = provider.Mock(text)
	}
	return domain.Collect(all), nil
}
