// Package module wires the analysis worker service and exposes its analyzer port
package module

import (
	"context"

	"credscan/internal/modkit"
	"credscan/internal/modkit/httpkit"
	"credscan/internal/modkit/repokit"
	"credscan/internal/services/analysis/repo"
	"credscan/internal/services/analysis/service"
	srcdom "credscan/internal/services/sources/domain"
)

// Module defines the analysis worker module
type Module struct {
	deps  modkit.Deps
	svc   *service.Svc
	ports Ports
}

// New constructs the analysis worker module with its ports
// checker comes from the sources module via its exported port
func New(deps modkit.Deps, checker srcdom.CheckerPort, overrides Options) *Module {
	// Load defaults, then apply non-zero overrides
	opts := FromConfig(deps.Cfg)
	if overrides.CacheTTL != 0 {
		opts.CacheTTL = overrides.CacheTTL
	}

	// cap how long any analysis tx can hold the database
	db := repokit.WithBeginHooks(deps.PG, func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, `set local statement_timeout = '5s'`)
		return err
	})

	svc := service.New(db, repo.NewPG(), checker, deps.KV, service.Config{
		CacheTTL: opts.CacheTTL,
	})

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Analyzer: svc}
	return m
}

// EnsureSchema bootstraps the analysis tables, called once at startup
func (m *Module) EnsureSchema(ctx context.Context) error {
	return m.svc.Repo.EnsureSchema(ctx)
}

// Ports returns the module ports (Analyzer)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "analysis" }

// Prefix returns the module config prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
