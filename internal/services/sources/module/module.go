// Package module wires the sources worker service and exposes its checker port
package module

import (
	"credscan/internal/modkit"
	"credscan/internal/modkit/httpkit"
	"credscan/internal/services/sources/domain"
	"credscan/internal/services/sources/provider"
	"credscan/internal/services/sources/service"
)

// Module defines the sources worker module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the sources worker module with its ports
// providers without a key stay unconfigured, a fully keyless setup falls back
// to the deterministic mock records
func New(deps modkit.Deps, overrides Options) *Module {
	// Load defaults, then apply non-zero overrides
	opts := FromConfig(deps.Cfg)

	if overrides.FactCheckKey != "" {
		opts.FactCheckKey = overrides.FactCheckKey
	}
	if overrides.NewsKey != "" {
		opts.NewsKey = overrides.NewsKey
	}
	if overrides.Timeout != 0 {
		opts.Timeout = overrides.Timeout
	}
	if overrides.DisableMock {
		opts.DisableMock = true
	}

	var providers []domain.Provider
	if opts.FactCheckKey != "" {
		providers = append(providers, provider.NewFactCheck(opts.FactCheckKey, "", nil))
	}
	if opts.NewsKey != "" {
		providers = append(providers, provider.NewNews(opts.NewsKey, "", nil))
	}

	svc := service.New(providers, service.Config{
		Timeout:     opts.Timeout,
		DisableMock: opts.DisableMock,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Checker: svc}
	return m
}

// Ports returns the module ports (Checker)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "sources" }

// Prefix returns the module config prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
