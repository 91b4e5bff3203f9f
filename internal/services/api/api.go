// Package api provides the HTTP API for the application
package api

import (
	"context"

	"credscan/internal/platform/config"
	"credscan/internal/platform/logger"
	phttp "credscan/internal/platform/net/http"
	"credscan/internal/platform/store"

	"credscan/internal/modkit"
	"credscan/internal/modkit/httpkit"
	"credscan/internal/modkit/module"
	"credscan/internal/modkit/swaggerkit"

	metamod "credscan/internal/services/api/meta/module"
	scansmod "credscan/internal/services/api/scans/module"

	// Worker modules (own the Checker and Analyzer ports)
	analysismod "credscan/internal/services/analysis/module"
	sourcesmod "credscan/internal/services/sources/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		KV:  opt.Store.KV,
	}

	// Construct the WORKER sources module first and extract its Checker port
	sources := sourcesmod.New(deps, sourcesmod.FromConfig(deps.Cfg))
	checker := module.MustPortsOf[sourcesmod.Ports](sources).Checker

	// The analysis worker consumes the Checker and owns the Analyzer port
	analysis := analysismod.New(deps, checker, analysismod.FromConfig(deps.Cfg))
	if err := analysis.EnsureSchema(context.Background()); err != nil {
		opt.Logger.Panic().Err(err).Msg("analysis schema bootstrap failed")
	}
	analyzer := module.MustPortsOf[analysismod.Ports](analysis).Analyzer

	// Inject the Analyzer into the scans API module
	scans := scansmod.New(
		deps,
		modkit.WithPorts(scansmod.Ports{
			Analyzer: analyzer,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		sources,  // include workers so their ports are registered
		analysis, // analysis worker owning the pipeline
		scans,    // API module that depends on the worker's Analyzer
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
