// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"credscan/internal/core/version"
	"credscan/internal/modkit/httpkit"
	perr "credscan/internal/platform/errors"
	"credscan/internal/platform/store"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	KV          store.KV
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/cache", h.cacheStats)
	httpkit.Delete(r, "/cache", h.cacheClear)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	Status   string `json:"status"   example:"healthy"` // healthy degraded
	Service  string `json:"service"  example:"credscan-api"`
	Version  string `json:"version"  example:"1.0.0"`
	Database string `json:"database" example:"healthy"`
	Redis    string `json:"redis"    example:"healthy"`
	Now      string `json:"now"      example:"2026-08-30T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-30T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"credscan-api"`
	Started string `json:"started" example:"2026-08-30T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// CacheStatsResponse reports result cache usage
type CacheStatsResponse struct {
	Enabled    bool   `json:"enabled"     example:"true"`
	Connected  bool   `json:"connected"   example:"true"`
	Keys       int64  `json:"keys"        example:"128"`
	MemoryUsed string `json:"memory_used" example:"1.2M"`
	Hits       int64  `json:"hits"        example:"4096"`
	Misses     int64  `json:"misses"      example:"512"`
}

// CacheClearResponse acknowledges a cache flush
type CacheClearResponse struct {
	Status  string `json:"status"  example:"success"`
	Message string `json:"message" example:"Cache cleared"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check with dependency status
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	dbStatus := "unhealthy"
	if p, ok := h.deps.PG.(Pinger); ok && p.Ping(ctx) == nil {
		dbStatus = "healthy"
	}

	redisStatus := "unhealthy"
	if h.deps.KV != nil && h.deps.KV.Ping(ctx) == nil {
		redisStatus = "healthy"
	}

	// a dead cache degrades gracefully, only the database flips the status
	status := "healthy"
	if dbStatus != "healthy" {
		status = "degraded"
	}

	return HealthResponse{
		Status:   status,
		Service:  h.deps.ServiceName,
		Version:  version.Info().Version,
		Database: dbStatus,
		Redis:    redisStatus,
		Now:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	pg := check("pg", h.deps.PG)

	var kv ReadyCheck
	if h.deps.KV == nil {
		kv = ReadyCheck{Name: "redis", Status: "skipped"}
	} else {
		kv = check("redis", h.deps.KV)
	}

	overall := "ok"
	if pg.Status != "ok" || kv.Status == "fail" {
		overall = "degraded"
		if pg.Status == "fail" {
			overall = "fail"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{pg, kv},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/cache Meta metaCacheStats
// @Summary Result cache statistics
// @Tags Meta
// @Produce json
// @Success 200 {object} CacheStatsResponse "ok"
// @Router /meta/cache [get]
func (h *handlers) cacheStats(r *http.Request) (any, error) {
	if h.deps.KV == nil {
		return CacheStatsResponse{Enabled: false}, nil
	}

	out := CacheStatsResponse{Enabled: true}
	if h.deps.KV.Ping(r.Context()) == nil {
		out.Connected = true
	}
	if !out.Connected {
		return out, nil
	}

	stats, err := h.deps.KV.Stats(r.Context())
	if err != nil {
		out.Connected = false
		return out, nil
	}
	out.Keys = stats.Keys
	out.MemoryUsed = stats.MemoryUsed
	out.Hits = stats.Hits
	out.Misses = stats.Misses
	return out, nil
}

// swagger:route DELETE /meta/cache Meta metaCacheClear
// @Summary Flush all cached scan results
// @Tags Meta
// @Produce json
// @Success 200 {object} CacheClearResponse "ok"
// @Router /meta/cache [delete]
func (h *handlers) cacheClear(r *http.Request) (any, error) {
	if h.deps.KV == nil {
		return nil, perr.Unavailablef("cache is not enabled")
	}
	if err := h.deps.KV.FlushDB(r.Context()); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "cache flush")
	}
	return CacheClearResponse{
		Status:  "success",
		Message: "Cache cleared",
	}, nil
}
