package module

import (
	"time"

	"credscan/internal/platform/config"
)

// Options controls the analysis pipeline
type Options struct {
	CacheTTL time.Duration
}

// FromConfig reads with ANALYSIS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ANALYSIS_")
	return Options{
		CacheTTL: c.MayDuration("CACHE_TTL", time.Hour),
	}
}
