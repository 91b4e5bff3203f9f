package module

import (
	"time"

	"credscan/internal/platform/config"
)

// Options controls which providers are built and how lookups behave
type Options struct {
	FactCheckKey string
	NewsKey      string
	Timeout      time.Duration
	DisableMock  bool
}

// FromConfig reads with SOURCES_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SOURCES_")
	return Options{
		FactCheckKey: c.MayString("FACTCHECK_KEY", ""),
		NewsKey:      c.MayString("NEWS_KEY", ""),
		Timeout:      c.MayDuration("TIMEOUT", 5*time.Second),
		DisableMock:  c.MayBool("DISABLE_MOCK", false),
	}
}
