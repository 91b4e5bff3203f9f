package service

import (
	"context"
	"encoding/json"
	"time"

	"credscan/internal/platform/logger"
	"credscan/internal/platform/store"
	"credscan/internal/services/analysis/domain"
)

// cacheKeyPrefix namespaces scan results in the shared KV store
const cacheKeyPrefix = "scan:"

// resultCache stores finished scan results keyed by content hash
// a nil KV and every KV error degrade to a miss, caching never fails a request
type resultCache struct {
	kv  store.KV
	ttl time.Duration
}

func (c resultCache) key(contentHash string) string { return cacheKeyPrefix + contentHash }

func (c resultCache) get(ctx context.Context, contentHash string) (domain.ScanResult, bool) {
	if c.kv == nil {
		return domain.ScanResult{}, false
	}
	raw, err := c.kv.Get(ctx, c.key(contentHash))
	if err != nil {
		if err != store.ErrKVMiss {
			logger.C(ctx).Warn().Err(err).Msg("result cache read failed")
		}
		return domain.ScanResult{}, false
	}
	var res domain.ScanResult
	if err := json.Unmarshal(raw, &res); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("result cache entry corrupt, treating as miss")
		return domain.ScanResult{}, false
	}
	return res, true
}

func (c resultCache) put(ctx context.Context, contentHash string, res domain.ScanResult) {
	if c.kv == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, c.key(contentHash), raw, c.ttl); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("result cache write failed")
	}
}
