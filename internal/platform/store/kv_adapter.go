package store

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"credscan/internal/platform/store/rds"
)

// kvAdapter wraps rds.RDS and implements KV
type kvAdapter struct {
	r *rds.RDS
}

func newKVAdapter(r *rds.RDS) *kvAdapter { return &kvAdapter{r: r} }

func (a *kvAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := a.r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, rds.Nil) {
			return nil, ErrKVMiss
		}
		return nil, err
	}
	return b, nil
}

func (a *kvAdapter) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return a.r.Client.Set(ctx, key, val, ttl).Err()
}

func (a *kvAdapter) Del(ctx context.Context, key string) error {
	return a.r.Client.Del(ctx, key).Err()
}

func (a *kvAdapter) FlushDB(ctx context.Context) error {
	return a.r.Client.FlushDB(ctx).Err()
}

// Stats reads DBSIZE plus a few INFO fields for the meta cache endpoint
func (a *kvAdapter) Stats(ctx context.Context) (KVStats, error) {
	var out KVStats

	keys, err := a.r.Client.DBSize(ctx).Result()
	if err != nil {
		return out, err
	}
	out.Keys = keys

	info, err := a.r.Client.Info(ctx, "stats", "memory").Result()
	if err != nil {
		return out, err
	}
	for _, line := range strings.Split(info, "\n") {
		line = strings.TrimSpace(line)
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch k {
		case "used_memory_human":
			out.MemoryUsed = v
		case "keyspace_hits":
			out.Hits, _ = strconv.ParseInt(v, 10, 64)
		case "keyspace_misses":
			out.Misses, _ = strconv.ParseInt(v, 10, 64)
		}
	}
	return out, nil
}

func (a *kvAdapter) Ping(ctx context.Context) error {
	if a == nil || a.r == nil {
		return errors.New("kv: nil adapter")
	}
	return a.r.Ping(ctx)
}

func (a *kvAdapter) Close() error { return a.r.Close() }
