// Package rds provides a Redis client used by the store KV seam
package rds

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Config configures the redis client
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RDS is a thin wrapper over the go-redis client
type RDS struct {
	Client *redis.Client
}

// Nil is the sentinel go-redis returns on absent keys
var Nil = redis.Nil

// Open creates a new redis client, connectivity is verified by the caller
func Open(_ context.Context, cfg Config) (*RDS, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RDS{Client: c}, nil
}

// Ping checks connectivity
func (r *RDS) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return redis.ErrClosed
	}
	return r.Client.Ping(ctx).Err()
}

// Close closes the client
func (r *RDS) Close() error {
	if r != nil && r.Client != nil {
		return r.Client.Close()
	}
	return nil
}
