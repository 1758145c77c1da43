// Package provider defines the byte store behind store.Store.
//
// Implementations MUST be byte-for-byte transparent: Get returns exactly the
// []byte previously passed to Set. The store frames base2 text with a strict
// header and treats any other value as corruption, so a provider must not add
// metadata or transcode.
//
// The keyspace "b2:<ns>:" belongs to the store. Foreign writes under it are
// deleted on read.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL (ttl <= 0 => no expiry where
	// supported). Cost may be ignored. ok=false means the store refused the
	// write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	Close(ctx context.Context) error
}
