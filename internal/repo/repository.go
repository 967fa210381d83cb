// Package repo combines the API client and the local cache into the single
// data source the rest of the application consumes.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/logging"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/store"
)

// Client fetches the rocket catalog from the remote API.
// Satisfied by *api.Client; an interface here for testing.
type Client interface {
	Rockets(ctx context.Context) ([]rocket.Rocket, error)
}

// Repository serves rockets cache-first.
type Repository struct {
	store  *store.Store
	client Client
	ttl    time.Duration
	now    func() time.Time // overridable in tests
}

// New creates a Repository. Cached rockets younger than ttl are served
// without hitting the network.
func New(s *store.Store, c Client, ttl time.Duration) *Repository {
	return &Repository{
		store:  s,
		client: c,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Rockets returns the catalog. When forceRefresh is false and the cache is
// fresh and non-empty, the cached catalog is returned. Otherwise the API is
// consulted and the cache replaced. A failed fetch falls back to whatever
// the cache holds; only an empty cache surfaces the fetch error.
func (r *Repository) Rockets(ctx context.Context, forceRefresh bool) ([]rocket.Rocket, error) {
	if !forceRefresh {
		if cached, ok := r.fresh(); ok {
			logging.Debug("serving rockets from cache", "count", len(cached))
			return cached, nil
		}
	}

	rockets, err := r.client.Rockets(ctx)
	if err != nil {
		logging.Warn("fetch failed, trying cache", "error", err)
		cached, cacheErr := r.store.Rockets()
		if cacheErr == nil && len(cached) > 0 {
			return cached, nil
		}
		return nil, fmt.Errorf("fetch rockets: %w", err)
	}

	if err := r.store.ReplaceRockets(rockets, r.now()); err != nil {
		// The fetch succeeded; a cache write failure only costs us the
		// next cold start.
		logging.Error("failed to cache rockets", "error", err)
	} else {
		logging.Info("rocket catalog refreshed", "count", len(rockets))
	}

	return rockets, nil
}

// fresh returns the cached catalog when it is non-empty and younger than
// the TTL.
func (r *Repository) fresh() ([]rocket.Rocket, bool) {
	synced, err := r.store.LastSynced()
	if err != nil || synced.IsZero() {
		return nil, false
	}
	if r.now().Sub(synced) > r.ttl {
		return nil, false
	}

	rockets, err := r.store.Rockets()
	if err != nil || len(rockets) == 0 {
		return nil, false
	}
	return rockets, true
}
