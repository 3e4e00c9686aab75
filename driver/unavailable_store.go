package driver

import (
	"context"
	"time"

	"newsdeck/domain"
)

// UnavailableStore is the driver used when no cache backend is
// configured. Every operation reports the backend as unreachable, which
// the repository degrades to cache misses and no-op writes.
type UnavailableStore struct{}

func NewUnavailableStore() *UnavailableStore { return &UnavailableStore{} }

func (*UnavailableStore) Get(context.Context, string) (string, bool, error) {
	return "", false, domain.ErrCacheUnavailable
}

func (*UnavailableStore) SetWithTTL(context.Context, string, string, time.Duration) error {
	return domain.ErrCacheUnavailable
}

func (*UnavailableStore) Delete(context.Context, ...string) (int64, error) {
	return 0, domain.ErrCacheUnavailable
}

func (*UnavailableStore) ScanKeys(context.Context, string) ([]string, error) {
	return nil, domain.ErrCacheUnavailable
}

func (*UnavailableStore) TTL(context.Context, string) (time.Duration, error) {
	return 0, domain.ErrCacheUnavailable
}

func (*UnavailableStore) Ping(context.Context) error {
	return domain.ErrCacheUnavailable
}

func (*UnavailableStore) Info(context.Context) (map[string]string, error) {
	return nil, domain.ErrCacheUnavailable
}

func (*UnavailableStore) DBSize(context.Context) (int64, error) {
	return 0, domain.ErrCacheUnavailable
}
