package storage

import "context"

// Store is a device-scoped key/value store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set inserts or overwrites.
//   - Delete and Clear are idempotent.
//   - Backend failures wrap common.ErrStoreUnavailable.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
