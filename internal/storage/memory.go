package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/minilearn/internal/common"
)

// MemoryStore keeps values in a map. Values are copied on the way in and out
// so callers cannot alias stored bytes.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	err    error
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// SetError makes every subsequent operation fail with err wrapped in
// common.ErrStoreUnavailable; nil restores normal behaviour. Used to simulate
// disabled or full device storage.
func (m *MemoryStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemoryStore) failure(op string) error {
	if m.err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w: %w", op, common.ErrStoreUnavailable, m.err)
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.failure("get kv[" + key + "]"); err != nil {
		return nil, err
	}
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure("set kv[" + key + "]"); err != nil {
		return err
	}
	m.values[key] = append([]byte{}, value...)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure("delete kv[" + key + "]"); err != nil {
		return err
	}
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure("clear kv"); err != nil {
		return err
	}
	m.values = make(map[string][]byte)
	return nil
}

// Len reports the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
