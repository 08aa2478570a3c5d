package tokenstore

import "sync"

// MemStore is an in-process Store for tests and short-lived tools.
type MemStore struct {
	mu    sync.Mutex
	slots map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{slots: map[string]string{}}
}

func (ms *MemStore) Get(key string) (string, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v, ok := ms.slots[key]
	return v, ok && v != ""
}

func (ms *MemStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.slots[key] = value
	return nil
}

func (ms *MemStore) Clear(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.slots, key)
	return nil
}

var _ Store = (*MemStore)(nil)
