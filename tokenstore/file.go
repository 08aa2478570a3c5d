package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps slots in a single JSON file so a session survives process
// restarts. Every write rewrites the whole file synchronously.
type FileStore struct {
	path string

	mu    sync.Mutex
	slots map[string]string
}

// NewFileStore loads (or creates) the slot file at path.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, slots: map[string]string{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] read slot file")
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &fs.slots); err != nil {
			// A corrupt slot file means an unreadable session; start clean
			// rather than failing every caller.
			fs.slots = map[string]string{}
		}
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	v, ok := fs.slots[key]
	return v, ok && v != ""
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.slots[key] = value
	return fs.flushLocked()
}

func (fs *FileStore) Clear(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.slots[key]; !ok {
		return nil
	}
	delete(fs.slots, key)
	return fs.flushLocked()
}

func (fs *FileStore) flushLocked() error {
	data, err := json.Marshal(fs.slots)
	if err != nil {
		return errors.Wrap(err, "[FileStore.flush] marshal slots")
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.flush] create data dir")
	}
	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.flush] write slot file")
	}
	return nil
}

var _ Store = (*FileStore)(nil)
