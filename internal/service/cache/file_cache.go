package cache

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps one JSON file per key under dir, so cached values
// survive between runs of the CLI.
type FileCache struct {
	dir string
	now func() time.Time
}

type fileEntry struct {
	ExpiresAt time.Time `json:"expires_at"`
	Data      []byte    `json:"data"`
}

func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir, now: time.Now}
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", md5.Sum([]byte(key))))
}

func (c *FileCache) GetBytes(_ context.Context, key string) ([]byte, bool, error) {
	p := c.path(key)
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(b, &e); err != nil {
		// corrupt entry: treat as a miss and drop it
		_ = os.Remove(p)
		return nil, false, nil
	}
	if !e.ExpiresAt.IsZero() && c.now().After(e.ExpiresAt) {
		_ = os.Remove(p)
		return nil, false, nil
	}
	return e.Data, true, nil
}

func (c *FileCache) SetBytes(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	e := fileEntry{Data: value}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path(key))
}
