// Package caching is a content-addressed file cache for computed score
// reports. The cache key is the document's content hash, so an unchanged
// document never gets re-scored within the TTL.
package caching

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache provides a simple file-based cache with a TTL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache directory will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// Get retrieves a cached report by content hash.
// It returns the data and true if the entry exists and is not expired.
func (c *Cache) Get(contentHash string) ([]byte, bool) {
	filePath := filepath.Join(c.path, contentHash)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false // Cache miss
	}

	if time.Since(info.ModTime()) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false // Cache miss (read error)
	}

	return data, true
}

// Set stores a report under its content hash.
func (c *Cache) Set(contentHash string, data []byte) error {
	filePath := filepath.Join(c.path, contentHash)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
