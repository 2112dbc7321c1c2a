// Package store persists the selection blob on disk and loads configuration.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

var (
	// ErrNotFound is returned by Blob.Load when nothing is stored under a key.
	ErrNotFound = errors.New("store: key not found")

	// ErrUnavailable wraps failures of the storage backend itself.
	ErrUnavailable = errors.New("store: persistence unavailable")
)

// Blob is a key/value store of opaque byte blobs.
type Blob interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

const tempDirName = ".tmp"

// Load creates a Blob backed by diskv using the provided config.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	tempDir := filepath.Join(basePath, tempDirName)
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure base path: %v", ErrUnavailable, err)
	}

	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           tempDir,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Disk stores each key as one file directly under the base path.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// BasePath returns the directory holding the blobs.
func (p *Disk) BasePath() string { return p.basePath }

// Load reads the blob for key straight from disk, bypassing the read cache so
// writes by other processes are observed.
func (p *Disk) Load(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	if !p.d.Has(key) {
		return nil, ErrNotFound
	}
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
	}
	return data, nil
}

// Save atomically replaces the blob for key.
func (p *Disk) Save(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

// Keys lists the stored keys, sorted.
func (p *Disk) Keys(ctx context.Context) []string {
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == tempDirName {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

// pathToKeyTransform maps only files directly under the base path to keys;
// anything nested, such as diskv's temp files, maps to "".
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) > 0 {
		return ""
	}
	return pathKey.FileName
}
