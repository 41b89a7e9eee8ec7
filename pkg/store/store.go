// Package store persists the application state as a single snapshot.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daylist/pkg/state"
)

// RootKey is the key the snapshot is stored under.
const RootKey = "root"

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("store: no snapshot")

// Persistence saves and restores the full application state.
type Persistence interface {
	Load(ctx context.Context) (state.State, error)
	Save(ctx context.Context, s state.State) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config.
func Open(cfg Config) (Persistence, error) {
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
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, ".tmp"),
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverse,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) (state.State, error) {
	if !p.d.Has(RootKey) {
		return state.State{}, ErrNotFound
	}
	data, err := p.d.Read(RootKey)
	if err != nil {
		return state.State{}, fmt.Errorf("store: read snapshot: %w", err)
	}
	return decode(data)
}

func (p *persistence) Save(_ context.Context, s state.State) error {
	data, err := encode(s)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	// WriteStream goes through TempDir and a rename, so readers never see a
	// half written snapshot.
	if err := p.d.WriteStream(RootKey, bytes.NewReader(data), true); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

// quarantine moves an unreadable snapshot aside so the next save does not
// destroy it.
func (p *persistence) quarantine(now time.Time) (string, error) {
	if !p.d.Has(RootKey) {
		return "", nil
	}
	data, err := p.d.Read(RootKey)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s.corrupt-%s", RootKey, now.UTC().Format("20060102T150405"))
	if err := p.d.Write(key, data); err != nil {
		return "", err
	}
	if err := p.d.Erase(RootKey); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	return key, nil
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverse(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
