package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/logging"
	"tableflip.dev/daylist/pkg/state"
	"tableflip.dev/daylist/pkg/theme"
)

func populated() state.State {
	return state.State{
		List: []item.Item{
			{ID: 0, Title: "Buy milk"},
			{ID: 3, Title: "Stretch", Note: "10 minutes", IsDaily: true, IsDone: true,
				Updated: item.At(time.Date(2024, 3, 9, 21, 15, 0, 500, time.UTC))},
		},
		Theme: theme.Dark,
	}
}

func openTemp(t *testing.T) (*persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return p.(*persistence), base
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, _ := openTemp(t)

	want := populated()
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestRoundTripFreshProcess(t *testing.T) {
	ctx := context.Background()
	p, base := openTemp(t)
	if err := p.Save(ctx, populated()); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := LoadOrDefault(ctx, again, logging.Discard())
	if !reflect.DeepEqual(got, populated()) {
		t.Fatalf("reopened state mismatch: %+v", got)
	}
}

func TestSavedEnvelopeIsVersioned(t *testing.T) {
	p, base := openTemp(t)
	if err := p.Save(context.Background(), state.Default()); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(base, RootKey))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), `{"version":1,"state":{"list":[]`) {
		t.Fatalf("unexpected envelope %s", data)
	}
}

func TestLoadMissing(t *testing.T) {
	p, _ := openTemp(t)
	if _, err := p.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	got := LoadOrDefault(context.Background(), p, logging.Discard())
	if !reflect.DeepEqual(got, state.Default()) {
		t.Fatalf("expected default state, got %+v", got)
	}
}

func TestLoadOrDefaultCorrupt(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"version":1,"state":`,
		"wrong types":    `{"version":1,"state":{"list":[{"id":"zero","title":"x"}]}}`,
		"missing state":  `{"version":1}`,
		"future version": `{"version":7,"state":{"list":[]}}`,
		"bad timestamp":  `{"version":1,"state":{"list":[{"id":0,"title":"x","updated":"soon"}]}}`,
		"empty":          ``,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			p, base := openTemp(t)
			if err := os.WriteFile(filepath.Join(base, RootKey), []byte(raw), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			got := LoadOrDefault(context.Background(), p, logging.Discard())
			if !reflect.DeepEqual(got, state.Default()) {
				t.Fatalf("expected default state, got %+v", got)
			}
			if p.d.Has(RootKey) {
				t.Fatalf("corrupt snapshot left in place")
			}
			matches, _ := filepath.Glob(filepath.Join(base, RootKey+".corrupt-*"))
			if len(matches) != 1 {
				t.Fatalf("expected corrupt snapshot to be kept aside, found %v", matches)
			}
		})
	}
}

func TestLoadFutureVersionError(t *testing.T) {
	m := NewMemory()
	m.SetRaw([]byte(`{"version":2,"state":{"list":[]}}`))
	if _, err := m.Load(context.Background()); !errors.Is(err, ErrFutureVersion) {
		t.Fatalf("expected ErrFutureVersion, got %v", err)
	}
}

func TestLoadLegacySnapshot(t *testing.T) {
	m := NewMemory()
	m.SetRaw([]byte(`{"list":[{"id":1,"title":"Item","isDone":false}]}`))
	got, err := m.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := state.State{
		List:  []item.Item{{ID: 1, Title: "Item"}},
		Theme: theme.Default(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Save(ctx, populated()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, populated()) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if m.Saves() != 1 {
		t.Fatalf("expected one save, got %d", m.Saves())
	}
}

func TestMemorySaveNilList(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Save(ctx, state.State{Theme: theme.Light}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.List == nil || len(got.List) != 0 {
		t.Fatalf("expected empty list, got %#v", got.List)
	}
}
