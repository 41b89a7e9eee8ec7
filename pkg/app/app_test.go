package app

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/state"
	"tableflip.dev/daylist/pkg/store"
	"tableflip.dev/daylist/pkg/theme"
)

var today = time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)

func fixedClock() time.Time { return today }

func closeContainer(t *testing.T, c *Container) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAddWithAutoIDScenario(t *testing.T) {
	c := New(state.State{List: []item.Item{}, Theme: theme.Light})

	c.DispatchThunk(AddWithAutoID(item.Draft{Title: "Buy milk"}))
	got := c.State().List
	want := []item.Item{{ID: 0, Title: "Buy milk"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	c.DispatchThunk(AddWithAutoID(item.Draft{Title: "Walk dog"}))
	got = c.State().List
	if len(got) != 2 || got[0].ID != 0 || got[1].ID != 1 || got[1].Title != "Walk dog" {
		t.Fatalf("unexpected list %+v", got)
	}
}

func TestAddWithAutoIDUsesMaxID(t *testing.T) {
	c := New(state.State{List: []item.Item{{ID: 4, Title: "a"}, {ID: 1, Title: "b"}}, Theme: theme.Light})
	it, err := c.Add(item.Draft{Title: "c"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.ID != 5 {
		t.Fatalf("expected id 5, got %d", it.ID)
	}
}

func TestAddIDsStayUniqueAfterDeletes(t *testing.T) {
	c := New(state.Default())
	for _, title := range []string{"a", "b", "c"} {
		if _, err := c.Add(item.Draft{Title: title}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := c.Delete(2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.Delete(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := c.Add(item.Draft{Title: "more"}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	assertUniqueIDs(t, c.Items())
}

func TestConcurrentAddsGetDistinctIDs(t *testing.T) {
	c := New(state.Default())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.DispatchThunk(AddWithAutoID(item.Draft{Title: "x"}))
		}()
	}
	wg.Wait()

	list := c.Items()
	if len(list) != 50 {
		t.Fatalf("expected 50 items, got %d", len(list))
	}
	assertUniqueIDs(t, list)
}

func assertUniqueIDs(t *testing.T, list []item.Item) {
	t.Helper()
	seen := make(map[int]bool, len(list))
	for _, it := range list {
		if seen[it.ID] {
			t.Fatalf("duplicate id %d in %+v", it.ID, list)
		}
		seen[it.ID] = true
	}
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	c := New(state.Default())
	if _, err := c.Add(item.Draft{Title: "  "}); !errors.Is(err, item.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if len(c.Items()) != 0 {
		t.Fatalf("empty draft was added")
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	c := New(state.Default())
	if _, err := c.Add(item.Draft{Title: "a"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	snap := c.State()
	snap.List[0].Title = "mutated"
	if c.Items()[0].Title != "a" {
		t.Fatalf("snapshot mutation leaked into container")
	}

	before := c.State()
	if _, err := c.Add(item.Draft{Title: "b"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(before.List) != 1 {
		t.Fatalf("earlier snapshot observed a later change")
	}
}

func TestToggleAndSetDone(t *testing.T) {
	c := New(state.Default(), WithClock(fixedClock))
	added, _ := c.Add(item.Draft{Title: "Stretch", IsDaily: true})

	done, err := c.Toggle(added.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !done.IsDone || !done.Updated.Equal(today) {
		t.Fatalf("unexpected toggled item %+v", done)
	}

	again, err := c.SetDone(added.ID, true)
	if err != nil {
		t.Fatalf("set done: %v", err)
	}
	if !again.Equal(done) {
		t.Fatalf("setting the same flag changed the item: %+v", again)
	}

	if _, err := c.SetDone(99, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEdit(t *testing.T) {
	c := New(state.Default())
	added, _ := c.Add(item.Draft{Title: "Read"})

	title, note, isDaily := "Read a chapter", "before bed", true
	got, err := c.Edit(added.ID, Edit{Title: &title, Note: &note, IsDaily: &isDaily})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	want := item.Item{ID: added.ID, Title: title, Note: note, IsDaily: true}
	if !got.Equal(want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	empty := " "
	if _, err := c.Edit(added.ID, Edit{Title: &empty}); !errors.Is(err, item.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := c.Edit(42, Edit{Note: &note}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	c := New(state.Default())
	added, _ := c.Add(item.Draft{Title: "a"})
	removed, err := c.Delete(added.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Title != "a" || len(c.Items()) != 0 {
		t.Fatalf("unexpected delete result %+v, %+v", removed, c.Items())
	}
	if _, err := c.Delete(added.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUseTheme(t *testing.T) {
	c := New(state.Default())
	added, _ := c.Add(item.Draft{Title: "a"})
	if err := c.UseTheme(theme.Dark); err != nil {
		t.Fatalf("use theme: %v", err)
	}
	s := c.State()
	if s.Theme != theme.Dark || len(s.List) != 1 || !s.List[0].Equal(added) {
		t.Fatalf("unexpected state %+v", s)
	}

	bad := theme.Dark
	bad.Primary = "yellow"
	if err := c.UseTheme(bad); err == nil {
		t.Fatalf("expected invalid theme to be rejected")
	}
	if c.State().Theme != theme.Dark {
		t.Fatalf("invalid theme was applied")
	}
}

func TestWriteThroughOnEveryChange(t *testing.T) {
	mem := store.NewMemory()
	c := New(state.Default(), WithPersistence(mem))

	_, _ = c.Add(item.Draft{Title: "a"})
	_, _ = c.Add(item.Draft{Title: "b"})
	c.Dispatch(action.Update(item.Item{ID: 77, Title: "ghost"})) // no-op, nothing to save
	_ = c.UseTheme(theme.Dark)
	closeContainer(t, c)

	if got := mem.Saves(); got != 3 {
		t.Fatalf("expected 3 saves, got %d", got)
	}
	saved, err := mem.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !saved.Equal(c.State()) {
		t.Fatalf("persisted state differs from memory:\n%+v\n%+v", saved, c.State())
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	mem := store.NewMemory()
	mem.SaveErr = errors.New("disk full")
	c := New(state.Default(), WithPersistence(mem))

	if _, err := c.Add(item.Draft{Title: "a"}); err != nil {
		t.Fatalf("add should not surface persistence errors: %v", err)
	}
	closeContainer(t, c)

	if len(c.Items()) != 1 {
		t.Fatalf("failed save rolled back memory state")
	}
	if mem.Saves() != 0 {
		t.Fatalf("expected no successful saves")
	}
}

func TestSubscribe(t *testing.T) {
	c := New(state.Default())
	var seen []int
	cancel := c.Subscribe(func(s state.State) { seen = append(seen, len(s.List)) })

	_, _ = c.Add(item.Draft{Title: "a"})
	_, _ = c.Add(item.Draft{Title: "b"})
	cancel()
	_, _ = c.Add(item.Draft{Title: "c"})

	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Fatalf("unexpected notifications %v", seen)
	}
}

func TestDispatchNilIsNoop(t *testing.T) {
	mem := store.NewMemory()
	c := New(state.Default(), WithPersistence(mem))
	c.Dispatch(nil)
	c.DispatchThunk(func(state.State) action.Action { return nil })
	closeContainer(t, c)
	if mem.Saves() != 0 {
		t.Fatalf("nil action was persisted")
	}
}
