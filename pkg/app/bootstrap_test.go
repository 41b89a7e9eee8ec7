package app

import (
	"context"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/state"
	"tableflip.dev/daylist/pkg/store"
	"tableflip.dev/daylist/pkg/theme"
)

func seeded(t *testing.T, s state.State) *store.Memory {
	t.Helper()
	mem := store.NewMemory()
	if err := mem.Save(context.Background(), s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return mem
}

func TestOpenRestoresAndSweeps(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	mem := seeded(t, state.State{
		List: []item.Item{
			{ID: 0, Title: "Buy milk", IsDone: true, Updated: item.At(yesterday)},
			{ID: 1, Title: "Stretch", IsDaily: true, IsDone: true, Updated: item.At(yesterday)},
			{ID: 2, Title: "Read", IsDaily: true, IsDone: true, Updated: item.At(today.Add(-time.Hour))},
		},
		Theme: theme.Dark,
	})

	c := Open(context.Background(), mem, WithClock(fixedClock))
	closeContainer(t, c)

	got := c.State()
	if got.Theme != theme.Dark {
		t.Fatalf("theme not restored")
	}
	if !got.List[0].IsDone {
		t.Fatalf("non-daily item was reset")
	}
	if got.List[1].IsDone || !got.List[1].Updated.Equal(today) {
		t.Fatalf("daily item from yesterday not reset: %+v", got.List[1])
	}
	if !got.List[2].IsDone {
		t.Fatalf("daily item completed today was reset")
	}

	// One load-time seed save plus one batched sweep save.
	if mem.Saves() != 2 {
		t.Fatalf("expected sweep to be saved once, got %d saves", mem.Saves())
	}
}

func TestSweepRunsOnce(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	c := New(state.State{
		List: []item.Item{{ID: 0, Title: "Stretch", IsDaily: true, IsDone: true, Updated: item.At(yesterday)}},
	}, WithClock(fixedClock))

	if n := c.Sweep(); n != 1 {
		t.Fatalf("expected one reset, got %d", n)
	}

	// Complete it again, pretend it was yesterday, and sweep again.
	c.Dispatch(action.Update(item.Item{ID: 0, Title: "Stretch", IsDaily: true, IsDone: true, Updated: item.At(yesterday)}))
	if n := c.Sweep(); n != 0 {
		t.Fatalf("sweep ran twice, reset %d", n)
	}
	if !c.Items()[0].IsDone {
		t.Fatalf("second sweep changed state")
	}
}

func TestOpenWithoutSweep(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	mem := seeded(t, state.State{
		List: []item.Item{{ID: 0, Title: "Stretch", IsDaily: true, IsDone: true, Updated: item.At(yesterday)}},
	})
	c := Open(context.Background(), mem, WithClock(fixedClock), WithSweep(false))
	closeContainer(t, c)
	if !c.Items()[0].IsDone {
		t.Fatalf("sweep ran although disabled")
	}
}

func TestOpenFallsBackToDefault(t *testing.T) {
	mem := store.NewMemory()
	mem.SetRaw([]byte("{not json"))
	c := Open(context.Background(), mem)
	closeContainer(t, c)
	if !reflect.DeepEqual(c.State(), state.Default()) {
		t.Fatalf("expected default state, got %+v", c.State())
	}

	empty := Open(context.Background(), store.NewMemory())
	closeContainer(t, empty)
	if !reflect.DeepEqual(empty.State(), state.Default()) {
		t.Fatalf("expected default state, got %+v", empty.State())
	}
}

func TestOpenRoundTripsThroughRestart(t *testing.T) {
	mem := store.NewMemory()
	first := Open(context.Background(), mem, WithClock(fixedClock))
	_, _ = first.Add(item.Draft{Title: "Buy milk"})
	_, _ = first.Add(item.Draft{Title: "Stretch", IsDaily: true})
	_, _ = first.Toggle(1)
	_ = first.UseTheme(theme.Dark)
	closeContainer(t, first)

	second := Open(context.Background(), mem, WithClock(fixedClock))
	closeContainer(t, second)
	if !reflect.DeepEqual(second.State(), first.State()) {
		t.Fatalf("state lost across restart:\n%+v\n%+v", second.State(), first.State())
	}
}
