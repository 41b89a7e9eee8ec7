package store

import (
	"context"
	"sync"

	"tableflip.dev/daylist/pkg/state"
)

// Memory keeps the snapshot in process memory. It round-trips through the
// same encoding as the disk store so tests exercise the wire format.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
	subs  []chan Event

	// SaveErr, when set, is returned by every Save.
	SaveErr error
}

// NewMemory returns an empty in-memory persistence.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (state.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return state.State{}, ErrNotFound
	}
	return decode(m.data)
}

func (m *Memory) Save(_ context.Context, s state.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := encode(s)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	for _, ch := range m.subs {
		select {
		case ch <- Event{Type: EventChanged}:
		default:
		}
	}
	return nil
}

// SetRaw replaces the stored bytes, bypassing encoding.
func (m *Memory) SetRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
}

// Raw returns a copy of the stored bytes.
func (m *Memory) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

// Saves counts successful saves.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subs {
			if sub == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
