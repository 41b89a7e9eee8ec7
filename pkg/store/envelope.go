package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/state"
)

// SchemaVersion is the envelope version written by Save.
const SchemaVersion = 1

var (
	// ErrFutureVersion marks a snapshot written by a newer release.
	ErrFutureVersion = errors.New("store: snapshot version is newer than supported")

	//go:embed envelope.schema.json
	envelopeSchemaJSON string

	envelopeSchema = jsonschema.MustCompileString("envelope.schema.json", envelopeSchemaJSON)
)

// envelope is the persisted form of the state.
type envelope struct {
	Version int         `json:"version"`
	State   state.State `json:"state"`
}

// encode wraps s in a versioned envelope.
func encode(s state.State) ([]byte, error) {
	if s.List == nil {
		s.List = []item.Item{}
	}
	return json.Marshal(envelope{Version: SchemaVersion, State: s})
}

// decode validates and unwraps a snapshot. Snapshots written before the
// envelope existed hold the bare state and are read as version 0.
func decode(data []byte) (state.State, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return state.State{}, errors.New("store: empty snapshot")
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return state.State{}, fmt.Errorf("store: parse snapshot: %w", err)
	}
	if err := envelopeSchema.Validate(doc); err != nil {
		return state.State{}, fmt.Errorf("store: invalid snapshot: %w", err)
	}

	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return state.State{}, fmt.Errorf("store: parse snapshot: %w", err)
	}

	version := 0
	if probe.Version != nil {
		version = *probe.Version
	}
	return migrate(version, data)
}

func migrate(version int, data []byte) (state.State, error) {
	var s state.State
	switch {
	case version == 0:
		if err := json.Unmarshal(data, &s); err != nil {
			return state.State{}, fmt.Errorf("store: decode v0 snapshot: %w", err)
		}
	case version == SchemaVersion:
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return state.State{}, fmt.Errorf("store: decode v%d snapshot: %w", version, err)
		}
		s = env.State
	default:
		return state.State{}, fmt.Errorf("%w: %d", ErrFutureVersion, version)
	}
	return normalize(s), nil
}

// normalize fills fields older snapshots did not carry.
func normalize(s state.State) state.State {
	if s.List == nil {
		s.List = []item.Item{}
	}
	if s.Theme.Name == "" {
		s.Theme = state.Default().Theme
	}
	return s
}
