// Package elements loads the scanner-produced element index and resolves
// individual code elements into a normalized, total view.
//
// The index is an opaque JSON data source written by the upstream static
// analysis scanner — this package never parses source code itself. Every
// optional field of a raw entry is defaulted during normalization so the
// rest of the pipeline can iterate slices without nil checks.
package elements

import "encoding/json"

// Prop describes one component prop extracted by the scanner.
type Prop struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// StateVariable describes one piece of component state.
type StateVariable struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	InitialValue   any    `json:"initialValue,omitempty"`
	Persisted      bool   `json:"persisted"`
	PersistenceKey string `json:"persistenceKey,omitempty"`
}

// EventHandler describes one event handler on the element.
type EventHandler struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// APICall describes one outbound API call the element makes.
type APICall struct {
	Method   string `json:"method,omitempty"`
	Endpoint string `json:"endpoint"`
	Library  string `json:"library,omitempty"`
}

// Metadata is the recognized subset of an element's scanner metadata.
// Keys the scanner emits beyond these land in Extra untouched, preserving
// extensibility without typing every possible field.
type Metadata struct {
	HasJSX         bool
	Hooks          []string
	Props          []Prop
	StateVariables []StateVariable
	EventHandlers  []EventHandler
	APICalls       []APICall
	Extra          map[string]any
}

// ElementCharacteristics is the normalized view of one code element.
// Constructed once per composition call and treated as immutable for the
// duration of rendering. All slices are non-nil.
type ElementCharacteristics struct {
	Name     string
	Type     string
	File     string
	ID       string
	Imports  []string
	Exports  []string
	Metadata Metadata
}

// rawElement mirrors one entry of the index file before normalization.
type rawElement struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	File     string          `json:"file"`
	ID       string          `json:"id"`
	Imports  []string        `json:"imports"`
	Exports  []string        `json:"exports"`
	Metadata json.RawMessage `json:"metadata"`
}

// knownMetadataKeys are the metadata fields lifted into typed form.
var knownMetadataKeys = []string{
	"hasJSX", "hooks", "props", "stateVariables", "eventHandlers", "apiCalls",
}

// normalize converts a raw index entry into a total ElementCharacteristics:
// absent sequences become empty slices, absent booleans become false, and
// unrecognized metadata keys are carried through in Extra.
func normalize(raw rawElement) ElementCharacteristics {
	el := ElementCharacteristics{
		Name:    raw.Name,
		Type:    raw.Type,
		File:    raw.File,
		ID:      raw.ID,
		Imports: raw.Imports,
		Exports: raw.Exports,
	}
	if el.Imports == nil {
		el.Imports = []string{}
	}
	if el.Exports == nil {
		el.Exports = []string{}
	}

	el.Metadata = Metadata{
		Hooks:          []string{},
		Props:          []Prop{},
		StateVariables: []StateVariable{},
		EventHandlers:  []EventHandler{},
		APICalls:       []APICall{},
		Extra:          map[string]any{},
	}

	if len(raw.Metadata) == 0 {
		return el
	}

	var typed struct {
		HasJSX         bool            `json:"hasJSX"`
		Hooks          []string        `json:"hooks"`
		Props          []Prop          `json:"props"`
		StateVariables []StateVariable `json:"stateVariables"`
		EventHandlers  []EventHandler  `json:"eventHandlers"`
		APICalls       []APICall       `json:"apiCalls"`
	}
	// A metadata block that isn't an object is treated as absent rather
	// than failing the whole resolution.
	if err := json.Unmarshal(raw.Metadata, &typed); err != nil {
		return el
	}

	el.Metadata.HasJSX = typed.HasJSX
	if typed.Hooks != nil {
		el.Metadata.Hooks = typed.Hooks
	}
	if typed.Props != nil {
		el.Metadata.Props = typed.Props
	}
	if typed.StateVariables != nil {
		el.Metadata.StateVariables = typed.StateVariables
	}
	if typed.EventHandlers != nil {
		el.Metadata.EventHandlers = typed.EventHandlers
	}
	if typed.APICalls != nil {
		el.Metadata.APICalls = typed.APICalls
	}

	var all map[string]any
	if err := json.Unmarshal(raw.Metadata, &all); err == nil {
		for _, k := range knownMetadataKeys {
			delete(all, k)
		}
		el.Metadata.Extra = all
	}

	return el
}
