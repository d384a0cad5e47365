package elements

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IndexFile is the filename of the scanner-produced element index inside
// the index directory.
const IndexFile = "element-index.json"

// Failure kinds for element resolution, checked with errors.Is.
var (
	// ErrIndexMissing means the index file does not exist.
	ErrIndexMissing = errors.New("element index not found")
	// ErrIndexMalformed means the index exists but has no elements array.
	ErrIndexMalformed = errors.New("element index malformed")
	// ErrElementNotFound means no resolution rule matched the query.
	ErrElementNotFound = errors.New("element not found")
)

// maxSampleNames bounds the suggestion list in not-found errors.
const maxSampleNames = 10

// Reader resolves elements from a scanner index directory.
type Reader struct{}

// NewReader creates an index reader.
func NewReader() *Reader {
	return &Reader{}
}

// IndexPath returns the path of the index file inside indexDir.
func IndexPath(indexDir string) string {
	return filepath.Join(indexDir, IndexFile)
}

// Resolve looks up one element by name, file path, partial file path, or
// composite "{file}#{name}" id. Matching rules are tried in order over the
// whole index, first rule that matches anything wins:
//
//  1. exact name
//  2. case-insensitive name
//  3. exact file path
//  4. suffix match on file path
//  5. exact composite id
//
// The returned ElementCharacteristics is fully normalized (see types.go).
func (r *Reader) Resolve(indexDir, query string) (*ElementCharacteristics, error) {
	raws, err := r.load(indexDir)
	if err != nil {
		return nil, err
	}

	rules := []func(rawElement) bool{
		func(e rawElement) bool { return e.Name == query },
		func(e rawElement) bool { return strings.EqualFold(e.Name, query) },
		func(e rawElement) bool { return e.File != "" && e.File == query },
		func(e rawElement) bool { return e.File != "" && strings.HasSuffix(e.File, query) },
		func(e rawElement) bool { return compositeID(e) == query },
	}

	for _, match := range rules {
		for _, raw := range raws {
			if match(raw) {
				el := normalize(raw)
				return &el, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q — available elements include: %s",
		ErrElementNotFound, query, sampleNames(raws))
}

// List returns the normalized elements of the index in file order.
func (r *Reader) List(indexDir string) ([]ElementCharacteristics, error) {
	raws, err := r.load(indexDir)
	if err != nil {
		return nil, err
	}
	out := make([]ElementCharacteristics, len(raws))
	for i, raw := range raws {
		out[i] = normalize(raw)
	}
	return out, nil
}

// load reads and shape-checks the index file.
func (r *Reader) load(indexDir string) ([]rawElement, error) {
	path := IndexPath(indexDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s — run the coderef scanner first to generate the element index",
				ErrIndexMissing, path)
		}
		return nil, fmt.Errorf("reading element index: %w", err)
	}

	var envelope struct {
		Elements json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexMalformed, err)
	}
	if len(envelope.Elements) == 0 {
		return nil, fmt.Errorf("%w: missing top-level 'elements' array", ErrIndexMalformed)
	}

	var raws []rawElement
	if err := json.Unmarshal(envelope.Elements, &raws); err != nil {
		return nil, fmt.Errorf("%w: 'elements' is not an array of objects: %v", ErrIndexMalformed, err)
	}
	return raws, nil
}

// compositeID builds the "{file}#{name}" lookup form for an entry. Entries
// carrying an explicit id keep it.
func compositeID(e rawElement) string {
	if e.ID != "" {
		return e.ID
	}
	if e.File == "" {
		return ""
	}
	return e.File + "#" + e.Name
}

// sampleNames renders up to maxSampleNames element names for diagnostics.
func sampleNames(raws []rawElement) string {
	names := make([]string, 0, maxSampleNames)
	for _, raw := range raws {
		if len(names) == maxSampleNames {
			break
		}
		names = append(names, raw.Name)
	}
	if len(names) == 0 {
		return "(index is empty)"
	}
	return strings.Join(names, ", ")
}
