package output

import (
	"encoding/json"
	"fmt"
)

// ValidationResult reports the lightweight schema self-check. It is not
// a draft-07 conformance check, only a guard against writing documents
// other tools cannot consume.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateSchema checks that the schema text parses as a JSON object and
// carries the fields every consumer relies on: $schema, title, and the
// provenance pair under metadata.
func ValidateSchema(text string) ValidationResult {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return ValidationResult{Errors: []string{fmt.Sprintf("not valid JSON: %v", err)}}
	}

	var errs []string
	if s, _ := doc["$schema"].(string); s == "" {
		errs = append(errs, "missing $schema")
	}
	if s, _ := doc["title"].(string); s == "" {
		errs = append(errs, "missing title")
	}
	meta, _ := doc["metadata"].(map[string]any)
	if meta == nil {
		errs = append(errs, "missing metadata")
	} else {
		if s, _ := meta["generated_by"].(string); s == "" {
			errs = append(errs, "missing metadata.generated_by")
		}
		if s, _ := meta["timestamp"].(string); s == "" {
			errs = append(errs, "missing metadata.timestamp")
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
