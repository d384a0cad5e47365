package compose

import (
	"strings"
	"time"

	"github.com/docweave/docweave/internal/elements"
)

// internalImportPrefixes mark imports that resolve inside the scanned
// project (relative paths and the common bundler aliases).
var internalImportPrefixes = []string{"./", "../", "@/", "~/", "src/"}

// buildData flattens an element into the renderer's lookup table. Count
// fields accompany every sequence so templates can interpolate sizes
// without the language needing a length operator; the internal/external
// import split is precomputed for the same reason.
func buildData(el *elements.ElementCharacteristics, category string, now time.Time) map[string]any {
	internal, external := splitImports(el.Imports)

	data := map[string]any{
		"name":     el.Name,
		"type":     el.Type,
		"file":     el.File,
		"category": category,
		"date":     now.Format("2006-01-02"),

		"imports":              toAny(el.Imports),
		"importsCount":         len(el.Imports),
		"exports":              toAny(el.Exports),
		"exportsCount":         len(el.Exports),
		"internalImports":      toAny(internal),
		"internalImportsCount": len(internal),
		"externalImports":      toAny(external),
		"externalImportsCount": len(external),

		"hasJSX":     el.Metadata.HasJSX,
		"hooks":      toAny(el.Metadata.Hooks),
		"hooksCount": len(el.Metadata.Hooks),

		"props":          propsData(el.Metadata.Props),
		"propsCount":     len(el.Metadata.Props),
		"stateVariables": stateData(el.Metadata.StateVariables),
		"stateCount":     len(el.Metadata.StateVariables),
		"eventHandlers":  eventsData(el.Metadata.EventHandlers),
		"eventsCount":    len(el.Metadata.EventHandlers),
		"apiCalls":       apiData(el.Metadata.APICalls),
		"apiCallsCount":  len(el.Metadata.APICalls),

		"metadata": el.Metadata.Extra,
	}
	return data
}

// splitImports partitions imports into project-internal and external.
func splitImports(imports []string) (internal, external []string) {
	internal = []string{}
	external = []string{}
	for _, imp := range imports {
		if isInternalImport(imp) {
			internal = append(internal, imp)
		} else {
			external = append(external, imp)
		}
	}
	return internal, external
}

func isInternalImport(imp string) bool {
	for _, prefix := range internalImportPrefixes {
		if strings.HasPrefix(imp, prefix) {
			return true
		}
	}
	return false
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func propsData(props []elements.Prop) []any {
	out := make([]any, len(props))
	for i, p := range props {
		out[i] = map[string]any{
			"name":        p.Name,
			"type":        p.Type,
			"required":    p.Required,
			"default":     p.Default,
			"description": p.Description,
		}
	}
	return out
}

func stateData(vars []elements.StateVariable) []any {
	out := make([]any, len(vars))
	for i, v := range vars {
		out[i] = map[string]any{
			"name":           v.Name,
			"type":           v.Type,
			"initialValue":   v.InitialValue,
			"persisted":      v.Persisted,
			"persistenceKey": v.PersistenceKey,
		}
	}
	return out
}

func eventsData(handlers []elements.EventHandler) []any {
	out := make([]any, len(handlers))
	for i, h := range handlers {
		out[i] = map[string]any{
			"name":        h.Name,
			"type":        h.Type,
			"description": h.Description,
		}
	}
	return out
}

func apiData(calls []elements.APICall) []any {
	out := make([]any, len(calls))
	for i, c := range calls {
		out[i] = map[string]any{
			"method":   c.Method,
			"endpoint": c.Endpoint,
			"library":  c.Library,
		}
	}
	return out
}
