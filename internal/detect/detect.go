// Package detect implements heuristic classification of code elements.
//
// Characteristic extraction is deliberately permissive: a flag is raised
// when ANY of its signals holds, favoring recall over precision. False
// positives are corrected downstream by the confidence score and by the
// manual-review flags on composed output, not by suppressing detection.
package detect

import (
	"strings"

	"github.com/docweave/docweave/internal/elements"
)

// Flags is the fixed set of characteristic booleans derived from one
// element. Computed fresh on every call — a pure function of the element.
type Flags struct {
	IsReactComponent bool `json:"isReactComponent"`
	UsesState        bool `json:"usesState"`
	HasProps         bool `json:"hasProps"`
	HasLifecycle     bool `json:"hasLifecycle"`
	HasEvents        bool `json:"hasEvents"`
	IsAPI            bool `json:"isAPI"`
	IsCLI            bool `json:"isCLI"`
	IsHook           bool `json:"isHook"`
	IsStore          bool `json:"isStore"`
	IsTest           bool `json:"isTest"`
	IsGenerator      bool `json:"isGenerator"`
	IsInfrastructure bool `json:"isInfrastructure"`
	HasAuth          bool `json:"hasAuth"`
	HasValidation    bool `json:"hasValidation"`
	HasPersistence   bool `json:"hasPersistence"`
	HasRouting       bool `json:"hasRouting"`
	HasAccessibility bool `json:"hasAccessibility"`
}

// Result pairs the characteristic flags with their confidence score.
type Result struct {
	Flags
	Confidence int `json:"confidence"`
}

// Detect analyzes an element and scores the result.
func Detect(el *elements.ElementCharacteristics) Result {
	f := Analyze(el)
	return Result{Flags: f, Confidence: Score(f)}
}

// Analyze derives the characteristic flags from name, file path, imports,
// and scanner metadata.
func Analyze(el *elements.ElementCharacteristics) Flags {
	name := el.Name
	lower := strings.ToLower(name)
	file := strings.ToLower(el.File)
	md := el.Metadata

	var f Flags

	f.IsReactComponent = md.HasJSX ||
		importsAny(el, "react", "preact") ||
		strings.HasSuffix(file, ".tsx") || strings.HasSuffix(file, ".jsx") ||
		strings.EqualFold(el.Type, "component")

	f.UsesState = len(md.StateVariables) > 0 ||
		hooksAny(md.Hooks, "useState", "useReducer") ||
		importsAny(el, "zustand", "redux", "mobx")

	f.HasProps = len(md.Props) > 0

	f.HasLifecycle = hooksAny(md.Hooks, "useEffect", "useLayoutEffect", "useMemo", "useCallback") ||
		strings.Contains(lower, "componentdid") || strings.Contains(lower, "componentwill")

	f.HasEvents = len(md.EventHandlers) > 0 ||
		strings.HasPrefix(lower, "handle") || strings.HasPrefix(lower, "on")

	f.IsAPI = len(md.APICalls) > 0 ||
		importsAny(el, "axios", "node-fetch", "got", "superagent") ||
		pathHasSegment(file, "api") || pathHasSegment(file, "services")

	f.IsCLI = pathHasSegment(file, "cli") || pathHasSegment(file, "commands") ||
		strings.HasSuffix(name, "Command") || strings.HasSuffix(name, "CLI") ||
		importsAny(el, "commander", "yargs", "oclif", "inquirer")

	f.IsHook = isHookName(name) || pathHasSegment(file, "hooks")

	f.IsStore = pathHasSegment(file, "store") || pathHasSegment(file, "stores") ||
		strings.HasSuffix(name, "Store") ||
		importsAny(el, "zustand", "redux", "pinia", "vuex", "jotai", "recoil")

	f.IsTest = strings.Contains(file, ".test.") || strings.Contains(file, ".spec.") ||
		pathHasSegment(file, "__tests__") || pathHasSegment(file, "tests") ||
		importsAny(el, "vitest", "jest", "@testing-library/react", "mocha", "chai")

	f.IsGenerator = strings.Contains(lower, "generator") || strings.HasPrefix(lower, "generate") ||
		pathHasSegment(file, "generators") || pathHasSegment(file, "templates")

	f.IsInfrastructure = pathHasSegment(file, "infra") || pathHasSegment(file, "infrastructure") ||
		pathHasSegment(file, "scripts") || pathHasSegment(file, "config") ||
		strings.HasSuffix(name, "Config") || strings.HasSuffix(name, "Middleware")

	f.HasAuth = strings.Contains(lower, "auth") || pathHasSegment(file, "auth") ||
		importsAny(el, "jsonwebtoken", "passport", "next-auth", "@auth0/auth0-react")

	f.HasValidation = strings.Contains(lower, "valid") || strings.Contains(lower, "sanitiz") ||
		importsAny(el, "zod", "yup", "joi", "ajv", "class-validator")

	f.HasPersistence = persistedState(md.StateVariables) ||
		pathHasSegment(file, "db") || pathHasSegment(file, "storage") ||
		importsAny(el, "prisma", "@prisma/client", "mongoose", "knex", "typeorm", "idb")

	f.HasRouting = pathHasSegment(file, "routes") || pathHasSegment(file, "router") ||
		importsAny(el, "react-router", "react-router-dom", "next/router", "next/navigation", "wouter")

	f.HasAccessibility = strings.Contains(lower, "a11y") || strings.Contains(file, "a11y") ||
		importsAny(el, "axe-core", "@axe-core/react", "react-aria") ||
		metadataHasKey(md, "ariaAttributes") || metadataHasKey(md, "accessibility")

	return f
}

// isHookName reports the React hook naming convention: "use" followed by
// an uppercase letter.
func isHookName(name string) bool {
	if !strings.HasPrefix(name, "use") || len(name) < 4 {
		return false
	}
	c := name[3]
	return c >= 'A' && c <= 'Z'
}

// pathHasSegment reports whether file contains dir as a whole path segment
// (cli/-style directories, not substrings of unrelated names).
func pathHasSegment(file, dir string) bool {
	for _, seg := range strings.FieldsFunc(file, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == dir {
			return true
		}
	}
	return false
}

// importsAny reports whether any import equals or is a subpath of one of
// the given package names.
func importsAny(el *elements.ElementCharacteristics, pkgs ...string) bool {
	for _, imp := range el.Imports {
		for _, pkg := range pkgs {
			if imp == pkg || strings.HasPrefix(imp, pkg+"/") {
				return true
			}
		}
	}
	return false
}

// hooksAny reports whether any of the given hook names was recorded.
func hooksAny(hooks []string, names ...string) bool {
	for _, h := range hooks {
		for _, n := range names {
			if h == n {
				return true
			}
		}
	}
	return false
}

// persistedState reports whether any state variable is marked persisted.
func persistedState(vars []elements.StateVariable) bool {
	for _, v := range vars {
		if v.Persisted {
			return true
		}
	}
	return false
}

// metadataHasKey reports whether the scanner emitted a non-empty
// pass-through metadata key.
func metadataHasKey(md elements.Metadata, key string) bool {
	v, ok := md.Extra[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
