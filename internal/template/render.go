package template

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Render applies the mini template language to src using the auto-fill
// data table, then converts MANUAL/AUTO_FILL markers. Safe on any input —
// malformed constructs degrade to literal text rather than erroring.
func Render(src string, data map[string]any) string {
	nodes := parse(lex(src))
	var b strings.Builder
	renderNodes(&b, nodes, data, nil)
	return ConvertMarkers(b.String())
}

// renderNodes walks the AST. scope is the current #each element, nil at
// top level.
func renderNodes(b *strings.Builder, nodes []node, data map[string]any, scope any) {
	for _, n := range nodes {
		switch t := n.(type) {
		case textNode:
			b.WriteString(t.text)
		case variableNode:
			renderVariable(b, t, data, scope)
		case eachNode:
			renderEach(b, t, data, scope)
		case ifNode:
			value, _ := resolve(t.path, data, scope)
			if truthy(value) {
				renderNodes(b, t.thenBody, data, scope)
			} else {
				renderNodes(b, t.elseBody, data, scope)
			}
		}
	}
}

// renderVariable substitutes one {{path}}. A top-level path that does not
// resolve keeps its literal form so missing data stays visible in output;
// a this.* path that does not resolve renders as the empty string, because
// inside an #each the surrounding context already establishes that the
// section was populated.
func renderVariable(b *strings.Builder, v variableNode, data map[string]any, scope any) {
	scoped := v.path == "this" || strings.HasPrefix(v.path, "this.")
	value, ok := resolve(v.path, data, scope)
	if !ok {
		if !scoped {
			b.WriteString(v.raw)
		}
		return
	}
	b.WriteString(formatValue(value))
}

// renderEach expands one {{#each path}} block. A path that is absent, not
// a sequence, or empty removes the whole block including its delimiters.
func renderEach(b *strings.Builder, e eachNode, data map[string]any, scope any) {
	value, ok := resolve(e.path, data, scope)
	if !ok {
		return
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return
	}
	for i := 0; i < rv.Len(); i++ {
		renderNodes(b, e.body, data, rv.Index(i).Interface())
	}
}

// resolve looks up a dot-path. this-prefixed paths address the current
// #each element; everything else addresses the top-level data table. The
// boolean reports whether every segment resolved.
func resolve(path string, data map[string]any, scope any) (any, bool) {
	if path == "this" {
		if scope == nil {
			return nil, false
		}
		return scope, true
	}
	if rest, ok := strings.CutPrefix(path, "this."); ok {
		if scope == nil {
			return nil, false
		}
		return walk(scope, strings.Split(rest, "."))
	}
	return walk(data, strings.Split(path, "."))
}

// walk descends a value by map keys.
func walk(value any, segments []string) (any, bool) {
	current := value
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// truthy applies standard truthiness: nil, false, empty string, numeric
// zero, and empty sequences/maps are falsy.
func truthy(value any) bool {
	switch t := value.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return rv.Len() > 0
		}
		return true
	}
}

// formatValue renders a resolved value as template output text. JSON
// numbers arrive as float64; integral ones print without a decimal part.
func formatValue(value any) string {
	switch t := value.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
