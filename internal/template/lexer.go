// Package template implements the mini template language used by module
// template sections: {{path}} interpolation, {{#each}} iteration,
// {{#if}}/{{else}} conditionals, and MANUAL/AUTO_FILL marker conversion.
//
// Rendering is two-phase: a lexer/parser produces a small AST (text,
// variable, each, if) and a renderer walks it against the auto-fill data
// table. Marker conversion is a final textual pass, after all variable and
// block substitution, so a {{MANUAL: …}} construct may itself contain
// variables that resolve first.
package template

import "strings"

type tokenKind int

const (
	tokText tokenKind = iota
	tokVariable
	tokOpenEach
	tokOpenIf
	tokElse
	tokCloseEach
	tokCloseIf
)

type token struct {
	kind tokenKind
	// text holds literal content for tokText, the dot-path for variable
	// and block-open tokens, and the raw tag text for delimiters.
	text string
	// raw is the original source of a tag token, used when a stray or
	// unmatched tag has to be emitted verbatim.
	raw string
}

// lex splits template source into text and tag tokens. Anything between
// {{ and }} that is not a recognized tag — including MANUAL/AUTO_FILL
// markers — stays literal text and flows through to the marker pass.
func lex(src string) []token {
	var tokens []token
	for len(src) > 0 {
		open := strings.Index(src, "{{")
		if open < 0 {
			tokens = append(tokens, token{kind: tokText, text: src})
			break
		}
		if open > 0 {
			tokens = append(tokens, token{kind: tokText, text: src[:open]})
			src = src[open:]
		}

		rest := src[2:]
		close := strings.Index(rest, "}}")
		if close < 0 {
			tokens = append(tokens, token{kind: tokText, text: src})
			break
		}

		inner := rest[:close]
		raw := src[:close+4]
		if tok, ok := classifyTag(inner, raw); ok {
			tokens = append(tokens, tok)
			src = rest[close+2:]
			continue
		}

		// Not a tag of the language. Emit the opening braces as text and
		// rescan right after them so nested variables inside markers are
		// still found.
		tokens = append(tokens, token{kind: tokText, text: "{{"})
		src = rest
	}
	return tokens
}

// classifyTag maps the inner text of a {{…}} occurrence to a tag token.
func classifyTag(inner, raw string) (token, bool) {
	trimmed := strings.TrimSpace(inner)
	switch {
	case trimmed == "else":
		return token{kind: tokElse, raw: raw}, true
	case trimmed == "/each":
		return token{kind: tokCloseEach, raw: raw}, true
	case trimmed == "/if":
		return token{kind: tokCloseIf, raw: raw}, true
	case strings.HasPrefix(trimmed, "#each"):
		path := strings.TrimSpace(strings.TrimPrefix(trimmed, "#each"))
		if isPath(path) {
			return token{kind: tokOpenEach, text: path, raw: raw}, true
		}
	case strings.HasPrefix(trimmed, "#if"):
		path := strings.TrimSpace(strings.TrimPrefix(trimmed, "#if"))
		if isPath(path) {
			return token{kind: tokOpenIf, text: path, raw: raw}, true
		}
	default:
		if isPath(trimmed) && trimmed == inner {
			return token{kind: tokVariable, text: trimmed, raw: raw}, true
		}
	}
	return token{}, false
}

// isPath reports whether s is a plain dot-path: non-empty segments of
// word characters separated by dots.
func isPath(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			ok := r == '_' || r == '$' ||
				(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			if !ok {
				return false
			}
		}
	}
	return true
}
