package template

import "regexp"

// Rendered marker literals. Auto-fill rate computation and review-flag
// extraction scan composed Markdown for these exact strings, so they are
// part of the output contract.
const (
	// ManualMarker prefixes a section a human still has to fill in. The
	// template author's reason text follows it verbatim.
	ManualMarker = "⚠️ MANUAL REQUIRED:"
	// AutoFilledMarker flags content that was populated from code
	// metadata.
	AutoFilledMarker = "✅ AUTO-FILLED"
)

var (
	manualRe   = regexp.MustCompile(`\{\{MANUAL:\s*([^{}]*?)\s*\}\}`)
	autoFillRe = regexp.MustCompile(`\{\{AUTO_FILL:\s*([^{}]*?)\s*\}\}`)
)

// ConvertMarkers rewrites {{MANUAL: reason}} and {{AUTO_FILL: intent}}
// constructs into their literal marker form. Runs after variable and
// block substitution, so reasons may carry resolved variable values. The
// AUTO_FILL text is discarded — it only described intent to the template
// author.
func ConvertMarkers(s string) string {
	s = manualRe.ReplaceAllString(s, ManualMarker+" $1")
	s = autoFillRe.ReplaceAllString(s, AutoFilledMarker)
	return s
}
