package compose

import (
	"math"
	"strings"

	"github.com/docweave/docweave/internal/template"
)

// ReviewFlag points a human reviewer at one section of generated output
// that still needs input, with the template author's reason verbatim.
type ReviewFlag struct {
	Section string `json:"section"`
	Reason  string `json:"reason"`
}

// AutoFillRate computes the percentage of markers in rendered Markdown
// that were mechanically populated, by counting the literal marker
// strings. A document with no markers at all rates 0 — the zero case is
// explicit so no division-by-zero NaN leaks downstream.
func AutoFillRate(markdown string) int {
	auto := strings.Count(markdown, template.AutoFilledMarker)
	manual := strings.Count(markdown, template.ManualMarker)
	total := auto + manual
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(auto) / float64(total)))
}

// ExtractReviewFlags scans rendered Markdown for manual markers and
// attributes each to the nearest preceding second-level heading. The
// reason text is carried verbatim from the marker line.
func ExtractReviewFlags(markdown string) []ReviewFlag {
	flags := []ReviewFlag{}
	section := ""
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "## ") {
			section = strings.TrimSpace(strings.TrimPrefix(line, "## "))
			continue
		}
		idx := strings.Index(line, template.ManualMarker)
		if idx < 0 {
			continue
		}
		reason := strings.TrimSpace(line[idx+len(template.ManualMarker):])
		flags = append(flags, ReviewFlag{Section: section, Reason: reason})
	}
	return flags
}
