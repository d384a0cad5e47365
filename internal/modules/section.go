package modules

import "strings"

// ExtractSection returns the addressable content of a module template
// document:
//
//   - everything between the first "## Section:" heading and either the
//     "---" rule immediately preceding a "## Metadata" heading or the end
//     of the document;
//   - if no "## Section:" heading exists, everything from the first "##"
//     heading onward;
//   - if no "##" heading exists at all, the whole document.
//
// The degradation is deliberate — a sloppy template still renders.
func ExtractSection(doc string) string {
	lines := strings.Split(doc, "\n")

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "## Section:") {
			start = i + 1
			break
		}
	}

	if start < 0 {
		for i, line := range lines {
			if strings.HasPrefix(line, "## ") {
				return strings.TrimSpace(strings.Join(lines[i:], "\n"))
			}
		}
		return strings.TrimSpace(doc)
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "---" {
			continue
		}
		// The rule only terminates the section when a "## Metadata"
		// heading follows it.
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if strings.HasPrefix(next, "## Metadata") {
				end = i
			}
			break
		}
		if end == i {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}
