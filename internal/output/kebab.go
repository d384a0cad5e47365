package output

import "strings"

// Kebab converts an element name to its on-disk form. A hyphen is
// inserted at every lower-to-upper boundary, runs of whitespace and
// underscores collapse to a single hyphen, and the result is lowercased.
// "UserProfileCard" becomes "user-profile-card".
func Kebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	prevLower := false
	pendingHyphen := false
	for _, r := range name {
		if r == '_' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if b.Len() > 0 {
				pendingHyphen = true
			}
			prevLower = false
			continue
		}
		upper := r >= 'A' && r <= 'Z'
		if pendingHyphen || (prevLower && upper) {
			b.WriteByte('-')
			pendingHyphen = false
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
		prevLower = !upper && r >= 'a' && r <= 'z'
	}
	return b.String()
}
