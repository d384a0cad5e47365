package detect

// Confidence scoring constants. The per-flag bonuses and the ambiguity
// penalty are product-tunable; the ambiguity list is intentionally the
// fixed set of three pairs rather than a generalized rule.
const (
	baseScore        = 50
	bonusTest        = 25
	bonusComponent   = 20
	bonusCLI         = 20
	bonusHook        = 20
	bonusAPI         = 15
	bonusStore       = 15
	bonusGenerator   = 15
	bonusInfra       = 15
	ambiguityPenalty = 15
)

// Score computes the 0–100 confidence for a flag record.
//
// The score starts at 50 and earns an uncapped bonus for each strong
// category signal; each ambiguity pair — the element plausibly straddling
// two categories at once — subtracts 15. The final value is clamped to
// [0, 100]. An element with no strong signals stays at 50, which reads as
// "unclassified" rather than "confidently generic".
func Score(f Flags) int {
	score := baseScore

	if f.IsTest {
		score += bonusTest
	}
	if f.IsReactComponent {
		score += bonusComponent
	}
	if f.IsCLI {
		score += bonusCLI
	}
	if f.IsHook {
		score += bonusHook
	}
	if f.IsAPI {
		score += bonusAPI
	}
	if f.IsStore {
		score += bonusStore
	}
	if f.IsGenerator {
		score += bonusGenerator
	}
	if f.IsInfrastructure {
		score += bonusInfra
	}

	ambiguityPairs := [][2]bool{
		{f.IsReactComponent, f.IsAPI},
		{f.IsHook, f.IsStore},
		{f.IsCLI, f.IsAPI},
	}
	for _, pair := range ambiguityPairs {
		if pair[0] && pair[1] {
			score -= ambiguityPenalty
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
