package extract

// cjkThreshold is the code point above which text is treated as Japanese
// script. U+3000 sits just below the kana and CJK ideograph blocks. This is
// a coarse heuristic, not Unicode script detection; the boundary is load
// bearing for title classification and must not change.
const cjkThreshold = 0x3000

// containsCJK reports whether any rune in s falls in the Japanese script
// range used by the source pages (kana, CJK ideographs).
func containsCJK(s string) bool {
	for _, r := range s {
		if r > cjkThreshold {
			return true
		}
	}
	return false
}
