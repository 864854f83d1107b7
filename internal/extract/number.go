package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
)

// dexIndexPath is the path fragment of the "catalog by number" reference
// page; anchors pointing at it sit next to the Pokédex number.
const dexIndexPath = "List_of_Pokémon_by_National_Pokédex_number"

// dexStrategy is one heuristic for recovering the Pokédex number (and,
// opportunistically, the Japanese name) from the document.
type dexStrategy struct {
	name string
	fn   func(*goquery.Document) (number, native string)
}

// dexStrategies are tried in order; a later tier runs only while no number
// has been recovered. Each tier is best-effort and independently testable.
var dexStrategies = []dexStrategy{
	{"link_anchored", linkAnchoredDex},
	{"infobox_small", infoboxSmallDex},
	{"span_pattern", spanPatternDex},
}

// extractDex runs the strategy tiers and returns the Pokédex number, the
// Japanese name, and the name of the tier that produced the number ("" when
// all tiers failed). A native name found by a failed tier is kept.
func extractDex(doc *goquery.Document) (number, native, tier string) {
	for _, s := range dexStrategies {
		n, j := s.fn(doc)
		if n != "" {
			number = n
			tier = s.name
		}
		if native == "" && j != "" {
			native = j
		}
		if number != "" {
			break
		}
	}

	if native == "" {
		native = japaneseLangSpan(doc)
	}

	return number, native, tier
}

// linkAnchoredDex finds the first anchor targeting the Pokédex index page
// and reads the number (and Japanese name, when present) from the spans of
// its nearest enclosing small-text ancestor.
func linkAnchoredDex(doc *goquery.Document) (string, string) {
	var number, native string

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !strings.Contains(href, dexIndexPath) {
			return true
		}

		// Only the first such anchor counts; if it has no usable small
		// ancestor the next tier takes over.
		spans := a.Closest("small").Find("span")
		if spans.Length() > 0 {
			number = strings.TrimSpace(spans.Eq(0).Text())
		}
		if spans.Length() > 1 {
			native = strings.TrimSpace(spans.Eq(1).Text())
		}
		return false
	})

	return number, native
}

// infoboxSmallDex scans small-text elements inside the summary table whose
// content mentions the National index, classifying their spans into number
// ("#"-prefixed or all digits) and Japanese-name candidates.
func infoboxSmallDex(doc *goquery.Document) (string, string) {
	var number, native string

	doc.Find(infoboxSelector).First().Find("small").Each(func(_ int, small *goquery.Selection) {
		text := small.Text()
		if !strings.Contains(text, "National") && !strings.Contains(text, "List of Pokémon") {
			return
		}

		small.Find("span").Each(func(_ int, span *goquery.Selection) {
			spanText := strings.TrimSpace(span.Text())
			if spanText == "" {
				return
			}
			if strings.HasPrefix(spanText, "#") || isDigits(spanText) {
				number = spanText
			} else if native == "" {
				native = spanText
			}
		})
	})

	return number, native
}

// spanPatternDex is the last resort: scan every span in the document for the
// literal "#0NNN" shape (five characters, zero-padded). XPath keeps the scan
// independent of where the span sits.
func spanPatternDex(doc *goquery.Document) (string, string) {
	root := doc.Get(0)
	nodes, err := htmlquery.QueryAll(root, "//span")
	if err != nil {
		return "", ""
	}

	for _, node := range nodes {
		text := strings.TrimSpace(htmlquery.InnerText(node))
		if strings.HasPrefix(text, "#0") && utf8.RuneCountInString(text) == 5 {
			return text, ""
		}
	}
	return "", ""
}

// japaneseLangSpan returns the text of the first element explicitly tagged
// as Japanese-language content, the independent final fallback for the
// native name.
func japaneseLangSpan(doc *goquery.Document) string {
	node, err := htmlquery.Query(doc.Get(0), "//span[@lang='ja']")
	if err != nil || node == nil {
		return ""
	}
	return strings.TrimSpace(htmlquery.InnerText(node))
}

// isDigits reports whether s is non-empty and entirely ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
