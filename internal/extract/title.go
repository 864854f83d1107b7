package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// markerWord identifies an entity summary row inside the infobox. Rows pair
// the category title with this word ("<Category> Pokémon").
const markerWord = "Pokémon"

// maxTitleLen guards the fallback against capturing a descriptive sentence
// instead of the short category title.
const maxTitleLen = 50

// infoboxSelector matches the page's primary summary table.
const infoboxSelector = "table.roundy"

// extractTitle recovers the category title from the infobox, or "" when no
// qualifying row exists. Missing data here is not an error.
//
// Within the summary row the pages interleave the Japanese label and the
// Latin category inside span.explain elements; the script classification is
// the signal that tells them apart.
func extractTitle(doc *goquery.Document, display string) string {
	var title string
	wantName := strings.ToLower(stripSpace(display))

	doc.Find(infoboxSelector).First().Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		rowText := stripSpace(row.Text())
		// The name comparison folds case so that a lowercased input name
		// still matches the page's capitalized form.
		if !strings.Contains(strings.ToLower(rowText), wantName) || !strings.Contains(rowText, markerWord) {
			return true
		}

		row.Find("span.explain").EachWithBreak(func(_ int, span *goquery.Selection) bool {
			text := strings.TrimSpace(span.Text())
			if text != "" && !containsCJK(text) {
				title = text
				return false
			}
			return true
		})

		if title == "" {
			title = fallbackTitle(row, display)
		}

		// A matching row that yielded nothing is not conclusive; keep
		// scanning the remaining rows.
		return title == ""
	})

	return title
}

// fallbackTitle scans every span in the row for a short "<Category> Pokémon"
// label and strips the marker word from it. If the page wording drifts
// beyond the two known surface forms the marker can remain partially
// embedded; that fragility is accepted rather than guessed around.
func fallbackTitle(row *goquery.Selection, display string) string {
	var title string

	row.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if strings.Contains(text, markerWord) &&
			text != display &&
			utf8.RuneCountInString(text) < maxTitleLen {
			title = strings.ReplaceAll(text, " "+markerWord, "")
			title = strings.ReplaceAll(title, markerWord, "")
			return false
		}
		return true
	})

	return title
}

// stripSpace removes all whitespace so that names and row text compare
// independently of the page's formatting.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
