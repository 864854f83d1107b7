package extract

import (
	"net/url"
	"strings"
)

const (
	wikiBase   = "https://bulbapedia.bulbagarden.net/wiki/"
	pageSuffix = "_(Pok%C3%A9mon)"
)

// Ref is a normalized reference to one Pokémon: the form used in the page
// address and the form shown to humans. For most names both equal the raw
// input.
type Ref struct {
	// Lookup is the name as it appears in the wiki address.
	Lookup string

	// Display is the human-readable name.
	Display string
}

// nameExceptions maps lowercased input names whose wiki address diverges
// from the plain-name form. Building a wrong address is a hard 404 with no
// partial-success recovery, so these are enumerated rather than guessed.
var nameExceptions = map[string]Ref{
	"mrmime": {Lookup: "Mr._Mime", Display: "Mr. Mime"},
}

// Normalize resolves a raw input name to its lookup and display forms.
// It is total: any input yields a Ref, unchanged unless it matches the
// exception table (case-insensitively).
func Normalize(name string) Ref {
	if ref, ok := nameExceptions[strings.ToLower(name)]; ok {
		return ref
	}
	return Ref{Lookup: name, Display: name}
}

// PageURL builds the wiki address for a lookup name. Deterministic template
// substitution; validity is discovered only at fetch time.
func PageURL(lookup string) string {
	return wikiBase + url.PathEscape(lookup) + pageSuffix
}
