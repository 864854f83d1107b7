package types

import "time"

// Result holds the fields extracted for one Pokémon.
//
// Title, Japanese, and DexNumber are empty strings when the page did not
// yield them. A partially filled Result is still a usable result; the
// record surfaces the gaps for review instead of hiding them.
type Result struct {
	// DisplayName is the human-readable name (e.g. "Mr. Mime").
	DisplayName string

	// URL is the canonical page address the fields came from.
	URL string

	// Title is the category title, e.g. "Mouse" for the Mouse Pokémon.
	Title string

	// Japanese is the name in Japanese script.
	Japanese string

	// DexNumber is the National Pokédex number, conventionally "#NNNN".
	DexNumber string
}

// Complete reports whether every extracted field was recovered.
func (r Result) Complete() bool {
	return r.Title != "" && r.Japanese != "" && r.DexNumber != ""
}

// MissingFields lists the extracted fields that came back empty.
func (r Result) MissingFields() []string {
	var missing []string
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Japanese == "" {
		missing = append(missing, "japanese")
	}
	if r.DexNumber == "" {
		missing = append(missing, "dex_number")
	}
	return missing
}

// Record is one rendered output entry: the result plus its text form.
type Record struct {
	// Result is the extracted field set.
	Result Result

	// Text is the rendered multi-line record.
	Text string

	// CreatedAt is when this record was produced.
	CreatedAt time.Time
}
