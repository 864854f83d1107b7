package extract

import (
	"log/slog"

	"dexfetch/internal/types"
)

// Extractor recovers the structured fields for one Pokémon from a fetched
// page. Extraction is best-effort: absent nodes degrade to empty fields,
// never to an error. Only an unparseable body fails.
type Extractor struct {
	logger *slog.Logger
}

// New creates a new Extractor.
func New(logger *slog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With("component", "extractor"),
	}
}

// Extract parses the response body and applies the field heuristics.
// The document tree is owned by this call and discarded when it returns.
func (e *Extractor) Extract(ref Ref, resp *types.Response) (types.Result, error) {
	doc, err := resp.Document()
	if err != nil {
		return types.Result{}, &types.ParseError{URL: resp.URL, Err: err}
	}

	result := types.Result{
		DisplayName: ref.Display,
		URL:         resp.URL,
	}

	result.Title = extractTitle(doc, ref.Display)

	number, native, tier := extractDex(doc)
	result.DexNumber = number
	result.Japanese = native

	e.logger.Debug("extracted",
		"name", ref.Display,
		"title", result.Title,
		"dex_number", result.DexNumber,
		"japanese", result.Japanese,
		"dex_tier", tier,
	)

	if missing := result.MissingFields(); len(missing) > 0 {
		e.logger.Warn("fields missing", "name", ref.Display, "fields", missing)
	}

	return result, nil
}
