package fetcher

import (
	"context"

	"dexfetch/internal/types"
)

// Fetcher retrieves the raw markup for one page address. A fetch is a
// single attempt: it returns a complete payload or a terminal failure for
// that address; retry policy is out of scope.
type Fetcher interface {
	// Fetch retrieves the content at the given URL.
	Fetch(ctx context.Context, rawURL string) (*types.Response, error)

	// Close releases any resources held by the fetcher.
	Close() error

	// Type returns the fetcher type identifier.
	Type() string
}
