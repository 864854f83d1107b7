// Package batch drives the sequential fetch → extract → format → store loop
// over a list of Pokémon names.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"dexfetch/internal/extract"
	"dexfetch/internal/fetcher"
	"dexfetch/internal/format"
	"dexfetch/internal/observability"
	"dexfetch/internal/storage"
	"dexfetch/internal/types"
)

// Stats summarizes one batch run.
type Stats struct {
	Succeeded int
	Failed    int
	Total     int
}

// Runner processes names strictly one at a time: a name is fully resolved
// before the next begins, with a fixed politeness delay between fetches.
type Runner struct {
	fetcher   fetcher.Fetcher
	extractor *extract.Extractor
	store     storage.Storage
	metrics   *observability.Metrics
	delay     time.Duration
	sleep     func(time.Duration)
	logger    *slog.Logger
}

// NewRunner creates a batch runner. The delay is the fixed pause between
// successive fetches.
func NewRunner(f fetcher.Fetcher, e *extract.Extractor, s storage.Storage, m *observability.Metrics, delay time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		fetcher:   f,
		extractor: e,
		store:     s,
		metrics:   m,
		delay:     delay,
		sleep:     time.Sleep,
		logger:    logger.With("component", "batch"),
	}
}

// SetSleep replaces the pacing sleep function. Tests use this to run a
// paced batch without real waiting.
func (r *Runner) SetSleep(fn func(time.Duration)) {
	r.sleep = fn
}

// ReadNames reads newline-delimited names, skipping blank lines.
func ReadNames(rd io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return names, nil
}

// ReadNamesFile reads names from the given file path.
func ReadNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()
	return ReadNames(f)
}

// Run processes each name in order. A fetch failure is terminal for that
// one name only; the batch continues. Returns the aggregate stats and the
// context error if the run was cancelled mid-batch.
func (r *Runner) Run(ctx context.Context, names []string) (Stats, error) {
	stats := Stats{Total: len(names)}

	for i, name := range names {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		r.logger.Info("processing", "name", name, "position", fmt.Sprintf("%d/%d", i+1, len(names)))

		if r.process(ctx, name) {
			stats.Succeeded++
		} else {
			stats.Failed++
		}

		// Pause between fetches, not after the last one.
		if i < len(names)-1 && r.delay > 0 {
			r.sleep(r.delay)
		}
	}

	r.logger.Info("batch complete", "succeeded", stats.Succeeded, "total", stats.Total)
	return stats, nil
}

// process resolves a single name end to end and reports whether a record
// was produced and stored.
func (r *Runner) process(ctx context.Context, name string) bool {
	ref := extract.Normalize(name)
	pageURL := extract.PageURL(ref.Lookup)

	r.metrics.FetchesTotal.Add(1)
	resp, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		r.metrics.FetchesFailed.Add(1)
		r.logger.Warn("fetch failed", "name", name, "url", pageURL, "error", err)
		return false
	}
	r.metrics.BytesDownloaded.Add(resp.ContentLength)

	result, err := r.extractor.Extract(ref, resp)
	if err != nil {
		r.logger.Warn("extract failed", "name", name, "error", err)
		return false
	}
	r.metrics.ItemsExtracted.Add(1)
	r.metrics.FieldsMissing.Add(int64(len(result.MissingFields())))

	rec := &types.Record{
		Result:    result,
		Text:      format.Render(result),
		CreatedAt: time.Now(),
	}
	if err := r.store.Store(rec); err != nil {
		r.logger.Error("store failed", "name", name, "error", err)
		return false
	}
	r.metrics.ItemsStored.Add(1)

	r.logger.Info("record produced", "name", ref.Display, "title", result.Title, "dex_number", result.DexNumber)
	return true
}
