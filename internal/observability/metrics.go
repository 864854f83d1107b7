package observability

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Metrics tracks operational counters for a batch run.
type Metrics struct {
	FetchesTotal    atomic.Int64
	FetchesFailed   atomic.Int64
	ItemsExtracted  atomic.Int64
	ItemsStored     atomic.Int64
	FieldsMissing   atomic.Int64
	BytesDownloaded atomic.Int64

	logger *slog.Logger
}

// NewMetrics creates a new Metrics instance.
func NewMetrics(logger *slog.Logger) *Metrics {
	return &Metrics{
		logger: logger.With("component", "metrics"),
	}
}

// ServeHTTP serves metrics in Prometheus text exposition format.
func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	metrics := []struct {
		name  string
		help  string
		value int64
	}{
		{"dexfetch_fetches_total", "Total page fetches attempted", m.FetchesTotal.Load()},
		{"dexfetch_fetches_failed_total", "Total failed page fetches", m.FetchesFailed.Load()},
		{"dexfetch_items_extracted_total", "Total results extracted", m.ItemsExtracted.Load()},
		{"dexfetch_items_stored_total", "Total records stored", m.ItemsStored.Load()},
		{"dexfetch_fields_missing_total", "Total extracted fields that came back empty", m.FieldsMissing.Load()},
		{"dexfetch_bytes_downloaded_total", "Total bytes downloaded", m.BytesDownloaded.Load()},
	}

	for _, metric := range metrics {
		fmt.Fprintf(w, "# HELP %s %s\n", metric.name, metric.help)
		fmt.Fprintf(w, "# TYPE %s counter\n", metric.name)
		fmt.Fprintf(w, "%s %d\n", metric.name, metric.value)
	}
}

// StartServer starts the metrics HTTP server.
func (m *Metrics) StartServer(port int, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, m)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	addr := fmt.Sprintf(":%d", port)
	m.logger.Info("metrics server starting", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			m.logger.Error("metrics server error", "error", err)
		}
	}()

	return nil
}

// Snapshot returns all counters as a map.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"fetches_total":    m.FetchesTotal.Load(),
		"fetches_failed":   m.FetchesFailed.Load(),
		"items_extracted":  m.ItemsExtracted.Load(),
		"items_stored":     m.ItemsStored.Load(),
		"fields_missing":   m.FieldsMissing.Load(),
		"bytes_downloaded": m.BytesDownloaded.Load(),
	}
}
