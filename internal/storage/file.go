package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"dexfetch/internal/types"
)

// --- Text Storage ---

// TextStorage writes rendered records verbatim to a file, each followed by
// a blank line. This is the canonical review format.
type TextStorage struct {
	path   string
	file   *os.File
	w      *bufio.Writer
	mu     sync.Mutex
	count  int
	logger *slog.Logger
}

// NewTextStorage creates a new text file storage.
func NewTextStorage(outputPath string, logger *slog.Logger) (*TextStorage, error) {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &TextStorage{
		path:   outputPath,
		file:   f,
		w:      bufio.NewWriter(f),
		logger: logger.With("component", "text_storage"),
	}, nil
}

func (s *TextStorage) Name() string { return "text" }

func (s *TextStorage) Store(rec *types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.WriteString(rec.Text); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	if _, err := s.w.WriteString("\n"); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	s.count++
	return nil
}

func (s *TextStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("records written", "path", s.path, "records", s.count)
	if err := s.w.Flush(); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	return s.file.Close()
}

// --- JSONL Storage ---

// JSONLStorage writes one JSON object per result (streaming writes).
type JSONLStorage struct {
	path   string
	file   *os.File
	enc    *json.Encoder
	mu     sync.Mutex
	count  int
	logger *slog.Logger
}

// NewJSONLStorage creates a new JSONL file storage.
func NewJSONLStorage(outputPath string, logger *slog.Logger) (*JSONLStorage, error) {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &JSONLStorage{
		path:   outputPath,
		file:   f,
		enc:    json.NewEncoder(f),
		logger: logger.With("component", "jsonl_storage"),
	}, nil
}

func (s *JSONLStorage) Name() string { return "jsonl" }

func (s *JSONLStorage) Store(rec *types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := map[string]any{
		"name":       rec.Result.DisplayName,
		"url":        rec.Result.URL,
		"title":      rec.Result.Title,
		"japanese":   rec.Result.Japanese,
		"dex_number": rec.Result.DexNumber,
		"_timestamp": rec.CreatedAt,
	}
	if err := s.enc.Encode(entry); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	s.count++
	return nil
}

func (s *JSONLStorage) Close() error {
	s.logger.Info("JSONL written", "path", s.path, "records", s.count)
	return s.file.Close()
}

// New creates the appropriate storage backend by type.
func New(storageType, outputPath, mongoURI, mongoDB, mongoColl string, logger *slog.Logger) (Storage, error) {
	switch storageType {
	case "text":
		return NewTextStorage(outputPath, logger)
	case "jsonl":
		return NewJSONLStorage(outputPath, logger)
	case "mongodb":
		return NewMongoStorage(mongoURI, mongoDB, mongoColl, logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}
