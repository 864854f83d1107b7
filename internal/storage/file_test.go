package storage

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dexfetch/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func testRecord(name string) *types.Record {
	return &types.Record{
		Result: types.Result{
			DisplayName: name,
			URL:         "https://bulbapedia.bulbagarden.net/wiki/" + name + "_(Pok%C3%A9mon)",
			Title:       "Mouse",
			Japanese:    "ピカチュウ",
			DexNumber:   "#0025",
		},
		Text:      name + "\nURL: u\nFinal: f\n",
		CreatedAt: time.Now(),
	}
}

func TestTextStorageBlankLineSeparation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	s, err := NewTextStorage(path, testLogger)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Store(testRecord("pikachu")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Store(testRecord("eevee")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	want := "pikachu\nURL: u\nFinal: f\n\n" +
		"eevee\nURL: u\nFinal: f\n\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", string(data), want)
	}
}

func TestJSONLStorageShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	s, err := NewJSONLStorage(path, testLogger)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Store(testRecord("pikachu")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("expected one JSONL line")
	}

	var entry map[string]any
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["name"] != "pikachu" {
		t.Errorf("name = %v, want pikachu", entry["name"])
	}
	if entry["dex_number"] != "#0025" {
		t.Errorf("dex_number = %v, want #0025", entry["dex_number"])
	}
	if entry["japanese"] != "ピカチュウ" {
		t.Errorf("japanese = %v, want ピカチュウ", entry["japanese"])
	}
}

func TestNewUnsupportedType(t *testing.T) {
	if _, err := New("xml", "out", "", "", "", testLogger); err == nil {
		t.Fatal("expected error for unsupported storage type")
	}
}
