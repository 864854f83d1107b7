package extract

import (
	"log/slog"
	"os"
	"testing"

	"dexfetch/internal/format"
	"dexfetch/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func makeResp(url, body string) *types.Response {
	return &types.Response{
		URL:           url,
		StatusCode:    200,
		Body:          []byte(body),
		ContentType:   "text/html",
		ContentLength: int64(len(body)),
	}
}

const pikachuHTML = `<!DOCTYPE html>
<html><body>
<table class="roundy">
<tr><td>
<b>Pikachu</b>
<span class="explain" title="Mouse Pokémon">ネズミポケモン</span>
<span class="explain">Mouse</span> Pokémon
<small>
<a href="/wiki/List_of_Pokémon_by_National_Pokédex_number">National Pokédex</a>
<span>#0025</span>
<span lang="ja">ピカチュウ</span>
</small>
</td></tr>
</table>
</body></html>`

func TestExtractPikachu(t *testing.T) {
	e := New(testLogger)
	ref := Normalize("pikachu")
	resp := makeResp(PageURL(ref.Lookup), pikachuHTML)

	result, err := e.Extract(ref, resp)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}

	if result.DisplayName != "pikachu" {
		t.Errorf("DisplayName = %q, want %q", result.DisplayName, "pikachu")
	}
	if result.Title != "Mouse" {
		t.Errorf("Title = %q, want %q", result.Title, "Mouse")
	}
	if result.DexNumber != "#0025" {
		t.Errorf("DexNumber = %q, want %q", result.DexNumber, "#0025")
	}
	if result.Japanese != "ピカチュウ" {
		t.Errorf("Japanese = %q, want %q", result.Japanese, "ピカチュウ")
	}

	record := format.Render(result)
	wantFinal := "Final: pikachu: Mouse | ピカチュウ (Pokedex #0025)\n"
	if got := record[len(record)-len(wantFinal):]; got != wantFinal {
		t.Errorf("record final line = %q, want %q", got, wantFinal)
	}
}

func TestExtractTitleFallbackStripsMarker(t *testing.T) {
	html := `<html><body>
<table class="roundy">
<tr><td>Pikachu <span>Mouse Pokémon</span></td></tr>
</table>
</body></html>`

	e := New(testLogger)
	result, err := e.Extract(Normalize("pikachu"), makeResp("http://example.test", html))
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if result.Title != "Mouse" {
		t.Errorf("Title = %q, want %q", result.Title, "Mouse")
	}
}

func TestExtractNoInfobox(t *testing.T) {
	html := `<html><body><p>nothing of interest</p></body></html>`

	e := New(testLogger)
	result, err := e.Extract(Normalize("pikachu"), makeResp("http://example.test", html))
	if err != nil {
		t.Fatalf("missing infobox must not be an error, got: %v", err)
	}
	if result.Title != "" || result.DexNumber != "" || result.Japanese != "" {
		t.Errorf("expected empty fields, got %+v", result)
	}
}

func TestDexTierPrecedence(t *testing.T) {
	// Tier 1 is satisfiable, and tier 2/3 shapes are present elsewhere in
	// the document. Tier 1 must win.
	html := `<html><body>
<table class="roundy">
<tr><td>
<small>National Pokédex number <span>#0888</span></small>
<small><a href="/wiki/List_of_Pokémon_by_National_Pokédex_number">index</a>
<span>#0025</span><span>ピカチュウ</span></small>
</td></tr>
</table>
<p><span>#0999</span></p>
</body></html>`

	doc := makeResp("http://example.test", html)
	gdoc, err := doc.Document()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	number, native, tier := extractDex(gdoc)
	if number != "#0025" {
		t.Errorf("number = %q, want tier-1 value %q", number, "#0025")
	}
	if native != "ピカチュウ" {
		t.Errorf("native = %q, want %q", native, "ピカチュウ")
	}
	if tier != "link_anchored" {
		t.Errorf("tier = %q, want %q", tier, "link_anchored")
	}
}

func TestDexInfoboxTier(t *testing.T) {
	html := `<html><body>
<table class="roundy">
<tr><td>
<small>National Pokédex number <span>イーブイ</span><span>#0133</span></small>
</td></tr>
</table>
</body></html>`

	gdoc, err := makeResp("http://example.test", html).Document()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	number, native, tier := extractDex(gdoc)
	if number != "#0133" {
		t.Errorf("number = %q, want %q", number, "#0133")
	}
	if native != "イーブイ" {
		t.Errorf("native = %q, want %q", native, "イーブイ")
	}
	if tier != "infobox_small" {
		t.Errorf("tier = %q, want %q", tier, "infobox_small")
	}
}

func TestDexPatternTier(t *testing.T) {
	// Only the last-resort shape exists anywhere in the document.
	html := `<html><body><p><span>#0127</span> Pinsir is out there somewhere</p></body></html>`

	gdoc, err := makeResp("http://example.test", html).Document()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	number, native, tier := extractDex(gdoc)
	if number != "#0127" {
		t.Errorf("number = %q, want %q", number, "#0127")
	}
	if native != "" {
		t.Errorf("native = %q, want empty", native)
	}
	if tier != "span_pattern" {
		t.Errorf("tier = %q, want %q", tier, "span_pattern")
	}
}

func TestJapaneseLangFallback(t *testing.T) {
	html := `<html><body><p><span lang="ja">フシギダネ</span></p></body></html>`

	gdoc, err := makeResp("http://example.test", html).Document()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	number, native, _ := extractDex(gdoc)
	if number != "" {
		t.Errorf("number = %q, want empty", number)
	}
	if native != "フシギダネ" {
		t.Errorf("native = %q, want %q", native, "フシギダネ")
	}
}

func TestExplainSpanClassification(t *testing.T) {
	// Japanese explain span comes first; the Latin one must still win.
	html := `<html><body>
<table class="roundy">
<tr><td>Eevee
<span class="explain">しんかポケモン</span>
<span class="explain">Evolution</span> Pokémon
</td></tr>
</table>
</body></html>`

	gdoc, err := makeResp("http://example.test", html).Document()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := extractTitle(gdoc, "Eevee"); got != "Evolution" {
		t.Errorf("title = %q, want %q", got, "Evolution")
	}
}

func TestTitleIgnoresUnrelatedRows(t *testing.T) {
	// A row mentioning the marker word without the name must not match.
	html := `<html><body>
<table class="roundy">
<tr><td>Some other Pokémon trivia <span class="explain">Wrong</span></td></tr>
<tr><td>Eevee <span class="explain">Evolution</span> Pokémon</td></tr>
</table>
</body></html>`

	gdoc, err := makeResp("http://example.test", html).Document()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := extractTitle(gdoc, "Eevee"); got != "Evolution" {
		t.Errorf("title = %q, want %q", got, "Evolution")
	}
}
