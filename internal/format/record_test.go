package format

import (
	"testing"

	"dexfetch/internal/types"
)

func TestRenderFullResult(t *testing.T) {
	r := types.Result{
		DisplayName: "pikachu",
		URL:         "https://bulbapedia.bulbagarden.net/wiki/pikachu_(Pok%C3%A9mon)",
		Title:       "Mouse",
		Japanese:    "ピカチュウ",
		DexNumber:   "#0025",
	}

	want := "pikachu\n" +
		"URL: https://bulbapedia.bulbagarden.net/wiki/pikachu_(Pok%C3%A9mon)\n" +
		"Final: pikachu: Mouse | ピカチュウ (Pokedex #0025)\n"

	if got := Render(r); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmptyFields(t *testing.T) {
	// Empty fields render as empty, leaving doubled delimiters visible.
	r := types.Result{
		DisplayName: "missingno",
		URL:         "https://bulbapedia.bulbagarden.net/wiki/missingno_(Pok%C3%A9mon)",
	}

	want := "missingno\n" +
		"URL: https://bulbapedia.bulbagarden.net/wiki/missingno_(Pok%C3%A9mon)\n" +
		"Final: missingno:  |  (Pokedex )\n"

	if got := Render(r); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
