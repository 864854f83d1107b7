// Package format renders extraction results into the fixed record layout.
package format

import (
	"fmt"

	"dexfetch/internal/types"
)

// Render produces the three-line text form of a result:
//
//	<display_name>
//	URL: <url>
//	Final: <display_name>: <title> | <japanese> (Pokedex <number>)
//
// Empty fields render as empty, leaving doubled delimiters in place. The
// record surfaces gaps for human review; it does not hide them.
func Render(r types.Result) string {
	final := fmt.Sprintf("%s: %s | %s (Pokedex %s)", r.DisplayName, r.Title, r.Japanese, r.DexNumber)
	return fmt.Sprintf("%s\nURL: %s\nFinal: %s\n", r.DisplayName, r.URL, final)
}
