package extract

import "testing"

func TestContainsCJKBoundary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"latin", "Mouse", false},
		{"empty", "", false},
		{"at threshold", string(rune(0x3000)), false},  // ideographic space, not above
		{"one above", string(rune(0x3001)), true},      // 、
		{"one below", string(rune(0x2FFF)), false},
		{"katakana", "ピカチュウ", true},
		{"mixed", "Mouse ポケモン", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsCJK(tt.in); got != tt.want {
				t.Errorf("containsCJK(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
