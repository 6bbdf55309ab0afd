// Statistics tests.
package llc

import (
	"math"
	"testing"
)

func TestStatsSingleRound(t *testing.T) {
	a, err := Compress("abcabc")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	s := a.Stats()
	if s.Entries != 1 {
		t.Errorf("Entries = %d, want 1", s.Entries)
	}
	if s.TextSymbols != 2 {
		t.Errorf("TextSymbols = %d, want 2", s.TextSymbols)
	}
	if s.ReplacementSymbols != 3 {
		t.Errorf("ReplacementSymbols = %d, want 3", s.ReplacementSymbols)
	}
	// Table = 3 replacement symbols + 1 entry symbol, payload = table + 2 text symbols.
	if want := 4.0 / 6.0; math.Abs(s.DictionaryShare-want) > 1e-9 {
		t.Errorf("DictionaryShare = %v, want %v", s.DictionaryShare, want)
	}
}

func TestStatsEmpty(t *testing.T) {
	a, err := Compress("")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	s := a.Stats()
	if s.Entries != 0 || s.TextSymbols != 0 || s.ReplacementSymbols != 0 || s.DictionaryShare != 0 {
		t.Errorf("Stats = %+v, want all zero", s)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		original, compressed int
		want                 float64
	}{
		{10, 5, 50},
		{4, 8, -100},
		{100, 100, 0},
		{0, 5, 0}, // no original to compare against
	}
	for _, tt := range tests {
		if got := PercentChange(tt.original, tt.compressed); got != tt.want {
			t.Errorf("PercentChange(%d, %d) = %v, want %v", tt.original, tt.compressed, got, tt.want)
		}
	}
}
