// Compression statistics.
package llc

import "unicode/utf8"

// Stats summarises the shape of a compressed artifact. All counts are in
// symbols (code points), the unit the compressor optimises.
type Stats struct {
	Entries            int     // dictionary entries, one per substitution round
	TextSymbols        int     // symbols in the compressed text
	ReplacementSymbols int     // symbols across all dictionary replacements
	DictionaryShare    float64 // fraction of the payload held by the dictionary
}

// Stats reports size details of the artifact.
func (a *Artifact) Stats() Stats {
	s := Stats{
		Entries:     len(a.Dict),
		TextSymbols: utf8.RuneCountInString(a.Text),
	}
	for _, e := range a.Dict {
		s.ReplacementSymbols += utf8.RuneCountInString(e.Replacement)
	}

	// Each entry contributes its replacement plus its own symbol.
	table := s.ReplacementSymbols + s.Entries
	if total := table + s.TextSymbols; total > 0 {
		s.DictionaryShare = float64(table) / float64(total)
	}
	return s
}

// PercentChange reports the percentage reduction from original to
// compressed; negative when the compressed value is larger.
func PercentChange(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-compressed) / float64(original) * 100
}
