// Expansion: the exact inverse of compression.
//
// Decompression processes the dictionary in reverse creation order. For each
// entry, every occurrence of its symbol — whether present in the compressed
// text or freshly introduced by unwinding a later entry — is replaced with
// the recorded text verbatim. Nested synthetic symbols inside a replacement
// are not expanded eagerly; they are unwound when their own (earlier) entries
// come up in the same reverse pass. After the earliest entry is processed no
// synthetic symbol can remain.
package llc

import "fmt"

// Decompress reconstructs the original text from an artifact. It fails with
// ErrCorruptArtifact — never partial output — when an entry's symbol does not
// occur in the working text, or when synthetic symbols remain after the full
// reverse pass.
func Decompress(a *Artifact) (string, error) {
	text := []rune(a.Text)

	for i := len(a.Dict) - 1; i >= 0; i-- {
		e := a.Dict[i]
		expanded, hit := expandSymbol(text, e.Symbol, []rune(e.Replacement))
		if !hit {
			return "", fmt.Errorf("%w: entry %d: symbol %U does not occur in the working text",
				ErrCorruptArtifact, i, e.Symbol)
		}
		text = expanded
	}

	for i, r := range text {
		if r >= a.Base {
			return "", fmt.Errorf("%w: residual synthetic symbol %U at position %d",
				ErrCorruptArtifact, r, i)
		}
	}

	return string(text), nil
}

// expandSymbol replaces every occurrence of sym with repl and reports
// whether at least one occurrence was found. A compression-produced entry
// always replaced two or more occurrences, so its symbol must be present by
// the time its entry is processed.
func expandSymbol(text []rune, sym rune, repl []rune) ([]rune, bool) {
	hit := false
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if r == sym {
			out = append(out, repl...)
			hit = true
		} else {
			out = append(out, r)
		}
	}
	return out, hit
}
