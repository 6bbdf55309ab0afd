// Synthetic symbol allocation.
//
// Every substitution replaces a repeated substring with one synthetic symbol:
// a code point guaranteed absent from the original input. The allocator scans
// the input's natural alphabet once, places the synthetic band above it, and
// issues symbols monotonically from the band for the rest of the run.
package llc

import (
	"fmt"
	"unicode"
)

// SyntheticBase is the default first code point of the synthetic band.
// U+F0000 starts Supplementary Private Use Area-A: unassigned by Unicode,
// above the surrogate range, so every synthetic symbol survives a UTF-8
// round trip.
const SyntheticBase rune = 0xF0000

// allocator issues synthetic symbols from a band disjoint from the input's
// natural alphabet. State is local to one compression run.
type allocator struct {
	base rune // first code point of the reserved band
	next rune // next symbol to issue
}

// reserve places the synthetic band for the given input. If the natural
// alphabet intrudes into the default band, the band shifts above the highest
// natural code point so no synthetic symbol can collide with the input.
func reserve(text []rune) *allocator {
	base := SyntheticBase
	for _, r := range text {
		if r >= base {
			base = r + 1
		}
	}
	return &allocator{base: base, next: base}
}

// symbol mints the next synthetic symbol. Symbols are never reused within a
// run; exhaustion of the code point space is reported, never silently
// wrapped back into the natural alphabet.
func (a *allocator) symbol() (rune, error) {
	if a.next > unicode.MaxRune {
		return 0, fmt.Errorf("%w: next symbol would exceed U+10FFFF", ErrSymbolSpaceExhausted)
	}
	s := a.next
	a.next++
	return s, nil
}
