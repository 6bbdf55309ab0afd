// Repeated-substring selection.
//
// Each compression round picks the single best substitution candidate: the
// substring of length >= 2 whose non-overlapping occurrences, replaced by one
// symbol, save the most symbols overall. Selection is fully deterministic —
// ties go to the longer substring, then to the leftmost first occurrence —
// so compressing the same input twice yields byte-identical artifacts.
package llc

// candidate is a repeated substring worth replacing with one symbol.
type candidate struct {
	chunk []rune // the repeated substring
	count int    // greedy left-to-right non-overlapping occurrences
	first int    // index of the leftmost occurrence
	gain  int    // symbols saved by the substitution
}

// selectChunk scans text for the best substitution candidate and returns nil
// when no substitution can shrink the text — the compression fixed point.
//
// For each length, a position index maps every substring of that length to
// its occurrence list; candidates are then examined strictly left to right so
// map iteration order never influences the outcome. The length loop stops as
// soon as no substring of the current length repeats at all, because any
// repeated substring of length L+1 contains a repeated prefix of length L.
func selectChunk(text []rune) *candidate {
	n := len(text)
	var best *candidate

	for length := 2; length < n; length++ {
		index := make(map[string][]int, n-length+1)
		for i := 0; i+length <= n; i++ {
			key := string(text[i : i+length])
			index[key] = append(index[key], i)
		}

		repeated := false
		for i := 0; i+length <= n; i++ {
			positions := index[string(text[i:i+length])]
			if len(positions) < 2 {
				continue
			}
			repeated = true
			if positions[0] != i {
				continue // already examined at its first occurrence
			}

			// Greedy non-overlapping count: each accepted occurrence
			// consumes its span, mirroring how substitution replaces.
			count := 0
			limit := -length
			for _, p := range positions {
				if p >= limit+length {
					count++
					limit = p
				}
			}
			if count < 2 {
				continue
			}

			// Net symbols saved: each occurrence shrinks to one symbol,
			// and the dictionary gains one entry of this length.
			gain := (count - 1) * (length - 1)
			if gain <= 0 {
				continue
			}

			if best == nil || gain > best.gain ||
				(gain == best.gain && length > len(best.chunk)) ||
				(gain == best.gain && length == len(best.chunk) && i < best.first) {
				best = &candidate{
					chunk: append([]rune(nil), text[i:i+length]...),
					count: count,
					first: i,
					gain:  gain,
				}
			}
		}

		if !repeated {
			break
		}
	}

	return best
}
