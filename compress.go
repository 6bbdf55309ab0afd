// Recursive substitution compression.
//
// Compression is a loop over two states: scan the current text for the best
// repeated substring, or stop when none remains. Each accepted round mints a
// fresh symbol, replaces every non-overlapping occurrence against the
// round-start snapshot, and appends the substitution to the dictionary. The
// whole text is rescanned every round because a replacement can create new
// repeated patterns — runs of synthetic symbols, or synthetic symbols
// adjacent to natural ones. Every accepted round strictly shrinks the symbol
// count, so the loop terminates in at most the input's length in rounds.
package llc

// Artifact is the unit of compression output: the synthetic band base, the
// dictionary of substitutions, and the fully substituted text. It is frozen
// once Compress returns and consumed read-only by Decompress and Encode.
type Artifact struct {
	Base rune       // first synthetic code point
	Dict Dictionary // substitutions in creation order
	Text string     // compressed text
}

// Compress reduces text to an artifact by repeated dictionary substitution.
// It is a pure function: no state survives across calls, and concurrent
// calls on separate inputs need no coordination.
//
// Empty input yields an empty artifact; input with no repeated substrings
// yields an empty dictionary and the text unchanged.
func Compress(text string) (*Artifact, error) {
	current := []rune(text)
	alloc := reserve(current)

	var dict Dictionary
	for {
		cand := selectChunk(current)
		if cand == nil {
			break
		}
		sym, err := alloc.symbol()
		if err != nil {
			return nil, err
		}
		current = substitute(current, cand.chunk, sym)
		dict = append(dict, Entry{Symbol: sym, Replacement: string(cand.chunk)})
	}

	return &Artifact{Base: alloc.base, Dict: dict, Text: string(current)}, nil
}

// substitute replaces every greedy left-to-right non-overlapping occurrence
// of chunk with sym. It reads only the snapshot it was given — each match
// consumes its span, so overlapping reuse is impossible and no replacement
// ever sees indices shifted by an earlier replacement in the same round.
func substitute(text, chunk []rune, sym rune) []rune {
	out := make([]rune, 0, len(text))
	for i := 0; i < len(text); {
		if matchAt(text, i, chunk) {
			out = append(out, sym)
			i += len(chunk)
		} else {
			out = append(out, text[i])
			i++
		}
	}
	return out
}

func matchAt(text []rune, i int, chunk []rune) bool {
	if i+len(chunk) > len(text) {
		return false
	}
	for j, r := range chunk {
		if text[i+j] != r {
			return false
		}
	}
	return true
}
