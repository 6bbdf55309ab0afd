// Package llc provides lossless text compression by recursive dictionary
// substitution. The compressor repeatedly finds the repeated substring whose
// replacement saves the most symbols, substitutes every non-overlapping
// occurrence with a single newly minted code point, and records the
// substitution in an ordered dictionary. Because a replacement can itself
// become part of a later repeated pattern, dictionary entries nest;
// decompression unwinds them in reverse creation order.
//
// The unit of output is an Artifact: the dictionary plus the fully
// substituted text. Encode and Decode turn an Artifact into a single
// self-describing byte stream with a fixed-size header, a length-prefixed
// binary body, an integrity checksum, and an optional body codec.
//
// Compression shrinks the symbol (code point) count, not necessarily the
// serialized byte size — synthetic symbols sit high in the Unicode range and
// can take more UTF-8 bytes than the text they replace.
package llc

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// distinguish input problems (ErrSymbolSpaceExhausted) from artifacts that
// cannot be parsed (ErrMalformedArtifact) or that parse but do not expand
// cleanly (ErrCorruptArtifact).
var (
	ErrSymbolSpaceExhausted = errors.New("synthetic symbol space exhausted")
	ErrMalformedArtifact    = errors.New("malformed artifact")
	ErrCorruptArtifact      = errors.New("corrupt artifact")
)
