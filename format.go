// Binary artifact body encoding.
//
// Every variable-length field is uvarint length-prefixed — nothing relies on
// delimiter characters, so dictionary replacements and the compressed text
// may contain any code point, including anything a delimiter scheme would
// have to escape.
//
// Body layout:
//
//	base | entryCount | (symbol, replLen, replUTF8)... | textLen, textUTF8
//
// Encode prepends the fixed-size header (see header.go); the body may pass
// through a codec (see codec.go) before storage.
package llc

import (
	"encoding/binary"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Config holds serialization options. The zero value selects the XXH3
// checksum and no body codec.
type Config struct {
	Checksum int // 1=XXH3, 2=XXH64, 3=Blake2b
	Codec    int // 1=none, 2=zstd, 3=lz4
}

// MaxBodySize caps the decoded body size a header may claim (1GB). Guards
// Decode against allocation bombs from hostile headers.
const MaxBodySize = 1 << 30

// Encode serialises an artifact into a single self-describing byte stream.
// Encoding the same artifact with the same config is byte-identical.
func Encode(a *Artifact, config Config) ([]byte, error) {
	if config.Checksum == 0 {
		config.Checksum = SumXXH3
	}
	if config.Codec == 0 {
		config.Codec = CodecNone
	}

	body := appendBody(nil, a)
	stored, codec, err := pack(body, config.Codec)
	if err != nil {
		return nil, err
	}
	sum, err := digest(stored, config.Checksum)
	if err != nil {
		return nil, err
	}

	h := header{
		Version:  Version,
		Checksum: config.Checksum,
		Codec:    codec,
		Raw:      int64(len(body)),
		Stored:   int64(len(stored)),
		Sum:      sum,
	}
	head, err := h.encode()
	if err != nil {
		return nil, err
	}

	return append(head, stored...), nil
}

// Decode parses and validates a stored artifact. It is total over all
// Encode outputs and the exact inverse of Encode; anything else fails with
// ErrMalformedArtifact carrying the offending field or offset.
func Decode(data []byte) (*Artifact, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Raw < 0 || h.Raw > MaxBodySize || h.Stored < 0 {
		return nil, fmt.Errorf("%w: implausible body sizes (raw %d, stored %d)",
			ErrMalformedArtifact, h.Raw, h.Stored)
	}

	stored := data[HeaderSize:]
	if int64(len(stored)) != h.Stored {
		return nil, fmt.Errorf("%w: body is %d bytes, header claims %d",
			ErrMalformedArtifact, len(stored), h.Stored)
	}

	sum, err := digest(stored, h.Checksum)
	if err != nil {
		return nil, err
	}
	if sum != h.Sum {
		return nil, fmt.Errorf("%w: body digest %s, header claims %s",
			ErrMalformedArtifact, sum, h.Sum)
	}

	body, err := unpack(stored, h.Codec, int(h.Raw))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) != h.Raw {
		return nil, fmt.Errorf("%w: body decoded to %d bytes, header claims %d",
			ErrMalformedArtifact, len(body), h.Raw)
	}

	return parseBody(body)
}

// appendBody serialises the artifact payload onto buf.
func appendBody(buf []byte, a *Artifact) []byte {
	buf = binary.AppendUvarint(buf, uint64(a.Base))
	buf = binary.AppendUvarint(buf, uint64(len(a.Dict)))
	for _, e := range a.Dict {
		buf = binary.AppendUvarint(buf, uint64(e.Symbol))
		buf = binary.AppendUvarint(buf, uint64(len(e.Replacement)))
		buf = append(buf, e.Replacement...)
	}
	buf = binary.AppendUvarint(buf, uint64(len(a.Text)))
	buf = append(buf, a.Text...)
	return buf
}

// parseBody decodes the payload and checks the artifact's structural
// invariants.
func parseBody(body []byte) (*Artifact, error) {
	r := &fieldReader{buf: body}

	base, err := r.base()
	if err != nil {
		return nil, err
	}
	count, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	// Even an empty replacement costs two body bytes (symbol varint plus
	// length varint), so an oversized count is detectable before allocating.
	if count > uint64(len(body))/2 {
		return nil, fmt.Errorf("%w: entry count %d exceeds what %d body bytes can hold",
			ErrMalformedArtifact, count, len(body))
	}

	// Left nil when count is zero so a decoded artifact compares equal to
	// the artifact Compress produced.
	var dict Dictionary
	if count > 0 {
		dict = make(Dictionary, 0, count)
	}
	for i := uint64(0); i < count; i++ {
		sym, err := r.symbol()
		if err != nil {
			return nil, err
		}
		repl, err := r.text()
		if err != nil {
			return nil, err
		}
		dict = append(dict, Entry{Symbol: sym, Replacement: repl})
	}

	text, err := r.text()
	if err != nil {
		return nil, err
	}
	if r.off != len(body) {
		return nil, fmt.Errorf("%w: %d trailing bytes after the compressed text",
			ErrMalformedArtifact, len(body)-r.off)
	}

	a := &Artifact{Base: base, Dict: dict, Text: text}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// validate checks the invariants every well-formed artifact satisfies: no
// entry symbol below the synthetic base, no duplicate entry symbols, and
// every synthetic symbol used — in a replacement or in the compressed text —
// defined by a strictly earlier entry.
func (a *Artifact) validate() error {
	defined := make(map[rune]int, len(a.Dict))
	for i, e := range a.Dict {
		if e.Symbol < a.Base {
			return fmt.Errorf("%w: entry %d: symbol %U is below the synthetic base %U",
				ErrMalformedArtifact, i, e.Symbol, a.Base)
		}
		if prev, dup := defined[e.Symbol]; dup {
			return fmt.Errorf("%w: entries %d and %d share symbol %U",
				ErrMalformedArtifact, prev, i, e.Symbol)
		}
		for _, r := range e.Replacement {
			if r < a.Base {
				continue
			}
			if _, ok := defined[r]; !ok {
				return fmt.Errorf("%w: entry %d: replacement references undefined symbol %U",
					ErrMalformedArtifact, i, r)
			}
		}
		defined[e.Symbol] = i
	}

	for _, r := range a.Text {
		if r >= a.Base {
			if _, ok := defined[r]; !ok {
				return fmt.Errorf("%w: compressed text references undefined symbol %U",
					ErrMalformedArtifact, r)
			}
		}
	}
	return nil
}

// fieldReader decodes uvarint-prefixed fields with positional error context.
type fieldReader struct {
	buf []byte
	off int
}

func (r *fieldReader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.off:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: truncated varint at body byte %d", ErrMalformedArtifact, r.off)
	}
	r.off += n
	return v, nil
}

func (r *fieldReader) symbol() (rune, error) {
	v, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if v > uint64(unicode.MaxRune) {
		return 0, fmt.Errorf("%w: code point %#x beyond U+10FFFF at body byte %d",
			ErrMalformedArtifact, v, r.off)
	}
	return rune(v), nil
}

// base reads the synthetic band base. Unlike entry and text symbols, the
// base may legitimately sit one past the last code point: input containing
// U+10FFFF pushes the band to 0x110000, and when no substitution is needed
// the band is never drawn from, so such artifacts are valid.
func (r *fieldReader) base() (rune, error) {
	v, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if v > uint64(unicode.MaxRune)+1 {
		return 0, fmt.Errorf("%w: synthetic base %#x outside the code point space at body byte %d",
			ErrMalformedArtifact, v, r.off)
	}
	return rune(v), nil
}

func (r *fieldReader) text() (string, error) {
	n, err := r.uvarint()
	if err != nil {
		return "", err
	}
	if n > uint64(len(r.buf)-r.off) {
		return "", fmt.Errorf("%w: field of %d bytes at body byte %d overruns the body",
			ErrMalformedArtifact, n, r.off)
	}
	s := string(r.buf[r.off : r.off+int(n)])
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8 at body byte %d", ErrMalformedArtifact, r.off)
	}
	r.off += int(n)
	return s, nil
}
