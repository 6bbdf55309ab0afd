// Optional body codecs for stored artifacts.
//
// Substitution shrinks symbol counts, not bytes; an artifact headed for
// storage can still run its body through a general-purpose codec. The codec
// is a property of the container only — it never changes the dictionary or
// the compressed text, and the header records which codec was used so Decode
// is self-describing.
package llc

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Body codec constants.
const (
	CodecNone = 1 // Store the body verbatim (default)
	CodecZstd = 2 // Zstandard
	CodecLZ4  = 3 // LZ4 block format
)

// Shared encoder/decoder — both are documented as safe for concurrent use.
// Allocated once at init because zstd encoder/decoder construction is
// expensive (internal state tables). SpeedFastest: artifact bodies are small
// and the codec is a transport convenience, not the compression itself.
//
// The decoder's memory limit matches MaxBodySize so a hostile frame header
// cannot force an allocation larger than any body the format accepts — the
// default limit is far above 1GB and would be sized from attacker-controlled
// bytes before the raw-size cross-check ever runs.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxBodySize))
)

// pack runs body through the requested codec and returns the stored bytes
// plus the codec actually used. LZ4 block compression signals incompressible
// input by producing zero bytes; in that case the body is stored verbatim
// and CodecNone is recorded, so Decode never sees an undecodable block.
func pack(body []byte, codec int) ([]byte, int, error) {
	switch codec {
	case CodecNone:
		return body, CodecNone, nil
	case CodecZstd:
		return zstdEncoder.EncodeAll(body, nil), CodecZstd, nil
	case CodecLZ4:
		if len(body) == 0 {
			return body, CodecNone, nil
		}
		var c lz4.Compressor
		dst := make([]byte, lz4.CompressBlockBound(len(body)))
		n, err := c.CompressBlock(body, dst)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4: %w", err)
		}
		if n == 0 {
			return body, CodecNone, nil
		}
		return dst[:n], CodecLZ4, nil
	default:
		return nil, 0, fmt.Errorf("%w: unknown body codec %d", ErrMalformedArtifact, codec)
	}
}

// unpack reverses pack. rawSize is the pre-codec body size claimed by the
// header; LZ4 block decoding needs it to size the output buffer exactly.
func unpack(stored []byte, codec int, rawSize int) ([]byte, error) {
	switch codec {
	case CodecNone:
		return stored, nil
	case CodecZstd:
		body, err := zstdDecoder.DecodeAll(stored, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrMalformedArtifact, err)
		}
		return body, nil
	case CodecLZ4:
		body := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(stored, body)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrMalformedArtifact, err)
		}
		return body[:n], nil
	default:
		return nil, fmt.Errorf("%w: unknown body codec %d", ErrMalformedArtifact, codec)
	}
}
