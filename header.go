// Header management for stored artifacts.
//
// The header is exactly 128 bytes: single-line JSON padded with spaces and
// terminated with a newline. It makes a stored artifact fully
// self-describing — format version, checksum algorithm, body codec, body
// sizes, and the body digest all travel with the data.
package llc

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// HeaderSize is the fixed size of the artifact header in bytes.
const HeaderSize = 128

// Version is the current artifact format version.
const Version = 1

// header describes the stored body that follows it.
type header struct {
	Version  int    `json:"_v"` // Format version
	Checksum int    `json:"_c"` // Digest algorithm (1=XXH3, 2=XXH64, 3=Blake2b)
	Codec    int    `json:"_z"` // Body codec (1=none, 2=zstd, 3=lz4)
	Raw      int64  `json:"_r"` // Body size before the codec
	Stored   int64  `json:"_n"` // Body size as stored
	Sum      string `json:"_s"` // 16 hex chars: digest of the stored body
}

// encode serialises the header to exactly HeaderSize bytes with padding.
func (h *header) encode() ([]byte, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	if len(data) > HeaderSize-1 {
		return nil, fmt.Errorf("%w: header needs %d bytes, limit is %d",
			ErrMalformedArtifact, len(data), HeaderSize-1)
	}

	buf := make([]byte, HeaderSize)
	copy(buf, data)
	for i := len(data); i < HeaderSize-1; i++ {
		buf[i] = ' '
	}
	buf[HeaderSize-1] = '\n'

	return buf, nil
}

// parseHeader reads and validates the fixed-size header at the front of a
// stored artifact.
func parseHeader(data []byte) (*header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d for the header",
			ErrMalformedArtifact, len(data), HeaderSize)
	}

	var h header
	if err := json.Unmarshal(bytes.TrimSpace(data[:HeaderSize]), &h); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedArtifact, err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrMalformedArtifact, h.Version)
	}
	return &h, nil
}
