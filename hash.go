// Checksum algorithms for artifact body integrity.
//
// The header's _s field is a 16 hex character digest of the stored body.
// Three algorithms are supported, selectable via Config.Checksum; the choice
// is recorded in the header so Decode needs no out-of-band knowledge.
package llc

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Checksum algorithm constants.
const (
	SumXXH3    = 1 // Default, fastest
	SumXXH64   = 2 // xxHash64
	SumBlake2b = 3 // Cryptographic
)

// digest produces a 16 hex character checksum of body using the given
// algorithm.
func digest(body []byte, alg int) (string, error) {
	switch alg {
	case SumXXH3:
		return fmt.Sprintf("%016x", xxh3.Hash(body)), nil
	case SumXXH64:
		return fmt.Sprintf("%016x", xxhash.Sum64(body)), nil
	case SumBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(body)
		return fmt.Sprintf("%016x", h.Sum(nil)), nil
	default:
		return "", fmt.Errorf("%w: unknown checksum algorithm %d", ErrMalformedArtifact, alg)
	}
}
