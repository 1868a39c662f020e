package hdkey

import (
	"fmt"
	"io"
)

const (
	// MinSeedLen is the shortest seed accepted, 128 bits.
	MinSeedLen = 16

	// MaxSeedLen is the longest seed accepted, 512 bits.
	MaxSeedLen = 64

	// RecommendedSeedLen is the seed size GenerateSeed callers should use.
	RecommendedSeedLen = 32
)

var masterHMACKey = []byte("Bitcoin seed")

func checkSeedLen(n int) error {
	if n < MinSeedLen || n > MaxSeedLen || n%4 != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidSeedLength, n)
	}
	return nil
}

// NewMaster derives the master private key of the tree rooted at seed.
func NewMaster(seed []byte, network Network) (*ExtendedKey, error) {
	if err := checkSeedLen(len(seed)); err != nil {
		return nil, err
	}

	il, ir := hmacSHA512(masterHMACKey, seed)
	defer zero(il[:])

	if !tweakInRange(il[:]) || il == [32]byte{} {
		return nil, fmt.Errorf("master key: %w", ErrInvalidScalarResult)
	}

	return New(network, 0, [4]byte{}, 0, ir, il[:], true)
}

// GenerateSeed reads a seed of size bytes from r. Callers normally pass
// crypto/rand.Reader.
func GenerateSeed(r io.Reader, size int) ([]byte, error) {
	if err := checkSeedLen(size); err != nil {
		return nil, err
	}

	seed := make([]byte, size)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("cannot read seed, %w", err)
	}

	return seed, nil
}
