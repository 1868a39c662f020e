package hdkey

import "errors"

var (
	// ErrInvalidSeedLength is returned when a seed is shorter than 16 bytes,
	// longer than 64 bytes or not a multiple of 4 bytes.
	ErrInvalidSeedLength = errors.New("seed length must be between 16 and 64 bytes and a multiple of 4")

	// ErrUnsupportedNetwork is returned for a network, or version bytes,
	// outside of mainnet and testnet.
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrNotPrivateKey is returned when an operation needs the secret scalar
	// of a public-only extended key.
	ErrNotPrivateKey = errors.New("extended key is not private")

	// ErrHardenedFromPublicKey is returned when a hardened child is requested
	// through public derivation.
	ErrHardenedFromPublicKey = errors.New("cannot derive a hardened child from a public key")

	// ErrInvalidPath is returned for malformed derivation path strings.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrInvalidScalarResult is returned when a derivation step yields a
	// tweak outside the group order, a zero private scalar or the point at
	// infinity. BIP32 callers are expected to move on to the next index.
	ErrInvalidScalarResult = errors.New("derived key is invalid for this index")

	// ErrMaxDepthExceeded is returned when deriving a child of a key at
	// depth 255.
	ErrMaxDepthExceeded = errors.New("maximum derivation depth exceeded")

	// ErrInvalidKeyLength is returned by New for key material that is not
	// 32 bytes (private) or 33 bytes (public).
	ErrInvalidKeyLength = errors.New("invalid key material length")

	// ErrInvalidKeyEncoding is returned by Parse for strings that do not
	// decode to a well formed extended key.
	ErrInvalidKeyEncoding = errors.New("invalid extended key encoding")

	// ErrBadChecksum is returned by Parse when the Base58Check checksum
	// does not match.
	ErrBadChecksum = errors.New("bad extended key checksum")
)
