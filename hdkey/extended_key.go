// Package hdkey derives BIP32 hierarchical deterministic secp256k1 keys
// from a seed and encodes them in the extended key format.
package hdkey

import (
	"encoding/binary"
	"fmt"
)

// HardenedKeyStart is the first child index of the hardened range.
const HardenedKeyStart uint32 = 0x80000000

// MaxDepth is the deepest level an extended key can be serialized at.
const MaxDepth = 255

// ExtendedKey is one node of a BIP32 derivation tree: a private scalar or a
// compressed public point together with its chain code and position.
//
// An ExtendedKey is never modified after creation, so it can be shared
// between goroutines. Derivation always returns a new value.
type ExtendedKey struct {
	network    Network
	version    [4]byte
	depth      uint8
	parentFP   [4]byte
	childIndex uint32
	chainCode  [32]byte

	// key holds the serialized key material: 0x00 followed by the scalar
	// for private keys, the compressed point for public ones.
	key       [33]byte
	isPrivate bool
}

// New assembles an extended key. The version bytes are picked from network
// and isPrivate. key must be a 32 byte scalar for private keys and a 33 byte
// compressed point for public ones; its value is not checked here.
func New(network Network, depth uint8, parentFP [4]byte, childIndex uint32,
	chainCode [32]byte, key []byte, isPrivate bool) (*ExtendedKey, error) {

	version, err := network.Version(isPrivate)
	if err != nil {
		return nil, err
	}

	k := &ExtendedKey{
		network:    network,
		version:    version,
		depth:      depth,
		parentFP:   parentFP,
		childIndex: childIndex,
		chainCode:  chainCode,
		isPrivate:  isPrivate,
	}

	switch {
	case isPrivate && len(key) == scalarLen:
		copy(k.key[1:], key)
	case !isPrivate && len(key) == pointLen:
		copy(k.key[:], key)
	default:
		return nil, fmt.Errorf("%w: %d bytes for a private=%v key", ErrInvalidKeyLength, len(key), isPrivate)
	}

	return k, nil
}

func (k *ExtendedKey) Network() Network { return k.network }

func (k *ExtendedKey) Version() [4]byte { return k.version }

func (k *ExtendedKey) Depth() uint8 { return k.depth }

func (k *ExtendedKey) ParentFingerprint() [4]byte { return k.parentFP }

// ChildIndex returns the index as it appears on the wire, with the top bit
// set for hardened children.
func (k *ExtendedKey) ChildIndex() uint32 { return k.childIndex }

// IsHardened reports whether k was produced by hardened derivation.
func (k *ExtendedKey) IsHardened() bool { return k.childIndex >= HardenedKeyStart }

func (k *ExtendedKey) ChainCode() [32]byte { return k.chainCode }

func (k *ExtendedKey) IsPrivate() bool { return k.isPrivate }

// Key returns a copy of the raw key material: the 32 byte scalar of a
// private key or the 33 byte compressed point of a public key.
func (k *ExtendedKey) Key() []byte {
	if k.isPrivate {
		return append([]byte(nil), k.key[1:]...)
	}

	return append([]byte(nil), k.key[:]...)
}

// PublicKeyBytes returns the compressed public point for k.
func (k *ExtendedKey) PublicKeyBytes() []byte {
	if k.isPrivate {
		return pubKeyFromScalar(k.key[1:])
	}

	return append([]byte(nil), k.key[:]...)
}

// Fingerprint returns the first four bytes of HASH160 of k's public key, the
// value its children carry as parent fingerprint.
func (k *ExtendedKey) Fingerprint() [4]byte {
	return fingerprint(k.PublicKeyBytes())
}

// Neuter returns the public counterpart of k. Public keys are returned as is.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	if !k.isPrivate {
		return k, nil
	}

	return New(k.network, k.depth, k.parentFP, k.childIndex, k.chainCode,
		k.PublicKeyBytes(), false)
}

// Serialize returns the 78 byte BIP32 wire form of k.
func (k *ExtendedKey) Serialize() [serializedKeyLen]byte {
	var b [serializedKeyLen]byte

	copy(b[0:4], k.version[:])
	b[4] = k.depth
	copy(b[5:9], k.parentFP[:])
	binary.BigEndian.PutUint32(b[9:13], k.childIndex)
	copy(b[13:45], k.chainCode[:])
	copy(b[45:78], k.key[:])

	return b
}

// String returns the Base58Check encoding of k, the familiar xprv/xpub form.
func (k *ExtendedKey) String() string {
	b := k.Serialize()
	defer zero(b[:])

	return encodeCheck(b[:])
}

// Zero wipes the key material and chain code held by k. k must not be used
// afterwards.
func (k *ExtendedKey) Zero() {
	zero(k.key[:])
	zero(k.chainCode[:])
	zero(k.parentFP[:])
	k.depth = 0
	k.childIndex = 0
}
