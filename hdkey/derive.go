package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

// childIndex folds the hardened flag into the wire representation of index.
// An index that already has the top bit set is hardened regardless of flag.
func childIndex(index uint32, hardened bool) uint32 {
	if hardened {
		return index | HardenedKeyStart
	}
	return index
}

// hmacSHA512 returns HMAC-SHA512(key, data...) split into I_L and I_R.
func hmacSHA512(key []byte, data ...[]byte) (il, ir [32]byte) {
	mac := hmac.New(sha512.New, key)
	for _, d := range data {
		// hash.Hash writes never fail.
		_, _ = mac.Write(d)
	}

	sum := mac.Sum(nil)
	copy(il[:], sum[:32])
	copy(ir[:], sum[32:])
	zero(sum)

	return il, ir
}

func (k *ExtendedKey) checkDepth() error {
	if k.depth == MaxDepth {
		return fmt.Errorf("%w: parent at depth %d", ErrMaxDepthExceeded, k.depth)
	}
	return nil
}

// DerivePrivate returns the private child of k at index. For hardened
// children the parent scalar feeds the HMAC, otherwise the parent public key
// does. k must be a private key.
func (k *ExtendedKey) DerivePrivate(index uint32, hardened bool) (*ExtendedKey, error) {
	if !k.isPrivate {
		return nil, ErrNotPrivateKey
	}

	if err := k.checkDepth(); err != nil {
		return nil, err
	}

	i := childIndex(index, hardened)

	var ser [4]byte
	binary.BigEndian.PutUint32(ser[:], i)

	parentPub := k.PublicKeyBytes()

	var il, ir [32]byte
	if i >= HardenedKeyStart {
		// k.key already is 0x00 || scalar.
		il, ir = hmacSHA512(k.chainCode[:], k.key[:], ser[:])
	} else {
		il, ir = hmacSHA512(k.chainCode[:], parentPub, ser[:])
	}
	defer zero(il[:])

	scalar, err := addScalars(il[:], k.key[1:])
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", i, err)
	}
	defer zero(scalar[:])

	return New(k.network, k.depth+1, fingerprint(parentPub), i, ir, scalar[:], true)
}

// DerivePublic returns the public child of k at index using point addition,
// so no secret is needed. Private keys are neutered first. Hardened children
// are always refused.
func (k *ExtendedKey) DerivePublic(index uint32, hardened bool) (*ExtendedKey, error) {
	i := childIndex(index, hardened)
	if i >= HardenedKeyStart {
		return nil, fmt.Errorf("child %d: %w", i, ErrHardenedFromPublicKey)
	}

	pub, err := k.Neuter()
	if err != nil {
		return nil, err
	}

	if err := pub.checkDepth(); err != nil {
		return nil, err
	}

	var ser [4]byte
	binary.BigEndian.PutUint32(ser[:], i)

	il, ir := hmacSHA512(pub.chainCode[:], pub.key[:], ser[:])

	point, err := addPoint(il[:], pub.key[:])
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", i, err)
	}

	return New(pub.network, pub.depth+1, fingerprint(pub.key[:]), i, ir, point[:], false)
}
