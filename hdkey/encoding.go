package hdkey

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/base58"
)

const (
	serializedKeyLen = 78
	checksumLen      = 4
)

func fingerprint(pubKey []byte) [4]byte {
	var fp [4]byte
	copy(fp[:], btcutil.Hash160(pubKey))
	return fp
}

// encodeCheck appends the first four bytes of the double SHA256 of payload
// and base58 encodes the result.
func encodeCheck(payload []byte) string {
	b := make([]byte, 0, len(payload)+checksumLen)
	b = append(b, payload...)
	b = append(b, chainhash.DoubleHashB(payload)[:checksumLen]...)
	defer zero(b)

	return base58.Encode(b)
}

func decodeCheck(s string) ([]byte, error) {
	b := base58.Decode(s)
	if len(b) != serializedKeyLen+checksumLen {
		return nil, fmt.Errorf("%w: decoded length %d", ErrInvalidKeyEncoding, len(b))
	}

	payload, sum := b[:serializedKeyLen], b[serializedKeyLen:]
	if !bytes.Equal(chainhash.DoubleHashB(payload)[:checksumLen], sum) {
		return nil, ErrBadChecksum
	}

	return payload, nil
}

// Parse decodes a Base58Check extended key string as produced by
// ExtendedKey.String.
func Parse(s string) (*ExtendedKey, error) {
	payload, err := decodeCheck(s)
	if err != nil {
		return nil, err
	}
	defer zero(payload)

	var version [4]byte
	copy(version[:], payload[0:4])

	network, isPrivate, err := networkForVersion(version)
	if err != nil {
		return nil, err
	}

	var (
		depth      = payload[4]
		parentFP   [4]byte
		childIndex = binary.BigEndian.Uint32(payload[9:13])
		chainCode  [32]byte
		keyData    = payload[45:78]
	)
	copy(parentFP[:], payload[5:9])
	copy(chainCode[:], payload[13:45])

	if depth == 0 && (parentFP != [4]byte{} || childIndex != 0) {
		return nil, fmt.Errorf("%w: master key with parent fingerprint or index", ErrInvalidKeyEncoding)
	}

	if isPrivate {
		if keyData[0] != 0x00 {
			return nil, fmt.Errorf("%w: private key padding %#x", ErrInvalidKeyEncoding, keyData[0])
		}

		scalar := keyData[1:]
		if !tweakInRange(scalar) || bytes.Equal(scalar, make([]byte, scalarLen)) {
			return nil, fmt.Errorf("%w: private key out of range", ErrInvalidKeyEncoding)
		}

		return New(network, depth, parentFP, childIndex, chainCode, scalar, true)
	}

	if _, err := btcec.ParsePubKey(keyData, btcec.S256()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	return New(network, depth, parentFP, childIndex, chainCode, keyData, false)
}
