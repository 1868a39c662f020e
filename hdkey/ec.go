package hdkey

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

const (
	scalarLen = 32
	pointLen  = btcec.PubKeyBytesLenCompressed
)

// pubKeyFromScalar returns the compressed point k*G.
func pubKeyFromScalar(scalar []byte) []byte {
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), scalar)
	return pub.SerializeCompressed()
}

// tweakInRange reports whether tweak, read as a big-endian integer, is below
// the group order.
func tweakInRange(tweak []byte) bool {
	return new(big.Int).SetBytes(tweak).Cmp(btcec.S256().N) < 0
}

// addScalars returns (tweak + scalar) mod n as a 32 byte big-endian value.
// It fails when tweak is not below n or when the sum is zero.
func addScalars(tweak, scalar []byte) ([scalarLen]byte, error) {
	var out [scalarLen]byte

	if !tweakInRange(tweak) {
		return out, ErrInvalidScalarResult
	}

	n := btcec.S256().N
	sum := new(big.Int).SetBytes(tweak)
	k := new(big.Int).SetBytes(scalar)
	sum.Add(sum, k)
	sum.Mod(sum, n)

	if sum.Sign() == 0 {
		return out, ErrInvalidScalarResult
	}

	sum.FillBytes(out[:])

	return out, nil
}

// addPoint returns the compressed point tweak*G + point.
// It fails when tweak is not below n or the sum is the point at infinity.
func addPoint(tweak, point []byte) ([pointLen]byte, error) {
	var out [pointLen]byte

	if !tweakInRange(tweak) {
		return out, ErrInvalidScalarResult
	}

	curve := btcec.S256()
	parent, err := btcec.ParsePubKey(point, curve)
	if err != nil {
		return out, err
	}

	tx, ty := curve.ScalarBaseMult(tweak)
	cx, cy := curve.Add(tx, ty, parent.X, parent.Y)
	if cx.Sign() == 0 && cy.Sign() == 0 {
		return out, ErrInvalidScalarResult
	}

	child := btcec.PublicKey{Curve: curve, X: cx, Y: cy}
	copy(out[:], child.SerializeCompressed())

	return out, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
