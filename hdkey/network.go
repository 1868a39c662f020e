package hdkey

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network selects the version bytes of an extended key.
type Network uint8

const (
	Mainnet Network = iota
	Testnet
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	default:
		return fmt.Sprintf("Network(%d)", uint8(n))
	}
}

// ParseNetwork maps a network name to its Network value.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(s) {
	case "mainnet", "main":
		return Mainnet, nil
	case "testnet", "testnet3", "test":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, s)
	}
}

func (n Network) params() (*chaincfg.Params, error) {
	switch n {
	case Mainnet:
		return &chaincfg.MainNetParams, nil
	case Testnet:
		return &chaincfg.TestNet3Params, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedNetwork, n)
	}
}

// Version returns the 4 version bytes used when serializing a private or
// public extended key for n.
func (n Network) Version(isPrivate bool) ([4]byte, error) {
	p, err := n.params()
	if err != nil {
		return [4]byte{}, err
	}

	if isPrivate {
		return p.HDPrivateKeyID, nil
	}

	return p.HDPublicKeyID, nil
}

// networkForVersion is the inverse of Network.Version.
func networkForVersion(version [4]byte) (Network, bool, error) {
	for _, n := range []Network{Mainnet, Testnet} {
		p, _ := n.params()
		switch version {
		case p.HDPrivateKeyID:
			return n, true, nil
		case p.HDPublicKeyID:
			return n, false, nil
		}
	}

	return 0, false, fmt.Errorf("%w: version %x", ErrUnsupportedNetwork, version[:])
}
