package hdkey

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	pathRoot      = "m"
	pathSeparator = "/"
)

// Segment is one step of a derivation path.
type Segment struct {
	Index    uint32
	Hardened bool
}

// ChildIndex returns the wire index of s.
func (s Segment) ChildIndex() uint32 {
	return childIndex(s.Index, s.Hardened)
}

func (s Segment) String() string {
	if s.Hardened {
		return strconv.FormatUint(uint64(s.Index), 10) + "H"
	}
	return strconv.FormatUint(uint64(s.Index), 10)
}

// Path is a parsed derivation path, relative to a master key.
type Path []Segment

// NewBIP44Path returns
// m / purpose' / coin_type' / account' / change / address_index
func NewBIP44Path(purpose, coinType, account, change, addressIndex uint32) Path {
	return Path{
		{Index: purpose, Hardened: true},
		{Index: coinType, Hardened: true},
		{Index: account, Hardened: true},
		{Index: change},
		{Index: addressIndex},
	}
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(pathRoot)
	for _, s := range p {
		sb.WriteString(pathSeparator)
		sb.WriteString(s.String())
	}
	return sb.String()
}

// ParsePath parses paths such as "m/0H/1/2'". Hardened segments are marked
// with a trailing H, h or '.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parts := strings.Split(path, pathSeparator)
	if parts[0] != pathRoot {
		return nil, fmt.Errorf("%w: path must start with %q, got %q", ErrInvalidPath, pathRoot, parts[0])
	}

	p := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		s, err := parseSegment(part)
		if err != nil {
			return nil, err
		}
		p = append(p, s)
	}

	return p, nil
}

func parseSegment(part string) (Segment, error) {
	var s Segment

	digits := part
	if n := len(digits); n > 0 {
		switch digits[n-1] {
		case 'H', 'h', '\'':
			s.Hardened = true
			digits = digits[:n-1]
		}
	}

	// ParseUint would accept a leading sign.
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return s, fmt.Errorf("%w: bad segment %q", ErrInvalidPath, part)
	}

	idx, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return s, fmt.Errorf("%w: bad segment %q: %v", ErrInvalidPath, part, err)
	}

	if uint32(idx) >= HardenedKeyStart {
		return s, fmt.Errorf("%w: index %d out of range", ErrInvalidPath, idx)
	}

	s.Index = uint32(idx)
	return s, nil
}

// Derive walks p from root with private derivation, failing at the first
// segment that cannot be derived.
func (p Path) Derive(root *ExtendedKey) (*ExtendedKey, error) {
	key := root
	for depth, s := range p {
		child, err := key.DerivePrivate(s.Index, s.Hardened)
		if err != nil {
			return nil, fmt.Errorf("segment %d (%v): %w", depth+1, s, err)
		}
		key = child
	}

	return key, nil
}

// DerivePath parses path and derives it from root, which is taken to be the
// key the leading "m" refers to.
func DerivePath(root *ExtendedKey, path string) (*ExtendedKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	return p.Derive(root)
}

// DerivePathFromSeed builds the master key of seed and derives path from it.
func DerivePathFromSeed(seed []byte, network Network, path string) (*ExtendedKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	master, err := NewMaster(seed, network)
	if err != nil {
		return nil, err
	}

	return p.Derive(master)
}
