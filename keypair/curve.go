package keypair

import (
	"encoding/json"
	"strings"
)

type CurveType uint8

const (
	ED25519 CurveType = iota
	SECP256K1
)

const (
	ED25519PublicKeySize   = 32
	SECP256K1PublicKeySize = 64
)

func (c CurveType) String() string {
	switch c {
	case ED25519:
		return "ed25519"
	case SECP256K1:
		return "secp256k1"
	}

	return ""
}

func (c CurveType) IsValid() error {
	switch c {
	case ED25519, SECP256K1:
		return nil
	}

	return UnknownCurveTypeError.Newf("curve=%d", uint8(c))
}

// DataSize is the length of the public key data for the curve, without the
// curve type byte.
func (c CurveType) DataSize() int {
	switch c {
	case ED25519:
		return ED25519PublicKeySize
	case SECP256K1:
		return SECP256K1PublicKeySize
	}

	return 0
}

func ParseCurveType(s string) (CurveType, error) {
	switch strings.ToLower(s) {
	case ED25519.String():
		return ED25519, nil
	case SECP256K1.String():
		return SECP256K1, nil
	default:
		return 0, UnknownCurveTypeError.Newf("curve=%q", s)
	}
}

func (c CurveType) MarshalText() ([]byte, error) {
	if err := c.IsValid(); err != nil {
		return nil, err
	}

	return []byte(c.String()), nil
}

func (c *CurveType) UnmarshalText(b []byte) error {
	n, err := ParseCurveType(string(b))
	if err != nil {
		return err
	}

	*c = n

	return nil
}

func (c CurveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
