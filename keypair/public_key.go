package keypair

import (
	"bytes"
	"fmt"
	"strings"

	btcBase58 "github.com/btcsuite/btcutil/base58"
	"github.com/mr-tron/base58"
)

// PublicKey is a public key tagged with its curve. The data never includes
// the curve type byte.
type PublicKey struct {
	curve CurveType
	data  []byte
}

func NewPublicKey(curve CurveType, data []byte) (PublicKey, error) {
	if err := curve.IsValid(); err != nil {
		return PublicKey{}, err
	}

	if len(data) != curve.DataSize() {
		return PublicKey{}, InvalidKeySizeError.Newf(
			"curve=%s expected=%d actual=%d", curve, curve.DataSize(), len(data),
		)
	}

	d := make([]byte, len(data))
	copy(d, data)

	return PublicKey{curve: curve, data: d}, nil
}

// NewPublicKeyFromBytes reads the binary form, the curve type byte followed
// by the key data.
func NewPublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) < 1 {
		return PublicKey{}, InvalidKeySizeError.Newf("empty bytes")
	}

	return NewPublicKey(CurveType(b[0]), b[1:])
}

// ParsePublicKey parses "<curve>:<base58 data>". Without curve prefix, the
// key is regarded as ed25519.
func ParsePublicKey(s string) (PublicKey, error) {
	curve := ED25519
	body := s

	if i := strings.Index(s, ":"); i >= 0 {
		c, err := ParseCurveType(s[:i])
		if err != nil {
			return PublicKey{}, InvalidPublicKeyStringError.New(err)
		}

		curve = c
		body = s[i+1:]
	}

	data, err := base58.Decode(body)
	if err != nil {
		return PublicKey{}, InvalidPublicKeyStringError.New(err)
	}

	return NewPublicKey(curve, data)
}

func (p PublicKey) CurveType() CurveType {
	return p.curve
}

func (p PublicKey) KeyData() []byte {
	d := make([]byte, len(p.data))
	copy(d, p.data)

	return d
}

func (p PublicKey) Bytes() []byte {
	return append([]byte{byte(p.curve)}, p.data...)
}

// KeyBytes returns the key data, which is the binary form without the first
// curve type byte, checking that it is exactly n bytes.
func (p PublicKey) KeyBytes(n int) ([]byte, error) {
	data := p.Bytes()[1:]
	if len(data) != n {
		return nil, InvalidKeySizeError.Newf("expected=%d actual=%d", n, len(data))
	}

	return data, nil
}

func (p PublicKey) IsEmpty() bool {
	return len(p.data) < 1
}

func (p PublicKey) Equal(b PublicKey) bool {
	return p.curve == b.curve && bytes.Equal(p.data, b.data)
}

func (p PublicKey) String() string {
	return fmt.Sprintf("%s:%s", p.curve.String(), btcBase58.Encode(p.data))
}

func (p PublicKey) MarshalText() ([]byte, error) {
	if err := p.curve.IsValid(); err != nil {
		return nil, err
	}

	return []byte(p.String()), nil
}

func (p *PublicKey) UnmarshalText(b []byte) error {
	n, err := ParsePublicKey(string(b))
	if err != nil {
		return err
	}

	*p = n

	return nil
}
