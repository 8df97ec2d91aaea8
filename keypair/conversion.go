package keypair

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ed25519"
)

const (
	uncompressedPointPrefix byte = 0x04
	uncompressedPointSize        = 1 + SECP256K1PublicKeySize
)

func PublicKeyFromEd25519(k ed25519.PublicKey) (PublicKey, error) {
	if len(k) != ed25519.PublicKeySize {
		return PublicKey{}, InvalidKeySizeError.Newf(
			"ed25519 public key; expected=%d actual=%d", ed25519.PublicKeySize, len(k),
		)
	}

	return NewPublicKey(ED25519, k)
}

func (p PublicKey) Ed25519() (ed25519.PublicKey, error) {
	if p.curve != ED25519 {
		return nil, InvalidCurveTypeError.Newf("expected=%s actual=%s", ED25519, p.curve)
	}

	b, err := p.KeyBytes(ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}

	return ed25519.PublicKey(b), nil
}

// PublicKeyFromSecp256k1 keeps the 64 coordinate bytes of the uncompressed
// point.
func PublicKeyFromSecp256k1(k *ecdsa.PublicKey) (PublicKey, error) {
	if k == nil || k.X == nil || k.Y == nil {
		return PublicKey{}, InvalidEncodedPointError.Newf("empty secp256k1 public key")
	}

	if !crypto.S256().IsOnCurve(k.X, k.Y) {
		return PublicKey{}, InvalidEncodedPointError.Newf("point is not on secp256k1 curve")
	}

	b := crypto.FromECDSAPub(k)
	if len(b) != uncompressedPointSize {
		return PublicKey{}, InvalidKeySizeError.Newf(
			"uncompressed point; expected=%d actual=%d", uncompressedPointSize, len(b),
		)
	}

	if b[0] != uncompressedPointPrefix {
		return PublicKey{}, InvalidUncompressedPointPrefixError.Newf(
			"expected=%#x actual=%#x", uncompressedPointPrefix, b[0],
		)
	}

	return NewPublicKey(SECP256K1, b[1:])
}

// Secp256k1 rebuilds the uncompressed point and parses it; points which are
// not on the curve are rejected.
func (p PublicKey) Secp256k1() (*ecdsa.PublicKey, error) {
	if p.curve != SECP256K1 {
		return nil, InvalidCurveTypeError.Newf("expected=%s actual=%s", SECP256K1, p.curve)
	}

	data, err := p.KeyBytes(SECP256K1PublicKeySize)
	if err != nil {
		return nil, err
	}

	b := make([]byte, uncompressedPointSize)
	b[0] = uncompressedPointPrefix
	copy(b[1:], data)

	k, err := crypto.UnmarshalPubkey(b)
	if err != nil {
		log.Debug("failed to parse secp256k1 point", "public_key", p, "error", err)
		return nil, InvalidEncodedPointError.New(err)
	}

	return k, nil
}

// UncompressedPoint returns the 65 byte, 0x04 prefixed secp256k1 point.
func (p PublicKey) UncompressedPoint() ([]byte, error) {
	k, err := p.Secp256k1()
	if err != nil {
		return nil, err
	}

	return crypto.FromECDSAPub(k), nil
}
