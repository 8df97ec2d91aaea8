package keypair

import (
	"bytes"
	"fmt"

	stellarKeypair "github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
)

const SigningKeySize = 32

// SigningKey is the 32 byte secret seed of an ed25519 keypair. Any 32 bytes
// are accepted; nothing is validated at construction.
type SigningKey [SigningKeySize]byte

func NewSigningKey(b [SigningKeySize]byte) SigningKey {
	return SigningKey(b)
}

func NewSigningKeyFromBytes(b []byte) (SigningKey, error) {
	if len(b) != SigningKeySize {
		return SigningKey{}, InvalidSigningKeyError.Newf(
			"expected=%d actual=%d", SigningKeySize, len(b),
		)
	}

	var s SigningKey
	copy(s[:], b)

	return s, nil
}

// NewRandomSigningKey generates the new random signing key
func NewRandomSigningKey() (SigningKey, error) {
	full, err := stellarKeypair.Random()
	if err != nil {
		return SigningKey{}, InvalidSigningKeyError.New(err)
	}

	raw, err := strkey.Decode(strkey.VersionByteSeed, full.Seed())
	if err != nil {
		return SigningKey{}, InvalidSigningKeyError.New(err)
	}

	return NewSigningKeyFromBytes(raw)
}

func (s SigningKey) Bytes() [SigningKeySize]byte {
	return [SigningKeySize]byte(s)
}

func (s SigningKey) Equal(b SigningKey) bool {
	return bytes.Equal(s[:], b[:])
}

func (s SigningKey) IsEmpty() bool {
	return s == SigningKey{}
}

// PublicKey derives the ed25519 public key of the seed.
func (s SigningKey) PublicKey() (PublicKey, error) {
	full, err := stellarKeypair.FromRawSeed([SigningKeySize]byte(s))
	if err != nil {
		return PublicKey{}, InvalidSigningKeyError.New(err)
	}

	raw, err := strkey.Decode(strkey.VersionByteAccountID, full.Address())
	if err != nil {
		return PublicKey{}, InvalidSigningKeyError.New(err)
	}

	return NewPublicKey(ED25519, raw)
}

// String never prints the secret; it shows the public key instead.
func (s SigningKey) String() string {
	pk, err := s.PublicKey()
	if err != nil {
		return "SigningKey(<invalid>)"
	}

	return fmt.Sprintf("SigningKey(%s)", pk.String())
}

func (s SigningKey) GoString() string {
	return s.String()
}
