package keyutils

import (
	"strings"

	btcBase58 "github.com/btcsuite/btcutil/base58"
	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"

	"github.com/shaiss/mpc/keypair"
)

const (
	ED25519Prefix    = "ed25519:"
	ED25519KeyLength = keypair.SigningKeySize
)

// EncodeKey returns "ed25519:" followed by the base58 of the raw key.
func EncodeKey(key keypair.SigningKey) string {
	raw := key.Bytes()

	return ED25519Prefix + btcBase58.Encode(raw[:])
}

// DecodeKey parses the string made by EncodeKey. The returned error is one
// of MissingPrefixError, InvalidBase58Error or InvalidLengthError.
func DecodeKey(s string) (keypair.SigningKey, error) {
	if !strings.HasPrefix(s, ED25519Prefix) {
		return keypair.SigningKey{}, MissingPrefixError
	}

	body := strings.TrimPrefix(s, ED25519Prefix)

	var b []byte
	if len(body) > 0 {
		d, err := base58.Decode(body)
		if err != nil {
			return keypair.SigningKey{}, InvalidBase58Error.New(err)
		}

		b = d
	}

	if len(b) != ED25519KeyLength {
		return keypair.SigningKey{}, InvalidLengthError.New(LengthMismatch{
			Expected: ED25519KeyLength,
			Actual:   len(b),
		})
	}

	var raw [ED25519KeyLength]byte
	copy(raw[:], b)

	return keypair.NewSigningKey(raw), nil
}

// EncodeKeys encodes keys in order.
func EncodeKeys(keys []keypair.SigningKey) []string {
	encoded := make([]string, len(keys))
	for i := range keys {
		encoded[i] = EncodeKey(keys[i])
	}

	return encoded
}

// DecodeKeys decodes in order and stops at the first failure; no partial
// result is returned.
func DecodeKeys(encoded []string) ([]keypair.SigningKey, error) {
	keys := make([]keypair.SigningKey, len(encoded))
	for i, s := range encoded {
		key, err := DecodeKey(s)
		if err != nil {
			return nil, xerrors.Errorf("failed to decode key; index=%d: %w", i, err)
		}

		keys[i] = key
	}

	return keys, nil
}
