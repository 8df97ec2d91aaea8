package keyutils

import (
	"encoding/json"

	"golang.org/x/xerrors"

	"github.com/shaiss/mpc/common"
	"github.com/shaiss/mpc/keypair"
)

// Key is a keypair.SigningKey field which is serialized as an encoded key
// string by encoding/json, gopkg.in/yaml.v2 and any encoding.TextMarshaler
// aware encoder.
type Key keypair.SigningKey

func (k Key) SigningKey() keypair.SigningKey {
	return keypair.SigningKey(k)
}

func (k Key) String() string {
	return k.SigningKey().String()
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(EncodeKey(k.SigningKey())), nil
}

func (k *Key) UnmarshalText(b []byte) error {
	key, err := DecodeKey(string(b))
	if err != nil {
		return deserializeError(err)
	}

	*k = Key(key)

	return nil
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeKey(k.SigningKey()))
}

func (k *Key) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}

func (k Key) MarshalYAML() (interface{}, error) {
	return EncodeKey(k.SigningKey()), nil
}

func (k *Key) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}

// Keys is an ordered list of signing keys, serialized as a sequence of
// encoded key strings.
type Keys []keypair.SigningKey

func (k Keys) SigningKeys() []keypair.SigningKey {
	return []keypair.SigningKey(k)
}

func (k Keys) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeKeys(k))
}

func (k *Keys) UnmarshalJSON(b []byte) error {
	var encoded []string
	if err := json.Unmarshal(b, &encoded); err != nil {
		return err
	}

	return k.decode(encoded)
}

func (k Keys) MarshalYAML() (interface{}, error) {
	return EncodeKeys(k), nil
}

func (k *Keys) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var encoded []string
	if err := unmarshal(&encoded); err != nil {
		return err
	}

	return k.decode(encoded)
}

func (k *Keys) decode(encoded []string) error {
	keys, err := DecodeKeys(encoded)
	if err != nil {
		return deserializeError(err)
	}

	*k = Keys(keys)

	return nil
}

// MarshalBinary writes each raw key with its length prefix.
func (k Keys) MarshalBinary() ([]byte, error) {
	var b []byte
	for i := range k {
		raw := k[i].Bytes()
		b = append(b, common.AppendBinary(raw[:])...)
	}

	return b, nil
}

func (k *Keys) UnmarshalBinary(b []byte) error {
	items, err := common.ExtractBinaries(b)
	if err != nil {
		return err
	}

	keys := make(Keys, len(items))
	for i, item := range items {
		if len(item) != ED25519KeyLength {
			return InvalidLengthError.New(LengthMismatch{
				Expected: ED25519KeyLength,
				Actual:   len(item),
			}).Newf("index=%d", i)
		}

		copy(keys[i][:], item)
	}

	*k = keys

	return nil
}

// deserializeError keeps only the message; callers of a decoder see a plain
// error, not the codec error kinds.
func deserializeError(err error) error {
	return xerrors.New(err.Error())
}
