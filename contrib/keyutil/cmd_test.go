package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/shaiss/mpc/keypair"
	"github.com/shaiss/mpc/keyutils"
)

type testCommands struct {
	suite.Suite
}

func (t *testCommands) TestEncode() {
	seed := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

	s, err := encode(seed, false)
	t.NoError(err)
	t.Equal("ed25519:1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE", s)

	s, err = encode("0x"+seed, false)
	t.NoError(err)
	t.Equal("ed25519:1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE", s)

	_, err = encode("zz", false)
	t.Contains(err.Error(), "invalid hex seed")

	_, err = encode("0001", false)
	t.True(xerrors.Is(err, keypair.InvalidSigningKeyError))

	_, err = encode(seed, true)
	t.Error(err)
}

func (t *testCommands) TestEncodeRandom() {
	s, err := encode("", true)
	t.NoError(err)
	t.True(strings.HasPrefix(s, keyutils.ED25519Prefix))

	_, err = keyutils.DecodeKey(s)
	t.NoError(err)
}

func (t *testCommands) TestDecode() {
	seed, pk, err := decode("ed25519:DXkVZkHd7WUUejCK7i74uAoZWy1w9AZqshhTHxhmqHuB")
	t.NoError(err)
	t.Equal("ba2cd8319d30972f17f489454e96362a1ef86e1acd12899a0ad01ab741a6df12", seed)
	t.Equal(keypair.ED25519, pk.CurveType())

	_, _, err = decode("invalid:key")
	t.True(xerrors.Is(err, keyutils.MissingPrefixError))
}

func (t *testCommands) TestConvertEd25519() {
	var b bytes.Buffer
	t.NoError(convert(&b, "ed25519:6E8sCci9badyRkXb3JoRpBj5p8C6Tw41ELDZoiihKEtp"))
	t.Equal(
		"curve: ed25519\ndata: 4da7e0f4096aaf2ce55e371657cd3089ba1e9f59f4d6e27bd02e472a16a61dc1\n",
		b.String(),
	)
}

func (t *testCommands) TestConvertSecp256k1() {
	priv, err := crypto.GenerateKey()
	t.NoError(err)

	pk, err := keypair.PublicKeyFromSecp256k1(&priv.PublicKey)
	t.NoError(err)

	var b bytes.Buffer
	t.NoError(convert(&b, pk.String()))
	t.Contains(b.String(), "curve: secp256k1\n")
	t.Contains(b.String(), "uncompressed: 04")
}

func (t *testCommands) TestConvertInvalid() {
	var b bytes.Buffer
	err := convert(&b, "secp256k1:6E8sCci9badyRkXb3JoRpBj5p8C6Tw41ELDZoiihKEtp")
	t.True(xerrors.Is(err, keypair.InvalidKeySizeError))
}

func TestCommands(t *testing.T) {
	suite.Run(t, new(testCommands))
}
