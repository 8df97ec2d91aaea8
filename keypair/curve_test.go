package keypair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testCurveType struct {
	suite.Suite
}

func (t *testCurveType) TestString() {
	t.Equal("ed25519", ED25519.String())
	t.Equal("secp256k1", SECP256K1.String())
	t.Equal(32, ED25519.DataSize())
	t.Equal(64, SECP256K1.DataSize())
}

func (t *testCurveType) TestParse() {
	c, err := ParseCurveType("ed25519")
	t.NoError(err)
	t.Equal(ED25519, c)

	c, err = ParseCurveType("SECP256K1")
	t.NoError(err)
	t.Equal(SECP256K1, c)

	_, err = ParseCurveType("bls12381")
	t.True(xerrors.Is(err, UnknownCurveTypeError))

	t.True(xerrors.Is(CurveType(9).IsValid(), UnknownCurveTypeError))
}

func (t *testCurveType) TestJSON() {
	b, err := json.Marshal(SECP256K1)
	t.NoError(err)
	t.Equal(`"secp256k1"`, string(b))

	var c CurveType
	t.NoError(json.Unmarshal(b, &c))
	t.Equal(SECP256K1, c)
}

func TestCurveType(t *testing.T) {
	suite.Run(t, new(testCurveType))
}
