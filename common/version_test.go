package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testVersion struct {
	suite.Suite
}

func (t *testVersion) TestEncodeDecode() {
	v, err := NewVersion("0.1.2-proto+findme")
	t.NoError(err)

	b, err := json.Marshal(v)
	t.NoError(err)
	t.Equal(`"0.1.2-proto+findme"`, string(b))

	var nv Version
	err = json.Unmarshal(b, &nv)
	t.NoError(err)

	t.True(v.Equal(nv))
}

func (t *testVersion) TestInvalid() {
	_, err := NewVersion("killme")
	t.True(xerrors.Is(err, InvalidVersionError))
}

func TestVersion(t *testing.T) {
	suite.Run(t, new(testVersion))
}
