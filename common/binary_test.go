package common

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testBinary struct {
	suite.Suite
}

func (t *testBinary) TestAppendExtract() {
	b := AppendBinary([]byte("show me"))
	t.Equal(4+7, len(b))

	e, o := ExtractBinary(b)
	t.Equal(len(b), o)
	t.Equal([]byte("show me"), e)
}

func (t *testBinary) TestExtractShort() {
	_, o := ExtractBinary([]byte{1, 0})
	t.Equal(-1, o)

	b := AppendBinary([]byte("show me"))
	_, o = ExtractBinary(b[:len(b)-1])
	t.Equal(-1, o)
}

func (t *testBinary) TestExtractBinaries() {
	var b []byte
	b = append(b, AppendBinary([]byte("a"))...)
	b = append(b, AppendBinary(nil)...)
	b = append(b, AppendBinary([]byte("ccc"))...)

	items, err := ExtractBinaries(b)
	t.NoError(err)
	t.Equal(3, len(items))
	t.Equal([]byte("a"), items[0])
	t.Empty(items[1])
	t.Equal([]byte("ccc"), items[2])

	{ // empty input
		items, err := ExtractBinaries(nil)
		t.NoError(err)
		t.Empty(items)
	}

	{ // truncated
		_, err := ExtractBinaries(b[:len(b)-1])
		t.True(xerrors.Is(err, InvalidBinaryError))
	}
}

func TestBinary(t *testing.T) {
	suite.Run(t, new(testBinary))
}
