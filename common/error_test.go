package common

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testError struct {
	suite.Suite
}

func (t *testError) TestMessage() {
	et := NewErrorType("t", 1, "show me")
	t.Equal("show me", et.Error())
	t.Equal("t-1", et.Code())

	t.Equal("show me; findme=1", et.Newf("findme=%d", 1).Error())
	t.Equal("show me: killme", et.New(xerrors.New("killme")).Error())
	t.Equal("show me; findme: killme", et.New(xerrors.New("killme")).Newf("findme").Error())
}

func (t *testError) TestIs() {
	a := NewErrorType("t", 1, "a")
	b := NewErrorType("t", 2, "b")

	t.True(xerrors.Is(a.Newf("eat"), a))
	t.True(xerrors.Is(a, a.Newf("eat")))
	t.False(xerrors.Is(a.Newf("eat"), b))

	wrapped := xerrors.Errorf("outer: %w", b.New(a))
	t.True(xerrors.Is(wrapped, b))
	t.True(xerrors.Is(wrapped, a))
}

func (t *testError) TestUnwrap() {
	cause := xerrors.New("cause")
	err := NewErrorType("t", 1, "a").New(cause)

	t.Equal(cause, xerrors.Unwrap(err))
	t.True(xerrors.Is(err, cause))
}

func (t *testError) TestMarshalJSON() {
	b, err := NewErrorType("t", 0, "1 < 2").MarshalJSON()
	t.NoError(err)
	t.Equal(`{"code":"t-0","message":"1 < 2"}`, string(b))
}

func TestError(t *testing.T) {
	suite.Run(t, new(testError))
}
