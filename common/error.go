package common

import (
	"fmt"
)

type ErrorCode uint

// ErrorType is a typed error value. Package level ErrorTypes are the
// error kinds; New and Newf derive instances which still match their
// kind with xerrors.Is.
type ErrorType struct {
	name    string
	code    ErrorCode
	message string
	detail  string
	err     error
}

func NewErrorType(name string, code ErrorCode, message string) ErrorType {
	return ErrorType{name: name, code: code, message: message}
}

func (e ErrorType) Name() string {
	return e.name
}

func (e ErrorType) Code() string {
	return fmt.Sprintf("%s-%d", e.name, e.code)
}

func (e ErrorType) Message() string {
	return e.message
}

// New wraps err; the wrapped error is reachable by xerrors.Unwrap.
func (e ErrorType) New(err error) ErrorType {
	return ErrorType{
		name:    e.name,
		code:    e.code,
		message: e.message,
		detail:  e.detail,
		err:     err,
	}
}

func (e ErrorType) Newf(format string, args ...interface{}) ErrorType {
	return ErrorType{
		name:    e.name,
		code:    e.code,
		message: e.message,
		detail:  fmt.Sprintf(format, args...),
		err:     e.err,
	}
}

func (e ErrorType) Error() string {
	s := e.message
	if len(e.detail) > 0 {
		s = fmt.Sprintf("%s; %s", s, e.detail)
	}

	if e.err != nil {
		s = fmt.Sprintf("%s: %s", s, e.err.Error())
	}

	return s
}

func (e ErrorType) Unwrap() error {
	return e.err
}

func (e ErrorType) Is(target error) bool {
	t, ok := target.(ErrorType)
	if !ok {
		return false
	}

	return e.name == t.name && e.code == t.code
}

func (e ErrorType) MarshalJSON() ([]byte, error) {
	return EncodeJSON(map[string]string{
		"code":    e.Code(),
		"message": e.Error(),
	}, false, false)
}
