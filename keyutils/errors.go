package keyutils

import (
	"fmt"

	"github.com/shaiss/mpc/common"
)

const (
	MissingPrefixErrorCode common.ErrorCode = iota + 1
	InvalidBase58ErrorCode
	InvalidLengthErrorCode
)

var (
	MissingPrefixError = common.NewErrorType(
		"keyutils",
		MissingPrefixErrorCode,
		fmt.Sprintf("key must start with '%s'", ED25519Prefix),
	)
	InvalidBase58Error = common.NewErrorType(
		"keyutils",
		InvalidBase58ErrorCode,
		"invalid base58 encoding",
	)
	InvalidLengthError = common.NewErrorType(
		"keyutils",
		InvalidLengthErrorCode,
		"invalid key length",
	)
)

// LengthMismatch is wrapped by InvalidLengthError.
type LengthMismatch struct {
	Expected int
	Actual   int
}

func (l LengthMismatch) Error() string {
	return fmt.Sprintf("expected %d, got %d", l.Expected, l.Actual)
}
