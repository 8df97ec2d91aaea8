package common

const (
	_ ErrorCode = iota
	InvalidBinaryErrorCode
	InvalidVersionErrorCode
)

var (
	InvalidBinaryError  = NewErrorType("common", InvalidBinaryErrorCode, "invalid length-prefixed binary")
	InvalidVersionError = NewErrorType("common", InvalidVersionErrorCode, "invalid version")
)
