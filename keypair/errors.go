package keypair

import "github.com/shaiss/mpc/common"

const (
	InvalidCurveTypeErrorCode common.ErrorCode = iota + 1
	UnknownCurveTypeErrorCode
	InvalidKeySizeErrorCode
	InvalidUncompressedPointPrefixErrorCode
	InvalidEncodedPointErrorCode
	InvalidPublicKeyStringErrorCode
	InvalidSigningKeyErrorCode
)

var (
	InvalidCurveTypeError = common.NewErrorType(
		"keypair",
		InvalidCurveTypeErrorCode,
		"invalid curve type",
	)
	UnknownCurveTypeError = common.NewErrorType(
		"keypair",
		UnknownCurveTypeErrorCode,
		"unknown curve type found",
	)
	InvalidKeySizeError = common.NewErrorType(
		"keypair",
		InvalidKeySizeErrorCode,
		"invalid key size",
	)
	InvalidUncompressedPointPrefixError = common.NewErrorType(
		"keypair",
		InvalidUncompressedPointPrefixErrorCode,
		"invalid uncompressed point prefix",
	)
	InvalidEncodedPointError = common.NewErrorType(
		"keypair",
		InvalidEncodedPointErrorCode,
		"invalid encoded point",
	)
	InvalidPublicKeyStringError = common.NewErrorType(
		"keypair",
		InvalidPublicKeyStringErrorCode,
		"invalid public key string",
	)
	InvalidSigningKeyError = common.NewErrorType(
		"keypair",
		InvalidSigningKeyErrorCode,
		"invalid signing key",
	)
)
