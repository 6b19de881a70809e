package shape

import "errors"

// Sentinel errors for shape validation and verification.
var (
	ErrZeroExtent     = errors.New("zero extent")
	ErrNegativeExtent = errors.New("negative extent")
	ErrSizeOverflow   = errors.New("shape size overflows scalar type")
	ErrNegativeBits   = errors.New("negative bit count")
	ErrBitsOverflow   = errors.New("total bit count exceeds scalar width")

	ErrSizeUnrepresentable = errors.New("shape size is not representable as int")
	ErrOutOfRange          = errors.New("delinearized coordinate out of range")
	ErrRoundTrip           = errors.New("linearize does not invert delinearize")
)
