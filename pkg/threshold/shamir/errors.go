package shamir

import "errors"

var (
	// ErrInvalidShape indicates T or N do not satisfy the splitter's
	// construction invariants (2 <= T <= N <= 255).
	ErrInvalidShape = errors.New("shamir: invalid threshold splitter shape")

	// ErrSecretTooLarge indicates the secret, interpreted as an unsigned
	// big-endian integer, is not smaller than the field prime.
	ErrSecretTooLarge = errors.New("shamir: secret is not smaller than the field prime")

	// ErrInsufficientShares indicates reconstruct was given fewer than T
	// shares.
	ErrInsufficientShares = errors.New("shamir: insufficient shares to reconstruct")

	// ErrDuplicateX indicates two shares carry the same x coordinate,
	// which would divide by zero in the Lagrange denominator.
	ErrDuplicateX = errors.New("shamir: duplicate share index")

	// ErrSecretLengthMismatch indicates the reconstructed secret cannot
	// fit in, or cannot be losslessly shortened to, the caller-supplied
	// expected byte length.
	ErrSecretLengthMismatch = errors.New("shamir: reconstructed secret length mismatch")
)
