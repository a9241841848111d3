package erasure

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFragments indicates decode received fewer than k
	// present slots and cannot proceed.
	ErrInsufficientFragments = errors.New("erasure: insufficient fragments present")

	// ErrLengthMismatch indicates the present fragments are not all the
	// same length.
	ErrLengthMismatch = errors.New("erasure: fragments have mismatched lengths")

	// ErrCorruptLength indicates the length header recovered from the
	// data fragments falls outside the valid range for the fragment set.
	ErrCorruptLength = errors.New("erasure: decoded length header out of range")

	// ErrInvalidShape indicates k or m do not satisfy the codec's
	// construction invariants.
	ErrInvalidShape = errors.New("erasure: invalid fragment codec shape")
)

// matrixSingularError signals that Gaussian elimination found no pivot for
// a column. This can only happen if the encode matrix invariant (every k x k
// submatrix is nonsingular) has been violated, which is an implementation
// bug or a corrupted set of fragment indices, not a recoverable condition.
type matrixSingularError struct {
	column int
}

func (e *matrixSingularError) Error() string {
	return fmt.Sprintf("erasure: no pivot found for column %d, encode matrix is not invertible", e.column)
}

func newMatrixSingularError(column int) error {
	return &matrixSingularError{column: column}
}
