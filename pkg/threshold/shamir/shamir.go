package shamir

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Splitter is a (T, N) Shamir secret sharing scheme over the fixed 521-bit
// prime field. It is immutable after construction and safe to call
// concurrently; Split and Reconstruct hold no state between calls.
type Splitter struct {
	t, n int
}

// New builds a Splitter requiring T of N shares to reconstruct. It returns
// ErrInvalidShape unless 2 <= T <= N <= 255.
func New(t, n int) (*Splitter, error) {
	if t < 2 {
		return nil, fmt.Errorf("%w: T must be >= 2, got %d", ErrInvalidShape, t)
	}
	if n < t {
		return nil, fmt.Errorf("%w: N (%d) must be >= T (%d)", ErrInvalidShape, n, t)
	}
	if n > 255 {
		return nil, fmt.Errorf("%w: N must be <= 255, got %d", ErrInvalidShape, n)
	}
	return &Splitter{t: t, n: n}, nil
}

// T returns the reconstruction threshold.
func (s *Splitter) T() int { return s.t }

// N returns the total number of shares a Split call produces.
func (s *Splitter) N() int { return s.n }

// Split interprets secret as an unsigned big-endian integer and emits N
// shares of a random degree-(T-1) polynomial whose constant term is the
// secret. The T-1 random coefficients are drawn from crypto/rand, which
// performs the uniform-sampling-with-rejection the field modulus requires,
// and are discarded once this call returns.
func (s *Splitter) Split(secret []byte) ([]*Share, error) {
	secretInt := new(big.Int).SetBytes(secret)
	if secretInt.Cmp(prime) >= 0 {
		return nil, ErrSecretTooLarge
	}

	coeffs := make([]*big.Int, s.t)
	coeffs[0] = secretInt
	for i := 1; i < s.t; i++ {
		c, err := rand.Int(rand.Reader, prime)
		if err != nil {
			return nil, fmt.Errorf("shamir: failed to sample coefficient: %w", err)
		}
		coeffs[i] = c
	}

	shares := make([]*Share, s.n)
	for x := 1; x <= s.n; x++ {
		shares[x-1] = newShare(x, evalPolynomial(coeffs, x))
	}
	return shares, nil
}

// evalPolynomial evaluates coeffs (low-degree first) at x modulo prime
// using Horner's method.
func evalPolynomial(coeffs []*big.Int, x int) *big.Int {
	bx := big.NewInt(int64(x))
	result := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(result, bx)
		result.Add(result, coeffs[i])
		result.Mod(result, prime)
	}
	return result
}

// Reconstruct recovers the secret from at least T shares with distinct x
// values, returning its minimal big-endian unsigned representation. If the
// original secret had leading zero bytes, the returned slice will be
// shorter than the original input; callers that need an exact length
// should use ReconstructLength instead (see the package-level discussion in
// DESIGN.md).
func (s *Splitter) Reconstruct(shares []*Share) ([]byte, error) {
	secretInt, err := s.reconstructInt(shares)
	if err != nil {
		return nil, err
	}
	return secretInt.Bytes(), nil
}

// ReconstructLength recovers the secret and left-pads (or validates) it to
// exactly expectedLen bytes. It fails if the reconstructed integer does not
// fit in expectedLen bytes.
func (s *Splitter) ReconstructLength(shares []*Share, expectedLen int) ([]byte, error) {
	secretInt, err := s.reconstructInt(shares)
	if err != nil {
		return nil, err
	}
	raw := secretInt.Bytes()
	if len(raw) > expectedLen {
		return nil, fmt.Errorf("%w: reconstructed secret needs %d bytes, expected length is %d",
			ErrSecretLengthMismatch, len(raw), expectedLen)
	}
	out := make([]byte, expectedLen)
	copy(out[expectedLen-len(raw):], raw)
	return out, nil
}

func (s *Splitter) reconstructInt(shares []*Share) (*big.Int, error) {
	if len(shares) < s.t {
		return nil, ErrInsufficientShares
	}
	chosen := shares[:s.t]

	seen := make(map[int]bool, len(chosen))
	for _, sh := range chosen {
		if seen[sh.Index] {
			return nil, ErrDuplicateX
		}
		seen[sh.Index] = true
	}

	secret := new(big.Int)
	for i, si := range chosen {
		yi, err := si.y()
		if err != nil {
			return nil, err
		}
		basis, err := lagrangeBasisAtZero(chosen, i)
		if err != nil {
			return nil, err
		}
		term := new(big.Int).Mul(yi, basis)
		term.Mod(term, prime)
		secret.Add(secret, term)
		secret.Mod(secret, prime)
	}
	return secret, nil
}

// lagrangeBasisAtZero computes L_i(0) = prod_{j != i} (-x_j) * (x_i - x_j)^-1
// mod prime for the share at position i within shares.
func lagrangeBasisAtZero(shares []*Share, i int) (*big.Int, error) {
	xi := big.NewInt(int64(shares[i].Index))
	numerator := big.NewInt(1)
	denominator := big.NewInt(1)

	for j, sj := range shares {
		if j == i {
			continue
		}
		xj := big.NewInt(int64(sj.Index))

		numerator.Mul(numerator, new(big.Int).Neg(xj))
		numerator.Mod(numerator, prime)

		diff := new(big.Int).Sub(xi, xj)
		diff.Mod(diff, prime)
		denominator.Mul(denominator, diff)
		denominator.Mod(denominator, prime)
	}

	denomInv := new(big.Int).ModInverse(denominator, prime)
	if denomInv == nil {
		return nil, ErrDuplicateX
	}
	basis := new(big.Int).Mul(numerator, denomInv)
	basis.Mod(basis, prime)
	return basis, nil
}
