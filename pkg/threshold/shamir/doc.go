// Package shamir implements Shamir's (T, N) threshold secret sharing scheme
// over a fixed 521-bit prime field. Splitter splits a secret (interpreted as
// an unsigned big-endian integer smaller than the field prime) into N shares
// via a random polynomial of degree T-1; any T of the N shares reconstruct
// the secret exactly via Lagrange interpolation.
package shamir
