package shamir

import "math/big"

// prime is the fixed 521-bit Mersenne prime 2^521 - 1. It is pinned rather
// than generated so that shares produced by one deployment stay compatible
// with shares produced by another; swapping it changes every share value.
var prime = mustPrime521()

func mustPrime521() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 521)
	p.Sub(p, big.NewInt(1))
	return p
}
