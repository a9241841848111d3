package shamir

import (
	"fmt"
	"math/big"
)

// Share is one point (x, y) of the hidden polynomial, serialized the way
// the reference format does: an integer share number and a hex-encoded
// field element. x = 0 is reserved for the secret itself and never
// appears as a Share.Index.
type Share struct {
	Index int    `json:"shareNumber"`
	Value string `json:"shareValue"`
}

func newShare(x int, y *big.Int) *Share {
	return &Share{Index: x, Value: y.Text(16)}
}

func (s *Share) y() (*big.Int, error) {
	y, ok := new(big.Int).SetString(s.Value, 16)
	if !ok {
		return nil, fmt.Errorf("shamir: share %d has malformed hex value %q", s.Index, s.Value)
	}
	return y, nil
}
