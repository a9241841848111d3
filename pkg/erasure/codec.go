package erasure

import "fmt"

// FragmentCodec is a systematic (k, m) erasure coder over GF(2^8). It is
// immutable after construction and safe to call concurrently from multiple
// goroutines: the only state it holds is the precomputed encode matrix.
type FragmentCodec struct {
	k, m   int
	encode *gfMatrix // (k+m) x k systematic matrix derived from a Vandermonde matrix
}

// New builds a FragmentCodec for k data shards and m parity shards. It
// returns ErrInvalidShape if k < 1, m < 1, or k+m exceeds the 256 distinct
// row indices GF(2^8) can provide.
func New(k, m int) (*FragmentCodec, error) {
	if k < 1 || m < 1 {
		return nil, fmt.Errorf("%w: k and m must both be >= 1, got k=%d m=%d", ErrInvalidShape, k, m)
	}
	if k+m > 256 {
		return nil, fmt.Errorf("%w: k+m must be <= 256, got %d", ErrInvalidShape, k+m)
	}
	return &FragmentCodec{k: k, m: m, encode: buildVandermonde(k, m)}, nil
}

// K returns the number of data fragments.
func (c *FragmentCodec) K() int { return c.k }

// M returns the number of parity fragments.
func (c *FragmentCodec) M() int { return c.m }

// Encode splits data into k+m fragments of equal length. The first 4 bytes
// of the logical, padded stream are a big-endian length header; the
// remaining data fragments hold the padded payload; the parity fragments
// are linear combinations of the data fragments under the encode matrix.
func (c *FragmentCodec) Encode(data []byte) ([]*Fragment, error) {
	l := len(data)
	prefixed := make([]byte, 4+l)
	prefixed[0] = byte(l >> 24)
	prefixed[1] = byte(l >> 16)
	prefixed[2] = byte(l >> 8)
	prefixed[3] = byte(l)
	copy(prefixed[4:], data)

	shardLen := ceilDiv(len(prefixed), c.k)
	padded := make([]byte, c.k*shardLen)
	copy(padded, prefixed)

	fragments := make([]*Fragment, c.k+c.m)
	for i := 0; i < c.k; i++ {
		fragments[i] = &Fragment{
			Index: i,
			Data:  padded[i*shardLen : (i+1)*shardLen],
		}
	}

	for p := 0; p < c.m; p++ {
		idx := c.k + p
		row := c.encode.data[idx]
		parity := make([]byte, shardLen)
		for b := 0; b < shardLen; b++ {
			var v byte
			for i := 0; i < c.k; i++ {
				v ^= gfMul(row[i], fragments[i].Data[b])
			}
			parity[b] = v
		}
		fragments[idx] = &Fragment{Index: idx, Parity: true, Data: parity}
	}

	return fragments, nil
}

// Decode reconstructs the original byte sequence from a fragment set. frags
// must have exactly k+m slots; a nil slot means that fragment is erased. At
// least k slots must be present and all present fragments must share one
// length.
func (c *FragmentCodec) Decode(frags []*Fragment) ([]byte, error) {
	n := c.k + c.m
	if len(frags) != n {
		return nil, fmt.Errorf("%w: expected %d slots, got %d", ErrInvalidShape, n, len(frags))
	}

	shardLen := -1
	present := make([]int, 0, n)
	for i, f := range frags {
		if f == nil {
			continue
		}
		if shardLen == -1 {
			shardLen = len(f.Data)
		} else if len(f.Data) != shardLen {
			return nil, ErrLengthMismatch
		}
		present = append(present, i)
	}
	if len(present) < c.k {
		return nil, ErrInsufficientFragments
	}

	chosen := present[:c.k]
	sub := c.encode.subMatrix(chosen)
	inv, err := sub.invert()
	if err != nil {
		return nil, err
	}

	padded := make([]byte, c.k*shardLen)
	for d := 0; d < c.k; d++ {
		if frags[d] != nil {
			copy(padded[d*shardLen:(d+1)*shardLen], frags[d].Data)
			continue
		}
		invRow := inv.data[d]
		for b := 0; b < shardLen; b++ {
			var v byte
			for i, rowIdx := range chosen {
				v ^= gfMul(invRow[i], frags[rowIdx].Data[b])
			}
			padded[d*shardLen+b] = v
		}
	}

	if len(padded) < 4 {
		return nil, ErrCorruptLength
	}
	length := int(padded[0])<<24 | int(padded[1])<<16 | int(padded[2])<<8 | int(padded[3])
	if length < 0 || length > len(padded)-4 {
		return nil, ErrCorruptLength
	}
	return padded[4 : 4+length], nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
