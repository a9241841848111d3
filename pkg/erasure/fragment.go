package erasure

// Fragment is one of the k+m equal-length shards produced by Encode. Index
// is the fragment's position in [0, k+m); Parity is true for the m
// fragments derived from the data fragments rather than copied from the
// input. A Fragment carries no checksum or magic header — its positional
// identity is the only metadata, and losing it makes the fragment unusable
// for decode.
type Fragment struct {
	Index  int
	Parity bool
	Data   []byte
}

// Clone returns a Fragment with an independent copy of Data.
func (f *Fragment) Clone() *Fragment {
	data := make([]byte, len(f.Data))
	copy(data, f.Data)
	return &Fragment{Index: f.Index, Parity: f.Parity, Data: data}
}
