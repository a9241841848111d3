// Package erasure implements a systematic (k, m) Reed-Solomon-style erasure
// code over GF(2^8). FragmentCodec splits an opaque byte sequence into k data
// fragments and m parity fragments of equal length; any k of the k+m
// fragments, together with their original positional indices, are sufficient
// to reconstruct the input exactly.
//
// The codec is a pure, stateless engine: the immutable GF(2^8) tables are
// built once at package init, construction builds the encode matrix once
// (a systematic matrix derived from a Vandermonde matrix), and Encode/Decode
// perform no I/O and retain no state between calls.
package erasure
