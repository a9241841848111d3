package erasure

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func erase(frags []*Fragment, indices ...int) []*Fragment {
	out := make([]*Fragment, len(frags))
	copy(out, frags)
	for _, i := range indices {
		out[i] = nil
	}
	return out
}

func TestRoundTripAllPresent(t *testing.T) {
	codec, err := New(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("Hello, this is a simple test for ultra-simple Reed-Solomon!")
	frags, err := codec.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(frags[0].Data) != 21 {
		t.Fatalf("fragment length = %d, want 21", len(frags[0].Data))
	}
	got, err := codec.Decode(frags)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("decode = %q, want %q", got, data)
	}
}

func TestS1SingleAndDoubleErasure(t *testing.T) {
	codec, _ := New(3, 2)
	data := []byte("Hello, this is a simple test for ultra-simple Reed-Solomon!")
	frags, _ := codec.Encode(data)

	got, err := codec.Decode(erase(frags, 1))
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("erase slot 1: got (%q, %v), want (%q, nil)", got, err, data)
	}

	got, err = codec.Decode(erase(frags, 0, 4))
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("erase slots 0,4: got (%q, %v), want (%q, nil)", got, err, data)
	}

	_, err = codec.Decode(erase(frags, 0, 1, 2))
	if !errors.Is(err, ErrInsufficientFragments) {
		t.Fatalf("erase slots 0,1,2: err = %v, want ErrInsufficientFragments", err)
	}
}

func TestS2RandomBlobAnyTwoErasures(t *testing.T) {
	codec, _ := New(4, 2)
	data := make([]byte, 1024)
	if _, err := rand.Read(data); err != nil {
		t.Fatal(err)
	}
	frags, _ := codec.Encode(data)

	n := len(frags)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			got, err := codec.Decode(erase(frags, i, j))
			if err != nil {
				t.Fatalf("erase %d,%d: %v", i, j, err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("erase %d,%d: mismatch", i, j)
			}
		}
	}
}

func TestS3EmptyInput(t *testing.T) {
	codec, _ := New(3, 2)
	frags, err := codec.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(frags[0].Data) != 2 {
		t.Fatalf("fragment length = %d, want 2", len(frags[0].Data))
	}
	got, err := codec.Decode(frags)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("decode = %v, want empty", got)
	}
}

func TestS4SingleByte(t *testing.T) {
	codec, _ := New(3, 2)
	data := []byte{0xAB}
	frags, _ := codec.Encode(data)
	if len(frags[0].Data) != 2 {
		t.Fatalf("fragment length = %d, want 2", len(frags[0].Data))
	}
	got, err := codec.Decode(frags)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, data)
	}
}

func TestFragmentSize(t *testing.T) {
	tests := []struct {
		k, l, want int
	}{
		{3, 0, 2}, {3, 1, 2}, {3, 59, 21}, {4, 1024, 257},
	}
	for _, tt := range tests {
		codec, _ := New(tt.k, 2)
		frags, _ := codec.Encode(make([]byte, tt.l))
		if len(frags[0].Data) != tt.want {
			t.Errorf("k=%d l=%d: fragment length = %d, want %d", tt.k, tt.l, len(frags[0].Data), tt.want)
		}
	}
}

func TestAnyKFragmentsSuffice(t *testing.T) {
	codec, _ := New(4, 2)
	data := []byte("any k of the k+m fragments, data or parity, suffice")
	frags, _ := codec.Encode(data)

	// Keep only fragments 2,3,4,5 (two data, two parity).
	subset := erase(frags, 0, 1)
	got, err := codec.Decode(subset)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("got (%q, %v), want (%q, nil)", got, err, data)
	}
}

func TestInsufficientFragments(t *testing.T) {
	codec, _ := New(4, 2)
	data := []byte("insufficient fragments must fail fast")
	frags, _ := codec.Encode(data)
	_, err := codec.Decode(erase(frags, 0, 1, 2))
	if !errors.Is(err, ErrInsufficientFragments) {
		t.Fatalf("err = %v, want ErrInsufficientFragments", err)
	}
}

func TestLengthMismatch(t *testing.T) {
	codec, _ := New(3, 2)
	frags, _ := codec.Encode([]byte("abcdefgh"))
	frags[1] = &Fragment{Index: 1, Data: []byte{0x00}}
	_, err := codec.Decode(frags)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestParityLinearity(t *testing.T) {
	codec, _ := New(3, 2)
	d1 := make([]byte, 9)
	d2 := make([]byte, 9)
	if _, err := rand.Read(d1); err != nil {
		t.Fatal(err)
	}
	if _, err := rand.Read(d2); err != nil {
		t.Fatal(err)
	}
	dx := make([]byte, 9)
	for i := range dx {
		dx[i] = d1[i] ^ d2[i]
	}

	f1, _ := codec.Encode(d1)
	f2, _ := codec.Encode(d2)
	fx, _ := codec.Encode(dx)
	// Every 9-byte input gets the same length header, which cancels in
	// f1^f2; XOR in the encoding of nine zero bytes to put it back.
	f0, _ := codec.Encode(make([]byte, 9))

	for i := range f1 {
		for b := range f1[i].Data {
			want := f1[i].Data[b] ^ f2[i].Data[b] ^ f0[i].Data[b]
			if fx[i].Data[b] != want {
				t.Fatalf("fragment %d byte %d: xor mismatch", i, b)
			}
		}
	}
}

func TestNewInvalidShape(t *testing.T) {
	if _, err := New(0, 2); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("k=0: err = %v, want ErrInvalidShape", err)
	}
	if _, err := New(3, 0); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("m=0: err = %v, want ErrInvalidShape", err)
	}
	if _, err := New(200, 100); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("k+m=300: err = %v, want ErrInvalidShape", err)
	}
}

func TestDecodeWrongSlotCount(t *testing.T) {
	codec, _ := New(3, 2)
	_, err := codec.Decode(make([]*Fragment, 4))
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v, want ErrInvalidShape", err)
	}
}

func TestCorruptLength(t *testing.T) {
	codec, _ := New(3, 2)
	frags, _ := codec.Encode([]byte("hello world"))
	// Corrupt the length header embedded in fragment 0.
	frags[0].Data[0] = 0xFF
	frags[0].Data[1] = 0xFF
	frags[0].Data[2] = 0xFF
	frags[0].Data[3] = 0xFF
	_, err := codec.Decode(frags)
	if !errors.Is(err, ErrCorruptLength) {
		t.Fatalf("err = %v, want ErrCorruptLength", err)
	}
}
