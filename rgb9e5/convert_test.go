package rgb9e5

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

func TestWordsBytesRoundTrip(t *testing.T) {
	t.Parallel()

	words := []uint32{0, 1, 0xFFFFFFFF, Encode(1, 0.5, 0.25)}

	b := BytesFromWords(words)
	if len(b) != len(words)*WordSize {
		t.Fatalf("len = %d, want %d", len(b), len(words)*WordSize)
	}
	if !bytes.Equal(b[4:8], []byte{1, 0, 0, 0}) {
		t.Fatalf("word 1 not little-endian: % x", b[4:8])
	}

	got, err := WordsFromBytes(b)
	if err != nil {
		t.Fatalf("WordsFromBytes: %v", err)
	}
	if !slices.Equal(got, words) {
		t.Fatalf("got %v, want %v", got, words)
	}

	if _, err := WordsFromBytes(b[:5]); !errors.Is(err, ErrUnalignedBuffer) {
		t.Fatalf("expected ErrUnalignedBuffer, got %v", err)
	}
}

func TestHalfsFromBytes(t *testing.T) {
	t.Parallel()

	halfs, err := HalfsFromBytes([]byte{0x00, 0x3C, 0x00, 0xB8})
	if err != nil {
		t.Fatalf("HalfsFromBytes: %v", err)
	}
	if !slices.Equal(halfs, []uint16{0x3C00, 0xB800}) {
		t.Fatalf("got %#04x", halfs)
	}

	if _, err := HalfsFromBytes([]byte{1, 2, 3}); !errors.Is(err, ErrUnalignedBuffer) {
		t.Fatalf("expected ErrUnalignedBuffer, got %v", err)
	}
}

func TestPackHalfRGBA(t *testing.T) {
	t.Parallel()

	// (1, 0.5, 0.25, alpha 2) and (-1, 0, 0, 0)
	src := []byte{
		0x00, 0x3C, 0x00, 0x38, 0x00, 0x34, 0x00, 0x40,
		0x00, 0xBC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	packed, err := PackHalfRGBA(src)
	if err != nil {
		t.Fatalf("PackHalfRGBA: %v", err)
	}

	words, err := WordsFromBytes(packed)
	if err != nil {
		t.Fatalf("WordsFromBytes: %v", err)
	}
	if want := []uint32{Encode(1, 0.5, 0.25), 0}; !slices.Equal(words, want) {
		t.Fatalf("got %#08x, want %#08x", words, want)
	}

	if _, err := PackHalfRGBA(src[:7]); !errors.Is(err, ErrUnalignedBuffer) {
		t.Fatalf("expected ErrUnalignedBuffer, got %v", err)
	}
}

func TestPackFloatRGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     []float32
		stride  int
		want    []uint32
		wantErr error
	}{
		{name: "rgba", src: []float32{1, 0.5, 0.25, 9, 2, 2, 2, 9}, stride: 4, want: []uint32{Encode(1, 0.5, 0.25), Encode(2, 2, 2)}},
		{name: "rgb", src: []float32{1, 0.5, 0.25}, stride: 3, want: []uint32{Encode(1, 0.5, 0.25)}},
		{name: "short-stride", src: []float32{1, 2}, stride: 2, wantErr: ErrInvalidStride},
		{name: "unaligned", src: []float32{1, 2, 3, 4}, stride: 3, wantErr: ErrUnalignedBuffer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := PackFloatRGB(tc.src, tc.stride)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("got %#08x, want %#08x", got, tc.want)
			}
		})
	}
}
