package envmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/x448/float16"

	"github.com/woozymasta/ktx2"
	"github.com/woozymasta/ktx2/rgb9e5"
)

// halfPixel serializes one RGBA16F pixel.
func halfPixel(r, g, b, a float32) []byte {
	out := make([]byte, 0, PixelSize)
	for _, v := range []float32{r, g, b, a} {
		out = binary.LittleEndian.AppendUint16(out, float16.Fromfloat32(v).Bits())
	}
	return out
}

// testImage fills every pixel of (face, level) with (face+1, level, 0.5).
func testImage(t *testing.T, size, faces, levels int) *Image {
	t.Helper()

	var data []byte
	for face := 0; face < faces; face++ {
		for level := 0; level < levels; level++ {
			dim := ktx2.MipDimension(size, level)
			px := halfPixel(float32(face+1), float32(level), 0.5, 1)
			for i := 0; i < dim*dim; i++ {
				data = append(data, px...)
			}
		}
	}

	img := &Image{Width: size, Height: size, Faces: faces, Levels: levels, Data: data}
	if err := img.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return img
}

func TestExtractLevel(t *testing.T) {
	t.Parallel()

	img := testImage(t, 4, 6, 3)

	src, err := img.ExtractLevel(1, 2)
	if err != nil {
		t.Fatalf("ExtractLevel: %v", err)
	}
	if len(src) != 2*2*PixelSize {
		t.Fatalf("len = %d, want %d", len(src), 2*2*PixelSize)
	}

	// face 2 starts after two full chains of 16+4+1 pixels, level 1 after 16 pixels
	offset := (2*21 + 16) * PixelSize
	if !bytes.Equal(img.Data[offset:offset+len(src)], src) {
		t.Fatalf("level 1 face 2 read from the wrong offset")
	}

	halfs, err := rgb9e5.HalfsFromBytes(src[:PixelSize])
	if err != nil {
		t.Fatalf("HalfsFromBytes: %v", err)
	}
	if r, g := float16.Frombits(halfs[0]).Float32(), float16.Frombits(halfs[1]).Float32(); r != 3 || g != 1 {
		t.Fatalf("pixel = (%v, %v), want (3, 1)", r, g)
	}

	for _, lf := range [][2]int{{3, 0}, {0, 6}, {-1, 0}} {
		if _, err := img.ExtractLevel(lf[0], lf[1]); !errors.Is(err, ErrLevelOutOfRange) {
			t.Fatalf("ExtractLevel(%d, %d) error = %v, want ErrLevelOutOfRange", lf[0], lf[1], err)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(img *Image)
		wantErr error
	}{
		{name: "compressed-source", mutate: func(img *Image) { img.Format = ktx2.FormatBC3UNorm }, wantErr: ErrCompressedSource},
		{name: "astc-source", mutate: func(img *Image) { img.Format = ktx2.FormatASTC12x12SRGB }, wantErr: ErrCompressedSource},
		{name: "unsupported-source", mutate: func(img *Image) { img.Format = ktx2.FormatR8G8B8A8UNorm }, wantErr: ErrUnsupportedSource},
		{name: "zero-width", mutate: func(img *Image) { img.Width = 0 }, wantErr: ErrInvalidDimensions},
		{name: "faces", mutate: func(img *Image) { img.Faces = 2 }, wantErr: ErrInvalidFaceCount},
		{name: "too-many-levels", mutate: func(img *Image) { img.Levels = 4 }, wantErr: ErrInvalidLevelCount},
		{name: "truncated", mutate: func(img *Image) { img.Data = img.Data[:len(img.Data)-1] }, wantErr: ErrDataSizeMismatch},
		{name: "explicit-half-format", mutate: func(img *Image) { img.Format = ktx2.FormatR16G16B16A16SFloat }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			img := testImage(t, 4, 1, 3)
			tc.mutate(img)

			if err := img.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPackLevelsFaceOrder(t *testing.T) {
	t.Parallel()

	img := testImage(t, 2, 6, 2)

	payloads, err := PackLevels(img)
	if err != nil {
		t.Fatalf("PackLevels: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("got %d payloads, want 2", len(payloads))
	}
	if len(payloads[0]) != 6*4*rgb9e5.WordSize || len(payloads[1]) != 6*1*rgb9e5.WordSize {
		t.Fatalf("payload sizes = %d, %d", len(payloads[0]), len(payloads[1]))
	}

	words, err := rgb9e5.WordsFromBytes(payloads[1])
	if err != nil {
		t.Fatalf("WordsFromBytes: %v", err)
	}
	for face, word := range words {
		r, g, b := rgb9e5.Decode(word)
		if r != float32(face+1) || g != 1 || b != 0.5 {
			t.Fatalf("face %d decoded (%v, %v, %v)", face, r, g, b)
		}
	}
}

func TestConvertEndToEnd(t *testing.T) {
	t.Parallel()

	var data []byte
	for i := 0; i < 4; i++ {
		data = append(data, halfPixel(1, 0.5, 0.25, 1)...)
	}
	data = append(data, halfPixel(0, 0, 0, 1)...)

	img := &Image{Width: 2, Height: 2, Faces: 1, Levels: 2, Data: data}
	w, err := Convert(img, nil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	if want := ktx2.HeaderLength + 2*ktx2.LevelIndexLength + len(w.DFD) + 16 + 4; buf.Len() != want {
		t.Fatalf("file length = %d, want %d", buf.Len(), want)
	}

	info, err := ktx2.ReadIndex(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	h := info.Header
	if h.Format != ktx2.FormatE5B9G9R9UFloat || h.TypeSize != 4 || h.SupercompressionScheme != ktx2.SchemeNone {
		t.Fatalf("unexpected header: %+v", h)
	}
	if err := info.CheckLayout(int64(buf.Len())); err != nil {
		t.Fatalf("CheckLayout: %v", err)
	}

	// level 1 is stored first
	payloadStart := info.PayloadOffset()
	if info.Levels[1].ByteOffset != payloadStart || info.Levels[0].ByteOffset != payloadStart+4 {
		t.Fatalf("level offsets = %d, %d; payload starts at %d", info.Levels[0].ByteOffset, info.Levels[1].ByteOffset, payloadStart)
	}
	if !bytes.Equal(buf.Bytes()[payloadStart:payloadStart+4], []byte{0, 0, 0, 0}) {
		t.Fatalf("level 1 payload is not the zero word")
	}

	words, err := rgb9e5.WordsFromBytes(buf.Bytes()[payloadStart+4:])
	if err != nil {
		t.Fatalf("WordsFromBytes: %v", err)
	}
	for i, word := range words {
		if want := rgb9e5.Encode(1, 0.5, 0.25); word != want {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, word, want)
		}
	}
}

func TestConvertZstdCubemap(t *testing.T) {
	t.Parallel()

	img := testImage(t, 8, 6, 4)

	c, err := ktx2.NewZstdCompressor(zstd.SpeedFastest)
	if err != nil {
		t.Fatalf("NewZstdCompressor: %v", err)
	}
	w, err := Convert(img, c)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if w.Header.FaceCount != 6 || w.Header.SupercompressionScheme != ktx2.SchemeZstandard {
		t.Fatalf("unexpected header: %+v", w.Header)
	}

	path := filepath.Join(t.TempDir(), "cube.ktx2")
	if err := ktx2.WriteFile(path, w); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	info, size, err := ktx2.ReadInfo(path)
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	if info.Header.TypeSize != 1 {
		t.Fatalf("TypeSize = %d, want 1", info.Header.TypeSize)
	}
	if err := info.CheckLayout(size); err != nil {
		t.Fatalf("CheckLayout: %v", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	defer dec.Close()

	for level, entry := range info.Levels {
		raw, err := dec.DecodeAll(file[entry.ByteOffset:entry.End()], nil)
		if err != nil {
			t.Fatalf("level %d decode: %v", level, err)
		}
		dim := ktx2.MipDimension(8, level)
		if len(raw) != dim*dim*6*rgb9e5.WordSize || entry.UncompressedByteLength != uint64(len(raw)) {
			t.Fatalf("level %d: raw %d bytes, index says %d", level, len(raw), entry.UncompressedByteLength)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	img := testImage(t, 4, 1, 3)
	path := filepath.Join(t.TempDir(), "env.rgba16f")
	if err := os.WriteFile(path, img.Data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := Load(path, 4, 4, 1, 3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(img.Data, loaded.Data) {
		t.Fatalf("loaded data differs")
	}

	if _, err := Load(path, 4, 4, 6, 3); !errors.Is(err, ErrDataSizeMismatch) {
		t.Fatalf("expected ErrDataSizeMismatch, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing"), 4, 4, 1, 3); !errors.Is(err, ErrReadSource) {
		t.Fatalf("expected ErrReadSource, got %v", err)
	}
}
