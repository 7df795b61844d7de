package compress_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/wireval/wireval/compress"
)

func TestRunLengthRoundTrip(t *testing.T) {
	rle := compress.RunLength{}
	original := []byte("aaaaabbbcddddddddddddd")
	compressed, err := rle.Compress(original)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := rle.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	td.Cmp(t, got, original)
}

func TestRunLengthEmptyInput(t *testing.T) {
	rle := compress.RunLength{}
	compressed, err := rle.Compress(nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	td.Cmp(t, len(compressed), 0)
}

func TestZstdRoundTrip(t *testing.T) {
	z := compress.Zstd{}
	original := []byte("repetitive text compresses well with zstd, repetitive text compresses well")
	compressed, err := z.Compress(original)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := z.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	td.Cmp(t, got, original)
}

func TestZstdRoundTripEmpty(t *testing.T) {
	z := compress.Zstd{}
	compressed, err := z.Compress(nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := z.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	td.Cmp(t, len(got), 0)
}

func TestLZ4RoundTripCompressible(t *testing.T) {
	lz4c := compress.LZ4{}
	original := make([]byte, 1000)
	for i := range original {
		original[i] = byte(i % 4)
	}
	compressed, err := lz4c.Compress(original)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := lz4c.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	td.Cmp(t, got, original)
}

func TestLZ4RoundTripIncompressible(t *testing.T) {
	lz4c := compress.LZ4{}
	original := []byte{0x00, 0x01, 0x02, 0x03, 0x04}
	compressed, err := lz4c.Compress(original)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := lz4c.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	td.Cmp(t, got, original)
}

func TestRegistryRoundTrip(t *testing.T) {
	rle := compress.RunLength{}
	reg := compress.NewRegistry(rle, compress.LZ4{})

	c, ok := reg.Get(rle.Tag())
	td.CmpTrue(t, ok)
	td.Cmp(t, c.Tag(), rle.Tag())

	original := []byte("xxxxxxxxxxyyyyyyyyyy")
	compressed, err := rle.Compress(original)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := reg.Decompress(rle.Tag(), compressed)
	if err != nil {
		t.Fatalf("Registry.Decompress: %v", err)
	}
	td.Cmp(t, got, original)
}

func TestRegistryUnknownTagFails(t *testing.T) {
	reg := compress.NewRegistry()
	_, err := reg.Decompress(0x99, nil)
	td.Cmp(t, err, td.NotNil())
}
