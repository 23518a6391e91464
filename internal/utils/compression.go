package utils

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies the codec a mirror index is published with
type Compression string

const (
	CompressionGzip Compression = "gz"
	CompressionXZ   Compression = "xz"
	CompressionZstd Compression = "zst"
)

// Magic bytes of the supported codecs
var (
	gzipMagic = []byte{0x1F, 0x8B}
	xzMagic   = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// SupportedCompressions lists the accepted Compression values
var SupportedCompressions = []Compression{CompressionGzip, CompressionXZ, CompressionZstd}

// ParseCompression converts a flag value into a Compression
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "gz", ".gz", "gzip":
		return CompressionGzip, nil
	case "xz", ".xz":
		return CompressionXZ, nil
	case "zst", ".zst", "zstd":
		return CompressionZstd, nil
	default:
		return "", fmt.Errorf("unknown compression %q", s)
	}
}

// DetectCompression identifies the codec of data from its magic bytes
func DetectCompression(data []byte) (Compression, bool) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip, true
	case bytes.HasPrefix(data, xzMagic):
		return CompressionXZ, true
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd, true
	default:
		return "", false
	}
}

// Extension returns the file suffix used on the mirror, including the dot
func (c Compression) Extension() string {
	return "." + string(c)
}

// Compress encodes data with the codec. It is mostly useful for building
// fixtures.
func (c Compression) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error

	switch c {
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionXZ:
		w, err = xz.NewWriter(&buf)
	case CompressionZstd:
		w, err = zstd.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unknown compression %q", c)
	}
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decodes the whole of data in memory
func (c Compression) Decompress(data []byte) ([]byte, error) {
	switch c {
	case CompressionGzip:
		return GzipDecompress(data)
	case CompressionXZ:
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(r)
	case CompressionZstd:
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	default:
		return nil, fmt.Errorf("unknown compression %q", c)
	}
}

// GzipDecompress decompresses gzip data
func GzipDecompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
