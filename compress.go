package docxtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Function variables for testing injection.
var (
	newZstdWriter = func(w io.Writer) (*zstd.Encoder, error) { return zstd.NewWriter(w) }
)

// ParseCompression maps a compression name, as returned by Compression.String,
// to its value. Matching ignores case; "" means CompNone.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompNone, nil
	case "gzip", "gz":
		return CompGzip, nil
	case "zstd", "zst":
		return CompZSTD, nil
	case "lz4":
		return CompLZ4, nil
	case "br", "brotli":
		return CompBR, nil
	default:
		return CompNone, fmt.Errorf("%w: unknown compression %q", ErrInvalidCompression, name)
	}
}

// NewTextWriter returns a writer that compresses what it is given into w.
// Close flushes the compressor; it does not close w.
func NewTextWriter(w io.Writer, comp Compression) (io.WriteCloser, error) {
	switch comp {
	case CompNone:
		return nopWriteCloser{w}, nil
	case CompGzip:
		return gzip.NewWriter(w), nil
	case CompZSTD:
		enc, err := newZstdWriter(w)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case CompLZ4:
		return lz4.NewWriter(w), nil
	case CompBR:
		return brotli.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidCompression, comp)
	}
}

// WriteText writes text to w using comp.
func WriteText(w io.Writer, text string, comp Compression) error {
	tw, err := NewTextWriter(w, comp)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(tw, text); err != nil {
		_ = tw.Close()
		return err
	}
	return tw.Close()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
