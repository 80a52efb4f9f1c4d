package docxtext

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Function variables for testing injection.
var (
	zipOpen = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll = io.ReadAll
)

// readDocumentMarkup opens ra as a zip archive and returns the decoded
// content of its DocumentPath entry.
func readDocumentMarkup(ra io.ReaderAt, size int64, limits Limits) (string, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return "", fmt.Errorf("%w: open archive: %w", ErrUnsupportedFormat, err)
	}
	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())

	zf := findEntry(zr, DocumentPath)
	if zf == nil {
		return "", fmt.Errorf("%w: %s not found in archive", ErrUnsupportedFormat, DocumentPath)
	}
	if zf.UncompressedSize64 > uint64(limits.MaxDocumentSize) {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrLimitExceeded, DocumentPath, zf.UncompressedSize64)
	}

	rc, err := zipOpen(zf)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", ErrUnsupportedFormat, DocumentPath, err)
	}
	defer rc.Close()

	// UTF-8 unless the part starts with a UTF-8 or UTF-16 byte order mark.
	// The limit applies to the stored bytes, the same measure as the header.
	n := readCap(limits.MaxDocumentSize)
	lr := &io.LimitedReader{R: rc, N: n}
	dec := transform.NewReader(lr, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	b, err := readAll(dec)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrUnsupportedFormat, DocumentPath, err)
	}
	if n-lr.N > limits.MaxDocumentSize {
		return "", fmt.Errorf("%w: %s expanded beyond %d bytes", ErrLimitExceeded, DocumentPath, limits.MaxDocumentSize)
	}
	return string(b), nil
}

// findEntry returns the archive entry named exactly name, or nil.
func findEntry(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
