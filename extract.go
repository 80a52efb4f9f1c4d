package docxtext

import (
	"bytes"
	"fmt"
)

// Extract returns the plain text of the Word document read from src.
//
// The extraction process:
//  1. Checks that src starts with Signature
//  2. Opens src as a zip archive and reads the DocumentPath entry
//  3. Reduces the markup to text
//
// Extract returns ErrMissingArgument for a nil source, buffer or reader,
// ErrNotFound if a path does not name an existing file, ErrUnsupportedFormat
// if the signature does not match or the archive is damaged or lacks
// DocumentPath, ErrTruncated if the signature read comes up short, and
// ErrLimitExceeded if a size limit is exceeded.
//
// A document whose markup is blank yields that markup unchanged.
func Extract(src Source, opts ...Option) (string, error) {
	cfg := newExtractConfig(opts)

	bs, err := openSource(src, cfg.limits)
	if err != nil {
		return "", err
	}
	defer bs.Close()

	ok, err := hasSignature(bs.rs)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: missing zip signature", ErrUnsupportedFormat)
	}

	ra, size, err := bs.archive(cfg.limits)
	if err != nil {
		return "", err
	}
	markup, err := readDocumentMarkup(ra, size, cfg.limits)
	if err != nil {
		return "", err
	}
	return reduceToText(markup), nil
}

// IsValidFileType reports whether src starts with the .docx package
// signature. Only the signature is checked, so any zip archive is valid.
//
// IsValidFileType returns ErrMissingArgument and ErrNotFound like Extract.
// Inputs that are too short or carry another signature report false.
func IsValidFileType(src Source) (bool, error) {
	switch s := src.(type) {
	case nil:
		return false, fmt.Errorf("%w: source is nil", ErrMissingArgument)
	case pathSource:
		f, err := openPath(s.path)
		if err != nil {
			return false, err
		}
		defer f.Close()
		return hasSignature(f)
	case bytesSource:
		if s.data == nil {
			return false, fmt.Errorf("%w: data is nil", ErrMissingArgument)
		}
		return hasSignature(bytes.NewReader(s.data))
	case readerSource:
		if s.r == nil {
			return false, fmt.Errorf("%w: reader is nil", ErrMissingArgument)
		}
		if rs, ok := asSeeker(s.r); ok {
			return hasSignature(rs)
		}
		return probeSignature(s.r)
	default:
		return false, fmt.Errorf("%w: unknown source %T", ErrMissingArgument, src)
	}
}
