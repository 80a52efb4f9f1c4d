package docxtext

import (
	"errors"
	"fmt"
	"io"
)

// checkpoint remembers a stream offset so it can be put back later.
type checkpoint struct {
	rs     io.ReadSeeker
	offset int64
}

func mark(rs io.ReadSeeker) (checkpoint, error) {
	off, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return checkpoint{}, err
	}
	return checkpoint{rs: rs, offset: off}, nil
}

// restore seeks back to the marked offset. A seek failure is stored in *errp
// unless it already holds an error.
func (c checkpoint) restore(errp *error) {
	if _, err := c.rs.Seek(c.offset, io.SeekStart); err != nil && *errp == nil {
		*errp = err
	}
}

// remaining returns the number of bytes between the current offset and the end.
// The offset is left where it was.
func remaining(rs io.ReadSeeker) (n int64, err error) {
	cp, err := mark(rs)
	if err != nil {
		return 0, err
	}
	defer cp.restore(&err)
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	return end - cp.offset, nil
}

// hasSignature reports whether rs starts with Signature at its current offset.
// Inputs shorter than the signature do not match. The offset is restored on
// every return.
func hasSignature(rs io.ReadSeeker) (ok bool, err error) {
	cp, err := mark(rs)
	if err != nil {
		return false, err
	}
	defer cp.restore(&err)

	avail, err := remaining(rs)
	if err != nil {
		return false, err
	}
	if avail < int64(len(Signature)) {
		return false, nil
	}
	var hdr [len(Signature)]byte
	if _, err := io.ReadFull(rs, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, fmt.Errorf("%w: read signature: %v", ErrTruncated, err)
		}
		return false, err
	}
	return hdr == Signature, nil
}

// probeSignature is hasSignature for streams that cannot seek. The bytes read
// are consumed, and a stream that ends early does not match.
func probeSignature(r io.Reader) (bool, error) {
	var hdr [len(Signature)]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return hdr == Signature, nil
}
