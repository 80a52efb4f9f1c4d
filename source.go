package docxtext

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Source is the input of Extract and IsValidFileType. It is built by Path,
// Bytes or Reader.
type Source interface {
	isSource()
}

type pathSource struct{ path string }

type bytesSource struct{ data []byte }

type readerSource struct{ r io.Reader }

func (pathSource) isSource()   {}
func (bytesSource) isSource()  {}
func (readerSource) isSource() {}

// Path returns a Source reading the file at path.
func Path(path string) Source { return pathSource{path: path} }

// Bytes returns a Source over data. A nil slice is a missing argument; an
// empty one is not.
func Bytes(data []byte) Source { return bytesSource{data: data} }

// Reader returns a Source reading from r, starting at its current offset.
//
// If r can seek, IsValidFileType restores its offset. If it also
// implements io.ReaderAt, Extract reads the archive in place; otherwise the
// rest of the stream is buffered in memory, up to Limits.MaxArchiveSize.
func Reader(r io.Reader) Source { return readerSource{r: r} }

// byteSource is a Source opened for reading.
type byteSource struct {
	rs    io.ReadSeeker
	ra    io.ReaderAt // nil if rs has no random access
	close func() error
}

func (b *byteSource) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// archive returns the bytes from the current offset to the end as a
// random-access section, buffering them if needed.
func (b *byteSource) archive(limits Limits) (io.ReaderAt, int64, error) {
	start, err := b.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, 0, err
	}
	size, err := remaining(b.rs)
	if err != nil {
		return nil, 0, err
	}
	if b.ra != nil {
		return io.NewSectionReader(b.ra, start, size), size, nil
	}
	if size > limits.MaxArchiveSize {
		return nil, 0, fmt.Errorf("%w: archive size %d exceeds %d", ErrLimitExceeded, size, limits.MaxArchiveSize)
	}
	data, err := readAll(io.LimitReader(b.rs, size))
	if err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(data), int64(len(data)), nil
}

// asSeeker returns r as an io.ReadSeeker if it can actually seek. Pipes and
// terminals implement io.Seeker through *os.File but fail every call.
func asSeeker(r io.Reader) (io.ReadSeeker, bool) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, false
	}
	if _, err := rs.Seek(0, io.SeekCurrent); err != nil {
		return nil, false
	}
	return rs, true
}

// openPath checks that path names an existing regular file and opens it.
func openPath(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrNotFound, path)
	}
	return os.Open(path)
}

// openSource normalizes src into a seekable source.
func openSource(src Source, limits Limits) (*byteSource, error) {
	switch s := src.(type) {
	case nil:
		return nil, fmt.Errorf("%w: source is nil", ErrMissingArgument)
	case pathSource:
		f, err := openPath(s.path)
		if err != nil {
			return nil, err
		}
		return &byteSource{rs: f, ra: f, close: f.Close}, nil
	case bytesSource:
		if s.data == nil {
			return nil, fmt.Errorf("%w: data is nil", ErrMissingArgument)
		}
		br := bytes.NewReader(s.data)
		return &byteSource{rs: br, ra: br}, nil
	case readerSource:
		if s.r == nil {
			return nil, fmt.Errorf("%w: reader is nil", ErrMissingArgument)
		}
		if rs, ok := asSeeker(s.r); ok {
			ra, _ := s.r.(io.ReaderAt)
			return &byteSource{rs: rs, ra: ra}, nil
		}
		data, err := readAll(io.LimitReader(s.r, readCap(limits.MaxArchiveSize)))
		if err != nil {
			return nil, err
		}
		if int64(len(data)) > limits.MaxArchiveSize {
			return nil, fmt.Errorf("%w: stream exceeds %d bytes", ErrLimitExceeded, limits.MaxArchiveSize)
		}
		br := bytes.NewReader(data)
		return &byteSource{rs: br, ra: br}, nil
	default:
		return nil, fmt.Errorf("%w: unknown source %T", ErrMissingArgument, src)
	}
}
