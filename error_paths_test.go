package docxtext

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestArchive_OpenEntryError(t *testing.T) {
	orig := zipOpen
	zipOpen = func(*zip.File) (io.ReadCloser, error) { return nil, io.ErrClosedPipe }
	defer func() { zipOpen = orig }()

	_, err := Extract(Bytes(buildDocx(t, wordDocument(validBody))))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected cause in chain, got %v", err)
	}
}

func TestArchive_ReadEntryError(t *testing.T) {
	orig := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrUnexpectedEOF }
	defer func() { readAll = orig }()

	_, err := Extract(Bytes(buildDocx(t, wordDocument(validBody))))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestArchive_EntryLargerThanHeader(t *testing.T) {
	body := wordDocument(validBody)
	orig := zipOpen
	zipOpen = func(*zip.File) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(body + strings.Repeat(" ", 64))), nil
	}
	defer func() { zipOpen = orig }()

	limits := Limits{MaxDocumentSize: int64(len(body))}
	_, err := Extract(Bytes(buildDocx(t, body)), WithLimits(limits))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestArchive_ChecksumMismatch(t *testing.T) {
	data := buildArchive(t, zipEntry{name: DocumentPath, body: []byte(wordDocument(validBody)), method: zip.Store})
	// Flip a byte inside the stored payload; the CRC no longer matches.
	i := bytes.Index(data, []byte("This is a Word"))
	if i < 0 {
		t.Fatal("payload not found")
	}
	data[i] ^= 0x20

	_, err := Extract(Bytes(data))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !errors.Is(err, zip.ErrChecksum) {
		t.Fatalf("expected zip.ErrChecksum in chain, got %v", err)
	}
}

func TestArchive_UnknownMethod(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(90, func(w io.Writer) (io.WriteCloser, error) { return nopWriteCloser{w}, nil })
	w, err := zw.CreateHeader(&zip.FileHeader{Name: DocumentPath, Method: 90})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(wordDocument(validBody))); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	_, err = Extract(Bytes(buf.Bytes()))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSource_StreamReadError(t *testing.T) {
	_, err := Extract(Reader(errReader{}))
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected read error, got %v", err)
	}
	if _, err := IsValidFileType(Reader(errReader{})); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestSource_SeekOnlyReadError(t *testing.T) {
	data := buildDocx(t, wordDocument(validBody))
	orig := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrClosedPipe }
	defer func() { readAll = orig }()

	_, err := Extract(Reader(seekOnly{bytes.NewReader(data)}))
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected read error, got %v", err)
	}
}
