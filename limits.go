package docxtext

import "math"

type Limits struct {
	MaxArchiveSize int64 // bytes buffered from a stream without random access

	// MaxDocumentSize caps word/document.xml as stored in the archive, after
	// decompression and before text decoding. A UTF-16 part is measured in
	// UTF-16 bytes.
	MaxDocumentSize int64
}

func defaultLimits() Limits {
	return Limits{
		MaxArchiveSize:  1 << 30,   // 1 GiB
		MaxDocumentSize: 256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxArchiveSize <= 0 {
		l.MaxArchiveSize = d.MaxArchiveSize
	}
	if l.MaxDocumentSize <= 0 {
		l.MaxDocumentSize = d.MaxDocumentSize
	}
	return l
}

// readCap returns how many bytes to read to tell whether input exceeds
// limit. Nothing can exceed math.MaxInt64, so that limit is returned as is.
func readCap(limit int64) int64 {
	if limit < math.MaxInt64 {
		return limit + 1
	}
	return limit
}
