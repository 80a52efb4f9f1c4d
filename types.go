package docxtext

// Signature is the 4-byte zip local file header that starts every .docx file.
var Signature = [4]byte{0x50, 0x4B, 0x03, 0x04}

// DocumentPath is the archive entry holding the main document markup.
const DocumentPath = "word/document.xml"

type Compression uint16

const (
	CompNone Compression = 0x0
	CompGzip Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompGzip:
		return "gzip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "br"
	default:
		return "unknown"
	}
}

type tokenKind uint8

const (
	// tokenBoundary is a paragraph start or an explicit line break.
	tokenBoundary tokenKind = iota + 1
	tokenRun
)

type token struct {
	kind     tokenKind
	text     string
	preserve bool
}
