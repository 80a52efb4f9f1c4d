// Package docxtext extracts plain text from Word (.docx) package files.
//
// A .docx file is a zip archive whose main document part, word/document.xml,
// holds the WordprocessingML markup. Extraction happens in three steps:
//   - The input must start with the zip local file header signature (PK\x03\x04)
//   - The archive must contain the word/document.xml entry
//   - The markup is reduced to text: paragraphs and line breaks become single
//     spaces, text runs are appended in document order
//
// Text runs are trimmed unless they carry xml:space="preserve". The result is
// trimmed once at the end; interior whitespace is left alone. Tables are
// flattened, their cell paragraphs contributing one space each.
//
// # Basic Usage
//
// To extract text from a file:
//
//	text, err := docxtext.Extract(docxtext.Path("report.docx"))
//	if errors.Is(err, docxtext.ErrUnsupportedFormat) {
//		// not a Word package
//	}
//
// Byte buffers and streams are accepted too:
//
//	text, err := docxtext.Extract(docxtext.Bytes(data))
//	ok, err := docxtext.IsValidFileType(docxtext.Reader(f))
//
// IsValidFileType only inspects the signature; it reports true for any zip
// archive. A seekable stream is left at the offset it had before the call.
//
// # Security Considerations
//
// The decoded document part and any buffered stream are bounded by
// configurable [Limits] to guard against decompression bombs.
package docxtext
