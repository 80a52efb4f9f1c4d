// Package main provides C-compatible exports for the docxtext library.
// Build with: go build -buildmode=c-shared -o docxtext.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return text
typedef struct {
    char* data;
    int   data_len;
    char* error;
    int   error_kind;
} DocxtextResult;
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/logicossoftware/go-docxtext"
)

// Error kinds reported in DocxtextResult.error_kind.
const (
	kindNone = iota
	kindMissingArgument
	kindNotFound
	kindUnsupportedFormat
	kindTruncated
	kindLimitExceeded
	kindOther = 99
)

func main() {}

// DocxtextFreeResult frees memory allocated by other Docxtext functions.
// Must be called to avoid memory leaks.
//
//export DocxtextFreeResult
func DocxtextFreeResult(result C.DocxtextResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// DocxtextFreeString frees a C string allocated by Go.
//
//export DocxtextFreeString
func DocxtextFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result holding text.
func makeResult(text string) C.DocxtextResult {
	var result C.DocxtextResult
	if len(text) > 0 {
		result.data = (*C.char)(C.CBytes([]byte(text)))
		result.data_len = C.int(len(text))
	}
	return result
}

// makeError creates a result with an error message and kind.
func makeError(err error) C.DocxtextResult {
	var result C.DocxtextResult
	result.error = C.CString(err.Error())
	result.error_kind = C.int(errorKind(err))
	return result
}

func errorKind(err error) int {
	switch {
	case err == nil:
		return kindNone
	case errors.Is(err, docxtext.ErrMissingArgument):
		return kindMissingArgument
	case errors.Is(err, docxtext.ErrNotFound):
		return kindNotFound
	case errors.Is(err, docxtext.ErrUnsupportedFormat):
		return kindUnsupportedFormat
	case errors.Is(err, docxtext.ErrTruncated):
		return kindTruncated
	case errors.Is(err, docxtext.ErrLimitExceeded):
		return kindLimitExceeded
	default:
		return kindOther
	}
}

// goBytes copies a C buffer. A NULL pointer yields nil, which the library
// reports as a missing argument.
func goBytes(data *C.char, dataLen C.int) []byte {
	if data == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), dataLen)
}

// DocxtextExtract extracts the text of the .docx file at path.
// The text is UTF-8 and not NUL-terminated; use data_len.
// Call DocxtextFreeResult when done.
//
//export DocxtextExtract
func DocxtextExtract(path *C.char) C.DocxtextResult {
	if path == nil {
		return makeError(docxtext.ErrMissingArgument)
	}
	text, err := docxtext.Extract(docxtext.Path(C.GoString(path)))
	if err != nil {
		return makeError(err)
	}
	return makeResult(text)
}

// DocxtextExtractBytes extracts the text of a .docx file held in memory.
// Call DocxtextFreeResult when done.
//
//export DocxtextExtractBytes
func DocxtextExtractBytes(data *C.char, dataLen C.int) C.DocxtextResult {
	text, err := docxtext.Extract(docxtext.Bytes(goBytes(data, dataLen)))
	if err != nil {
		return makeError(err)
	}
	return makeResult(text)
}

// DocxtextIsValidFileType returns 1 if data starts with the .docx signature,
// 0 if it does not, and the negated error kind on failure.
//
//export DocxtextIsValidFileType
func DocxtextIsValidFileType(data *C.char, dataLen C.int) C.int {
	ok, err := docxtext.IsValidFileType(docxtext.Bytes(goBytes(data, dataLen)))
	if err != nil {
		return C.int(-errorKind(err))
	}
	if ok {
		return 1
	}
	return 0
}

// DocxtextIsValidFile is DocxtextIsValidFileType for a file path.
//
//export DocxtextIsValidFile
func DocxtextIsValidFile(path *C.char) C.int {
	if path == nil {
		return C.int(-kindMissingArgument)
	}
	ok, err := docxtext.IsValidFileType(docxtext.Path(C.GoString(path)))
	if err != nil {
		return C.int(-errorKind(err))
	}
	if ok {
		return 1
	}
	return 0
}
