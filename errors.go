package docxtext

import "errors"

var (
	ErrMissingArgument    = errors.New("docxtext: missing argument")
	ErrNotFound           = errors.New("docxtext: file not found")
	ErrUnsupportedFormat  = errors.New("docxtext: unsupported format")
	ErrTruncated          = errors.New("docxtext: unexpected end of data")
	ErrLimitExceeded      = errors.New("docxtext: limit exceeded")
	ErrInvalidCompression = errors.New("docxtext: invalid compression")
)
