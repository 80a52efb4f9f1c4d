// Command docxtext prints the plain text of a .docx file.
//
// Usage:
//
//	docxtext -in report.docx
//	docxtext -in report.docx -out report.txt.zst -compress zstd
//	docxtext -check -in upload.bin
//	cat report.docx | docxtext -in -
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/logicossoftware/go-docxtext"
)

// Standard streams and output creation, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

var createOutput = func(name string) (io.WriteCloser, error) { return os.Create(name) }

type options struct {
	in              string
	out             string
	compress        string
	check           bool
	maxDocumentSize int64
	verbose         bool
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var opts options
	flag.StringVar(&opts.in, "in", "", "input .docx file, or - for stdin")
	flag.StringVar(&opts.out, "out", "", "output file (default stdout)")
	flag.StringVar(&opts.compress, "compress", "none", "output compression: none, gzip, zstd, lz4, br")
	flag.BoolVar(&opts.check, "check", false, "only report whether the input has the .docx signature")
	flag.Int64Var(&opts.maxDocumentSize, "max-document-size", 0, "maximum size in bytes of word/document.xml (0 = default)")
	flag.BoolVar(&opts.verbose, "v", false, "verbose logging")
	flag.Parse()

	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if opts.in == "" {
		fmt.Fprintln(os.Stderr, "-in is required")
		flag.Usage()
		os.Exit(2)
	}
	comp, err := docxtext.ParseCompression(opts.compress)
	if err != nil {
		log.Error().Err(err).Msg("invalid -compress")
		os.Exit(2)
	}

	if err := run(opts, comp); err != nil {
		log.Error().Err(err).Str("in", opts.in).Str("kind", errorKind(err)).Msg("docxtext failed")
		os.Exit(1)
	}
}

func run(opts options, comp docxtext.Compression) (err error) {
	src := docxtext.Path(opts.in)
	if opts.in == "-" {
		src = docxtext.Reader(stdin)
	}

	if opts.check {
		ok, err := docxtext.IsValidFileType(src)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, ok)
		if !ok {
			return fmt.Errorf("%w: %s", docxtext.ErrUnsupportedFormat, opts.in)
		}
		return nil
	}

	start := time.Now()
	text, err := docxtext.Extract(src, docxtext.WithLimits(docxtext.Limits{MaxDocumentSize: opts.maxDocumentSize}))
	if err != nil {
		return err
	}
	log.Debug().Str("in", opts.in).Int("chars", len(text)).Dur("took", time.Since(start)).Msg("extracted")

	w := stdout
	if opts.out != "" {
		f, cerr := createOutput(opts.out)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if err := docxtext.WriteText(w, text, comp); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if comp == docxtext.CompNone && opts.out == "" {
		fmt.Fprintln(w)
	}
	log.Debug().Str("out", opts.out).Str("compression", comp.String()).Msg("written")
	return nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, docxtext.ErrMissingArgument):
		return "missing_argument"
	case errors.Is(err, docxtext.ErrNotFound):
		return "not_found"
	case errors.Is(err, docxtext.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, docxtext.ErrTruncated):
		return "truncated"
	case errors.Is(err, docxtext.ErrLimitExceeded):
		return "limit_exceeded"
	default:
		return "other"
	}
}
