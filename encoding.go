package projector

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "utf-8"

// LookupEncoding resolves an encoding name such as "utf-8", "latin1" or
// "utf-16le". The empty name resolves to UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return enc, nil
}

// NewDecodingReader returns a reader that decodes r from enc to UTF-8.
func NewDecodingReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}

// NewEncodingWriter returns a writer that encodes UTF-8 text to enc. The
// writer must be closed to flush its buffered output.
func NewEncodingWriter(w io.Writer, enc encoding.Encoding) *transform.Writer {
	return transform.NewWriter(w, enc.NewEncoder())
}

// OpenDecoded opens the named file and decodes it with the named encoding.
func OpenDecoded(filename, encodingName string) (io.ReadCloser, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return decodedFile{Reader: NewDecodingReader(f, enc), f: f}, nil
}

type decodedFile struct {
	io.Reader
	f *os.File
}

func (d decodedFile) Close() error {
	return d.f.Close()
}

// CreateEncoded creates the named file and encodes everything written to
// it with the named encoding. Close flushes the encoder and closes the
// file.
func CreateEncoded(filename, encodingName string) (io.WriteCloser, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &encodedFile{Writer: NewEncodingWriter(f, enc), f: f}, nil
}

type encodedFile struct {
	*transform.Writer
	f *os.File
}

func (e *encodedFile) Close() error {
	err := e.Writer.Close()
	if cerr := e.f.Close(); err == nil {
		err = cerr
	}
	return err
}
