package parsing

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/xerrors"
)

// Compression is the stream compression applied to a record file
type Compression uint8

const (
	NoCompression Compression = iota
	Zstd
	LZ4
)

// Encoding is the record encoding of a file
type Encoding uint8

const (
	// Text is one whitespace separated record per line
	Text Encoding = iota
	// CBOR is a sequence of CBOR tuples
	CBOR
)

// DetectPath derives the compression and encoding from a file name:
// an optional .zst or .lz4 suffix, preceded by .cbor for CBOR records.
func DetectPath(path string) (Compression, Encoding) {
	c := NoCompression
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zst", ".zstd":
		c = Zstd
	case ".lz4":
		c = LZ4
	}
	if c != NoCompression {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	if strings.ToLower(filepath.Ext(path)) == ".cbor" {
		return c, CBOR
	}
	return c, Text
}

// Open opens a record file for reading, undoing any compression
func Open(path string) (io.ReadCloser, Encoding, error) {
	c, enc := DetectPath(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, enc, xerrors.Errorf("opening %s: %w", path, err)
	}
	r, err := NewDecompressor(f, c)
	if err != nil {
		f.Close()
		return nil, enc, xerrors.Errorf("reading %s: %w", path, err)
	}
	return &stackedReadCloser{Reader: r, closers: []io.Closer{r, f}}, enc, nil
}

// Create creates a record file for writing, compressing per its suffix
func Create(path string) (io.WriteCloser, Encoding, error) {
	c, enc := DetectPath(path)
	f, err := os.Create(path)
	if err != nil {
		return nil, enc, xerrors.Errorf("creating %s: %w", path, err)
	}
	w, err := NewCompressor(f, c)
	if err != nil {
		f.Close()
		return nil, enc, xerrors.Errorf("writing %s: %w", path, err)
	}
	return &stackedWriteCloser{Writer: w, closers: []io.Closer{w, f}}, enc, nil
}

// NewDecompressor wraps r with the decompressor for c
func NewDecompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, xerrors.Errorf("creating zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	}
	return io.NopCloser(r), nil
}

// NewCompressor wraps w with the compressor for c. Closing the result
// flushes the compressed stream but does not close w.
func NewCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, xerrors.Errorf("creating zstd writer: %w", err)
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	return closeAll(s.closers)
}

type stackedWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (s *stackedWriteCloser) Close() error {
	return closeAll(s.closers)
}

// closeAll closes innermost first and reports the first failure
func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
