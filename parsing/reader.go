package parsing

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fpverif/go-fp-golden/types"
	"golang.org/x/xerrors"
)

// RecordError reports a malformed record and its 1-based position in the file
type RecordError struct {
	Line int
	Err  error
}

func (re *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", re.Line, re.Err)
}

func (re *RecordError) Unwrap() error {
	return re.Err
}

// MaxLineLength bounds a text record, line terminator excluded. The longest
// valid record is two 32 bit operands and an opcode.
const MaxLineLength = 256

// Reader streams records of type T from a text or CBOR encoded file
type Reader[T any] struct {
	enc    Encoding
	br     *bufio.Reader
	parse  func(string) (T, error)
	decode func(io.Reader) (T, error)
	pos    int
}

func newReader[T any](r io.Reader, enc Encoding, parse func(string) (T, error), decode func(io.Reader) (T, error)) *Reader[T] {
	return &Reader[T]{enc: enc, br: bufio.NewReader(r), parse: parse, decode: decode}
}

// NewVectorReader streams input records
func NewVectorReader(r io.Reader, enc Encoding) *Reader[types.Vector] {
	return newReader(r, enc, types.ParseVector, func(r io.Reader) (types.Vector, error) {
		var v types.Vector
		err := v.UnmarshalCBOR(r)
		return v, err
	})
}

// NewExpectedReader streams expected-output records
func NewExpectedReader(r io.Reader, enc Encoding) *Reader[types.Expected] {
	return newReader(r, enc, types.ParseExpected, func(r io.Reader) (types.Expected, error) {
		var e types.Expected
		err := e.UnmarshalCBOR(r)
		return e, err
	})
}

// Next returns the next record and its position: the line number for text
// files, the record index (1-based) for CBOR files. Blank text lines are
// skipped. A malformed record, including a text line longer than
// MaxLineLength, yields a *RecordError and reading may continue; io.EOF
// marks the end of the stream.
func (rd *Reader[T]) Next() (int, T, error) {
	var zero T
	if rd.enc == CBOR {
		rd.pos++
		rec, err := rd.decode(rd.br)
		if err == io.EOF {
			return rd.pos, zero, io.EOF
		}
		if err != nil {
			// a broken CBOR stream cannot be resynchronised
			return rd.pos, zero, xerrors.Errorf("decoding cbor record %d: %w", rd.pos, err)
		}
		return rd.pos, rec, nil
	}

	for {
		line, tooLong, err := rd.readLine()
		if err == io.EOF {
			return rd.pos, zero, io.EOF
		}
		if err != nil {
			return rd.pos, zero, xerrors.Errorf("reading line %d: %w", rd.pos+1, err)
		}
		rd.pos++
		if tooLong {
			return rd.pos, zero, &RecordError{
				Line: rd.pos,
				Err:  &types.FormatError{Reason: fmt.Sprintf("line too long, more than %d bytes", MaxLineLength)},
			}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := rd.parse(line)
		if err != nil {
			return rd.pos, zero, &RecordError{Line: rd.pos, Err: err}
		}
		return rd.pos, rec, nil
	}
}

// readLine returns the next line without its terminator. A line over
// MaxLineLength is consumed up to its newline and reported as tooLong
// without being buffered. The last line may lack a newline.
func (rd *Reader[T]) readLine() (string, bool, error) {
	var line []byte
	n := 0
	read := false
	for {
		frag, err := rd.br.ReadSlice('\n')
		if len(frag) > 0 {
			read = true
		}
		n += len(frag)
		if n <= MaxLineLength+2 {
			line = append(line, frag...)
		} else {
			line = nil
		}
		switch err {
		case nil:
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if !read {
				return "", false, io.EOF
			}
		default:
			return "", false, err
		}
		line = bytes.TrimSuffix(line, []byte("\n"))
		line = bytes.TrimSuffix(line, []byte("\r"))
		if n > MaxLineLength+2 || len(line) > MaxLineLength {
			return "", true, nil
		}
		return string(line), false, nil
	}
}

// ReadAll drains the reader. Malformed records are returned separately so the
// caller can report them without losing the valid ones.
func (rd *Reader[T]) ReadAll() ([]T, []*RecordError, error) {
	var recs []T
	var bad []*RecordError
	for {
		_, rec, err := rd.Next()
		if err == io.EOF {
			return recs, bad, nil
		}
		var re *RecordError
		if xerrors.As(err, &re) {
			bad = append(bad, re)
			continue
		}
		if err != nil {
			return recs, bad, err
		}
		recs = append(recs, rec)
	}
}
