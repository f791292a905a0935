package parsing

import (
	"bufio"
	"io"

	"github.com/fpverif/go-fp-golden/types"
)

// Writer streams records of type T to a text or CBOR encoded file.
// Flush must be called once all records are written.
type Writer[T any] struct {
	enc     Encoding
	bw      *bufio.Writer
	format  func(T) string
	marshal func(io.Writer, T) error
}

func newWriter[T any](w io.Writer, enc Encoding, format func(T) string, marshal func(io.Writer, T) error) *Writer[T] {
	return &Writer[T]{enc: enc, bw: bufio.NewWriter(w), format: format, marshal: marshal}
}

// NewVectorWriter writes input records
func NewVectorWriter(w io.Writer, enc Encoding) *Writer[types.Vector] {
	return newWriter(w, enc, types.Vector.String, func(w io.Writer, v types.Vector) error {
		return v.MarshalCBOR(w)
	})
}

// NewExpectedWriter writes expected-output records
func NewExpectedWriter(w io.Writer, enc Encoding) *Writer[types.Expected] {
	return newWriter(w, enc, types.Expected.String, func(w io.Writer, e types.Expected) error {
		return e.MarshalCBOR(w)
	})
}

func (wr *Writer[T]) Write(rec T) error {
	if wr.enc == CBOR {
		return wr.marshal(wr.bw, rec)
	}
	if _, err := wr.bw.WriteString(wr.format(rec)); err != nil {
		return err
	}
	return wr.bw.WriteByte('\n')
}

func (wr *Writer[T]) Flush() error {
	return wr.bw.Flush()
}
