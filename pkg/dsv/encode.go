package dsv

import (
	"bufio"
	"io"

	"github.com/shapestone/shape-dsv/internal/codec"
)

func newEncoder(cfg Config) codec.Encoder {
	cfg = cfg.withDefaults()
	return codec.Encoder{Sep: cfg.Separator, Esc: cfg.Escape, Comment: cfg.Comment}
}

func appendRow(enc codec.Encoder, dst []byte, row Row) []byte {
	return enc.AppendRow(dst, len(row), func(i int) string { return row[i].text })
}

// EncodeRow renders row as one line terminated by a line feed.
//
// A field is wrapped in the escape character when it contains the separator,
// the escape character, a backslash or one of \v \t \r \n \f; inside the
// wrapper those characters, except the separator, are written as backslash
// sequences. Encoding never fails.
//
// Example:
//
//	row := dsv.StringRow("f,oo", "tr\tu\"e", "1")
//	dsv.EncodeRow(row, dsv.DefaultConfig())
//	// "f,oo","tr\tu\"e",1
func EncodeRow(row Row, cfg Config) string {
	buf := codec.GetBuffer()
	defer func() { codec.PutBuffer(buf) }()

	buf = appendRow(newEncoder(cfg), buf, row)
	return string(buf)
}

// Encode renders every row of t, in order, using the table's configuration.
func Encode(t *Table) string {
	return t.Encode()
}

// Encode renders every row of the table, in order.
func (t *Table) Encode() string {
	buf := codec.GetBuffer()
	defer func() { codec.PutBuffer(buf) }()

	enc := newEncoder(t.cfg)
	for _, row := range t.rows {
		buf = appendRow(enc, buf, row)
	}
	return string(buf)
}

// WriteTo writes the encoded table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := NewWriter(cw, t.cfg)
	if err := bw.WriteTable(t); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Writer writes encoded rows to an io.Writer through a buffer.
//
// Call Flush when done, and check Error for write errors:
//
//	w := dsv.NewWriter(os.Stdout, dsv.DefaultConfig())
//	for _, row := range rows {
//	    w.Write(row)
//	}
//	w.Flush()
//	if err := w.Error(); err != nil {
//	    // handle error
//	}
type Writer struct {
	enc codec.Encoder
	w   *bufio.Writer
	buf []byte
	err error
}

// NewWriter returns a Writer that encodes rows with cfg.
func NewWriter(w io.Writer, cfg Config) *Writer {
	return &Writer{
		enc: newEncoder(cfg),
		w:   bufio.NewWriter(w),
	}
}

// Write encodes one row. After the first error, Write does nothing and
// returns that error.
func (w *Writer) Write(row Row) error {
	if w.err != nil {
		return w.err
	}
	w.buf = appendRow(w.enc, w.buf[:0], row)
	_, w.err = w.w.Write(w.buf)
	return w.err
}

// WriteTable writes every row of t and flushes.
// The Writer's configuration applies, not the table's.
func (w *Writer) WriteTable(t *Table) error {
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() {
	if w.err != nil {
		return
	}
	w.err = w.w.Flush()
}

// Error reports any error that has occurred during a previous Write or Flush.
func (w *Writer) Error() error {
	return w.err
}
