package dsv

import (
	"fmt"
	"io"
	"strings"

	"github.com/shapestone/shape-dsv/internal/codec"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// LineScanner is a source of lines without their terminating line feed.
//
// *bufio.Scanner satisfies it, but its default ScanLines split also drops a
// carriage return before the line feed, which Decode keeps as field content.
// Use DecodeReader, or a custom split function, for byte-exact results.
type LineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

// decoder applies the row scanner to each line of a document.
type decoder struct {
	cfg     Config
	scanner *codec.Scanner
}

func newDecoder(cfg Config) (*decoder, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &decoder{
		cfg:     cfg,
		scanner: codec.NewScanner(cfg.Separator, cfg.Escape, 0),
	}, nil
}

// skip reports whether a line contributes no row.
func (d *decoder) skip(line string) bool {
	return line == "" || line[0] == d.cfg.Comment
}

// decodeRow decodes one line; lineNo is used only for error positions.
func (d *decoder) decodeRow(line string, lineNo int) (Row, error) {
	row := make(Row, 0, d.cfg.RowCapacity)
	err := d.scanner.Scan(line, func(field string) {
		row = append(row, Value{text: field})
	})
	if err != nil {
		return nil, newParseError(lineNo, err)
	}
	return row, nil
}

// rowFunc receives each decoded row with its 1-based line number, the byte
// offset of the line and the start column of each field. columns is only
// valid during the call.
type rowFunc func(row Row, lineNo, offset int, columns []int)

// decodeString walks text line by line.
func (d *decoder) decodeString(text string, emit rowFunc) error {
	lineNo, offset := 0, 0
	for rest, more := text, true; more; {
		var line string
		line, rest, more = strings.Cut(rest, "\n")
		lineNo++

		if !d.skip(line) {
			row, err := d.decodeRow(line, lineNo)
			if err != nil {
				return err
			}
			emit(row, lineNo, offset, d.scanner.Columns())
		}
		offset += len(line) + 1
	}
	return nil
}

// decodeLines walks the lines of src.
func (d *decoder) decodeLines(src LineScanner, emit rowFunc) error {
	lineNo, offset := 0, 0
	for src.Scan() {
		line := src.Text()
		lineNo++

		if !d.skip(line) {
			row, err := d.decodeRow(line, lineNo)
			if err != nil {
				return err
			}
			emit(row, lineNo, offset, d.scanner.Columns())
		}
		offset += len(line) + 1
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("dsv: reading line %d: %w", lineNo+1, err)
	}
	return nil
}

// DecodeRow decodes a single line into a row. One trailing line feed, as
// written by EncodeRow, is dropped. Comment handling does not apply: the whole
// line is decoded.
//
// Example:
//
//	row, err := dsv.DecodeRow(`foo,"Hello, World\t!"`, dsv.DefaultConfig())
//	// row[1].String() == "Hello, World\t!" with a real tab
func DecodeRow(line string, cfg Config) (Row, error) {
	d, err := newDecoder(cfg)
	if err != nil {
		return nil, err
	}
	return d.decodeRow(strings.TrimSuffix(line, "\n"), 0)
}

// Decode decodes a whole document. Lines are separated by line feeds; empty
// lines and lines starting with the comment character are skipped. The first
// failing line aborts decoding and no table is returned.
//
// Example:
//
//	table, err := dsv.Decode("foo,true,1.0\nbar,false,200", dsv.DefaultConfig())
//	row, _ := table.Row(1)
//	n, _ := row[2].Int() // 200
func Decode(text string, cfg Config) (*Table, error) {
	t := NewTable(cfg)
	if err := t.Decode(text); err != nil {
		return nil, err
	}
	return t, nil
}

// DecodeLines decodes a document supplied line by line.
func DecodeLines(src LineScanner, cfg Config) (*Table, error) {
	t := NewTable(cfg)
	if err := t.DecodeLines(src); err != nil {
		return nil, err
	}
	return t, nil
}

// DecodeReader decodes a document read from r. The input is read as UTF-8
// text; use Decode for input in other encodings.
func DecodeReader(r io.Reader, cfg Config) (*Table, error) {
	t := NewTable(cfg)
	if err := t.DecodeReader(r); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate reports whether text decodes without error under cfg.
func Validate(text string, cfg Config) error {
	d, err := newDecoder(cfg)
	if err != nil {
		return err
	}
	return d.decodeString(text, func(Row, int, int, []int) {})
}

// Decode replaces the table's rows with those decoded from text using the
// table's configuration. On error the table is left unchanged.
func (t *Table) Decode(text string) error {
	d, err := newDecoder(t.cfg)
	if err != nil {
		return err
	}

	rows := make([]Row, 0, strings.Count(text, "\n")+1)
	err = d.decodeString(text, func(row Row, _, _ int, _ []int) {
		rows = append(rows, row)
	})
	if err != nil {
		return err
	}
	t.rows = rows
	return nil
}

// DecodeLines replaces the table's rows with those decoded from src.
// On error the table is left unchanged.
func (t *Table) DecodeLines(src LineScanner) error {
	d, err := newDecoder(t.cfg)
	if err != nil {
		return err
	}

	var rows []Row
	err = d.decodeLines(src, func(row Row, _, _ int, _ []int) {
		rows = append(rows, row)
	})
	if err != nil {
		return err
	}
	t.rows = rows
	return nil
}

// DecodeReader replaces the table's rows with those decoded from r.
// On error the table is left unchanged.
func (t *Table) DecodeReader(r io.Reader) error {
	return t.DecodeLines(tokenizer.NewLineScanner(r))
}
