package dsv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse decodes text into Shape's unified AST.
//
// Returns an *ast.ArrayDataNode representing the document:
//   - the document node holds one *ast.ArrayDataNode per row
//   - each row node holds one *ast.LiteralNode per field with a string value
//
// Row and field nodes carry their position in text: byte offset, 1-based
// line and 1-based column.
//
// Example:
//
//	node, err := dsv.Parse("name,age\nAlice,30", dsv.DefaultConfig())
//	records := node.(*ast.ArrayDataNode).Elements()
func Parse(text string, cfg Config) (ast.SchemaNode, error) {
	d, err := newDecoder(cfg)
	if err != nil {
		return nil, err
	}

	records := make([]ast.SchemaNode, 0, 16)
	err = d.decodeString(text, func(row Row, lineNo, offset int, columns []int) {
		fields := make([]ast.SchemaNode, len(row))
		for i, v := range row {
			col := columns[i]
			fields[i] = ast.NewLiteralNode(v.text, ast.NewPosition(offset+col-1, lineNo, col))
		}
		records = append(records, ast.NewArrayDataNode(fields, ast.NewPosition(offset, lineNo, 1)))
	})
	if err != nil {
		return nil, err
	}

	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// ToAST converts the table to an AST ArrayDataNode.
// This is useful for integration with other Shape parsers.
func (t *Table) ToAST() *ast.ArrayDataNode {
	records := make([]ast.SchemaNode, len(t.rows))
	for i, row := range t.rows {
		records[i] = rowToNode(row)
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

func rowToNode(row Row) *ast.ArrayDataNode {
	fields := make([]ast.SchemaNode, len(row))
	for i, v := range row {
		fields[i] = ast.NewLiteralNode(v.text, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(fields, ast.ZeroPosition())
}

// FromAST creates a table from a document node as produced by Parse or ToAST.
// Literal values that are not strings are formatted with ValueOf, falling
// back to fmt's %v.
func FromAST(node ast.SchemaNode, cfg Config) (*Table, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("dsv: expected *ast.ArrayDataNode, got %T", node)
	}

	t := NewTable(cfg)
	for i, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("dsv: record %d: expected *ast.ArrayDataNode, got %T", i, elem)
		}
		row, err := nodeToRow(recordNode)
		if err != nil {
			return nil, fmt.Errorf("dsv: record %d: %w", i, err)
		}
		t.Append(row)
	}
	return t, nil
}

func nodeToRow(node *ast.ArrayDataNode) (Row, error) {
	row := make(Row, 0, node.Len())
	for i, fieldNode := range node.Elements() {
		lit, ok := fieldNode.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("field %d: expected *ast.LiteralNode, got %T", i, fieldNode)
		}
		row = append(row, literalValue(lit))
	}
	return row, nil
}

func literalValue(lit *ast.LiteralNode) Value {
	raw := lit.Value()
	if raw == nil {
		return Value{}
	}
	if v, err := ValueOf(raw); err == nil {
		return v
	}
	return FromString(fmt.Sprintf("%v", raw))
}

// Render encodes an AST node as text under cfg.
//
// The node may be a document (array of row arrays), a single row (array of
// literals) or a single literal, which is rendered as a one-field row.
func Render(node ast.SchemaNode, cfg Config) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}

	enc := newEncoder(cfg)
	switch n := node.(type) {
	case *ast.LiteralNode:
		return appendRow(enc, nil, Row{literalValue(n)}), nil

	case *ast.ArrayDataNode:
		elements := n.Elements()
		if len(elements) == 0 {
			return []byte{}, nil
		}
		if _, isRow := elements[0].(*ast.LiteralNode); isRow {
			row, err := nodeToRow(n)
			if err != nil {
				return nil, fmt.Errorf("dsv: %w", err)
			}
			return appendRow(enc, nil, row), nil
		}
		t, err := FromAST(n, cfg)
		if err != nil {
			return nil, err
		}
		var out []byte
		for _, row := range t.rows {
			out = appendRow(enc, out, row)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("dsv: unsupported node type for rendering: %T", node)
	}
}
