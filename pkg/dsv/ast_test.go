package dsv_test

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func fieldText(t *testing.T, node ast.SchemaNode) string {
	t.Helper()
	lit, ok := node.(*ast.LiteralNode)
	require.True(t, ok, "expected *ast.LiteralNode, got %T", node)
	s, ok := lit.Value().(string)
	require.True(t, ok, "expected string literal, got %T", lit.Value())
	return s
}

func TestParse(t *testing.T) {
	node, err := dsv.Parse("name,age\n# people\n\"Smith, Jane\",42", dsv.DefaultConfig())
	require.NoError(t, err)

	doc, ok := node.(*ast.ArrayDataNode)
	require.True(t, ok)
	require.Equal(t, 2, doc.Len())

	records := doc.Elements()
	header := records[0].(*ast.ArrayDataNode)
	require.Equal(t, 2, header.Len())
	assert.Equal(t, "name", fieldText(t, header.Elements()[0]))
	assert.Equal(t, "age", fieldText(t, header.Elements()[1]))

	data := records[1].(*ast.ArrayDataNode)
	require.Equal(t, 2, data.Len())
	assert.Equal(t, "Smith, Jane", fieldText(t, data.Elements()[0]))
	assert.Equal(t, "42", fieldText(t, data.Elements()[1]))
}

func TestParse_Positions(t *testing.T) {
	node, err := dsv.Parse("name,age\nAlice,30", dsv.DefaultConfig())
	require.NoError(t, err)

	records := node.(*ast.ArrayDataNode).Elements()
	second := records[1].(*ast.ArrayDataNode)
	assert.Equal(t, ast.NewPosition(9, 2, 1), second.Position())
	assert.Equal(t, ast.NewPosition(9, 2, 1), second.Elements()[0].Position())
	assert.Equal(t, ast.NewPosition(15, 2, 7), second.Elements()[1].Position())
}

func TestParse_Error(t *testing.T) {
	_, err := dsv.Parse("a\n\"b", dsv.DefaultConfig())
	assert.ErrorIs(t, err, dsv.ErrUnclosedEscapedValue)

	_, err = dsv.Parse("a", dsv.Config{Separator: '\\'})
	var oe *dsv.OptionsError
	assert.ErrorAs(t, err, &oe)
}

func TestToAST_FromAST(t *testing.T) {
	table, err := dsv.Decode("a,b\nc", dsv.DefaultConfig())
	require.NoError(t, err)

	node := table.ToAST()
	require.Equal(t, 2, node.Len())

	back, err := dsv.FromAST(node, dsv.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, table.Records(), back.Records())
}

func TestFromAST_Literals(t *testing.T) {
	row := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewLiteralNode("x", ast.ZeroPosition()),
		ast.NewLiteralNode(int64(42), ast.ZeroPosition()),
		ast.NewLiteralNode(true, ast.ZeroPosition()),
		ast.NewLiteralNode(2.5, ast.ZeroPosition()),
		ast.NewLiteralNode(nil, ast.ZeroPosition()),
	}, ast.ZeroPosition())
	doc := ast.NewArrayDataNode([]ast.SchemaNode{row}, ast.ZeroPosition())

	table, err := dsv.FromAST(doc, dsv.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "42", "true", "2.5", ""}}, table.Records())
}

func TestFromAST_Errors(t *testing.T) {
	_, err := dsv.FromAST(ast.NewLiteralNode("x", ast.ZeroPosition()), dsv.DefaultConfig())
	assert.Error(t, err)

	doc := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewLiteralNode("not a row", ast.ZeroPosition()),
	}, ast.ZeroPosition())
	_, err = dsv.FromAST(doc, dsv.DefaultConfig())
	assert.ErrorContains(t, err, "record 0")

	nested := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewArrayDataNode(nil, ast.ZeroPosition()),
		}, ast.ZeroPosition()),
	}, ast.ZeroPosition())
	_, err = dsv.FromAST(nested, dsv.DefaultConfig())
	assert.ErrorContains(t, err, "field 0")
}

func TestRender(t *testing.T) {
	cfg := dsv.DefaultConfig()

	t.Run("document", func(t *testing.T) {
		node, err := dsv.Parse("a,\"b,c\"\nd", cfg)
		require.NoError(t, err)

		out, err := dsv.Render(node, cfg)
		require.NoError(t, err)
		assert.Equal(t, "a,\"b,c\"\nd\n", string(out))
	})

	t.Run("single row", func(t *testing.T) {
		row := ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewLiteralNode("a", ast.ZeroPosition()),
			ast.NewLiteralNode("b", ast.ZeroPosition()),
		}, ast.ZeroPosition())

		out, err := dsv.Render(row, dsv.Config{Separator: '\t'})
		require.NoError(t, err)
		assert.Equal(t, "a\tb\n", string(out))
	})

	t.Run("literal", func(t *testing.T) {
		out, err := dsv.Render(ast.NewLiteralNode("x,y", ast.ZeroPosition()), cfg)
		require.NoError(t, err)
		assert.Equal(t, "\"x,y\"\n", string(out))
	})

	t.Run("empty", func(t *testing.T) {
		out, err := dsv.Render(ast.NewArrayDataNode(nil, ast.ZeroPosition()), cfg)
		require.NoError(t, err)
		assert.Empty(t, out)

		out, err = dsv.Render(nil, cfg)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
