package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultEncoder = Encoder{Sep: ',', Esc: '"', Comment: '#'}

func appendRow(e Encoder, fields ...string) string {
	return string(e.AppendRow(nil, len(fields), func(i int) string { return fields[i] }))
}

func TestEncoder_AppendRow(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{"plain", []string{"foo", "true", "1"}, "foo,true,1\n"},
		{"separator and escapes", []string{"f,oo", "tr\tu\"e", "1"}, `"f,oo","tr\tu\"e",1` + "\n"},
		{"newline", []string{"b\nar", "false"}, `"b\nar",false` + "\n"},
		{"backslash", []string{`a\b`}, `"a\\b"` + "\n"},
		{"control characters", []string{"\v\f\r"}, `"\v\f\r"` + "\n"},
		{"leading comment character", []string{"#x", "#y"}, `"#x",#y` + "\n"},
		{"single empty field", []string{""}, `""` + "\n"},
		{"empty fields", []string{"", ""}, ",\n"},
		{"no fields", nil, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appendRow(defaultEncoder, tt.fields...))
		})
	}
}

func TestEncoder_CustomCharacters(t *testing.T) {
	e := Encoder{Sep: '\t', Esc: '\'', Comment: ';'}

	assert.Equal(t, "a,b\t'x\\ty'\t'it\\'s'\t\"q\"\n", appendRow(e, "a,b", "x\ty", "it's", `"q"`))
	assert.Equal(t, "';c'\n", appendRow(e, ";c"))
}

func TestEncoder_RoundTrip(t *testing.T) {
	rows := [][]string{
		{"foo", "bar"},
		{"f,oo", "tr\tu\"e", "1"},
		{"#hash", "x"},
		{""},
		{"", ""},
		{`"`, `\`, "\r\n"},
		{"Hello, World\t!"},
	}

	s := NewScanner(',', '"', 0)
	for _, row := range rows {
		line := appendRow(defaultEncoder, row...)
		got, err := s.Decode(line[:len(line)-1])
		if assert.NoError(t, err, "line %q", line) {
			assert.Equal(t, row, got)
		}
	}
}
