package dsv_test

import (
	"testing"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// FuzzRoundTrip checks that any document that decodes survives an encode and
// decode unchanged, and that encoding is stable after the first pass.
func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"foo,true,1.0\nbar,false,200,\"Hello, World!\"",
		"\"f,oo\",\"tr\\tu\\\"e\",1",
		"# comment\n\na,b\n",
		"\"\"\n,\n",
		"\"#x\",y",
		"a\\b,c\"d,e\r",
		"\xff\xfe,\x00",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		first, err := dsv.Decode(text, dsv.DefaultConfig())
		if err != nil {
			return
		}

		encoded := first.Encode()
		second, err := dsv.Decode(encoded, dsv.DefaultConfig())
		if err != nil {
			t.Fatalf("Decode(Encode(%q)) failed: %v\nencoded: %q", text, err, encoded)
		}

		want, got := first.Records(), second.Records()
		if len(want) != len(got) {
			t.Fatalf("row count %d, want %d\nencoded: %q", len(got), len(want), encoded)
		}
		for i := range want {
			if len(want[i]) != len(got[i]) {
				t.Fatalf("row %d: %d fields, want %d\nencoded: %q", i, len(got[i]), len(want[i]), encoded)
			}
			for j := range want[i] {
				if want[i][j] != got[i][j] {
					t.Fatalf("row %d field %d: %q, want %q", i, j, got[i][j], want[i][j])
				}
			}
		}

		if again := second.Encode(); again != encoded {
			t.Fatalf("encoding not stable: %q then %q", encoded, again)
		}
	})
}
