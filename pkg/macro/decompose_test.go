package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  int
		want  decomposed
	}{
		{
			name:  "simple token",
			input: "$(X)",
			want:  decomposed{name: "X", hasName: true, start: 0, end: 3},
		},
		{
			name:  "offset token",
			input: "ab$(X=1)",
			want:  decomposed{name: "X", def: "1", hasName: true, hasDefault: true, start: 2, end: 7},
		},
		{
			name:  "default trimmed both sides",
			input: "$( X = a b )",
			want:  decomposed{name: "X", def: "a b", hasName: true, hasDefault: true, start: 0, end: 11},
		},
		{
			name:  "split on first equals only",
			input: "$(X=a=b)",
			want:  decomposed{name: "X", def: "a=b", hasName: true, hasDefault: true, start: 0, end: 7},
		},
		{
			name:  "leading equals does not split",
			input: "$(=x)",
			want:  decomposed{name: "=x", hasName: true, start: 0, end: 4},
		},
		{
			name:  "no token carries whole input",
			input: "plain",
			want:  decomposed{def: "plain", hasDefault: true},
		},
		{
			name:  "trailing dollar carries whole input",
			input: "end$",
			want:  decomposed{def: "end$", hasDefault: true},
		},
		{
			name:  "unterminated carries whole input",
			input: "$(X",
			want:  decomposed{def: "$(X", hasDefault: true},
		},
		{
			name:  "dollar without bracket carries whole input",
			input: "$X",
			want:  decomposed{def: "$X", hasDefault: true},
		},
		{
			name:  "escaped dollar skipped",
			input: `a\$(X) $(Y)`,
			want:  decomposed{name: "Y", hasName: true, start: 7, end: 10},
		},
		{
			name:  "from skips earlier token",
			input: "$(X) $(Y)",
			from:  2,
			want:  decomposed{name: "Y", hasName: true, start: 5, end: 8},
		},
		{
			name:  "nested token spans outer brackets",
			input: "$(A=$(B))",
			want:  decomposed{name: "A", def: "$(B)", hasName: true, hasDefault: true, start: 0, end: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decompose(tt.input, tt.from))
		})
	}
}

func TestDecompose_StartBeforeEnd(t *testing.T) {
	d := decompose("pad $(NAME=v) pad", 0)
	assert.True(t, d.hasName)
	assert.Less(t, d.start, d.end)
}
