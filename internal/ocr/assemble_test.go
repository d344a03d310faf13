package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleText(t *testing.T) {
	tests := []struct {
		name string
		in   Result
		want string
	}{
		{
			name: "flattened markdown used verbatim",
			in:   Result{Markdown: "# Invoice\n\nTotal: $10"},
			want: "# Invoice\n\nTotal: $10",
		},
		{
			name: "two pages joined with delimiter",
			in:   Result{Pages: []Page{{Markdown: "Page1"}, {Markdown: "Page2"}}},
			want: "Page1\n<<<>>>\nPage2",
		},
		{
			name: "single page has no delimiter",
			in:   Result{Pages: []Page{{Markdown: "only"}}},
			want: "only",
		},
		{
			name: "pages kept in order, never deduplicated",
			in:   Result{Pages: []Page{{Markdown: "a"}, {Markdown: "a"}, {Markdown: "b"}}},
			want: "a\n<<<>>>\na\n<<<>>>\nb",
		},
		{
			name: "empty page preserved in sequence",
			in:   Result{Pages: []Page{{Markdown: "a"}, {Markdown: ""}, {Markdown: "c"}}},
			want: "a\n<<<>>>\n\n<<<>>>\nc",
		},
		{
			name: "markdown wins over pages when both present",
			in:   Result{Markdown: "flat", Pages: []Page{{Markdown: "ignored"}}},
			want: "flat",
		},
		{
			name: "empty result assembles to empty string",
			in:   Result{},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.AssembleText())
		})
	}
}

func TestResultEmpty(t *testing.T) {
	assert.True(t, Result{}.Empty())
	assert.False(t, Result{Markdown: "x"}.Empty())
	assert.False(t, Result{Pages: []Page{{Markdown: ""}}}.Empty())
}
