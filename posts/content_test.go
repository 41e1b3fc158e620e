package posts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"single", "one paragraph", []string{"one paragraph"}},
		{"two", "first\n\nsecond", []string{"first", "second"}},
		{"whitespace gap", "first\n   \t\nsecond", []string{"first", "second"}},
		{"many blank lines", "a\n\n\n\nb", []string{"a", "b"}},
		{"single newline kept", "line one\nline two", []string{"line one\nline two"}},
		{"trimmed", "  padded  \n\n  text ", []string{"padded", "text"}},
		{"nbsp gap", "first\n\u00a0\nsecond", []string{"first", "second"}},
		{"ideographic space gap", "first\n \u3000\t\nsecond", []string{"first", "second"}},
		{"bom gap", "first\n\ufeff\nsecond", []string{"first", "second"}},
		{"nbsp trimmed", "\u00a0first\u2003\n\nsecond", []string{"first", "second"}},
		{"empty", "", []string{""}},
		{"only blanks", "\n\n  \n", []string{"\n\n  \n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paragraphs(tt.content))
		})
	}
}

func TestParagraphsRoundTrip(t *testing.T) {
	inputs := []string{
		"first\n\nsecond\n\nthird",
		"  a \n \n b\n\n\n c  ",
		"only one",
	}
	for _, in := range inputs {
		paras := Paragraphs(in)
		again := Paragraphs(strings.Join(paras, "\n\n"))
		assert.Equal(t, paras, again, "round trip of %q", in)
	}
}

func TestPostArticle(t *testing.T) {
	p := Post{ID: "rec1", Title: "T", Slug: "t", Content: "a\n\nb", ReadTime: 3}
	a := p.Article()
	assert.Equal(t, []string{"a", "b"}, a.Content)
	assert.Equal(t, "rec1", a.ID)
	assert.Equal(t, 3.0, a.ReadTime)
}
