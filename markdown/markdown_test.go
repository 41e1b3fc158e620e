package markdown

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineEscapesHTML(t *testing.T) {
	got := FormatInline(`<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("FormatInline should escape tags: %q", got)
	}
}

func TestFormatInlineLinks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"[Wikipedia](https://en.wikipedia.org/wiki/Some_Article_Title)",
			`<a href="https://en.wikipedia.org/wiki/Some_Article_Title" class="link">Wikipedia</a>`,
		},
		{
			"Check [this](https://example.com)^ out",
			`Check <a href="https://example.com" class="link" target="_blank" rel="noopener noreferrer">this</a> out`,
		},
		{"[bad](javascript:void)", "bad"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"`code`", "<code>code</code>"},
		{"use `fmt.Println` here", "use <code>fmt.Println</code> here"},
		{"`**not bold**`", "<code>**not bold**</code>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/writings/x", "/writings/x"},
		{"#top", "#top"},
		{"https://a.dev/?q=1&b=2", "https://a.dev/?q=1&amp;b=2"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"javascript:alert(1)", ""},
		{"relative/path", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"plain", []string{"one", "two"}, "<p>one</p><p>two</p>"},
		{"line breaks", []string{"a\nb"}, "<p>a<br/>b</p>"},
		{"heading", []string{"# Title"}, "<h2>Title</h2>"},
		{"sub heading", []string{"## Sub"}, "<h3>Sub</h3>"},
		{"list", []string{"- one\n- **two**"}, "<ul><li>one</li><li><strong>two</strong></li></ul>"},
		{"ordered", []string{"1. first\n2. second"}, "<ol><li>first</li><li>second</li></ol>"},
		{"quote", []string{"> said"}, "<blockquote>said</blockquote>"},
		{"mixed list", []string{"- one\nnot a list"}, "<p>- one<br/>not a list</p>"},
		{"blank skipped", []string{"", "  "}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderParagraphs(&buf, tt.input)
			if got := buf.String(); got != tt.expected {
				t.Errorf("RenderParagraphs(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
