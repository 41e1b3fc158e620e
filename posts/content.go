package posts

import (
	"regexp"
	"strings"
	"unicode"
)

// reBlankLine matches a line holding only whitespace, Unicode spaces and
// the byte order mark included.
var reBlankLine = regexp.MustCompile(`\n[\s\p{Z}\x{FEFF}]*\n`)

// Paragraphs splits content on blank lines, trimming each paragraph and
// dropping empty ones. Content without any non-blank paragraph is returned
// whole as a single paragraph.
func Paragraphs(content string) []string {
	var out []string
	for _, p := range reBlankLine.Split(content, -1) {
		if p = strings.TrimFunc(p, isSpace); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{content}
	}
	return out
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || r == '\uFEFF'
}
