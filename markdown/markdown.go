// Package markdown renders post paragraphs as HTML with a small set of
// inline Markdown conventions.
package markdown

import (
	"bytes"
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reOrderedItem      = regexp.MustCompile(`^(\d+)\.\s`)
)

// RenderParagraphs writes one block per paragraph to buf. A paragraph is a
// heading when it starts with "#", a list when every line starts with "- "
// or "1. ", and a <p> otherwise, with single newlines kept as <br/>.
func RenderParagraphs(buf *bytes.Buffer, paras []string) {
	for _, p := range paras {
		p = strings.TrimSpace(strings.ReplaceAll(p, "\r", ""))
		if p == "" {
			continue
		}
		lines := strings.Split(p, "\n")
		switch {
		case len(lines) == 1 && strings.HasPrefix(p, "### "):
			writeTag(buf, "h4", p[4:])
		case len(lines) == 1 && strings.HasPrefix(p, "## "):
			writeTag(buf, "h3", p[3:])
		case len(lines) == 1 && strings.HasPrefix(p, "# "):
			writeTag(buf, "h2", p[2:])
		case allLines(lines, func(l string) bool { return strings.HasPrefix(l, "- ") }):
			buf.WriteString("<ul>")
			for _, l := range lines {
				writeTag(buf, "li", strings.TrimSpace(l)[2:])
			}
			buf.WriteString("</ul>")
		case allLines(lines, reOrderedItem.MatchString):
			buf.WriteString("<ol>")
			for _, l := range lines {
				writeTag(buf, "li", reOrderedItem.ReplaceAllString(strings.TrimSpace(l), ""))
			}
			buf.WriteString("</ol>")
		case allLines(lines, func(l string) bool { return strings.HasPrefix(l, "> ") }):
			buf.WriteString("<blockquote>")
			for i, l := range lines {
				if i > 0 {
					buf.WriteString("<br/>")
				}
				buf.WriteString(FormatInline(strings.TrimSpace(strings.TrimSpace(l)[2:])))
			}
			buf.WriteString("</blockquote>")
		default:
			buf.WriteString("<p>")
			for i, l := range lines {
				if i > 0 {
					buf.WriteString("<br/>")
				}
				buf.WriteString(FormatInline(strings.TrimSpace(l)))
			}
			buf.WriteString("</p>")
		}
	}
}

func writeTag(buf *bytes.Buffer, tag, text string) {
	buf.WriteString("<" + tag + ">")
	buf.WriteString(FormatInline(strings.TrimSpace(text)))
	buf.WriteString("</" + tag + ">")
}

func allLines(lines []string, pred func(string) bool) bool {
	for _, l := range lines {
		if !pred(strings.TrimSpace(l)) {
			return false
		}
	}
	return len(lines) > 0
}

// ApplyOutsideTags applies fn only to text segments outside HTML tags,
// so that formatting regexes never touch URLs inside href attributes.
func ApplyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// FormatInline escapes s and applies bold, italic, inline code and links.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="link"`
		if match[3] == "^" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})
	// Inline code is swapped for placeholders so bold/italic never reach it.
	var codes []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		placeholder := "\x00IC" + strconv.Itoa(len(codes)) + "\x00"
		codes = append(codes, "<code>"+match[1]+"</code>")
		return placeholder
	})
	escaped = ApplyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})
	for i, code := range codes {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

// SafeURL validates a URL for use in an HTML attribute, returning "" for
// anything but relative, http(s), mailto and tel targets.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
