// Package enhance applies lightweight emphasis to free-text résumé lines and
// expands bare skill keywords into short sentences.
package enhance

import (
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a run of text that is either emphasized or not.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Text is an ordered list of spans. Concatenating the spans yields the
// original input.
type Text []Span

// Plain drops emphasis.
func (t Text) Plain() string {
	var b strings.Builder
	for _, s := range t {
		b.WriteString(s.Text)
	}
	return b.String()
}

// HTML renders bold spans as <strong>, escaping everything else.
func (t Text) HTML() template.HTML {
	var b strings.Builder
	for _, s := range t {
		esc := template.HTMLEscapeString(s.Text)
		if s.Bold {
			b.WriteString("<strong>")
			b.WriteString(esc)
			b.WriteString("</strong>")
			continue
		}
		b.WriteString(esc)
	}
	return template.HTML(b.String())
}

// leadIns are ordered longest first so "proficient in" wins over shorter
// overlapping prefixes.
var leadIns = []string{
	"proficient in",
	"familiar with",
	"practiced in",
	"understands",
	"skilled in",
	"expert in",
	"熟悉",
	"精通",
	"了解",
	"擅长",
	"熟练",
	"掌握",
}

// Enhance marks the leading label of a line. A line with a colon (ASCII or
// full-width) and a non-blank prefix gets the prefix emphasized;
// otherwise a recognised lead-in phrase is emphasized; otherwise the line is
// returned unchanged as a single span.
func Enhance(s string) Text {
	if s == "" {
		return nil
	}
	if i := firstColon(s); i >= 0 && strings.TrimSpace(s[:i]) != "" {
		return split(s, i)
	}
	if n := leadInLen(s); n > 0 {
		return split(s, n)
	}
	return Text{{Text: s}}
}

func split(s string, n int) Text {
	t := Text{{Text: s[:n], Bold: true}}
	if n < len(s) {
		t = append(t, Span{Text: s[n:]})
	}
	return t
}

func firstColon(s string) int {
	return strings.IndexFunc(s, func(r rune) bool { return r == ':' || r == '：' })
}

// leadInLen returns the byte length of a lead-in at the start of s, or 0.
// ASCII phrases match case-insensitively on a word boundary.
func leadInLen(s string) int {
	for _, p := range leadIns {
		if len(s) < len(p) {
			continue
		}
		head := s[:len(p)]
		if isASCII(p) {
			if !strings.EqualFold(head, p) {
				continue
			}
			if len(s) > len(p) {
				r, _ := utf8.DecodeRuneInString(s[len(p):])
				if unicode.IsLetter(r) || unicode.IsDigit(r) {
					continue
				}
			}
			return len(p)
		}
		if head == p {
			return len(p)
		}
	}
	return 0
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
