package model

import "strings"

// ListDelimiters separate tech_stack entries typed into a single field.
var ListDelimiters = []rune{',', '，', '、'}

// SplitList splits s on ListDelimiters, trimming and dropping blank parts.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		for _, d := range ListDelimiters {
			if r == d {
				return true
			}
		}
		return false
	})
	return compact(parts)
}

// SplitLines splits s on line breaks, trimming and dropping blank lines.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return compact(strings.Split(s, "\n"))
}

// JoinList is the inverse used when seeding an editable field.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

func compact(parts []string) []string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
