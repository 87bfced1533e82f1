package render

import (
	"fmt"
	"regexp"
	"strings"
)

var yearMonth = regexp.MustCompile(`^(\d{4})-(\d{1,2})(?:-\d{1,2})?$`)

// FormatDate renders a YYYY-MM (or YYYY-MM-DD) value as YYYY.MM. Anything
// else is passed through unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	m := yearMonth.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	month := m[2]
	if len(month) == 1 {
		month = "0" + month
	}
	return m[1] + "." + month
}

// DateRange formats a start/end pair with the given labels.
func DateRange(l Labels, start, end string) string {
	s, e := FormatDate(start), FormatDate(end)
	switch {
	case s != "" && e != "":
		return fmt.Sprintf(l.RangeBoth, s, e)
	case s != "":
		return fmt.Sprintf(l.RangeStartOnly, s)
	case e != "":
		return fmt.Sprintf(l.RangeEndOnly, e)
	default:
		return ""
	}
}
