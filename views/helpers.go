package views

import (
	"html/template"
	"strconv"
	"strings"
	"time"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
		"markdown":   Markdown,
		"formatDate": FormatDate,
		"title":      TitleCase,
		"kb":         KB,
		"contains":   Contains,
	}
}

// FormatDate renders an ISO-8601 timestamp as "Jan 2, 2006". Values that
// do not parse are shown as-is.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return iso
}

// TitleCase upcases the first letter of each word. Used for platform IDs.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// KB renders a byte count as whole kilobytes.
func KB(n int) string {
	kb := (n + 1023) / 1024
	if kb < 1 {
		kb = 1
	}
	return strconv.Itoa(kb) + " KB"
}

// Contains reports whether vals includes v. Templates use it to re-check
// multi-select boxes.
func Contains(vals []string, v string) bool {
	for _, s := range vals {
		if s == v {
			return true
		}
	}
	return false
}
