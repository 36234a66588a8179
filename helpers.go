package brandstudio

import (
	"path/filepath"
	"strings"
)

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinNonEmpty joins the non-empty values with ", ". The wizard uses it to
// build the tone string from the selected personality tags plus the
// free-text tone field.
func JoinNonEmpty(vals ...string) string {
	return strings.Join(FilterEmpty(vals), ", ")
}

// SafeFilename reduces an uploaded filename to a safe base name: path
// components stripped, spaces collapsed to dashes, anything outside
// [a-zA-Z0-9._-] dropped.
func SafeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), ".-")
	if out == "" {
		return "upload"
	}
	return out
}

// guidelineExtensions is the allowed type set for guideline uploads.
var guidelineExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// AllowedGuidelineFile reports whether a filename has an accepted
// guideline document extension.
func AllowedGuidelineFile(name string) bool {
	return guidelineExtensions[strings.ToLower(filepath.Ext(name))]
}
