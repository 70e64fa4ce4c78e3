package services

import (
	"strings"
	"unicode"
)

const maxSlugLen = 255

// slugify lowercases s and joins its letter and digit runs with '-'.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		case r == ' ' || r == '-' || r == '_' || r == '/' || r == '.':
			return '-'
		default:
			return -1
		}
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if r := []rune(s); len(r) > maxSlugLen {
		s = strings.TrimRight(string(r[:maxSlugLen]), "-")
	}
	return s
}
