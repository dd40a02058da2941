package user

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameCaser = cases.Title(language.English, cases.NoLower)

// NormalizeName trims whitespace and title-cases the first rune so "ansh"
// and "Ansh " store identically.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return nameCaser.String(name)
}
