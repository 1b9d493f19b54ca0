package service

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLanguage canonicalizes a requested language code. An empty code
// means English. Codes that are not valid BCP 47 tags are lower-cased and
// passed through for the translator to accept or reject.
func NormalizeLanguage(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "en"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	return tag.String()
}

// IsEnglish reports whether code names English in any regional variant.
func IsEnglish(code string) bool {
	tag, err := language.Parse(NormalizeLanguage(code))
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base.String() == "en"
}
