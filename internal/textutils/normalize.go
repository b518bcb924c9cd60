package textutils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	digitRunRe   = regexp.MustCompile(`\d{4,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	titleCaser = cases.Title(language.English)
)

// processorPrefixes are payment-processor artifacts that precede the actual
// merchant name in statement descriptions.
var processorPrefixes = []string{
	"payment to",
	"payment from",
	"debit card purchase",
	"card purchase",
	"purchase at",
	"pos",
	"ach",
	"dc",
	"cc",
	"paypal",
	"sq",
}

// NormalizeDescription lower-cases and trims a description, strips long
// digit runs (4+ consecutive digits, i.e. card and reference numbers), and
// collapses whitespace. All classification tiers match against this form.
func NormalizeDescription(description string) string {
	s := strings.ToLower(strings.TrimSpace(description))
	s = digitRunRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TitleCase title-cases a string using English casing rules.
func TitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// ExtractMerchantName derives a short merchant-name candidate from a
// normalized description: processor prefixes are removed, trailing tokens
// containing digits (store numbers, reference codes) are dropped, and the
// first three remaining words are title-cased.
func ExtractMerchantName(description string) string {
	s := strings.TrimSpace(strings.ToLower(description))

	for stripped := true; stripped; {
		stripped = false
		for _, prefix := range processorPrefixes {
			if strings.HasPrefix(s, prefix+" ") {
				s = strings.TrimSpace(s[len(prefix):])
				stripped = true
			}
		}
	}

	words := strings.Fields(s)
	for len(words) > 1 && containsDigit(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	if len(words) > 3 {
		words = words[:3]
	}
	if len(words) == 0 {
		return ""
	}

	return titleCaser.String(strings.Join(words, " "))
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
