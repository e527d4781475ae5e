package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRegex = regexp.MustCompile(`-+`)
)

func Slugify(input string) string {
	// Convert input to lowercase
	slug := strings.ToLower(input)

	// Trim whitespace
	slug = strings.TrimSpace(slug)

	// Replace non-alphanumeric characters with dash
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")

	// Remove multiple dashes
	slug = multiDashRegex.ReplaceAllString(slug, "-")

	// Trim leading & trailing dashes
	slug = strings.Trim(slug, "-")

	return slug
}

// FormatRupiah renders an amount the way the storefront displays prices,
// e.g. 1500000 -> "Rp 1.500.000". Fractions are rounded away; IDR has none.
func FormatRupiah(amount decimal.Decimal) string {
	s := amount.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
