// Package bilingual picks display strings out of two-locale values.
package bilingual

import (
	"strings"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

// Locale identifies one of the two supported display languages.
type Locale string

const (
	MN Locale = "mn" // primary
	EN Locale = "en"
)

// Default is the locale used when a request does not name a supported one.
const Default = MN

// ParseLocale maps a request value ("en", "EN-us", " mn ") to a supported
// locale. Anything unrecognized yields Default.
func ParseLocale(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "en" || strings.HasPrefix(s, "en-") || strings.HasPrefix(s, "en_"):
		return EN
	case s == "mn" || strings.HasPrefix(s, "mn-") || strings.HasPrefix(s, "mn_"):
		return MN
	}
	return Default
}

// Valid reports whether loc is one of the supported locales.
func Valid(loc Locale) bool {
	return loc == MN || loc == EN
}

// Resolve returns v's text for loc, falling back to the other locale when
// that side is blank. It returns "" only when both sides are blank.
// An unsupported loc is treated as MN.
func Resolve(v models.BilingualString, loc Locale) string {
	want, other := v.MN, v.EN
	if loc == EN {
		want, other = v.EN, v.MN
	}
	if strings.TrimSpace(want) != "" {
		return want
	}
	if strings.TrimSpace(other) != "" {
		return other
	}
	return ""
}
