// Package normalize canonicalizes user-entered strings before they are
// stored or compared.
package normalize

import "strings"

// Email trims and lowercases an address.
func Email(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Name trims a display name. Case is preserved.
func Name(s string) string { return strings.TrimSpace(s) }

// Role trims and lowercases a role.
func Role(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Status trims and lowercases a status value.
func Status(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Province trims a declared province. Case is preserved so the value can
// exact-match a gazetteer name.
func Province(s string) string { return strings.TrimSpace(s) }

// QueryParam trims a raw query-string value.
func QueryParam(s string) string { return strings.TrimSpace(s) }

// FilterValue trims a filter query value and maps "all" to "" (no filter).
func FilterValue(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return s
}
