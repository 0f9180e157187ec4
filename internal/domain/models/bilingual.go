// internal/domain/models/bilingual.go
package models

import "strings"

// BilingualString holds a display value in the site's two locales.
// MN is the primary (Mongolian) side, EN the English fallback.
type BilingualString struct {
	MN string `bson:"mn" json:"mn"`
	EN string `bson:"en" json:"en"`
}

// IsEmpty reports whether both sides are blank.
func (b BilingualString) IsEmpty() bool {
	return strings.TrimSpace(b.MN) == "" && strings.TrimSpace(b.EN) == ""
}
