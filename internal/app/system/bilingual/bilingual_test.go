package bilingual

import (
	"testing"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		v    models.BilingualString
		loc  Locale
		want string
	}{
		{"mn present", models.BilingualString{MN: "Сайн дурын ажил", EN: "Volunteering"}, MN, "Сайн дурын ажил"},
		{"en present", models.BilingualString{MN: "Сайн дурын ажил", EN: "Volunteering"}, EN, "Volunteering"},
		{"mn missing falls back to en", models.BilingualString{EN: "Volunteering"}, MN, "Volunteering"},
		{"en missing falls back to mn", models.BilingualString{MN: "Ажил"}, EN, "Ажил"},
		{"whitespace counts as missing", models.BilingualString{MN: "   ", EN: "Cleanup"}, MN, "Cleanup"},
		{"both empty", models.BilingualString{}, EN, ""},
		{"unknown locale uses mn first", models.BilingualString{MN: "Мод тарих", EN: "Tree planting"}, Locale("fr"), "Мод тарих"},
		{"unknown locale falls back to en", models.BilingualString{EN: "Tree planting"}, Locale(""), "Tree planting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.v, tt.loc); got != tt.want {
				t.Errorf("Resolve(%+v, %q) = %q, want %q", tt.v, tt.loc, got, tt.want)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input string
		want  Locale
	}{
		{"en", EN},
		{"EN", EN},
		{"en-US", EN},
		{" mn ", MN},
		{"mn-MN", MN},
		{"", MN},
		{"de", MN},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLocale(tt.input); got != tt.want {
				t.Errorf("ParseLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	if !Valid(MN) || !Valid(EN) {
		t.Error("expected mn and en to be valid")
	}
	if Valid(Locale("fr")) {
		t.Error("expected fr to be invalid")
	}
}
