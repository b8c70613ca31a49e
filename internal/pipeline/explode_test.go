package pipeline

import (
	"reflect"
	"testing"

	"dianjobs/internal"
)

func TestExplodeLocationsMulti(t *testing.T) {
	got := ExplodeLocations("3 - Armenia - DONDE SE UBIQUE, 4 - Cali - RESTO")
	want := []internal.Location{
		{CityRaw: "Armenia", VacancyCount: 3},
		{CityRaw: "Cali", VacancyCount: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestExplodeLocationsDefaults(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []internal.Location
	}{
		{name: "empty", input: "", want: []internal.Location{{CityRaw: "Unknown", VacancyCount: 1}}},
		{name: "whitespace", input: "   ", want: []internal.Location{{CityRaw: "Unknown", VacancyCount: 1}}},
		{name: "no separator", input: "Bogotá D.C.", want: []internal.Location{{CityRaw: "Bogotá D.C.", VacancyCount: 1}}},
		{name: "unparseable count", input: "x - Cali", want: []internal.Location{{CityRaw: "Cali", VacancyCount: 1}}},
		{name: "count only second part", input: "1 - Unknowntown", want: []internal.Location{{CityRaw: "Unknowntown", VacancyCount: 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExplodeLocations(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestExtractJobFamily(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "uppercase prefix", input: "IT-IT-2024-001 soporte técnico", want: "IT-IT"},
		{name: "hyphen fallback", input: "GT - RH - gestión humana", want: "GT-RH"},
		{name: "accented fallback", input: "ÑA - RH - gestión humana", want: "ÑA-RH"},
		{name: "no structure", input: "random text", want: "Other"},
		{name: "empty", input: "", want: "Unknown"},
		{name: "long segments", input: "GEST-ION-2024", want: "Other"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJobFamily(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestExtractStudyCodes(t *testing.T) {
	got := ExtractStudyCodes("Título profesional NBC: Ingeniería de Sistemas ,O, NBC: Ingeniería Industrial")
	want := []string{"Ingeniería Industrial", "Ingeniería de Sistemas"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestExtractStudyCodesDedupeAndCleanup(t *testing.T) {
	got := ExtractStudyCodes("NBC: Derecho. \nNBC: Derecho ,O, NBC: Contaduría Pública.")
	want := []string{"Contaduría Pública", "Derecho"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestExtractStudyCodesNoMarker(t *testing.T) {
	if got := ExtractStudyCodes("sin requisitos formales"); got != nil {
		t.Fatalf("got %v want nil", got)
	}
	if got := ExtractStudyCodes(""); got != nil {
		t.Fatalf("got %v want nil", got)
	}
}
