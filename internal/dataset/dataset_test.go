package dataset

import (
	"strings"
	"testing"

	"dianjobs/internal"
)

func fp(v float64) *float64 { return &v }

func sample() []internal.NormalizedRecord {
	return []internal.NormalizedRecord{
		{PositionTitle: "Gestor I", Salary: 4500000, City: "Bogotá D.C.", VacancyCount: 2,
			Latitude: fp(4.7110), Longitude: fp(-74.0721), Category: "Profesional",
			JobFamilyCode: "IT-IT", StudyRequirements: []string{"Ingeniería de Sistemas"}},
		{PositionTitle: "Gestor I", Salary: 4500000, City: "Bogotá D.C.", VacancyCount: 1,
			Latitude: fp(4.7110), Longitude: fp(-74.0721), Category: "Profesional",
			JobFamilyCode: "IT-IT"},
		{PositionTitle: "Analista II", Salary: 3200000, City: "Cali", VacancyCount: 1,
			Latitude: fp(3.4516), Longitude: fp(-76.5320), Category: "Técnico",
			JobFamilyCode: "Other", StudyRequirements: []string{"Derecho"}},
		{PositionTitle: "Auxiliar", Salary: 0, City: "Unknowntown", VacancyCount: 1,
			Category: "Asistencial", JobFamilyCode: "Unknown"},
	}
}

func TestFilterApply(t *testing.T) {
	records := sample()

	got := Filter{Cities: []string{"Bogotá D.C."}}.Apply(records)
	if len(got) != 2 {
		t.Fatalf("city filter: len=%d", len(got))
	}

	got = Filter{MinSalary: 3000000, MaxSalary: 4000000}.Apply(records)
	if len(got) != 1 || got[0].PositionTitle != "Analista II" {
		t.Fatalf("salary filter: %+v", got)
	}

	got = Filter{StudyCodes: []string{"derecho"}}.Apply(records)
	if len(got) != 1 || got[0].City != "Cali" {
		t.Fatalf("study filter: %+v", got)
	}

	got = Filter{}.Apply(records)
	if len(got) != len(records) {
		t.Fatalf("empty filter must keep everything: len=%d", len(got))
	}
}

func TestCountByPosition(t *testing.T) {
	got := CountByPosition(sample())
	if len(got) != 3 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].Position != "Gestor I" || got[0].Count != 2 {
		t.Fatalf("top position: %+v", got[0])
	}
}

func TestMapPointsGrouping(t *testing.T) {
	got := MapPoints(sample())
	if len(got) != 2 {
		t.Fatalf("len=%d want 2 (row without coordinates skipped)", len(got))
	}
	bogota := got[0]
	if bogota.City != "Bogotá D.C." || bogota.Vacancies != 3 || bogota.Postings != 2 {
		t.Fatalf("grouped point: %+v", bogota)
	}
}

func TestSummary(t *testing.T) {
	digest := Summary(sample())
	for _, want := range []string{"Total de empleos: 4", "vacantes: 5", "Bogotá D.C.", "Gestor I"} {
		if !strings.Contains(digest, want) {
			t.Fatalf("digest missing %q:\n%s", want, digest)
		}
	}

	if Summary(nil) != "Sin registros." {
		t.Fatal("empty digest wrong")
	}
}
