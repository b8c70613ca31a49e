package dataset

import (
	"fmt"
	"sort"
	"strings"

	"dianjobs/internal"
)

// Filter is the read-only selection the presentation layer applies.
// Empty slices mean "no restriction"; MaxSalary <= 0 means unbounded.
type Filter struct {
	Cities      []string
	Categories  []string
	Processes   []string
	JobFamilies []string
	StudyCodes  []string
	MinSalary   float64
	MaxSalary   float64
}

func (f Filter) Apply(records []internal.NormalizedRecord) []internal.NormalizedRecord {
	out := make([]internal.NormalizedRecord, 0, len(records))
	for _, rec := range records {
		if !contains(f.Cities, rec.City) ||
			!contains(f.Categories, rec.Category) ||
			!contains(f.Processes, rec.ProcessID) ||
			!contains(f.JobFamilies, rec.JobFamilyCode) {
			continue
		}
		if !containsAny(f.StudyCodes, rec.StudyRequirements) {
			continue
		}
		if rec.Salary < f.MinSalary {
			continue
		}
		if f.MaxSalary > 0 && rec.Salary > f.MaxSalary {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// PositionCount is one bar of the count-by-position chart.
type PositionCount struct {
	Position string
	Count    int
}

func CountByPosition(records []internal.NormalizedRecord) []PositionCount {
	counts := map[string]int{}
	for _, rec := range records {
		counts[rec.PositionTitle]++
	}
	out := make([]PositionCount, 0, len(counts))
	for position, count := range counts {
		out = append(out, PositionCount{Position: position, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// MapPoints groups rows sharing the same resolved city and coordinates
// into one bubble, summing vacancies. Rows without coordinates are
// skipped; they have nowhere to be drawn.
func MapPoints(records []internal.NormalizedRecord) []internal.MapPoint {
	type key struct {
		city     string
		lat, lon float64
	}
	grouped := map[key]*internal.MapPoint{}
	order := []key{}
	for _, rec := range records {
		if rec.Latitude == nil || rec.Longitude == nil {
			continue
		}
		k := key{city: rec.City, lat: *rec.Latitude, lon: *rec.Longitude}
		point, ok := grouped[k]
		if !ok {
			point = &internal.MapPoint{City: rec.City, Latitude: k.lat, Longitude: k.lon}
			grouped[k] = point
			order = append(order, k)
		}
		point.Vacancies += rec.VacancyCount
		point.Postings++
	}

	out := make([]internal.MapPoint, 0, len(order))
	for _, k := range order {
		out = append(out, *grouped[k])
	}
	return out
}

// Summary renders the compact digest forwarded to the AI assistant and
// printed by the stats view: totals, top cities and positions, salary
// range and mean.
func Summary(records []internal.NormalizedRecord) string {
	if len(records) == 0 {
		return "Sin registros."
	}

	totalVacancies := 0
	var salarySum, salaryMin, salaryMax float64
	salaryMin = records[0].Salary
	cityCounts := map[string]int{}
	for _, rec := range records {
		totalVacancies += rec.VacancyCount
		salarySum += rec.Salary
		if rec.Salary < salaryMin {
			salaryMin = rec.Salary
		}
		if rec.Salary > salaryMax {
			salaryMax = rec.Salary
		}
		cityCounts[rec.City]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total de empleos: %d (vacantes: %d)\n", len(records), totalVacancies)
	fmt.Fprintf(&b, "Rango salarial: $%.0f - $%.0f (promedio $%.0f)\n",
		salaryMin, salaryMax, salarySum/float64(len(records)))

	fmt.Fprintf(&b, "Ciudades principales: %s\n", topCounts(cityCounts, 5))
	positions := CountByPosition(records)
	if len(positions) > 5 {
		positions = positions[:5]
	}
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		parts = append(parts, fmt.Sprintf("%s (%d)", p.Position, p.Count))
	}
	fmt.Fprintf(&b, "Cargos más comunes: %s", strings.Join(parts, ", "))

	return b.String()
}

func topCounts(counts map[string]int, limit int) string {
	type pair struct {
		name  string
		count int
	}
	pairs := make([]pair, 0, len(counts))
	for name, count := range counts {
		pairs = append(pairs, pair{name, count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].name < pairs[j].name
	})
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s (%d)", p.name, p.count))
	}
	return strings.Join(parts, ", ")
}

func contains(filter []string, value string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if strings.EqualFold(f, value) {
			return true
		}
	}
	return false
}

func containsAny(filter, values []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		for _, v := range values {
			if strings.EqualFold(f, v) {
				return true
			}
		}
	}
	return false
}
