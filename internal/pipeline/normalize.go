package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"dianjobs/internal"
	"dianjobs/internal/geo"
)

// fieldAliases lists the candidate source columns per canonical field,
// in priority order. Upstream exports have changed header conventions
// several times; the first alias present in the table wins. Matching is
// case-insensitive.
var fieldAliases = map[string][]string{
	"title":      {"denominación", "denominacion", "cargo", "titulo", "título", "nombre"},
	"salary":     {"asignación salarial", "asignacion salarial", "asignación básica", "salario", "sueldo"},
	"city":       {"vacantes", "ubicación", "ubicacion", "ciudad", "municipio", "ciudad_raw"},
	"category":   {"nivel", "nivel jerárquico", "nivel jerarquico", "categoría", "categoria"},
	"process":    {"opec", "número opec", "numero opec", "convocatoria", "proceso"},
	"desc":       {"propósito", "proposito", "descripción", "descripcion", "funciones"},
	"study":      {"estudios", "requisitos de estudio", "estudio", "formación académica", "formacion academica"},
	"experience": {"experiencia", "requisitos de experiencia"},
	"jobid":      {"id", "código", "codigo", "job_id", "identificador"},
}

// columnMap is the alias resolution result: canonical field to the
// actual column name found in this table, empty when absent. Resolved
// once per Normalize call, not re-derived per row.
type columnMap map[string]string

func resolveColumns(records []internal.RawRecord) columnMap {
	present := map[string]string{}
	for _, rec := range records {
		for key := range rec {
			lower := strings.ToLower(strings.TrimSpace(key))
			if _, ok := present[lower]; !ok {
				present[lower] = key
			}
		}
	}

	cols := columnMap{}
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			if actual, ok := present[alias]; ok {
				cols[field] = actual
				break
			}
		}
	}
	return cols
}

// Normalize turns the raw table into the normalized record set. Rows
// with multiple embedded locations fan out into one record per
// location; every field-level parse failure degrades to its documented
// default instead of aborting the batch.
func Normalize(records []internal.RawRecord) []internal.NormalizedRecord {
	cols := resolveColumns(records)

	out := make([]internal.NormalizedRecord, 0, len(records))
	for _, rec := range records {
		base := internal.NormalizedRecord{
			PositionTitle:  fieldString(rec, cols, "title"),
			Salary:         CoerceSalary(fieldValue(rec, cols, "salary")),
			Category:       fieldString(rec, cols, "category"),
			ProcessID:      fieldString(rec, cols, "process"),
			Description:    fieldString(rec, cols, "desc"),
			StudyText:      fieldString(rec, cols, "study"),
			ExperienceText: fieldString(rec, cols, "experience"),
			JobID:          fieldString(rec, cols, "jobid"),
		}

		if base.Description != "" {
			base.JobFamilyCode = ExtractJobFamily(base.Description)
		} else {
			base.JobFamilyCode = internal.FamilyUnknown
		}
		if base.StudyText != "" {
			base.StudyRequirements = ExtractStudyCodes(base.StudyText)
		}

		for _, loc := range ExplodeLocations(fieldString(rec, cols, "city")) {
			row := base
			row.CityRaw = loc.CityRaw
			row.VacancyCount = loc.VacancyCount
			row.City, row.Latitude, row.Longitude = resolveCity(loc.CityRaw)
			out = append(out, row)
		}
	}
	return out
}

func resolveCity(cityRaw string) (string, *float64, *float64) {
	city, coords := geo.Resolve(cityRaw)
	if coords == nil {
		return city, nil, nil
	}
	lat, lon := coords.Lat, coords.Lon
	return city, &lat, &lon
}

var (
	reCurrency = regexp.MustCompile(`[$\s\x{00A0}]`)
	reThouDot  = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+(?:,\d+)?$`)
	reThouCom  = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
)

// CoerceSalary turns whatever the salary column holds into a finite
// non-negative number. Colombian exports use dots for thousands and
// commas for decimals ("$4.500.000"); anything unparseable is 0.
func CoerceSalary(value any) float64 {
	switch v := value.(type) {
	case float64:
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int:
		if v < 0 {
			return 0
		}
		return float64(v)
	case string:
		token := reCurrency.ReplaceAllString(strings.TrimSpace(v), "")
		if token == "" {
			return 0
		}
		switch {
		case reThouDot.MatchString(token):
			token = strings.ReplaceAll(token, ".", "")
			token = strings.ReplaceAll(token, ",", ".")
		case reThouCom.MatchString(token):
			token = strings.ReplaceAll(token, ",", "")
		case strings.Contains(token, ",") && !strings.Contains(token, "."):
			token = strings.ReplaceAll(token, ",", ".")
		}
		parsed, err := strconv.ParseFloat(token, 64)
		// ParseFloat accepts "NaN" and "Inf" spellings; pandas exports
		// write literal NaN cells, so reject non-finite values too.
		if err != nil || parsed < 0 || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func fieldValue(rec internal.RawRecord, cols columnMap, field string) any {
	col, ok := cols[field]
	if !ok {
		return nil
	}
	return rec[col]
}

// fieldString renders a pass-through field as text. Non-text values
// other than numbers count as absent.
func fieldString(rec internal.RawRecord, cols columnMap, field string) string {
	switch v := fieldValue(rec, cols, field).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
