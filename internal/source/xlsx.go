package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"dianjobs/internal"
)

// columnProbe finds a header by case-insensitive substring keywords,
// optionally rejecting headers that carry an exclude keyword (keeps
// "Cantidad de Vacantes" from shadowing the location column).
type columnProbe struct {
	key      string
	keywords []string
	exclude  []string
}

var xlsxProbes = []columnProbe{
	{key: "cargo", keywords: []string{"denominac", "cargo"}},
	{key: "salario", keywords: []string{"asignaci", "salari", "sueldo"}},
	{key: "vacantes", keywords: []string{"vacantes", "ubicacion", "ubicación", "ciudad"}, exclude: []string{"cantidad"}},
	{key: "nivel", keywords: []string{"nivel"}},
	{key: "opec", keywords: []string{"opec"}},
	{key: "proposito", keywords: []string{"proposito", "propósito", "funciones"}},
	{key: "estudios", keywords: []string{"estudio"}},
	{key: "experiencia", keywords: []string{"experiencia"}},
}

var statusProbe = columnProbe{key: "estado", keywords: []string{"convocatoria"}}

// ReadXLSX loads the local spreadsheet fallback. Headers are matched by
// keyword, so the reader survives the naming drift between file
// versions. With filterIngreso set, only rows whose process-status cell
// contains "Ingreso" (open postings) are kept; that filter belongs to
// file ingestion, not to normalization.
func ReadXLSX(path string, filterIngreso bool) ([]internal.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	headers := rows[0]
	indexByKey := map[string]int{}
	for _, probe := range xlsxProbes {
		if idx := probeHeader(headers, probe); idx >= 0 {
			indexByKey[probe.key] = idx
		}
	}
	statusIdx := probeHeader(headers, statusProbe)

	out := make([]internal.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if filterIngreso && statusIdx >= 0 {
			if !strings.Contains(strings.ToLower(cellAt(row, statusIdx)), "ingreso") {
				continue
			}
		}

		rec := internal.RawRecord{}
		for key, idx := range indexByKey {
			if v := cellAt(row, idx); v != "" {
				rec[key] = v
			}
		}
		if len(rec) == 0 {
			continue
		}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no usable rows", path)
	}
	return out, nil
}

func probeHeader(headers []string, probe columnProbe) int {
	for i, h := range headers {
		lower := strings.ToLower(strings.TrimSpace(h))
		if lower == "" {
			continue
		}
		excluded := false
		for _, ex := range probe.exclude {
			if strings.Contains(lower, ex) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		for _, kw := range probe.keywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
