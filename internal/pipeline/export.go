package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"dianjobs/internal"
)

// ExportRecordsToXLSX writes the normalized set with the display column
// names the dashboard consumers expect. Diagnostic columns (raw city
// token, family code) are kept; coordinates are blank when unresolved.
func ExportRecordsToXLSX(records []internal.NormalizedRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"cargo", "salario", "ciudad", "ciudad_original", "vacantes",
		"latitud", "longitud", "familia", "nbc",
		"nivel", "opec", "id",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, rec.PositionTitle)
		set(2, rec.Salary)
		set(3, rec.City)
		set(4, rec.CityRaw)
		set(5, rec.VacancyCount)
		set(6, derefFloat(rec.Latitude))
		set(7, derefFloat(rec.Longitude))
		set(8, rec.JobFamilyCode)
		set(9, strings.Join(rec.StudyRequirements, "; "))
		set(10, rec.Category)
		set(11, rec.ProcessID)
		set(12, rec.JobID)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
