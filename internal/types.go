package internal

// RawRecord is one row of the source table as fetched: column name to
// value. Column names vary across source versions and no column is
// guaranteed to be present. Values decoded from JSON keep their dynamic
// types (numbers arrive as float64).
type RawRecord map[string]any

const (
	CityUnknown   = "Unknown"
	FamilyUnknown = "Unknown"
	FamilyOther   = "Other"
)

// NormalizedRecord is the pipeline's output unit. One RawRecord with N
// embedded location tokens expands into N of these, differing only in
// CityRaw/City/VacancyCount/Latitude/Longitude.
type NormalizedRecord struct {
	PositionTitle string
	Salary        float64
	CityRaw       string
	City          string
	VacancyCount  int
	Latitude      *float64
	Longitude     *float64
	JobFamilyCode string
	// De-duplicated within a source row and kept sorted so repeated
	// runs produce identical output.
	StudyRequirements []string

	Category       string
	ProcessID      string
	Description    string
	StudyText      string
	ExperienceText string
	JobID          string
}

// Location is one (city, vacancy count) pair extracted from a
// multi-location vacancy string such as "3 - Armenia - DONDE SE UBIQUE".
type Location struct {
	CityRaw      string
	VacancyCount int
}

// MapPoint aggregates normalized rows sharing the same resolved city and
// coordinates, for the bubble-map view.
type MapPoint struct {
	City      string
	Latitude  float64
	Longitude float64
	Vacancies int
	Postings  int
}
