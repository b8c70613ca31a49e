package pipeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"dianjobs/internal"
)

var reFamilyPrefix = regexp.MustCompile(`^[A-Z]{2}-[A-Z]{2}`)

// ExplodeLocations parses a multi-location vacancy string such as
// "3 - Armenia - DONDE SE UBIQUE, 4 - Cali - RESTO" into (city, count)
// pairs. Each comma segment is split on " - "; the leading part is the
// vacancy count (default 1 when it does not parse), the second part the
// location. A segment without the separator is kept whole as an
// unresolved location. The result is never empty.
func ExplodeLocations(raw string) []internal.Location {
	out := []internal.Location{}
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		parts := strings.Split(segment, " - ")
		if len(parts) < 2 {
			out = append(out, internal.Location{CityRaw: segment, VacancyCount: 1})
			continue
		}

		count := 1
		if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && n > 0 {
			count = n
		}
		out = append(out, internal.Location{CityRaw: strings.TrimSpace(parts[1]), VacancyCount: count})
	}

	if len(out) == 0 {
		out = append(out, internal.Location{CityRaw: internal.CityUnknown, VacancyCount: 1})
	}
	return out
}

// ExtractJobFamily pulls the administrative process-group code from a
// description. A leading XX-YY uppercase prefix wins; otherwise the
// first two hyphen segments are joined when both trim to two characters.
func ExtractJobFamily(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return internal.FamilyUnknown
	}

	if code := reFamilyPrefix.FindString(description); code != "" {
		return code
	}

	parts := strings.Split(description, "-")
	if len(parts) >= 2 {
		first := strings.TrimSpace(parts[0])
		second := strings.TrimSpace(parts[1])
		if utf8.RuneCountInString(first) == 2 && utf8.RuneCountInString(second) == 2 {
			return first + "-" + second
		}
	}

	return internal.FamilyOther
}

// ExtractStudyCodes collects the NBC (required knowledge area) codes
// embedded in a study-requirements blob. Text before the first "NBC:"
// marker is discarded; each candidate is cut at the " ,O," listing
// delimiter and stripped of trailing periods. Deduplicated and sorted.
func ExtractStudyCodes(studyText string) []string {
	text := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(studyText)
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	segments := strings.Split(text, "NBC:")
	if len(segments) < 2 {
		return nil
	}

	seen := map[string]struct{}{}
	for _, segment := range segments[1:] {
		if idx := strings.Index(segment, " ,O,"); idx >= 0 {
			segment = segment[:idx]
		}
		code := strings.TrimRight(strings.TrimSpace(segment), ". ")
		if code == "" {
			continue
		}
		seen[code] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
