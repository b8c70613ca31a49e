package geo

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dianjobs/internal"
)

type Coordinates struct {
	Lat float64
	Lon float64
}

var (
	coordsByName map[string]Coordinates
	nameByFold   map[string]string
	reSpaces     = regexp.MustCompile(`\s+`)
)

func init() {
	coordsByName = make(map[string]Coordinates, len(cityEntries))
	nameByFold = make(map[string]string, len(cityEntries))
	for _, e := range cityEntries {
		coordsByName[e.name] = Coordinates{Lat: e.lat, Lon: e.lon}
		nameByFold[foldKey(e.name)] = e.name
	}
}

// Resolve maps a raw location token to a canonical city name and its
// coordinates. Corruption patterns are checked first and short-circuit;
// then exact case-insensitive match; then substring containment for
// canonical names longer than 4 runes. A name the table does not cover
// is returned cleaned but unchanged, so gaps stay visible downstream.
func Resolve(raw string) (string, *Coordinates) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return internal.CityUnknown, nil
	}

	lower := strings.ToLower(trimmed)
	for _, p := range corruptionPatterns {
		if strings.Contains(lower, p.probe) {
			return p.canonical, LookupCoordinates(p.canonical)
		}
	}

	cleaned := cleanup(trimmed)
	if cleaned == "" {
		return internal.CityUnknown, nil
	}

	key := foldKey(cleaned)
	if name, ok := nameByFold[key]; ok {
		return name, LookupCoordinates(name)
	}

	for _, e := range cityEntries {
		if len([]rune(e.name)) <= 4 {
			continue
		}
		if strings.Contains(key, foldKey(e.name)) {
			return e.name, LookupCoordinates(e.name)
		}
	}

	return cleaned, nil
}

// LookupCoordinates returns the coordinates for a canonical city name,
// or nil when the table does not cover it.
func LookupCoordinates(name string) *Coordinates {
	if c, ok := coordsByName[name]; ok {
		out := c
		return &out
	}
	return nil
}

// CanonicalCities lists every city the table covers, in authored order.
func CanonicalCities() []string {
	out := make([]string, 0, len(cityEntries))
	seen := map[string]struct{}{}
	for _, e := range cityEntries {
		if _, ok := seen[e.name]; ok {
			continue
		}
		seen[e.name] = struct{}{}
		out = append(out, e.name)
	}
	return out
}

// cleanup strips replacement-character artifacts left by upstream
// encoding failures and recomposes any decomposed accents.
func cleanup(input string) string {
	s := norm.NFC.String(input)
	s = strings.Map(func(r rune) rune {
		if r == '�' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// foldKey lowercases and drops combining diacritics so comparisons
// survive accent loss ("Medellin" vs "Medellín").
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
