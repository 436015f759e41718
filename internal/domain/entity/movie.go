package entity

import (
	"encoding/json"
	"sort"
	"strings"
)

// FreebaseMap represents the dataset's JSON columns that map Freebase ids
// to human-readable names (genres, languages, countries).
type FreebaseMap map[string]string

// ParseFreebaseMap parses a raw JSON column value. Empty cells yield an
// empty map rather than an error.
func ParseFreebaseMap(raw string) (FreebaseMap, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "{}" {
		return FreebaseMap{}, nil
	}
	var m FreebaseMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Names returns the map's values sorted alphabetically.
func (m FreebaseMap) Names() []string {
	names := make([]string, 0, len(m))
	for _, name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains reports whether the map holds the given name, case-insensitively.
func (m FreebaseMap) Contains(name string) bool {
	for _, n := range m {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Movie represents one row of movie.metadata.tsv.
type Movie struct {
	WikipediaID int         `json:"wikipedia_id"`
	FreebaseID  string      `json:"freebase_id"`
	Title       string      `json:"title"`
	ReleaseDate string      `json:"release_date"`
	BoxOffice   float64     `json:"box_office_revenue,omitempty"`
	RuntimeMin  float64     `json:"runtime_min,omitempty"`
	Languages   FreebaseMap `json:"languages,omitempty"`
	Countries   FreebaseMap `json:"countries,omitempty"`
	Genres      FreebaseMap `json:"genres,omitempty"`
}

// ReleaseYear returns the four-digit release year, or 0 when the release
// date is missing or malformed. Dates in the corpus are either "YYYY" or
// "YYYY-MM-DD".
func (m *Movie) ReleaseYear() int {
	return parseYear(m.ReleaseDate)
}

// GenreNames returns the movie's genre names sorted alphabetically.
func (m *Movie) GenreNames() []string {
	return m.Genres.Names()
}

// HasGenre reports whether the movie carries the given genre name,
// case-insensitively.
func (m *Movie) HasGenre(name string) bool {
	return m.Genres.Contains(name)
}

// PlotSummary represents one row of plot_summaries.txt.
type PlotSummary struct {
	WikipediaID int    `json:"wikipedia_id"`
	Summary     string `json:"summary"`
}
