package entity

// Character represents one row of character.metadata.tsv. Numeric fields
// use pointers because the corpus leaves many cells empty.
type Character struct {
	WikipediaID     int      `json:"wikipedia_id"`
	FreebaseMovieID string   `json:"freebase_movie_id"`
	ReleaseDate     string   `json:"movie_release_date"`
	CharacterName   string   `json:"character_name"`
	ActorDOB        string   `json:"actor_date_of_birth"`
	ActorGender     string   `json:"actor_gender"`
	ActorHeight     *float64 `json:"actor_height_in_meters,omitempty"`
	ActorEthnicity  string   `json:"actor_ethnicity_freebase_id,omitempty"`
	ActorName       string   `json:"actor_name"`
	ActorAge        *float64 `json:"actor_age_at_movie_release,omitempty"`
}

// BirthYear returns the actor's four-digit birth year, or 0 when the date
// of birth is missing or malformed.
func (c *Character) BirthYear() int {
	return parseYear(c.ActorDOB)
}

// BirthMonth returns the actor's birth month (1-12), or 0 when the date of
// birth carries no month component. Dates are "YYYY" or "YYYY-MM-DD".
func (c *Character) BirthMonth() int {
	if len(c.ActorDOB) < 7 || c.ActorDOB[4] != '-' {
		return 0
	}
	month := 0
	for _, r := range c.ActorDOB[5:7] {
		if r < '0' || r > '9' {
			return 0
		}
		month = month*10 + int(r-'0')
	}
	if month < 1 || month > 12 {
		return 0
	}
	return month
}

func parseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}
