package usecase

import "strings"

// ParseGenres extracts a normalized genre list from a raw model response
// for comparison purposes only; display always uses the raw response.
// Reasoning models prefix their answer with a <think> block, which is
// dropped before splitting on commas. The result is never nil, so it
// marshals as an empty JSON array rather than null.
func ParseGenres(raw string) []string {
	cleaned := stripThink(raw)

	seen := make(map[string]struct{})
	genres := []string{}
	for _, part := range strings.Split(cleaned, ",") {
		genre := strings.ToLower(strings.TrimSpace(part))
		genre = strings.Trim(genre, ".")
		if genre == "" {
			continue
		}
		if _, ok := seen[genre]; ok {
			continue
		}
		seen[genre] = struct{}{}
		genres = append(genres, genre)
	}
	return genres
}

// stripThink removes a leading <think>...</think> block from a model
// response. Responses without one are returned trimmed.
func stripThink(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "<think>") {
		if end := strings.Index(s, "</think>"); end >= 0 {
			s = s[end+len("</think>"):]
		}
	}
	return strings.TrimSpace(s)
}
