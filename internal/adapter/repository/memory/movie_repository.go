package memory

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/cinescope/cinescope/internal/domain/entity"
	"github.com/cinescope/cinescope/internal/domain/repository"
	"github.com/cinescope/cinescope/internal/infrastructure/dataset"
)

// Store holds the loaded corpus and serves the repository interfaces over
// it. The corpus is immutable after construction, so all reads are safe for
// concurrent use.
type Store struct {
	movies     []*entity.Movie
	characters []*entity.Character

	moviesByID   map[int]*entity.Movie
	summaries    map[int]*entity.PlotSummary
	classifiable []*entity.Movie
}

// NewStore builds a Store from a loaded dataset.
func NewStore(ds *dataset.Dataset) *Store {
	s := &Store{
		movies:     ds.Movies,
		characters: ds.Characters,
		moviesByID: make(map[int]*entity.Movie, len(ds.Movies)),
		summaries:  make(map[int]*entity.PlotSummary, len(ds.Summaries)),
	}

	for _, m := range ds.Movies {
		s.moviesByID[m.WikipediaID] = m
	}
	for _, ps := range ds.Summaries {
		s.summaries[ps.WikipediaID] = ps
	}
	for _, m := range ds.Movies {
		if len(m.Genres) > 0 {
			if _, ok := s.summaries[m.WikipediaID]; ok {
				s.classifiable = append(s.classifiable, m)
			}
		}
	}

	return s
}

// NewMovieRepository returns the store's MovieRepository view.
func NewMovieRepository(s *Store) repository.MovieRepository { return s }

// NewCharacterRepository returns the store's CharacterRepository view.
func NewCharacterRepository(s *Store) repository.CharacterRepository { return s }

// NewSummaryRepository returns the store's SummaryRepository view.
func NewSummaryRepository(s *Store) repository.SummaryRepository { return s }

func (s *Store) GetByID(_ context.Context, id int) (*entity.Movie, error) {
	return s.moviesByID[id], nil
}

func (s *Store) Random(_ context.Context) (*entity.Movie, error) {
	if len(s.classifiable) == 0 {
		return nil, nil
	}
	return s.classifiable[rand.IntN(len(s.classifiable))], nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	return len(s.movies), nil
}

func (s *Store) TopGenres(_ context.Context, n int) ([]repository.GenreCount, error) {
	counts := make(map[string]int)
	for _, m := range s.movies {
		for _, genre := range m.Genres {
			counts[genre]++
		}
	}

	all := make([]repository.GenreCount, 0, len(counts))
	for genre, count := range counts {
		all = append(all, repository.GenreCount{Genre: genre, Count: count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Genre < all[j].Genre
	})

	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

func (s *Store) HasGenre(_ context.Context, genre string) (bool, error) {
	for _, m := range s.movies {
		if m.HasGenre(genre) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ReleasesByYear(_ context.Context, genre string) ([]repository.YearCount, error) {
	counts := make(map[int]int)
	for _, m := range s.movies {
		year := m.ReleaseYear()
		if year == 0 {
			continue
		}
		if genre != "" && !m.HasGenre(genre) {
			continue
		}
		counts[year]++
	}
	return sortYearCounts(counts), nil
}

func (s *Store) ActorCountHistogram(_ context.Context) ([]repository.ActorCountBucket, error) {
	// Count distinct actor names per movie.
	actorsPerMovie := make(map[int]map[string]struct{})
	for _, c := range s.characters {
		if c.ActorName == "" {
			continue
		}
		actors, ok := actorsPerMovie[c.WikipediaID]
		if !ok {
			actors = make(map[string]struct{})
			actorsPerMovie[c.WikipediaID] = actors
		}
		actors[c.ActorName] = struct{}{}
	}

	histogram := make(map[int]int)
	for _, actors := range actorsPerMovie {
		histogram[len(actors)]++
	}

	buckets := make([]repository.ActorCountBucket, 0, len(histogram))
	for actors, movies := range histogram {
		buckets = append(buckets, repository.ActorCountBucket{Actors: actors, Movies: movies})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Actors < buckets[j].Actors })
	return buckets, nil
}

func (s *Store) Genders(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var genders []string
	for _, c := range s.characters {
		g := strings.TrimSpace(c.ActorGender)
		if g == "" {
			continue
		}
		if _, ok := seen[g]; !ok {
			seen[g] = struct{}{}
			genders = append(genders, g)
		}
	}
	sort.Strings(genders)
	return genders, nil
}

func (s *Store) HeightsByGender(_ context.Context, gender string, minHeight, maxHeight float64) ([]float64, error) {
	var heights []float64
	for _, c := range s.characters {
		if c.ActorHeight == nil {
			continue
		}
		if gender != "All" && c.ActorGender != gender {
			continue
		}
		h := *c.ActorHeight
		if h < minHeight || h > maxHeight {
			continue
		}
		heights = append(heights, h)
	}
	return heights, nil
}

func (s *Store) BirthsByYear(_ context.Context) ([]repository.YearCount, error) {
	counts := make(map[int]int)
	for _, c := range s.characters {
		if year := c.BirthYear(); year != 0 {
			counts[year]++
		}
	}
	return sortYearCounts(counts), nil
}

func (s *Store) BirthsByMonth(_ context.Context) ([]repository.MonthCount, error) {
	counts := make(map[int]int)
	for _, c := range s.characters {
		if month := c.BirthMonth(); month != 0 {
			counts[month]++
		}
	}

	months := make([]repository.MonthCount, 0, len(counts))
	for month, count := range counts {
		months = append(months, repository.MonthCount{Month: month, Count: count})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months, nil
}

func (s *Store) GetByMovieID(_ context.Context, movieID int) (*entity.PlotSummary, error) {
	return s.summaries[movieID], nil
}

func sortYearCounts(counts map[int]int) []repository.YearCount {
	years := make([]repository.YearCount, 0, len(counts))
	for year, count := range counts {
		years = append(years, repository.YearCount{Year: year, Count: count})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })
	return years
}
