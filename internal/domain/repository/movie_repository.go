package repository

import (
	"context"

	"github.com/cinescope/cinescope/internal/domain/entity"
)

// GenreCount is one row of the top-genres aggregation.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// ActorCountBucket is one bucket of the actors-per-movie histogram.
type ActorCountBucket struct {
	Actors int `json:"actors"`
	Movies int `json:"movies"`
}

// YearCount is one row of a per-year aggregation.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// MonthCount is one row of a per-month aggregation.
type MonthCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// MovieRepository defines read access to the movie corpus.
type MovieRepository interface {
	// GetByID retrieves a movie by its Wikipedia id. Returns nil when absent.
	GetByID(ctx context.Context, id int) (*entity.Movie, error)

	// Random returns a random movie that has at least one genre and a plot
	// summary. Returns nil when the corpus has no such movie.
	Random(ctx context.Context) (*entity.Movie, error)

	// Count returns the number of movies in the corpus.
	Count(ctx context.Context) (int, error)

	// TopGenres returns the n most common genres, descending by count.
	TopGenres(ctx context.Context, n int) ([]GenreCount, error)

	// HasGenre reports whether any movie in the corpus carries the genre.
	HasGenre(ctx context.Context, genre string) (bool, error)

	// ReleasesByYear returns movies released per year, ascending by year,
	// optionally filtered by genre. An empty genre means no filter.
	ReleasesByYear(ctx context.Context, genre string) ([]YearCount, error)
}

// CharacterRepository defines read access to the character corpus.
type CharacterRepository interface {
	// ActorCountHistogram returns buckets of distinct actors per movie,
	// ascending by actor count.
	ActorCountHistogram(ctx context.Context) ([]ActorCountBucket, error)

	// Genders returns the distinct actor gender values in the corpus.
	Genders(ctx context.Context) ([]string, error)

	// HeightsByGender returns actor heights filtered by gender and an
	// inclusive height range. Gender "All" means no gender filter.
	HeightsByGender(ctx context.Context, gender string, minHeight, maxHeight float64) ([]float64, error)

	// BirthsByYear returns actor births per year, ascending by year.
	BirthsByYear(ctx context.Context) ([]YearCount, error)

	// BirthsByMonth returns actor births per month, ascending by month.
	BirthsByMonth(ctx context.Context) ([]MonthCount, error)
}

// SummaryRepository defines read access to plot summaries.
type SummaryRepository interface {
	// GetByMovieID retrieves the plot summary for a movie. Returns nil when
	// the movie has no summary.
	GetByMovieID(ctx context.Context, movieID int) (*entity.PlotSummary, error)
}
