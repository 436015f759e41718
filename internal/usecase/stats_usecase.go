package usecase

import (
	"context"
	"errors"

	"github.com/cinescope/cinescope/internal/domain/repository"
)

// Error definitions for the statistics usecase
var (
	ErrInvalidGenre       = errors.New("invalid genre")
	ErrInvalidGender      = errors.New("invalid gender")
	ErrInvalidHeightRange = errors.New("min_height must not exceed max_height")
)

// ActorDistributionOutput represents a filtered height distribution
type ActorDistributionOutput struct {
	Gender    string    `json:"gender"`
	MinHeight float64   `json:"min_height"`
	MaxHeight float64   `json:"max_height"`
	Count     int       `json:"count"`
	Heights   []float64 `json:"heights"`
}

// AgesOutput represents actor births grouped by year or month
type AgesOutput struct {
	Unit   string                  `json:"unit"`
	Years  []repository.YearCount  `json:"years,omitempty"`
	Months []repository.MonthCount `json:"months,omitempty"`
}

// StatsUsecase defines the interface for corpus statistics
type StatsUsecase interface {
	// TopGenres returns the n most common genres, descending.
	TopGenres(ctx context.Context, n int) ([]repository.GenreCount, error)

	// ActorCount returns the actors-per-movie histogram.
	ActorCount(ctx context.Context) ([]repository.ActorCountBucket, error)

	// ActorDistribution returns actor heights filtered by gender and range.
	ActorDistribution(ctx context.Context, gender string, minHeight, maxHeight float64) (*ActorDistributionOutput, error)

	// Releases returns movies released per year, optionally genre-filtered.
	Releases(ctx context.Context, genre string) ([]repository.YearCount, error)

	// Ages returns actor births per year ("Y") or month ("M"). Any other
	// unit falls back to "Y".
	Ages(ctx context.Context, unit string) (*AgesOutput, error)
}

type statsUsecase struct {
	movieRepo     repository.MovieRepository
	characterRepo repository.CharacterRepository
}

// NewStatsUsecase creates a new statistics usecase
func NewStatsUsecase(movieRepo repository.MovieRepository, characterRepo repository.CharacterRepository) StatsUsecase {
	return &statsUsecase{
		movieRepo:     movieRepo,
		characterRepo: characterRepo,
	}
}

func (u *statsUsecase) TopGenres(ctx context.Context, n int) ([]repository.GenreCount, error) {
	if n < 1 {
		return nil, ErrInvalidRequest
	}
	return u.movieRepo.TopGenres(ctx, n)
}

func (u *statsUsecase) ActorCount(ctx context.Context) ([]repository.ActorCountBucket, error) {
	return u.characterRepo.ActorCountHistogram(ctx)
}

func (u *statsUsecase) ActorDistribution(ctx context.Context, gender string, minHeight, maxHeight float64) (*ActorDistributionOutput, error) {
	if minHeight > maxHeight {
		return nil, ErrInvalidHeightRange
	}

	if gender != "All" {
		genders, err := u.characterRepo.Genders(ctx)
		if err != nil {
			return nil, err
		}
		valid := false
		for _, g := range genders {
			if g == gender {
				valid = true
				break
			}
		}
		if !valid {
			return nil, ErrInvalidGender
		}
	}

	heights, err := u.characterRepo.HeightsByGender(ctx, gender, minHeight, maxHeight)
	if err != nil {
		return nil, err
	}

	return &ActorDistributionOutput{
		Gender:    gender,
		MinHeight: minHeight,
		MaxHeight: maxHeight,
		Count:     len(heights),
		Heights:   heights,
	}, nil
}

func (u *statsUsecase) Releases(ctx context.Context, genre string) ([]repository.YearCount, error) {
	if genre != "" {
		ok, err := u.movieRepo.HasGenre(ctx, genre)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidGenre
		}
	}
	return u.movieRepo.ReleasesByYear(ctx, genre)
}

func (u *statsUsecase) Ages(ctx context.Context, unit string) (*AgesOutput, error) {
	// Unknown units fall back to yearly grouping.
	if unit != "Y" && unit != "M" {
		unit = "Y"
	}

	if unit == "M" {
		months, err := u.characterRepo.BirthsByMonth(ctx)
		if err != nil {
			return nil, err
		}
		return &AgesOutput{Unit: "M", Months: months}, nil
	}

	years, err := u.characterRepo.BirthsByYear(ctx)
	if err != nil {
		return nil, err
	}
	return &AgesOutput{Unit: "Y", Years: years}, nil
}
