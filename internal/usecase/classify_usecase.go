package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cinescope/cinescope/internal/domain/repository"
	"github.com/cinescope/cinescope/internal/domain/service"
)

// Error definitions for the classification usecase
var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrMovieNotFound         = errors.New("movie not found")
	ErrSummaryNotFound       = errors.New("plot summary not found")
	ErrClassifierUnavailable = errors.New("inference service unavailable")
)

// SubmitInput represents the input for a free-text classification
type SubmitInput struct {
	Text string `json:"text" binding:"required"`
}

// SubmitOutput carries the raw model response
type SubmitOutput struct {
	Response string `json:"response"`
}

// MovieClassificationOutput represents a movie classified against its
// database genres
type MovieClassificationOutput struct {
	MovieID        int      `json:"movie_id"`
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	DatabaseGenres []string `json:"database_genres"`
	ModelResponse  string   `json:"model_response"`
	ModelGenres    []string `json:"model_genres"`
	MatchingGenres []string `json:"matching_genres"`
}

// ClassifyUsecase defines the interface for classification business logic
type ClassifyUsecase interface {
	// Submit forwards free text to the inference service and returns the
	// generated text unmodified.
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// ClassifyRandom classifies a random movie's plot summary and compares
	// the model's genres against the database genres.
	ClassifyRandom(ctx context.Context) (*MovieClassificationOutput, error)

	// ClassifyByID does the same for a specific movie.
	ClassifyByID(ctx context.Context, movieID int) (*MovieClassificationOutput, error)
}

type classifyUsecase struct {
	movieRepo   repository.MovieRepository
	summaryRepo repository.SummaryRepository
	classifier  service.GenreClassifier
}

// NewClassifyUsecase creates a new classification usecase
func NewClassifyUsecase(movieRepo repository.MovieRepository, summaryRepo repository.SummaryRepository, classifier service.GenreClassifier) ClassifyUsecase {
	return &classifyUsecase{
		movieRepo:   movieRepo,
		summaryRepo: summaryRepo,
		classifier:  classifier,
	}
}

func (u *classifyUsecase) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	response, err := u.classifier.Classify(ctx, input.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	return &SubmitOutput{Response: response}, nil
}

func (u *classifyUsecase) ClassifyRandom(ctx context.Context) (*MovieClassificationOutput, error) {
	movie, err := u.movieRepo.Random(ctx)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return u.classifyMovie(ctx, movie.WikipediaID)
}

func (u *classifyUsecase) ClassifyByID(ctx context.Context, movieID int) (*MovieClassificationOutput, error) {
	return u.classifyMovie(ctx, movieID)
}

func (u *classifyUsecase) classifyMovie(ctx context.Context, movieID int) (*MovieClassificationOutput, error) {
	movie, err := u.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	summary, err := u.summaryRepo.GetByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, ErrSummaryNotFound
	}

	response, err := u.classifier.Classify(ctx, summary.Summary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	dbGenres := movie.GenreNames()
	modelGenres := ParseGenres(response)

	return &MovieClassificationOutput{
		MovieID:        movie.WikipediaID,
		Title:          movie.Title,
		Summary:        summary.Summary,
		DatabaseGenres: dbGenres,
		ModelResponse:  response,
		ModelGenres:    modelGenres,
		MatchingGenres: intersect(dbGenres, modelGenres),
	}, nil
}

// intersect returns the case-insensitive intersection of database genres
// and parsed model genres, in database order. The result is never nil.
func intersect(dbGenres, modelGenres []string) []string {
	model := make(map[string]struct{}, len(modelGenres))
	for _, g := range modelGenres {
		model[strings.ToLower(g)] = struct{}{}
	}

	matches := []string{}
	for _, g := range dbGenres {
		if _, ok := model[strings.ToLower(g)]; ok {
			matches = append(matches, g)
		}
	}
	return matches
}
