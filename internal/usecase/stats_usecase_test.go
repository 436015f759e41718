package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cinescope/cinescope/internal/domain/repository"
)

// MockCharacterRepository is a mock implementation of CharacterRepository
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) ActorCountHistogram(ctx context.Context) ([]repository.ActorCountBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ActorCountBucket), args.Error(1)
}

func (m *MockCharacterRepository) Genders(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCharacterRepository) HeightsByGender(ctx context.Context, gender string, minHeight, maxHeight float64) ([]float64, error) {
	args := m.Called(ctx, gender, minHeight, maxHeight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockCharacterRepository) BirthsByYear(ctx context.Context) ([]repository.YearCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.YearCount), args.Error(1)
}

func (m *MockCharacterRepository) BirthsByMonth(ctx context.Context) ([]repository.MonthCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthCount), args.Error(1)
}

func TestStatsUsecase_TopGenres(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		uc := NewStatsUsecase(movieRepo, new(MockCharacterRepository))

		expected := []repository.GenreCount{{Genre: "Drama", Count: 10}}
		movieRepo.On("TopGenres", mock.Anything, 5).Return(expected, nil)

		genres, err := uc.TopGenres(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, expected, genres)
		movieRepo.AssertExpectations(t)
	})

	t.Run("rejects non-positive n", func(t *testing.T) {
		uc := NewStatsUsecase(new(MockMovieRepository), new(MockCharacterRepository))

		_, err := uc.TopGenres(context.Background(), 0)

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestStatsUsecase_ActorDistribution(t *testing.T) {
	t.Run("all genders skips gender validation", func(t *testing.T) {
		charRepo := new(MockCharacterRepository)
		uc := NewStatsUsecase(new(MockMovieRepository), charRepo)

		charRepo.On("HeightsByGender", mock.Anything, "All", 1.5, 2.0).
			Return([]float64{1.65, 1.88}, nil)

		out, err := uc.ActorDistribution(context.Background(), "All", 1.5, 2.0)

		assert.NoError(t, err)
		assert.Equal(t, 2, out.Count)
		assert.Equal(t, []float64{1.65, 1.88}, out.Heights)
	})

	t.Run("validates gender against corpus", func(t *testing.T) {
		charRepo := new(MockCharacterRepository)
		uc := NewStatsUsecase(new(MockMovieRepository), charRepo)

		charRepo.On("Genders", mock.Anything).Return([]string{"F", "M"}, nil)

		_, err := uc.ActorDistribution(context.Background(), "X", 1.5, 2.0)

		assert.ErrorIs(t, err, ErrInvalidGender)
	})

	t.Run("rejects inverted height range", func(t *testing.T) {
		uc := NewStatsUsecase(new(MockMovieRepository), new(MockCharacterRepository))

		_, err := uc.ActorDistribution(context.Background(), "All", 2.0, 1.5)

		assert.ErrorIs(t, err, ErrInvalidHeightRange)
	})
}

func TestStatsUsecase_Releases(t *testing.T) {
	t.Run("no genre filter", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		uc := NewStatsUsecase(movieRepo, new(MockCharacterRepository))

		expected := []repository.YearCount{{Year: 1994, Count: 2}}
		movieRepo.On("ReleasesByYear", mock.Anything, "").Return(expected, nil)

		years, err := uc.Releases(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, expected, years)
	})

	t.Run("unknown genre", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		uc := NewStatsUsecase(movieRepo, new(MockCharacterRepository))

		movieRepo.On("HasGenre", mock.Anything, "Sock Puppetry").Return(false, nil)

		_, err := uc.Releases(context.Background(), "Sock Puppetry")

		assert.ErrorIs(t, err, ErrInvalidGenre)
	})

	t.Run("known genre", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		uc := NewStatsUsecase(movieRepo, new(MockCharacterRepository))

		expected := []repository.YearCount{{Year: 2001, Count: 1}}
		movieRepo.On("HasGenre", mock.Anything, "Thriller").Return(true, nil)
		movieRepo.On("ReleasesByYear", mock.Anything, "Thriller").Return(expected, nil)

		years, err := uc.Releases(context.Background(), "Thriller")

		assert.NoError(t, err)
		assert.Equal(t, expected, years)
	})
}

func TestStatsUsecase_Ages(t *testing.T) {
	t.Run("by year", func(t *testing.T) {
		charRepo := new(MockCharacterRepository)
		uc := NewStatsUsecase(new(MockMovieRepository), charRepo)

		expected := []repository.YearCount{{Year: 1958, Count: 3}}
		charRepo.On("BirthsByYear", mock.Anything).Return(expected, nil)

		out, err := uc.Ages(context.Background(), "Y")

		assert.NoError(t, err)
		assert.Equal(t, "Y", out.Unit)
		assert.Equal(t, expected, out.Years)
		assert.Nil(t, out.Months)
	})

	t.Run("by month", func(t *testing.T) {
		charRepo := new(MockCharacterRepository)
		uc := NewStatsUsecase(new(MockMovieRepository), charRepo)

		expected := []repository.MonthCount{{Month: 8, Count: 2}}
		charRepo.On("BirthsByMonth", mock.Anything).Return(expected, nil)

		out, err := uc.Ages(context.Background(), "M")

		assert.NoError(t, err)
		assert.Equal(t, "M", out.Unit)
		assert.Equal(t, expected, out.Months)
	})

	t.Run("unknown unit falls back to year", func(t *testing.T) {
		charRepo := new(MockCharacterRepository)
		uc := NewStatsUsecase(new(MockMovieRepository), charRepo)

		charRepo.On("BirthsByYear", mock.Anything).Return([]repository.YearCount{}, nil)

		out, err := uc.Ages(context.Background(), "weeks")

		assert.NoError(t, err)
		assert.Equal(t, "Y", out.Unit)
	})
}
