package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinescope/cinescope/internal/domain/repository"
	"github.com/cinescope/cinescope/internal/usecase"
)

// StatsHandler handles corpus statistics HTTP requests
type StatsHandler struct {
	statsUC   usecase.StatsUsecase
	movieRepo repository.MovieRepository
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(statsUC usecase.StatsUsecase, movieRepo repository.MovieRepository) *StatsHandler {
	return &StatsHandler{statsUC: statsUC, movieRepo: movieRepo}
}

// TopGenres handles GET /api/v1/stats/genres
func (h *StatsHandler) TopGenres(c *gin.Context) {
	n := ParseIntQuery(c, "n", DefaultTopGenres)

	genres, err := h.statsUC.TopGenres(c.Request.Context(), n)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"n": n, "genres": genres})
}

// ActorCount handles GET /api/v1/stats/actors/count
func (h *StatsHandler) ActorCount(c *gin.Context) {
	buckets, err := h.statsUC.ActorCount(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"histogram": buckets})
}

// ActorHeights handles GET /api/v1/stats/actors/heights
func (h *StatsHandler) ActorHeights(c *gin.Context) {
	gender := c.DefaultQuery("gender", "All")
	minHeight := ParseFloatQuery(c, "min_height", DefaultMinHeight)
	maxHeight := ParseFloatQuery(c, "max_height", DefaultMaxHeight)

	output, err := h.statsUC.ActorDistribution(c.Request.Context(), gender, minHeight, maxHeight)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// Releases handles GET /api/v1/stats/releases
func (h *StatsHandler) Releases(c *gin.Context) {
	genre := c.Query("genre")

	years, err := h.statsUC.Releases(c.Request.Context(), genre)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"genre": genre, "releases": years})
}

// Births handles GET /api/v1/stats/births
func (h *StatsHandler) Births(c *gin.Context) {
	unit := c.DefaultQuery("unit", "Y")

	output, err := h.statsUC.Ages(c.Request.Context(), unit)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// RandomMovie handles GET /api/v1/movies/random
func (h *StatsHandler) RandomMovie(c *gin.Context) {
	movie, err := h.movieRepo.Random(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	if movie == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "movie not found")
		return
	}

	respondSuccess(c, http.StatusOK, movie)
}
