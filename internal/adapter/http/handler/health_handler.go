package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinescope/cinescope/internal/domain/repository"
	"github.com/cinescope/cinescope/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	movieRepo  repository.MovieRepository
	classifier service.GenreClassifier
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(movieRepo repository.MovieRepository, classifier service.GenreClassifier) *HealthHandler {
	return &HealthHandler{
		movieRepo:  movieRepo,
		classifier: classifier,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check corpus
	if h.movieRepo != nil {
		count, err := h.movieRepo.Count(ctx)
		switch {
		case err != nil:
			components["dataset"] = "error: " + err.Error()
			healthy = false
		case count == 0:
			components["dataset"] = "error: corpus is empty"
			healthy = false
		default:
			components["dataset"] = "ok"
		}
	} else {
		components["dataset"] = "not configured"
	}

	// Check inference service
	if h.classifier != nil {
		if err := h.classifier.Ready(ctx); err != nil {
			components["classifier"] = "error: " + err.Error()
			healthy = false
		} else {
			components["classifier"] = "ok"
		}
	} else {
		components["classifier"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.movieRepo != nil {
		count, err := h.movieRepo.Count(ctx)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "dataset error"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "corpus not loaded"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
