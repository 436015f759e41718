package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockClassifier is a mock implementation of service.GenreClassifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockClassifier) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func setupHealthRouter(h *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	return r
}

func TestHealth(t *testing.T) {
	t.Run("healthy when corpus loaded and classifier reachable", func(t *testing.T) {
		movieRepo := new(MockMovieRepo)
		classifier := new(MockClassifier)
		router := setupHealthRouter(NewHealthHandler(movieRepo, classifier))

		movieRepo.On("Count", mock.Anything).Return(81741, nil)
		classifier.On("Ready", mock.Anything).Return(nil)

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var status HealthStatus
		err := json.Unmarshal(w.Body.Bytes(), &status)
		assert.NoError(t, err)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "ok", status.Components["dataset"])
		assert.Equal(t, "ok", status.Components["classifier"])
	})

	t.Run("unhealthy when classifier unreachable", func(t *testing.T) {
		movieRepo := new(MockMovieRepo)
		classifier := new(MockClassifier)
		router := setupHealthRouter(NewHealthHandler(movieRepo, classifier))

		movieRepo.On("Count", mock.Anything).Return(81741, nil)
		classifier.On("Ready", mock.Anything).Return(errors.New("connection refused"))

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		err := json.Unmarshal(w.Body.Bytes(), &status)
		assert.NoError(t, err)
		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Components["classifier"], "error")
	})

	t.Run("unhealthy when corpus empty", func(t *testing.T) {
		movieRepo := new(MockMovieRepo)
		classifier := new(MockClassifier)
		router := setupHealthRouter(NewHealthHandler(movieRepo, classifier))

		movieRepo.On("Count", mock.Anything).Return(0, nil)
		classifier.On("Ready", mock.Anything).Return(nil)

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestReady(t *testing.T) {
	t.Run("ready when corpus loaded", func(t *testing.T) {
		movieRepo := new(MockMovieRepo)
		router := setupHealthRouter(NewHealthHandler(movieRepo, new(MockClassifier)))

		movieRepo.On("Count", mock.Anything).Return(81741, nil)

		req, _ := http.NewRequest("GET", "/ready", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not ready when corpus empty", func(t *testing.T) {
		movieRepo := new(MockMovieRepo)
		router := setupHealthRouter(NewHealthHandler(movieRepo, new(MockClassifier)))

		movieRepo.On("Count", mock.Anything).Return(0, nil)

		req, _ := http.NewRequest("GET", "/ready", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
