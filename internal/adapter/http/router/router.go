package router

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cinescope/cinescope/internal/adapter/http/handler"
	"github.com/cinescope/cinescope/internal/adapter/http/middleware"
	"github.com/cinescope/cinescope/internal/adapter/repository/memory"
	"github.com/cinescope/cinescope/internal/domain/service"
	"github.com/cinescope/cinescope/internal/usecase"
	"github.com/cinescope/cinescope/web"
)

// Setup creates and configures the Gin router
func Setup(store *memory.Store, classifier service.GenreClassifier, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	movieRepo := memory.NewMovieRepository(store)
	characterRepo := memory.NewCharacterRepository(store)
	summaryRepo := memory.NewSummaryRepository(store)

	// Health endpoints
	healthHandler := handler.NewHealthHandler(movieRepo, classifier)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Browser UI
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		logger.Fatal("Failed to mount embedded UI", zap.Error(err))
	}
	router.StaticFS("/ui", http.FS(static))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/")
	})

	// Initialize usecases
	classifyUC := usecase.NewClassifyUsecase(movieRepo, summaryRepo, classifier)
	statsUC := usecase.NewStatsUsecase(movieRepo, characterRepo)

	// Initialize handlers
	classifyHandler := handler.NewClassifyHandler(classifyUC)
	statsHandler := handler.NewStatsHandler(statsUC, movieRepo)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", classifyHandler.Submit)
		v1.GET("/classify/movie", classifyHandler.ClassifyRandomMovie)
		v1.GET("/classify/movies/:id", classifyHandler.ClassifyMovie)

		v1.GET("/movies/random", statsHandler.RandomMovie)

		stats := v1.Group("/stats")
		{
			stats.GET("/genres", statsHandler.TopGenres)
			stats.GET("/actors/count", statsHandler.ActorCount)
			stats.GET("/actors/heights", statsHandler.ActorHeights)
			stats.GET("/releases", statsHandler.Releases)
			stats.GET("/births", statsHandler.Births)
		}
	}

	return router
}
