package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinescope/cinescope/internal/usecase"
)

// ClassifyHandler handles classification HTTP requests
type ClassifyHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewClassifyHandler creates a new classification handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase) *ClassifyHandler {
	return &ClassifyHandler{classifyUC: classifyUC}
}

// Submit handles POST /api/v1/classify
func (h *ClassifyHandler) Submit(c *gin.Context) {
	var input usecase.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, "text must not be empty")
		return
	}

	output, err := h.classifyUC.Submit(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// ClassifyRandomMovie handles GET /api/v1/classify/movie
func (h *ClassifyHandler) ClassifyRandomMovie(c *gin.Context) {
	output, err := h.classifyUC.ClassifyRandom(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// ClassifyMovie handles GET /api/v1/classify/movies/:id
func (h *ClassifyHandler) ClassifyMovie(c *gin.Context) {
	id, err := ExtractIntParam(c, "id")
	if err != nil {
		HandleInvalidRequest(c, "invalid movie id")
		return
	}

	output, err := h.classifyUC.ClassifyByID(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
