package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Upsert(c *gin.Context) {
	var req dto.UpsertReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.reviewService.Upsert(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetByEmail responds with the single review document, null when absent.
func (h *ReviewHandler) GetByEmail(c *gin.Context) {
	review, err := h.reviewService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}
